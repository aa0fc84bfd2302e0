package tabload

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connector abstracts database connection establishment.
// Implementations handle the specifics of each authentication method
// (standard password, AWS IAM, Azure Entra ID, Google Cloud SQL IAM).
type Connector interface {
	// Connect establishes a connection pool to the target database.
	// The returned pool is ready for use (connectivity verified).
	Connect(ctx context.Context) (*pgxpool.Pool, error)
}

// ConnectorFactory creates a Connector for the given connection config.
// Used for dependency injection so tests can substitute fakes.
type ConnectorFactory func(config *ConnectionConfig) (Connector, error)
