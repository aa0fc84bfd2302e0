package tabload

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// AuthMethod identifies the mechanism used to authenticate against PostgreSQL.
type AuthMethod int

const (
	// AuthMethodStandard uses username/password authentication.
	AuthMethodStandard AuthMethod = iota
	// AuthMethodAzureEntraID uses Azure Entra ID token authentication.
	AuthMethodAzureEntraID
	// AuthMethodAWSIAM uses AWS RDS IAM token authentication.
	AuthMethodAWSIAM
	// AuthMethodGoogleIAM uses Google Cloud SQL IAM authentication.
	AuthMethodGoogleIAM
)

// String returns a human-readable name for the auth method.
func (a AuthMethod) String() string {
	switch a {
	case AuthMethodStandard:
		return "standard"
	case AuthMethodAzureEntraID:
		return "azure-entra-id"
	case AuthMethodAWSIAM:
		return "aws-iam"
	case AuthMethodGoogleIAM:
		return "google-iam"
	default:
		return "unknown"
	}
}

// ConnectionConfig represents parsed connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// AuthMethod indicates the authentication mechanism to use
	AuthMethod AuthMethod

	// Azure Entra ID parameters (AuthMethodAzureEntraID)
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	// AWS region for RDS IAM token signing (AuthMethodAWSIAM)
	AWSRegion string

	// Google Cloud SQL instance connection name, project:region:instance
	// (AuthMethodGoogleIAM)
	GoogleInstance string

	// AppName is reported to the server as application_name.
	AppName string

	// ConnectTimeout bounds the initial connection attempt.
	ConnectTimeout time.Duration

	// AdditionalParams holds connection string parameters not otherwise
	// mapped, passed through verbatim.
	AdditionalParams map[string]string
}

// RunConfig contains the finalized parameters for one load run.
// It is built once by the configuration resolver and is treated as
// immutable by the file selector and the loader.
type RunConfig struct {
	// ConnectionString is the PostgreSQL connection string for the target
	// database, already resolved from config file, flags, and environment.
	ConnectionString string

	// Dir is the directory holding the input files.
	Dir string

	// Files is the explicit file list.
	//   nil:       no preference, scan Dir for all supported files
	//   empty:     process nothing (a valid outcome, not a fallback)
	//   non-empty: process exactly these, in order, duplicates included
	Files []string

	// Schema is the target schema for created tables.
	Schema string

	// Separator is the CSV field separator.
	Separator rune

	// Encoding is the IANA name of the CSV text encoding.
	Encoding string

	// BatchSize is the number of rows per INSERT round-trip.
	BatchSize int

	// Timeout bounds the entire run; zero means no limit.
	Timeout time.Duration

	// Verbose enables detailed logging.
	Verbose bool

	// AuthMethod indicates the authentication mechanism to use.
	AuthMethod AuthMethod
}

// Validate checks if the RunConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *RunConfig) Validate() error {
	var errs []error

	if c.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("connection string is required: %w", ErrMissingDatabaseURL))
	}
	if c.Dir == "" {
		errs = append(errs, fmt.Errorf("source directory is required: %w", ErrInvalidConfig))
	}
	if c.Schema == "" {
		errs = append(errs, fmt.Errorf("schema is required: %w", ErrInvalidConfig))
	}
	if c.Separator == 0 || c.Separator == utf8.RuneError {
		errs = append(errs, fmt.Errorf("separator must be a single character: %w", ErrInvalidConfig))
	}
	if c.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch size must be positive: %w", ErrInvalidConfig))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Table is one parsed input file: raw header cells plus data rows.
// Every cell is text; blank cells stay literal empty strings so values
// like leading-zero codes survive the round trip untouched.
type Table struct {
	Headers []string
	Rows    [][]string
}

// TableSpec describes the table to create for one input file. It is fully
// derived from the file name and header row and exists only to parameterize
// the write; it is never persisted.
type TableSpec struct {
	Schema  string
	Name    string
	Columns []string
}

// Qualified returns the schema-qualified table name for diagnostics.
func (s TableSpec) Qualified() string {
	return s.Schema + "." + s.Name
}

// LoadResult is the outcome of loading a single file.
type LoadResult struct {
	File  string
	Table string
	Rows  int64
}

// TableReader parses one tabular file into a Table. Implementations exist
// per format (CSV, XLSX, XLS).
type TableReader interface {
	// Read parses the file content into a Table. The first row of the
	// underlying file is the header; it is returned raw, unsanitized.
	Read(content []byte) (*Table, error)
}

// Database is the write-side collaborator: it creates tables and inserts
// rows in batches. Implementations must refuse to touch a pre-existing
// table (fail-if-exists policy).
type Database interface {
	// CreateTable creates spec.Qualified() with all-text columns.
	// Returns an error wrapping ErrTableExists if the table is already
	// present; the existing table is left unmodified.
	CreateTable(ctx context.Context, spec TableSpec) error

	// InsertRows bulk-inserts rows into spec.Qualified() in batches of at
	// most batchSize rows per statement. Returns the number of rows written.
	InsertRows(ctx context.Context, spec TableSpec, rows [][]string, batchSize int) (int64, error)

	// Close releases the underlying connection resources.
	Close()
}
