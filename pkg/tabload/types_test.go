package tabload_test

import (
	"errors"
	"testing"
	"time"

	"github.com/avicente/tabload/pkg/tabload"
)

func validRunConfig() tabload.RunConfig {
	return tabload.RunConfig{
		ConnectionString: "postgresql://localhost:5432/postgres",
		Dir:              ".",
		Schema:           "public",
		Separator:        ',',
		Encoding:         "utf-8",
		BatchSize:        2000,
	}
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*tabload.RunConfig)
		wantError bool
		errorType error
	}{
		{
			name:   "valid config",
			mutate: func(c *tabload.RunConfig) {},
		},
		{
			name:   "valid config with timeout and files",
			mutate: func(c *tabload.RunConfig) { c.Timeout = time.Minute; c.Files = []string{"a.csv"} },
		},
		{
			name:   "empty file list is valid",
			mutate: func(c *tabload.RunConfig) { c.Files = []string{} },
		},
		{
			name:      "missing connection string",
			mutate:    func(c *tabload.RunConfig) { c.ConnectionString = "" },
			wantError: true,
			errorType: tabload.ErrMissingDatabaseURL,
		},
		{
			name:      "missing directory",
			mutate:    func(c *tabload.RunConfig) { c.Dir = "" },
			wantError: true,
			errorType: tabload.ErrInvalidConfig,
		},
		{
			name:      "missing schema",
			mutate:    func(c *tabload.RunConfig) { c.Schema = "" },
			wantError: true,
			errorType: tabload.ErrInvalidConfig,
		},
		{
			name:      "zero separator",
			mutate:    func(c *tabload.RunConfig) { c.Separator = 0 },
			wantError: true,
			errorType: tabload.ErrInvalidConfig,
		},
		{
			name:      "non-positive batch size",
			mutate:    func(c *tabload.RunConfig) { c.BatchSize = 0 },
			wantError: true,
			errorType: tabload.ErrInvalidConfig,
		},
		{
			name:      "negative timeout",
			mutate:    func(c *tabload.RunConfig) { c.Timeout = -time.Second },
			wantError: true,
			errorType: tabload.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validRunConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Fatalf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.errorType != nil && !errors.Is(err, tt.errorType) {
				t.Errorf("Validate() error = %v, want errors.Is %v", err, tt.errorType)
			}
		})
	}
}

func TestRunConfig_Validate_MultipleFailures(t *testing.T) {
	cfg := tabload.RunConfig{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error for zero config")
	}
	if !errors.Is(err, tabload.ErrMissingDatabaseURL) {
		t.Errorf("Expected joined error to include ErrMissingDatabaseURL, got: %v", err)
	}
	if !errors.Is(err, tabload.ErrInvalidConfig) {
		t.Errorf("Expected joined error to include ErrInvalidConfig, got: %v", err)
	}
}

func TestAuthMethod_String(t *testing.T) {
	tests := []struct {
		method tabload.AuthMethod
		want   string
	}{
		{tabload.AuthMethodStandard, "standard"},
		{tabload.AuthMethodAzureEntraID, "azure-entra-id"},
		{tabload.AuthMethodAWSIAM, "aws-iam"},
		{tabload.AuthMethodGoogleIAM, "google-iam"},
		{tabload.AuthMethod(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.method.String(); got != tt.want {
				t.Errorf("AuthMethod.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableSpec_Qualified(t *testing.T) {
	spec := tabload.TableSpec{Schema: "staging", Name: "clientes_2024"}
	if got := spec.Qualified(); got != "staging.clientes_2024" {
		t.Errorf("Qualified() = %q, want %q", got, "staging.clientes_2024")
	}
}
