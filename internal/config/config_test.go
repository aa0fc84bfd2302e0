package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `database_url: postgresql://u:p@localhost:5432/mydb
dir: /data/in
files:
  - clientes.csv
  - ventas.xlsx
schema: staging
separator: ";"
encoding: latin-1
batch_size: 500
timeout: 10m
auth_method: azure_entra_id
azure_tenant_id: tenant-1
azure_client_id: client-1
aws_region: eu-west-1
google_instance: proj:region:inst
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.NotNil(t, cfg.DatabaseURL)
	assert.Equal(t, "postgresql://u:p@localhost:5432/mydb", *cfg.DatabaseURL)
	require.NotNil(t, cfg.Dir)
	assert.Equal(t, "/data/in", *cfg.Dir)
	require.NotNil(t, cfg.Files)
	assert.Equal(t, []string{"clientes.csv", "ventas.xlsx"}, *cfg.Files)
	require.NotNil(t, cfg.Schema)
	assert.Equal(t, "staging", *cfg.Schema)
	require.NotNil(t, cfg.Separator)
	assert.Equal(t, ";", *cfg.Separator)
	require.NotNil(t, cfg.Encoding)
	assert.Equal(t, "latin-1", *cfg.Encoding)
	require.NotNil(t, cfg.BatchSize)
	assert.Equal(t, 500, *cfg.BatchSize)
	require.NotNil(t, cfg.Timeout)
	assert.Equal(t, "10m", *cfg.Timeout)
	require.NotNil(t, cfg.AuthMethod)
	assert.Equal(t, "azure_entra_id", *cfg.AuthMethod)
	assert.Equal(t, "eu-west-1", *cfg.AWSRegion)
	assert.Equal(t, "proj:region:inst", *cfg.GoogleInstance)
}

func TestLoad_AbsentFilesStaysNil(t *testing.T) {
	dir := writeConfig(t, "schema: public\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg.Files, "absent files key must stay nil")
	assert.Nil(t, cfg.DatabaseURL)
}

func TestLoad_EmptyFilesListIsNotNil(t *testing.T) {
	dir := writeConfig(t, "files: []\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Files, "explicit empty list must not collapse to nil")
	assert.Empty(t, *cfg.Files)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "{{invalid")

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := writeConfig(t, "")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}

func TestResolve_Precedence(t *testing.T) {
	cfgVal := "from-config"
	cliVal := "from-cli"

	assert.Equal(t, "from-config", Resolve(&cfgVal, &cliVal, "default"))
	assert.Equal(t, "from-cli", Resolve(nil, &cliVal, "default"))
	assert.Equal(t, "default", Resolve[string](nil, nil, "default"))
}

func TestResolve_ZeroValuesCount(t *testing.T) {
	zero := 0
	assert.Equal(t, 0, Resolve(&zero, nil, 2000), "an explicit zero is still a set value")

	empty := []string{}
	got := Resolve(&empty, nil, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
