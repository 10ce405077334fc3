package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madappgang/stackplan/internal/graph"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]string{"--document", "env.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "env.yaml", cfg.DocumentPath)
	assert.Equal(t, "", cfg.PricingTablePath)
	assert.Equal(t, "startup", cfg.Tier)
	assert.Equal(t, "0.12", cfg.AuroraACURate)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{
		"-d", "prod.yaml",
		"-p", "rates.json",
		"-t", "highload",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "prod.yaml", cfg.DocumentPath)
	assert.Equal(t, "rates.json", cfg.PricingTablePath)
	assert.Equal(t, "highload", cfg.Tier)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseConfigRequiresDocument(t *testing.T) {
	_, err := parseConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--document")
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("STACKPLAN_TIER", "scaleup")

	cfg, err := parseConfig([]string{"--document", "env.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "scaleup", cfg.Tier)
}

func TestResourceKey(t *testing.T) {
	tests := []struct {
		kind graph.ResourceKind
		want string
	}{
		{graph.KindService, "fargate"},
		{graph.KindScheduledTask, "fargate"},
		{graph.KindEventTask, "fargate"},
		{graph.KindBucket, "s3"},
		{graph.KindSQS, "sqs"},
		{graph.KindSES, "ses"},
		{graph.KindDomain, "route53"},
		{graph.KindPostgres, "aurora"},
		{graph.KindGateway, "apigateway"},
		{graph.KindAmplifyApp, "amplify"},
		{graph.KindCluster, "cluster"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resourceKey(tt.kind), "kind %s", tt.kind)
	}
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	doc := `
project: acme
env: dev
region: us-east-1
services:
  - name: api
    container_port: 8080
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	loaded, err := loadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "acme", loaded.Project)
	require.Len(t, loaded.Services, 1)
	assert.Equal(t, "api", loaded.Services[0].Name)
}

func TestLoadTableMissingPath(t *testing.T) {
	table, err := loadTable("")
	require.NoError(t, err)
	assert.Empty(t, table)
}
