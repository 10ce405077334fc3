package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketName(t *testing.T) {
	assert.Equal(t, "acme-backend-dev-x", BucketName("acme", "dev", "x"))
	assert.Equal(t, "acme-backend-prod-uploads", BucketName("acme", "prod", "uploads"))
}

func TestClusterName(t *testing.T) {
	assert.Equal(t, "acme_cluster_prod", ClusterName("acme", "prod"))
	assert.Equal(t, "acme_cluster_dev", ClusterName("acme", "dev"))
}

func TestQueueName(t *testing.T) {
	tests := []struct {
		name  string
		queue string
		want  string
	}{
		{
			name:  "explicit queue name",
			queue: "jobs",
			want:  "acme-dev-jobs",
		},
		{
			name:  "empty name falls back to default",
			queue: "",
			want:  "acme-dev-default-queue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QueueName("acme", "dev", tt.queue))
		})
	}
}

func TestDomainForEnv(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		isProd    bool
		addPrefix bool
		want      string
	}{
		{
			name:      "non-prod with prefix",
			env:       "dev",
			isProd:    false,
			addPrefix: true,
			want:      "dev.example.com",
		},
		{
			name:      "prod never gets a prefix",
			env:       "dev",
			isProd:    true,
			addPrefix: true,
			want:      "example.com",
		},
		{
			name:      "prefix disabled",
			env:       "staging",
			isProd:    false,
			addPrefix: false,
			want:      "example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DomainForEnv("example.com", tt.env, tt.isProd, tt.addPrefix)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPIDomain(t *testing.T) {
	assert.Equal(t, "api.example.com", APIDomain("", "example.com"))
	assert.Equal(t, "gateway.dev.example.com", APIDomain("gateway", "dev.example.com"))
}

// Calling twice with the same arguments must yield the same string.
func TestDeterminism(t *testing.T) {
	assert.Equal(t, BucketName("p", "e", "x"), BucketName("p", "e", "x"))
	assert.Equal(t, QueueName("p", "e", ""), QueueName("p", "e", ""))
	assert.Equal(t, DomainForEnv("d.com", "e", false, true), DomainForEnv("d.com", "e", false, true))
}
