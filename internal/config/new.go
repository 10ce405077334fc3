package config

import (
	"strings"

	"github.com/google/uuid"
)

const bucketPostfixLength = 5

// New returns a document for a fresh environment with the defaults the
// platform provisions out of the box. The result always passes Load.
func New(project, env string) *Document {
	return &Document{
		Project: project,
		Env:     env,
		IsProd:  false,
		Region:  "us-east-1",
		Workload: Workload{
			BackendImagePort: 8080,
			BucketPostfix:    randomPostfix(),
			BucketPublic:     true,
		},
		Domain: Domain{
			Enabled:          false,
			CreateDomainZone: true,
		},
		Postgres: Postgres{
			Enabled:       false,
			EngineVersion: "16.x",
			MinCapacity:   0,
			MaxCapacity:   1,
		},
		Ses: Ses{Enabled: false},
		Sqs: Sqs{Enabled: false},
	}
}

// randomPostfix keeps generated bucket names globally unique across
// environments that share a project name.
func randomPostfix() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id[:bucketPostfixLength]
}
