package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madappgang/stackplan/internal/config"
)

func TestResolveExistingEntity(t *testing.T) {
	doc := testDoc()

	e, err := Resolve(doc, "service-worker")
	require.NoError(t, err)
	assert.Equal(t, KindService, e.Kind)
	require.NotNil(t, e.Service)
	assert.Equal(t, "worker", e.Service.Name)
	assert.True(t, e.Service.SQSAccess)
}

// Resolving an entity with no backing document entry returns a default
// stub and leaves the document untouched.
func TestResolveScheduledTaskStub(t *testing.T) {
	doc := testDoc()
	doc.ScheduledTasks = nil
	before := *doc

	e, err := Resolve(doc, "scheduled-nightly")
	require.NoError(t, err)
	assert.Equal(t, KindScheduledTask, e.Kind)
	require.NotNil(t, e.ScheduledTask)
	assert.Equal(t, "nightly", e.ScheduledTask.Name)
	assert.Equal(t, "rate(1 day)", e.ScheduledTask.Schedule)

	if diff := cmp.Diff(&before, doc); diff != "" {
		t.Errorf("document mutated by Resolve (-want +got):\n%s", diff)
	}
}

func TestResolveServiceStub(t *testing.T) {
	doc := testDoc()

	e, err := Resolve(doc, "service-mailer")
	require.NoError(t, err)
	require.NotNil(t, e.Service)
	assert.Equal(t, "mailer", e.Service.Name)
	assert.Equal(t, 256, e.Service.CPU)
	assert.Equal(t, 512, e.Service.Memory)
	assert.Equal(t, 1, e.Service.DesiredCount)
}

func TestResolveSingletons(t *testing.T) {
	doc := testDoc()
	doc.Sqs = config.Sqs{Enabled: true, Name: "jobs"}

	tests := []struct {
		name   string
		nodeID string
		kind   ResourceKind
	}{
		{name: "cluster", nodeID: "cluster", kind: KindCluster},
		{name: "gateway", nodeID: "gateway", kind: KindGateway},
		{name: "sqs", nodeID: "sqs", kind: KindSQS},
		{name: "ses", nodeID: "ses", kind: KindSES},
		{name: "domain", nodeID: "domain", kind: KindDomain},
		{name: "postgres", nodeID: "postgres", kind: KindPostgres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Resolve(doc, tt.nodeID)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, e.Kind)
		})
	}

	// Singletons resolve to the configured values.
	e, err := Resolve(doc, "sqs")
	require.NoError(t, err)
	require.NotNil(t, e.Sqs)
	assert.Equal(t, "jobs", e.Sqs.Name)
}

// The SQS singleton resolves even while disabled: property panels open
// before the feature is toggled on.
func TestResolveDisabledSingleton(t *testing.T) {
	doc := testDoc()
	doc.Sqs = config.Sqs{}

	e, err := Resolve(doc, "sqs")
	require.NoError(t, err)
	require.NotNil(t, e.Sqs)
	assert.False(t, e.Sqs.Enabled)
}

func TestResolveUnknownKind(t *testing.T) {
	doc := testDoc()

	tests := []string{
		"lambda-oops",
		"noseparator",
		"",
	}
	for _, nodeID := range tests {
		_, err := Resolve(doc, nodeID)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf, "node id %q", nodeID)
		assert.Equal(t, KindUnknownKind, nf.Kind)
	}
}

func TestResolveReturnsCopies(t *testing.T) {
	doc := testDoc()

	e, err := Resolve(doc, "service-api")
	require.NoError(t, err)
	e.Service.DesiredCount = 99

	assert.Equal(t, 0, doc.Services[0].DesiredCount)
}
