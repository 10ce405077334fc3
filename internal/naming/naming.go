// Package naming derives AWS resource identifiers from project, environment
// and name parts. Every function is pure and total: any combination of
// inputs, including empty strings, produces a deterministic result without
// consulting external state.
package naming

import "fmt"

const (
	// DefaultQueueName is used when an SQS queue has no explicit name.
	DefaultQueueName = "default-queue"

	// DefaultAPIPrefix is prepended to the environment domain for the API
	// endpoint when no prefix is configured.
	DefaultAPIPrefix = "api"
)

// BucketName returns the S3 bucket name for a backend bucket.
func BucketName(project, env, postfix string) string {
	return fmt.Sprintf("%s-backend-%s-%s", project, env, postfix)
}

// ClusterName returns the ECS cluster name for an environment.
func ClusterName(project, env string) string {
	return fmt.Sprintf("%s_cluster_%s", project, env)
}

// QueueName returns the SQS queue name for an environment. An empty name
// falls back to DefaultQueueName.
func QueueName(project, env, name string) string {
	if name == "" {
		name = DefaultQueueName
	}
	return fmt.Sprintf("%s-%s-%s", project, env, name)
}

// DomainForEnv returns the domain serving an environment. Non-production
// environments get the environment name as a prefix when addPrefix is set.
// Production never gets a prefix, regardless of addPrefix.
func DomainForEnv(baseDomain, env string, isProd, addPrefix bool) string {
	if addPrefix && !isProd {
		return fmt.Sprintf("%s.%s", env, baseDomain)
	}
	return baseDomain
}

// APIDomain returns the API endpoint domain. An empty prefix falls back to
// DefaultAPIPrefix.
func APIDomain(prefix, domain string) string {
	if prefix == "" {
		prefix = DefaultAPIPrefix
	}
	return fmt.Sprintf("%s.%s", prefix, domain)
}
