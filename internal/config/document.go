// Package config owns the canonical deployment document: its shape,
// validation, and controlled mutation. A Document is an immutable snapshot;
// every operation returns a new value and never touches its input.
package config

import (
	"github.com/madappgang/stackplan/internal/naming"
)

// Document is the canonical configuration describing a whole deployment.
// It is created by Load, mutated only through ApplyPartialUpdate, and
// serialized back out with Serialize.
type Document struct {
	Project string `yaml:"project"`
	Env     string `yaml:"env"`
	IsProd  bool   `yaml:"is_prod"`
	Region  string `yaml:"region"`

	Workload Workload `yaml:"workload"`
	Domain   Domain   `yaml:"domain"`
	Postgres Postgres `yaml:"postgres"`
	Ses      Ses      `yaml:"ses"`
	Sqs      Sqs      `yaml:"sqs"`

	ECRAccountID     string `yaml:"ecr_account_id,omitempty"`
	ECRAccountRegion string `yaml:"ecr_account_region,omitempty"`

	Services            []Service            `yaml:"services,omitempty"`
	ScheduledTasks      []ScheduledTask      `yaml:"scheduled_tasks,omitempty"`
	EventProcessorTasks []EventProcessorTask `yaml:"event_processor_tasks,omitempty"`
	Buckets             []Bucket             `yaml:"buckets,omitempty"`
	AmplifyApps         []AmplifyApp         `yaml:"amplify_apps,omitempty"`
}

// Workload holds the settings of the main backend workload.
type Workload struct {
	BackendHealthEndpoint      string            `yaml:"backend_health_endpoint,omitempty"`
	BackendExternalDockerImage string            `yaml:"backend_external_docker_image,omitempty"`
	BackendContainerCommand    string            `yaml:"backend_container_command,omitempty"`
	BackendImagePort           int               `yaml:"backend_image_port,omitempty"`
	BucketPostfix              string            `yaml:"bucket_postfix,omitempty"`
	BucketPublic               bool              `yaml:"bucket_public,omitempty"`
	XrayEnabled                bool              `yaml:"xray_enabled,omitempty"`
	BackendEnvVariables        map[string]string `yaml:"backend_env_variables,omitempty"`
}

// Domain configures the Route53 zone and the domains derived from it.
type Domain struct {
	Enabled          bool   `yaml:"enabled"`
	CreateDomainZone bool   `yaml:"create_domain_zone,omitempty"`
	DomainName       string `yaml:"domain_name,omitempty"`
	APIDomainPrefix  string `yaml:"api_domain_prefix,omitempty"`
	AddDomainPrefix  bool   `yaml:"add_domain_prefix,omitempty"`
	ZoneID           string `yaml:"zone_id,omitempty"`
}

// Postgres configures the Aurora Serverless v2 database.
type Postgres struct {
	Enabled       bool   `yaml:"enabled"`
	Dbname        string `yaml:"dbname,omitempty"`
	Username      string `yaml:"username,omitempty"`
	PublicAccess  bool   `yaml:"public_access,omitempty"`
	EngineVersion string `yaml:"engine_version,omitempty"`
	MinCapacity   int    `yaml:"min_capacity,omitempty"`
	MaxCapacity   int    `yaml:"max_capacity,omitempty"`
}

// Ses configures Simple Email Service for the environment.
type Ses struct {
	Enabled    bool     `yaml:"enabled"`
	DomainName string   `yaml:"domain_name,omitempty"`
	TestEmails []string `yaml:"test_emails,omitempty"`
}

// Sqs configures the environment queue.
type Sqs struct {
	Enabled bool   `yaml:"enabled"`
	Name    string `yaml:"name,omitempty"`
}

// Service is an additional ECS service next to the main backend.
type Service struct {
	Name             string            `yaml:"name"`
	DockerImage      string            `yaml:"docker_image,omitempty"`
	ContainerCommand string            `yaml:"container_command,omitempty"`
	ContainerPort    int               `yaml:"container_port,omitempty"`
	CPU              int               `yaml:"cpu,omitempty"`
	Memory           int               `yaml:"memory,omitempty"`
	DesiredCount     int               `yaml:"desired_count,omitempty"`
	XrayEnabled      bool              `yaml:"xray_enabled,omitempty"`
	RemoteAccess     bool              `yaml:"remote_access,omitempty"`
	SQSAccess        bool              `yaml:"sqs_access,omitempty"`
	EnvVariables     map[string]string `yaml:"env_variables,omitempty"`
}

// ECRConfig points a task at an ECR registry in another account.
type ECRConfig struct {
	AccountID string `yaml:"account_id,omitempty"`
	Region    string `yaml:"region,omitempty"`
}

// ScheduledTask is an ECS task fired on a cron or rate schedule.
type ScheduledTask struct {
	Name              string     `yaml:"name"`
	Schedule          string     `yaml:"schedule"`
	DockerImage       string     `yaml:"docker_image,omitempty"`
	ContainerCommand  string     `yaml:"container_command,omitempty"`
	AllowPublicAccess bool       `yaml:"allow_public_access,omitempty"`
	SQSAccess         bool       `yaml:"sqs_access,omitempty"`
	ECRConfig         *ECRConfig `yaml:"ecr_config,omitempty"`
}

// EventProcessorTask is an ECS task fired by EventBridge rules.
type EventProcessorTask struct {
	Name              string     `yaml:"name"`
	RuleName          string     `yaml:"rule_name,omitempty"`
	DetailTypes       []string   `yaml:"detail_types,omitempty"`
	Sources           []string   `yaml:"sources,omitempty"`
	DockerImage       string     `yaml:"docker_image,omitempty"`
	ContainerCommand  string     `yaml:"container_command,omitempty"`
	AllowPublicAccess bool       `yaml:"allow_public_access,omitempty"`
	SQSAccess         bool       `yaml:"sqs_access,omitempty"`
	ECRConfig         *ECRConfig `yaml:"ecr_config,omitempty"`
}

// Bucket is an S3 bucket owned by the environment.
type Bucket struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Public      bool   `yaml:"public,omitempty"`
}

// AmplifyApp is a frontend app hosted on AWS Amplify.
type AmplifyApp struct {
	Name          string          `yaml:"name"`
	RepositoryURL string          `yaml:"repository_url,omitempty"`
	Branches      []AmplifyBranch `yaml:"branches,omitempty"`
}

// AmplifyBranch is a deployed branch of an Amplify app.
type AmplifyBranch struct {
	Name  string `yaml:"name"`
	Stage string `yaml:"stage,omitempty"`
}

// ClusterName returns the ECS cluster name derived from project and env.
// Display-only; never stored in the document.
func (d *Document) ClusterName() string {
	return naming.ClusterName(d.Project, d.Env)
}

// BackendBucketName returns the name of the main backend bucket.
func (d *Document) BackendBucketName() string {
	return naming.BucketName(d.Project, d.Env, d.Workload.BucketPostfix)
}

// BucketFullName returns the fully qualified name for a bucket entry.
func (d *Document) BucketFullName(b Bucket) string {
	return naming.BucketName(d.Project, d.Env, b.Name)
}

// QueueName returns the SQS queue name, falling back to the default queue
// when the document does not name one.
func (d *Document) QueueName() string {
	return naming.QueueName(d.Project, d.Env, d.Sqs.Name)
}

// EnvDomain returns the domain serving this environment.
func (d *Document) EnvDomain() string {
	return naming.DomainForEnv(d.Domain.DomainName, d.Env, d.IsProd, d.Domain.AddDomainPrefix)
}

// APIDomain returns the API endpoint domain for this environment.
func (d *Document) APIDomain() string {
	return naming.APIDomain(d.Domain.APIDomainPrefix, d.EnvDomain())
}
