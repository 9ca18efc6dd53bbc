package types

import (
	"time"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Rank orders severities so that critical > warning > info in every
// sort and notify-eligibility comparison.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

func (s Severity) IsValid() bool {
	return s.Rank() > 0
}

type Category string

const (
	CategoryMemory      Category = "memory"
	CategoryDisk        Category = "disk"
	CategoryConnection  Category = "connection"
	CategoryQueue       Category = "queue"
	CategoryNode        Category = "node"
	CategoryPerformance Category = "performance"
)

type SourceType string

const (
	SourceNode    SourceType = "node"
	SourceQueue   SourceType = "queue"
	SourceCluster SourceType = "cluster"
)

type AlertSource struct {
	Type SourceType `json:"type"`
	Name string     `json:"name"`
}

type AlertDetails struct {
	Current        float64  `json:"current"`
	Threshold      *float64 `json:"threshold,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
	Affected       []string `json:"affected,omitempty"`
}

// Alert is a candidate produced by an evaluation pass. It is never
// persisted as-is; the seen alert row carries the persisted identity.
type Alert struct {
	ID          string       `json:"id"`
	ServerID    string       `json:"serverID"`
	ServerName  string       `json:"serverName"`
	Severity    Severity     `json:"severity"`
	Category    Category     `json:"category"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Details     AlertDetails `json:"details"`
	ObservedAt  time.Time    `json:"observedAt"`
	Resolved    bool         `json:"resolved"`
	Source      AlertSource  `json:"source"`
}

type AlertSummary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

type SeenAlert struct {
	Fingerprint string     `json:"fingerprint"`
	Tenant      string     `json:"tenant"`
	ServerID    string     `json:"serverID"`
	Severity    Severity   `json:"severity"`
	Category    Category   `json:"category"`
	SourceType  SourceType `json:"sourceType"`
	SourceName  string     `json:"sourceName"`
	FirstSeenAt time.Time  `json:"firstSeenAt"`
	LastSeenAt  time.Time  `json:"lastSeenAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	NotifiedAt  *time.Time `json:"notifiedAt,omitempty"`
}

type NodeMetrics struct {
	Name          string   `json:"name"`
	Running       bool     `json:"running"`
	MemUsed       int64    `json:"mem_used"`
	MemLimit      int64    `json:"mem_limit"`
	MemAlarm      bool     `json:"mem_alarm"`
	DiskFree      int64    `json:"disk_free"`
	DiskFreeLimit int64    `json:"disk_free_limit"`
	DiskAlarm     bool     `json:"disk_free_alarm"`
	FDUsed        int64    `json:"fd_used"`
	FDTotal       int64    `json:"fd_total"`
	SocketsUsed   int64    `json:"sockets_used"`
	SocketsTotal  int64    `json:"sockets_total"`
	ProcUsed      int64    `json:"proc_used"`
	ProcTotal     int64    `json:"proc_total"`
	RunQueue      int64    `json:"run_queue"`
	Partitions    []string `json:"partitions"`
}

type QueueMetrics struct {
	Name        string     `json:"name"`
	Vhost       string     `json:"vhost"`
	Messages    int64      `json:"messages"`
	Ready       int64      `json:"messages_ready"`
	Unacked     int64      `json:"messages_unacknowledged"`
	Consumers   int64      `json:"consumers"`
	PublishRate float64    `json:"publishRate"`
	DeliverRate float64    `json:"deliverRate"`
	IdleSince   *time.Time `json:"idleSince,omitempty"`
}

type ThresholdPair struct {
	Warning  float64 `json:"warning" yaml:"warning"`
	Critical float64 `json:"critical" yaml:"critical"`
}

type Thresholds struct {
	MemoryPercent         ThresholdPair `json:"memoryPercent" yaml:"memoryPercent"`
	DiskFreePercent       ThresholdPair `json:"diskFreePercent" yaml:"diskFreePercent"`
	FileDescriptorPercent ThresholdPair `json:"fileDescriptorPercent" yaml:"fileDescriptorPercent"`
	SocketPercent         ThresholdPair `json:"socketPercent" yaml:"socketPercent"`
	ProcessPercent        ThresholdPair `json:"processPercent" yaml:"processPercent"`
	QueueMessages         ThresholdPair `json:"queueMessages" yaml:"queueMessages"`
	UnackedMessages       ThresholdPair `json:"unackedMessages" yaml:"unackedMessages"`
	ConsumerUtilization   ThresholdPair `json:"consumerUtilization" yaml:"consumerUtilization"`
	ConnectionCount       ThresholdPair `json:"connectionCount" yaml:"connectionCount"`
	RunQueueLength        ThresholdPair `json:"runQueueLength" yaml:"runQueueLength"`
}

// ThresholdsPatch carries a partial threshold update. Categories left
// nil remain untouched by an update.
type ThresholdsPatch struct {
	MemoryPercent         *ThresholdPair `json:"memoryPercent,omitempty"`
	DiskFreePercent       *ThresholdPair `json:"diskFreePercent,omitempty"`
	FileDescriptorPercent *ThresholdPair `json:"fileDescriptorPercent,omitempty"`
	SocketPercent         *ThresholdPair `json:"socketPercent,omitempty"`
	ProcessPercent        *ThresholdPair `json:"processPercent,omitempty"`
	QueueMessages         *ThresholdPair `json:"queueMessages,omitempty"`
	UnackedMessages       *ThresholdPair `json:"unackedMessages,omitempty"`
	ConsumerUtilization   *ThresholdPair `json:"consumerUtilization,omitempty"`
	ConnectionCount       *ThresholdPair `json:"connectionCount,omitempty"`
	RunQueueLength        *ThresholdPair `json:"runQueueLength,omitempty"`
}

type UpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthStatus string

const (
	HealthStatusHealthy  HealthStatus = "healthy"
	HealthStatusDegraded HealthStatus = "degraded"
	HealthStatusCritical HealthStatus = "critical"
)

func (h HealthStatus) Rank() int {
	switch h {
	case HealthStatusCritical:
		return 3
	case HealthStatusDegraded:
		return 2
	case HealthStatusHealthy:
		return 1
	}
	return 0
}

type HealthCheckItem struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message"`
}

type HealthCheck struct {
	Overall      HealthStatus    `json:"overall"`
	Connectivity HealthCheckItem `json:"connectivity"`
	Nodes        HealthCheckItem `json:"nodes"`
	Memory       HealthCheckItem `json:"memory"`
	Disk         HealthCheckItem `json:"disk"`
	Queues       HealthCheckItem `json:"queues"`
	Consumers    HealthCheckItem `json:"consumers"`
	CheckedAt    time.Time       `json:"checkedAt"`
}

type WebhookConfig struct {
	ID       string `json:"id"`
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret,omitempty"`
	Enabled  bool   `json:"enabled"`
}

type SlackConfig struct {
	ID         string `json:"id"`
	WebhookURL string `json:"webhookURL"`
	Channel    string `json:"channel,omitempty"`
	Enabled    bool   `json:"enabled"`
}

type Tenant struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	PlanTier               string          `json:"planTier"`
	NotificationsEnabled   bool            `json:"notificationsEnabled"`
	ContactEmail           string          `json:"contactEmail,omitempty"`
	NotificationSeverities []Severity      `json:"notificationSeverities,omitempty"`
	Webhooks               []WebhookConfig `json:"webhooks,omitempty"`
	SlackIntegrations      []SlackConfig   `json:"slackIntegrations,omitempty"`
}

// Server is a registered RabbitMQ cluster, owned by a tenant. URL points
// at the cluster's management API.
type Server struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Username string `json:"-"`
	Password string `json:"-"`
	Tenant   string `json:"tenant"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
