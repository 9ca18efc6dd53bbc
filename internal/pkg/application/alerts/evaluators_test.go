package alerts

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

func testThresholds() types.Thresholds {
	return types.Thresholds{
		MemoryPercent:         types.ThresholdPair{Warning: 80, Critical: 95},
		DiskFreePercent:       types.ThresholdPair{Warning: 20, Critical: 10},
		FileDescriptorPercent: types.ThresholdPair{Warning: 80, Critical: 95},
		SocketPercent:         types.ThresholdPair{Warning: 80, Critical: 95},
		ProcessPercent:        types.ThresholdPair{Warning: 80, Critical: 95},
		QueueMessages:         types.ThresholdPair{Warning: 10000, Critical: 50000},
		UnackedMessages:       types.ThresholdPair{Warning: 5000, Critical: 20000},
		ConsumerUtilization:   types.ThresholdPair{Warning: 50, Critical: 25},
		RunQueueLength:        types.ThresholdPair{Warning: 4, Critical: 8},
	}
}

func testServer() types.Server {
	return types.Server{ID: "srv-001", Name: "production", Tenant: "acme"}
}

func runningNode(name string) types.NodeMetrics {
	return types.NodeMetrics{Name: name, Running: true}
}

func TestMemoryAtCriticalThresholdYieldsOneCriticalAlert(t *testing.T) {
	is := is.New(t)

	node := runningNode("rabbit@node1")
	node.MemUsed = 96
	node.MemLimit = 100

	alerts := EvaluateNode(testServer(), node, testThresholds())

	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Severity, types.SeverityCritical)
	is.Equal(alerts[0].Category, types.CategoryMemory)
	is.Equal(alerts[0].Details.Current, 96.0)
	is.Equal(*alerts[0].Details.Threshold, 95.0)
}

func TestMemoryBetweenWarningAndCriticalYieldsWarning(t *testing.T) {
	is := is.New(t)

	node := runningNode("rabbit@node1")
	node.MemUsed = 85
	node.MemLimit = 100

	alerts := EvaluateNode(testServer(), node, testThresholds())

	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Severity, types.SeverityWarning)
	is.Equal(alerts[0].Category, types.CategoryMemory)
}

func TestHealthyNodeYieldsNoAlerts(t *testing.T) {
	is := is.New(t)

	node := runningNode("rabbit@node1")
	node.MemUsed = 10
	node.MemLimit = 100

	alerts := EvaluateNode(testServer(), node, testThresholds())

	is.Equal(len(alerts), 0)
}

func TestNodeDown(t *testing.T) {
	is := is.New(t)

	node := types.NodeMetrics{Name: "rabbit@node2", Running: false}

	alerts := EvaluateNode(testServer(), node, testThresholds())

	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Title, "Node Down")
	is.Equal(alerts[0].Severity, types.SeverityCritical)
	is.Equal(alerts[0].Category, types.CategoryNode)
	is.Equal(alerts[0].Source.Type, types.SourceNode)
	is.Equal(alerts[0].Source.Name, "rabbit@node2")
}

func TestNetworkPartitionListsAffectedNodes(t *testing.T) {
	is := is.New(t)

	node := runningNode("rabbit@node1")
	node.Partitions = []string{"rabbit@node2", "rabbit@node3"}

	alerts := EvaluateNode(testServer(), node, testThresholds())

	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Title, "Network Partition Detected")
	is.Equal(alerts[0].Details.Affected, []string{"rabbit@node1", "rabbit@node2", "rabbit@node3"})
}

func TestZeroTotalsGuardDivisionRules(t *testing.T) {
	is := is.New(t)

	// usage numbers without limits must not trip any percentage rule
	node := runningNode("rabbit@node1")
	node.MemUsed = 1000
	node.FDUsed = 1000
	node.SocketsUsed = 1000
	node.ProcUsed = 1000

	alerts := EvaluateNode(testServer(), node, testThresholds())

	is.Equal(len(alerts), 0)
}

func TestMemoryAlarmAndDiskAlarm(t *testing.T) {
	is := is.New(t)

	node := runningNode("rabbit@node1")
	node.MemAlarm = true
	node.DiskAlarm = true

	alerts := EvaluateNode(testServer(), node, testThresholds())

	is.Equal(len(alerts), 2)
	is.Equal(alerts[0].Title, "Memory Alarm Active")
	is.Equal(alerts[1].Title, "Disk Space Alarm")
}

func TestQueueBacklogCritical(t *testing.T) {
	is := is.New(t)

	queue := types.QueueMetrics{Name: "orders", Messages: 60000, Ready: 60000, Consumers: 2, DeliverRate: 10, PublishRate: 1}

	alerts := EvaluateQueue(testServer(), queue, testThresholds())

	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Title, "Critical Queue Backlog")
	is.Equal(alerts[0].Severity, types.SeverityCritical)
	is.Equal(alerts[0].Details.Current, 60000.0)
}

func TestQueueWithoutConsumers(t *testing.T) {
	is := is.New(t)

	queue := types.QueueMetrics{Name: "orders", Messages: 5, Ready: 5}

	alerts := EvaluateQueue(testServer(), queue, testThresholds())

	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Title, "Queue Without Consumers")
	is.Equal(alerts[0].Severity, types.SeverityWarning)
}

func TestConsumerUtilizationIsFullWhenNothingIsPublished(t *testing.T) {
	is := is.New(t)

	queue := types.QueueMetrics{Name: "orders", Consumers: 3, PublishRate: 0, DeliverRate: 0}

	alerts := EvaluateQueue(testServer(), queue, testThresholds())

	is.Equal(len(alerts), 0)
}

func TestLowConsumerUtilization(t *testing.T) {
	is := is.New(t)

	queue := types.QueueMetrics{Name: "orders", Consumers: 1, PublishRate: 100, DeliverRate: 20}

	alerts := EvaluateQueue(testServer(), queue, testThresholds())

	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Title, "Low Consumer Utilization")
	is.Equal(alerts[0].Details.Current, 20.0)
}

func TestStaleMessagesDetected(t *testing.T) {
	is := is.New(t)

	queue := types.QueueMetrics{Name: "orders", Messages: 150, Ready: 150, Consumers: 1, DeliverRate: 0, PublishRate: 0}

	alerts := EvaluateQueue(testServer(), queue, testThresholds())

	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Title, "Stale Messages Detected")
}

func TestMessageAccumulation(t *testing.T) {
	is := is.New(t)

	queue := types.QueueMetrics{Name: "orders", Messages: 2000, Ready: 2000, Consumers: 1, PublishRate: 100, DeliverRate: 30}

	alerts := EvaluateQueue(testServer(), queue, testThresholds())

	is.Equal(len(alerts), 2)
	is.Equal(alerts[0].Title, "Low Consumer Utilization")
	is.Equal(alerts[1].Title, "Message Accumulation")
}

func TestInactiveQueue(t *testing.T) {
	is := is.New(t)

	idle := time.Now().UTC().Add(-48 * time.Hour)
	queue := types.QueueMetrics{Name: "old-queue", IdleSince: &idle}

	alerts := EvaluateQueue(testServer(), queue, testThresholds())

	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Title, "Inactive Queue")
	is.Equal(alerts[0].Severity, types.SeverityInfo)
}

func TestEvaluationIsRepeatable(t *testing.T) {
	is := is.New(t)

	node := runningNode("rabbit@node1")
	node.MemUsed = 96
	node.MemLimit = 100

	first := EvaluateNode(testServer(), node, testThresholds())
	second := EvaluateNode(testServer(), node, testThresholds())

	is.Equal(len(first), len(second))
	is.Equal(first[0].Title, second[0].Title)
	is.Equal(first[0].Severity, second[0].Severity)
	is.True(first[0].ID != second[0].ID) // occurrence ids are unique per pass
}
