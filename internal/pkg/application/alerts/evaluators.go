package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

// EvaluateNode maps one node snapshot and a threshold set to alert
// candidates. Pure: no I/O, no state, deterministic apart from the
// generated occurrence id and timestamp.
func EvaluateNode(server types.Server, node types.NodeMetrics, th types.Thresholds) []types.Alert {
	alerts := make([]types.Alert, 0)

	source := types.AlertSource{Type: types.SourceNode, Name: node.Name}

	add := func(severity types.Severity, category types.Category, title, description string, details types.AlertDetails) {
		alerts = append(alerts, newAlert(server, severity, category, title, description, details, source))
	}

	if !node.Running {
		add(types.SeverityCritical, types.CategoryNode,
			"Node Down",
			fmt.Sprintf("Node %s is not running", node.Name),
			types.AlertDetails{
				Recommendation: "Check the node's process and host, then restart the node",
			})
	}

	if node.MemAlarm {
		add(types.SeverityCritical, types.CategoryMemory,
			"Memory Alarm Active",
			fmt.Sprintf("Node %s has triggered its memory alarm and is blocking publishers", node.Name),
			types.AlertDetails{
				Recommendation: "Reduce memory pressure or raise the configured memory high watermark",
			})
	}

	if node.DiskAlarm {
		add(types.SeverityCritical, types.CategoryDisk,
			"Disk Space Alarm",
			fmt.Sprintf("Node %s has triggered its disk free space alarm", node.Name),
			types.AlertDetails{
				Recommendation: "Free up disk space on the node or lower the disk free limit",
			})
	}

	if len(node.Partitions) > 0 {
		affected := append([]string{node.Name}, node.Partitions...)
		add(types.SeverityCritical, types.CategoryNode,
			"Network Partition Detected",
			fmt.Sprintf("Node %s is partitioned from %d other node(s)", node.Name, len(node.Partitions)),
			types.AlertDetails{
				Current:        float64(len(node.Partitions)),
				Affected:       affected,
				Recommendation: "Resolve the partition and restart the affected nodes per the configured partition handling strategy",
			})
	}

	if node.MemLimit > 0 {
		memPct := float64(node.MemUsed) / float64(node.MemLimit) * 100

		if memPct >= th.MemoryPercent.Critical {
			add(types.SeverityCritical, types.CategoryMemory,
				"Critical Memory Usage",
				fmt.Sprintf("Node %s memory usage is at %.1f%% of its limit", node.Name, memPct),
				types.AlertDetails{
					Current:        memPct,
					Threshold:      ptr(th.MemoryPercent.Critical),
					Recommendation: "Reduce queue depth or add memory before the memory alarm trips",
				})
		} else if memPct >= th.MemoryPercent.Warning {
			add(types.SeverityWarning, types.CategoryMemory,
				"High Memory Usage",
				fmt.Sprintf("Node %s memory usage is at %.1f%% of its limit", node.Name, memPct),
				types.AlertDetails{
					Current:   memPct,
					Threshold: ptr(th.MemoryPercent.Warning),
				})
		}
	}

	if node.DiskFreeLimit > 0 && node.DiskFree > 0 {
		diskPct := float64(node.DiskFree) / (float64(node.DiskFree) + float64(node.DiskFreeLimit-node.DiskFree)) * 100

		if diskPct <= th.DiskFreePercent.Critical {
			add(types.SeverityCritical, types.CategoryDisk,
				"Critical Disk Space",
				fmt.Sprintf("Node %s has %.1f%% disk space remaining", node.Name, diskPct),
				types.AlertDetails{
					Current:        diskPct,
					Threshold:      ptr(th.DiskFreePercent.Critical),
					Recommendation: "Free up disk space immediately to avoid the disk alarm blocking publishers",
				})
		} else if diskPct <= th.DiskFreePercent.Warning {
			add(types.SeverityWarning, types.CategoryDisk,
				"Low Disk Space",
				fmt.Sprintf("Node %s has %.1f%% disk space remaining", node.Name, diskPct),
				types.AlertDetails{
					Current:   diskPct,
					Threshold: ptr(th.DiskFreePercent.Warning),
				})
		}
	}

	if node.FDTotal > 0 {
		fdPct := float64(node.FDUsed) / float64(node.FDTotal) * 100

		if fdPct >= th.FileDescriptorPercent.Critical {
			add(types.SeverityCritical, types.CategoryConnection,
				"Critical File Descriptor Usage",
				fmt.Sprintf("Node %s is using %.1f%% of its file descriptors", node.Name, fdPct),
				types.AlertDetails{
					Current:        fdPct,
					Threshold:      ptr(th.FileDescriptorPercent.Critical),
					Recommendation: "Raise the file descriptor limit or reduce the number of connections",
				})
		} else if fdPct >= th.FileDescriptorPercent.Warning {
			add(types.SeverityWarning, types.CategoryConnection,
				"High File Descriptor Usage",
				fmt.Sprintf("Node %s is using %.1f%% of its file descriptors", node.Name, fdPct),
				types.AlertDetails{
					Current:   fdPct,
					Threshold: ptr(th.FileDescriptorPercent.Warning),
				})
		}
	}

	if node.SocketsTotal > 0 {
		sockPct := float64(node.SocketsUsed) / float64(node.SocketsTotal) * 100

		if sockPct >= th.SocketPercent.Critical {
			add(types.SeverityCritical, types.CategoryConnection,
				"Critical Socket Usage",
				fmt.Sprintf("Node %s is using %.1f%% of its sockets", node.Name, sockPct),
				types.AlertDetails{
					Current:        sockPct,
					Threshold:      ptr(th.SocketPercent.Critical),
					Recommendation: "Raise the socket limit or reduce the number of client connections",
				})
		} else if sockPct >= th.SocketPercent.Warning {
			add(types.SeverityWarning, types.CategoryConnection,
				"High Socket Usage",
				fmt.Sprintf("Node %s is using %.1f%% of its sockets", node.Name, sockPct),
				types.AlertDetails{
					Current:   sockPct,
					Threshold: ptr(th.SocketPercent.Warning),
				})
		}
	}

	if node.ProcTotal > 0 {
		procPct := float64(node.ProcUsed) / float64(node.ProcTotal) * 100

		if procPct >= th.ProcessPercent.Critical {
			add(types.SeverityCritical, types.CategoryPerformance,
				"Critical Erlang Process Usage",
				fmt.Sprintf("Node %s is using %.1f%% of its Erlang processes", node.Name, procPct),
				types.AlertDetails{
					Current:        procPct,
					Threshold:      ptr(th.ProcessPercent.Critical),
					Recommendation: "Investigate process leaks or raise the process limit",
				})
		} else if procPct >= th.ProcessPercent.Warning {
			add(types.SeverityWarning, types.CategoryPerformance,
				"High Erlang Process Usage",
				fmt.Sprintf("Node %s is using %.1f%% of its Erlang processes", node.Name, procPct),
				types.AlertDetails{
					Current:   procPct,
					Threshold: ptr(th.ProcessPercent.Warning),
				})
		}
	}

	if node.RunQueue > 0 {
		runQueue := float64(node.RunQueue)

		if runQueue >= th.RunQueueLength.Critical {
			add(types.SeverityCritical, types.CategoryPerformance,
				"Critical Scheduler Run Queue",
				fmt.Sprintf("Node %s has a scheduler run queue of %d", node.Name, node.RunQueue),
				types.AlertDetails{
					Current:        runQueue,
					Threshold:      ptr(th.RunQueueLength.Critical),
					Recommendation: "The node is CPU saturated, add cores or shed load",
				})
		} else if runQueue >= th.RunQueueLength.Warning {
			add(types.SeverityWarning, types.CategoryPerformance,
				"High Scheduler Run Queue",
				fmt.Sprintf("Node %s has a scheduler run queue of %d", node.Name, node.RunQueue),
				types.AlertDetails{
					Current:   runQueue,
					Threshold: ptr(th.RunQueueLength.Warning),
				})
		}
	}

	return alerts
}

// EvaluateQueue maps one queue snapshot and a threshold set to alert
// candidates. Same purity contract as EvaluateNode.
func EvaluateQueue(server types.Server, queue types.QueueMetrics, th types.Thresholds) []types.Alert {
	alerts := make([]types.Alert, 0)

	source := types.AlertSource{Type: types.SourceQueue, Name: queue.Name}

	add := func(severity types.Severity, category types.Category, title, description string, details types.AlertDetails) {
		alerts = append(alerts, newAlert(server, severity, category, title, description, details, source))
	}

	messages := float64(queue.Messages)

	if messages >= th.QueueMessages.Critical {
		add(types.SeverityCritical, types.CategoryQueue,
			"Critical Queue Backlog",
			fmt.Sprintf("Queue %s has %d messages", queue.Name, queue.Messages),
			types.AlertDetails{
				Current:        messages,
				Threshold:      ptr(th.QueueMessages.Critical),
				Recommendation: "Add consumers or purge the queue to work off the backlog",
			})
	} else if messages >= th.QueueMessages.Warning {
		add(types.SeverityWarning, types.CategoryQueue,
			"High Queue Backlog",
			fmt.Sprintf("Queue %s has %d messages", queue.Name, queue.Messages),
			types.AlertDetails{
				Current:   messages,
				Threshold: ptr(th.QueueMessages.Warning),
			})
	}

	if queue.Messages > 0 && queue.Consumers == 0 {
		add(types.SeverityWarning, types.CategoryQueue,
			"Queue Without Consumers",
			fmt.Sprintf("Queue %s holds %d messages but has no consumers", queue.Name, queue.Messages),
			types.AlertDetails{
				Current:        messages,
				Recommendation: "Verify that the consuming application is running and connected",
			})
	}

	unacked := float64(queue.Unacked)

	if unacked >= th.UnackedMessages.Critical {
		add(types.SeverityCritical, types.CategoryQueue,
			"Critical Unacknowledged Messages",
			fmt.Sprintf("Queue %s has %d unacknowledged messages", queue.Name, queue.Unacked),
			types.AlertDetails{
				Current:        unacked,
				Threshold:      ptr(th.UnackedMessages.Critical),
				Recommendation: "Consumers are not acking, check for stuck consumers or lower the prefetch count",
			})
	} else if unacked >= th.UnackedMessages.Warning {
		add(types.SeverityWarning, types.CategoryQueue,
			"High Unacknowledged Messages",
			fmt.Sprintf("Queue %s has %d unacknowledged messages", queue.Name, queue.Unacked),
			types.AlertDetails{
				Current:   unacked,
				Threshold: ptr(th.UnackedMessages.Warning),
			})
	}

	if queue.Consumers > 0 {
		utilization := 100.0
		if queue.PublishRate > 0 {
			utilization = queue.DeliverRate / queue.PublishRate * 100
		}

		if utilization < th.ConsumerUtilization.Warning {
			add(types.SeverityWarning, types.CategoryPerformance,
				"Low Consumer Utilization",
				fmt.Sprintf("Queue %s consumers keep up with only %.1f%% of the publish rate", queue.Name, utilization),
				types.AlertDetails{
					Current:        utilization,
					Threshold:      ptr(th.ConsumerUtilization.Warning),
					Recommendation: "Add consumers or speed up message processing",
				})
		}
	}

	if queue.Ready > 100 && queue.Consumers > 0 && queue.DeliverRate == 0 {
		add(types.SeverityWarning, types.CategoryQueue,
			"Stale Messages Detected",
			fmt.Sprintf("Queue %s has %d ready messages and consumers, but nothing is being delivered", queue.Name, queue.Ready),
			types.AlertDetails{
				Current:        float64(queue.Ready),
				Recommendation: "Consumers appear stuck, check their connections and prefetch settings",
			})
	}

	if queue.PublishRate > 0 && queue.DeliverRate > 0 {
		accumulation := (queue.PublishRate - queue.DeliverRate) / queue.PublishRate

		if accumulation > 0.5 && queue.Messages > 1000 {
			add(types.SeverityWarning, types.CategoryPerformance,
				"Message Accumulation",
				fmt.Sprintf("Queue %s is accumulating messages, publish rate %.1f/s vs deliver rate %.1f/s", queue.Name, queue.PublishRate, queue.DeliverRate),
				types.AlertDetails{
					Current:        accumulation * 100,
					Recommendation: "Consumers are falling behind, scale them out before the backlog grows",
				})
		}
	}

	if queue.Messages == 0 && queue.Consumers == 0 && queue.IdleSince != nil {
		idleHours := time.Since(*queue.IdleSince).Hours()

		if idleHours > 24 {
			add(types.SeverityInfo, types.CategoryQueue,
				"Inactive Queue",
				fmt.Sprintf("Queue %s has been idle for %.0f hours", queue.Name, idleHours),
				types.AlertDetails{
					Current:        idleHours,
					Recommendation: "Delete the queue if it is no longer in use",
				})
		}
	}

	return alerts
}

func newAlert(server types.Server, severity types.Severity, category types.Category, title, description string, details types.AlertDetails, source types.AlertSource) types.Alert {
	return types.Alert{
		ID:          uuid.NewString(),
		ServerID:    server.ID,
		ServerName:  server.Name,
		Severity:    severity,
		Category:    category,
		Title:       title,
		Description: description,
		Details:     details,
		ObservedAt:  time.Now().UTC(),
		Resolved:    false,
		Source:      source,
	}
}

func ptr(f float64) *float64 {
	return &f
}
