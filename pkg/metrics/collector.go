package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/ent/job"
	"github.com/conductor-ci/conductor/ent/subtask"
	"github.com/conductor-ci/conductor/ent/task"
)

// scrapeTimeout bounds the database queries of one collection pass.
const scrapeTimeout = 5 * time.Second

// StateCollector reports current task, subtask, and queue populations
// straight from storage on every scrape.
type StateCollector struct {
	client *ent.Client

	tasksDesc    *prometheus.Desc
	subtasksDesc *prometheus.Desc
	jobsDesc     *prometheus.Desc
}

// NewStateCollector builds a collector over the given storage client.
func NewStateCollector(client *ent.Client) *StateCollector {
	return &StateCollector{
		client: client,
		tasksDesc: prometheus.NewDesc("conductor_tasks",
			"Tasks by status.", []string{"status"}, nil),
		subtasksDesc: prometheus.NewDesc("conductor_subtasks",
			"Subtasks by status.", []string{"status"}, nil),
		jobsDesc: prometheus.NewDesc("conductor_queue_jobs",
			"Queue jobs by queue and status.", []string{"queue", "status"}, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *StateCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.tasksDesc
	ch <- c.subtasksDesc
	ch <- c.jobsDesc
}

// Collect implements prometheus.Collector. Query errors drop the
// affected family from the scrape rather than failing it.
func (c *StateCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	var taskRows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := c.client.Task.Query().
		GroupBy(task.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &taskRows)
	if err == nil {
		for _, row := range taskRows {
			ch <- prometheus.MustNewConstMetric(c.tasksDesc,
				prometheus.GaugeValue, float64(row.Count), row.Status)
		}
	}

	var subtaskRows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = c.client.Subtask.Query().
		GroupBy(subtask.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &subtaskRows)
	if err == nil {
		for _, row := range subtaskRows {
			ch <- prometheus.MustNewConstMetric(c.subtasksDesc,
				prometheus.GaugeValue, float64(row.Count), row.Status)
		}
	}

	var jobRows []struct {
		Queue  string `json:"queue"`
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = c.client.Job.Query().
		GroupBy(job.FieldQueue, job.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &jobRows)
	if err == nil {
		for _, row := range jobRows {
			ch <- prometheus.MustNewConstMetric(c.jobsDesc,
				prometheus.GaugeValue, float64(row.Count), row.Queue, row.Status)
		}
	}
}
