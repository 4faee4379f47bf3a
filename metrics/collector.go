// Package metrics exports disklog sink counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/disklog"
)

const (
	namespace = "disklog"
	subsystem = "sink"
)

// StatsSource is anything that can report a counter snapshot, *disklog.Sink included
type StatsSource interface {
	Stats() disklog.Stats
}

// Collector reads a fresh snapshot on every scrape, so counters never lag the sink
type Collector struct {
	source StatsSource

	submitted     *prometheus.Desc
	written       *prometheus.Desc
	dropped       *prometheus.Desc
	writeFailures *prometheus.Desc
	rotations     *prometheus.Desc
	bytesWritten  *prometheus.Desc
	queueLength   *prometheus.Desc
	currentSize   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector. constLabels distinguish several sinks in one registry.
func NewCollector(source StatsSource, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, labels, constLabels)
	}

	return &Collector{
		source:        source,
		submitted:     desc("records_submitted_total", "Records accepted into the queue"),
		written:       desc("records_written_total", "Records appended to a log file"),
		dropped:       desc("records_dropped_total", "Records rejected by a full or closed queue"),
		writeFailures: desc("write_failures_total", "Records lost to open, write or flush errors"),
		rotations:     desc("rotations_total", "Files closed after reaching the size threshold"),
		bytesWritten:  desc("bytes_written_total", "Content bytes appended across all files"),
		queueLength:   desc("queue_length", "Records waiting for the worker"),
		currentSize:   desc("current_file_size", "Rotation counter of the open file", "file"),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.submitted
	ch <- c.written
	ch <- c.dropped
	ch <- c.writeFailures
	ch <- c.rotations
	ch <- c.bytesWritten
	ch <- c.queueLength
	ch <- c.currentSize
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(s.Submitted))
	ch <- prometheus.MustNewConstMetric(c.written, prometheus.CounterValue, float64(s.Written))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(s.Dropped))
	ch <- prometheus.MustNewConstMetric(c.writeFailures, prometheus.CounterValue, float64(s.WriteFailures))
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(s.Rotations))
	ch <- prometheus.MustNewConstMetric(c.bytesWritten, prometheus.CounterValue, float64(s.BytesWritten))
	ch <- prometheus.MustNewConstMetric(c.queueLength, prometheus.GaugeValue, float64(s.QueueLength))
	// The open file is unknown between rotation and the next write
	if s.CurrentFile != "" {
		ch <- prometheus.MustNewConstMetric(c.currentSize, prometheus.GaugeValue, float64(s.CurrentSize), s.CurrentFile)
	}
}
