package searcher

import (
	"sync/atomic"
	"time"

	"inarow/dictionary"
)

type SearchMetrics struct {
	StartTime  time.Time     `json:"startTime"`
	Duration   time.Duration `json:"duration"`
	Hits       int64         `json:"hits"`       // Configurations answered by the cache
	Misses     int64         `json:"misses"`     // Configurations evaluated and then cached
	Collisions int64         `json:"collisions"` // Inserts into a non-empty bucket
	Records    int           `json:"records"`
	Buckets    int           `json:"buckets"`
}

// HitRate returns the share of cache lookups that were hits.
func (m SearchMetrics) HitRate() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

type MetricsCollector interface {
	Start()
	AddHit()
	AddMiss()
	AddCollision()
	Complete(table *dictionary.Dictionary) SearchMetrics
}

type metricsCollector struct {
	startTime  time.Time
	hits       atomic.Int64
	misses     atomic.Int64
	collisions atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.hits.Store(0)
	m.misses.Store(0)
	m.collisions.Store(0)
}

func (m *metricsCollector) AddHit() {
	m.hits.Add(1)
}

func (m *metricsCollector) AddMiss() {
	m.misses.Add(1)
}

func (m *metricsCollector) AddCollision() {
	m.collisions.Add(1)
}

func (m *metricsCollector) Complete(table *dictionary.Dictionary) SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Hits:       m.hits.Load(),
		Misses:     m.misses.Load(),
		Collisions: m.collisions.Load(),
		Records:    table.NumRecords(),
		Buckets:    table.Capacity(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()        {}
func (m *noMetricsCollector) AddHit()       {}
func (m *noMetricsCollector) AddMiss()      {}
func (m *noMetricsCollector) AddCollision() {}
func (m *noMetricsCollector) Complete(*dictionary.Dictionary) SearchMetrics {
	return SearchMetrics{}
}
