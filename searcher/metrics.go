package searcher

import (
	"time"
)

type SearchMetric struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int // States expanded
	Leaves    int // States scored
	Cutoffs   int // Alpha-beta cutoffs
	Pruned    int // Branches cut by the opponent-win check
	RootMoves int
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	AddPruned()
	Complete(rootMoves int) SearchMetric
}

// The search is single threaded, so plain counters suffice.
type metricsCollector struct {
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
	pruned    int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddLeaf() {
	m.leaves++
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs++
}

func (m *metricsCollector) AddPruned() {
	m.pruned++
}

func (m *metricsCollector) Complete(rootMoves int) SearchMetric {
	return SearchMetric{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Cutoffs:   m.cutoffs,
		Pruned:    m.pruned,
		RootMoves: rootMoves,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                    {}
func (m *noMetricsCollector) AddNode()                  {}
func (m *noMetricsCollector) AddLeaf()                  {}
func (m *noMetricsCollector) AddCutoff()                {}
func (m *noMetricsCollector) AddPruned()                {}
func (m *noMetricsCollector) Complete(int) SearchMetric { return SearchMetric{} }
