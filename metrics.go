package qcircuit

import (
	"sort"
	"sync"
	"time"
)

type timeWindow struct {
	duration time.Duration
	count    int
}

/*
Metrics collects counters for compile, apply and sampling work. It is safe to
share one Metrics between several states. A nil *Metrics records nothing.
*/
type Metrics struct {
	mu               sync.RWMutex
	CompileCount     int64
	InstructionCount int64
	ApplyCount       int64
	SampleCount      int64
	TotalCompileTime time.Duration

	AverageCompileLatency time.Duration
	P95CompileLatency     time.Duration
	P99CompileLatency     time.Duration

	// Largest composite operator seen, by stored non-zeros.
	MaxOperatorNonZeros int
	DenseOperators      int64

	latencyWindows []timeWindow
	windowSize     int
}

func NewMetrics() *Metrics {
	return &Metrics{
		latencyWindows: make([]timeWindow, 0, 1000), // last 1000 compiles
		windowSize:     1000,
	}
}

func (m *Metrics) recordCompile(startTime time.Time, instructions int, op *Operator) {
	if m == nil {
		return
	}
	duration := time.Since(startTime)
	nonZeros := op.NonZeros()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.CompileCount++
	m.InstructionCount += int64(instructions)
	m.TotalCompileTime += duration

	if nonZeros > m.MaxOperatorNonZeros {
		m.MaxOperatorNonZeros = nonZeros
	}
	if !op.IsSparse() {
		m.DenseOperators++
	}

	m.updateLatencyPercentiles(duration)
}

func (m *Metrics) recordApply() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.ApplyCount++
	m.mu.Unlock()
}

func (m *Metrics) recordSample() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.SampleCount++
	m.mu.Unlock()
}

func (m *Metrics) updateLatencyPercentiles(duration time.Duration) {
	m.AverageCompileLatency = (m.AverageCompileLatency*time.Duration(m.CompileCount-1) + duration) / time.Duration(m.CompileCount)

	m.latencyWindows = append(m.latencyWindows, timeWindow{
		duration: duration,
		count:    1,
	})
	if len(m.latencyWindows) > m.windowSize {
		m.latencyWindows = m.latencyWindows[1:]
	}

	sorted := make([]time.Duration, 0, len(m.latencyWindows))
	for _, w := range m.latencyWindows {
		for i := 0; i < w.count; i++ {
			sorted = append(sorted, w.duration)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	if len(sorted) > 0 {
		p95Index := int(float64(len(sorted)) * 0.95)
		p99Index := int(float64(len(sorted)) * 0.99)

		if p95Index >= len(sorted) {
			p95Index = len(sorted) - 1
		}
		if p99Index >= len(sorted) {
			p99Index = len(sorted) - 1
		}

		m.P95CompileLatency = sorted[p95Index]
		m.P99CompileLatency = sorted[p99Index]
	}
}

// ExportMetrics returns a snapshot keyed by metric name.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"compiles":              m.CompileCount,
		"instructions":          m.InstructionCount,
		"applies":               m.ApplyCount,
		"samples":               m.SampleCount,
		"avg_compile_latency":   m.AverageCompileLatency.Microseconds(),
		"p95_compile_latency":   m.P95CompileLatency.Microseconds(),
		"p99_compile_latency":   m.P99CompileLatency.Microseconds(),
		"max_operator_nonzeros": m.MaxOperatorNonZeros,
		"dense_operators":       m.DenseOperators,
	}
}
