package testdoubles

import (
	"context"
	"maps"
	"sync"
	"time"
)

type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

type SpyCounterRecord struct {
	Metric string
	Labels map[string]string
}

type SpyValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// MetricsCollectorSpy records every call. It implements the contextual collector interface too.
type MetricsCollectorSpy struct {
	durationRecords []SpyDurationRecord
	counterRecords  []SpyCounterRecord
	valueRecords    []SpyValueRecord
	contextCalls    int
	mu              sync.Mutex
}

func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = append(s.durationRecords, SpyDurationRecord{Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counterRecords = append(s.counterRecords, SpyCounterRecord{Metric: metric, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.valueRecords = append(s.valueRecords, SpyValueRecord{Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.countContextCall()
	s.RecordDuration(metric, duration, labels)
}

func (s *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.countContextCall()
	s.IncrementCounter(metric, labels)
}

func (s *MetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.countContextCall()
	s.RecordValue(metric, value, labels)
}

func (s *MetricsCollectorSpy) countContextCall() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contextCalls++
}

// ContextCalls returns how many calls went through the context-aware methods.
func (s *MetricsCollectorSpy) ContextCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.contextCalls
}

func (s *MetricsCollectorSpy) HasDurationRecord(metric string) bool {
	return len(s.DurationRecords(metric)) > 0
}

func (s *MetricsCollectorSpy) HasCounterRecord(metric string) bool {
	return len(s.CounterRecords(metric)) > 0
}

func (s *MetricsCollectorSpy) HasValueRecord(metric string) bool {
	return len(s.ValueRecords(metric)) > 0
}

func (s *MetricsCollectorSpy) DurationRecords(metric string) []SpyDurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return filterByMetric(s.durationRecords, func(r SpyDurationRecord) string { return r.Metric }, metric)
}

func (s *MetricsCollectorSpy) CounterRecords(metric string) []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return filterByMetric(s.counterRecords, func(r SpyCounterRecord) string { return r.Metric }, metric)
}

func (s *MetricsCollectorSpy) ValueRecords(metric string) []SpyValueRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return filterByMetric(s.valueRecords, func(r SpyValueRecord) string { return r.Metric }, metric)
}

func filterByMetric[R any](records []R, metricOf func(R) string, metric string) []R {
	matched := make([]R, 0)

	for _, r := range records {
		if metricOf(r) == metric {
			matched = append(matched, r)
		}
	}

	return matched
}
