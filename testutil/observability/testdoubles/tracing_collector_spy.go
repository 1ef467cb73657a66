package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

// SpySpan is a finished or still open span. Attrs holds start and finish attributes.
type SpySpan struct {
	Name     string
	Status   string
	Attrs    map[string]string
	Finished bool
}

type spySpanContext struct {
	spy   *TracingCollectorSpy
	index int
}

func (c spySpanContext) SetStatus(status string) {
	c.spy.mu.Lock()
	defer c.spy.mu.Unlock()

	c.spy.spans[c.index].Status = status
}

func (c spySpanContext) AddAttribute(key, value string) {
	c.spy.mu.Lock()
	defer c.spy.mu.Unlock()

	c.spy.spans[c.index].Attrs[key] = value
}

// TracingCollectorSpy records spans in start order.
type TracingCollectorSpy struct {
	spans []SpySpan
	mu    sync.Mutex
}

func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, eventstore.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := SpySpan{Name: name, Attrs: maps.Clone(attrs)}
	if span.Attrs == nil {
		span.Attrs = make(map[string]string)
	}

	s.spans = append(s.spans, span)

	return ctx, spySpanContext{spy: s, index: len(s.spans) - 1}
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	sc, ok := spanCtx.(spySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	span := &s.spans[sc.index]
	span.Status = status
	span.Finished = true
	maps.Copy(span.Attrs, attrs)
}

// SpansNamed returns copies of all spans with name.
func (s *TracingCollectorSpy) SpansNamed(name string) []SpySpan {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]SpySpan, 0)

	for _, span := range s.spans {
		if span.Name == name {
			span.Attrs = maps.Clone(span.Attrs)
			matched = append(matched, span)
		}
	}

	return matched
}
