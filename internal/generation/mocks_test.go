package generation

import (
	"context"
	"sync"
)

// scriptedProvider replays a fixed sequence of responses. Once the script is
// exhausted it repeats the final step, so concurrent callers always get an
// answer.
type scriptedProvider struct {
	mu        sync.Mutex
	name      string
	available bool
	script    []scriptStep
	next      int
	calls     []Request
}

type scriptStep struct {
	text string
	err  error
}

func newScriptedProvider(steps ...scriptStep) *scriptedProvider {
	return &scriptedProvider{name: "scripted", available: true, script: steps}
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Available() bool { return p.available }

func (p *scriptedProvider) Generate(_ context.Context, req Request) (Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, req)
	if len(p.script) == 0 {
		return Response{}, context.DeadlineExceeded
	}
	step := p.script[p.next]
	if p.next < len(p.script)-1 {
		p.next++
	}
	if step.err != nil {
		return Response{}, step.err
	}
	return Response{Text: step.text, Model: p.name}, nil
}

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

// memoryAudit collects audit records in memory.
type memoryAudit struct {
	mu      sync.Mutex
	records []AuditRecord
	err     error
}

func (a *memoryAudit) RecordGeneration(rec AuditRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.records = append(a.records, rec)
	return nil
}

func (a *memoryAudit) all() []AuditRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]AuditRecord, len(a.records))
	copy(out, a.records)
	return out
}
