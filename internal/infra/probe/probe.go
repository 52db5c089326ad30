// Package probe periodically checks that the upstream hosts are reachable.
// Results feed the readiness endpoint and the probe_up gauge.
package probe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"newsboard/internal/observability/metrics"

	"github.com/robfig/cron/v3"
)

const defaultTimeout = 5 * time.Second

// Target is one URL to check.
type Target struct {
	Name string
	URL  string
}

// Status is the last known result for a target. Checked is false until the
// first check completes.
type Status struct {
	Name        string        `json:"name"`
	Checked     bool          `json:"checked"`
	Up          bool          `json:"up"`
	StatusCode  int           `json:"status_code,omitempty"`
	Latency     time.Duration `json:"latency_ns,omitempty"`
	Error       string        `json:"error,omitempty"`
	LastChecked time.Time     `json:"last_checked,omitempty"`
}

// Prober runs reachability checks on a cron schedule.
type Prober struct {
	targets []Target
	client  *http.Client
	logger  *slog.Logger

	mu       sync.RWMutex
	statuses map[string]Status

	cron *cron.Cron
}

// Option customizes a Prober.
type Option func(*Prober)

// WithHTTPClient replaces the default client, which times out after 5s.
func WithHTTPClient(hc *http.Client) Option {
	return func(p *Prober) { p.client = hc }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prober) { p.logger = logger }
}

// New creates a Prober for targets. Nothing runs until Start.
func New(targets []Target, opts ...Option) *Prober {
	p := &Prober{
		targets:  targets,
		client:   &http.Client{Timeout: defaultTimeout},
		logger:   slog.Default(),
		statuses: make(map[string]Status, len(targets)),
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, t := range targets {
		p.statuses[t.Name] = Status{Name: t.Name}
	}
	return p
}

// Start schedules CheckAll and runs the first check immediately in the
// background. ctx bounds every scheduled check.
func (p *Prober) Start(ctx context.Context, schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { p.CheckAll(ctx) }); err != nil {
		return fmt.Errorf("add probe job: %w", err)
	}
	p.cron = c
	c.Start()

	go p.CheckAll(ctx)

	p.logger.Info("upstream probe started",
		slog.String("schedule", schedule),
		slog.Int("targets", len(p.targets)))
	return nil
}

// Stop stops the scheduler and waits for a running check to finish.
func (p *Prober) Stop() {
	if p.cron == nil {
		return
	}
	<-p.cron.Stop().Done()
}

// CheckAll checks every target concurrently and records the results.
func (p *Prober) CheckAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, t := range p.targets {
		wg.Add(1)
		go func(t Target) {
			defer wg.Done()
			st := p.check(ctx, t)

			p.mu.Lock()
			p.statuses[t.Name] = st
			p.mu.Unlock()

			metrics.RecordProbe(t.Name, st.Up, st.Latency)
			if !st.Up {
				p.logger.Warn("upstream unreachable",
					slog.String("target", t.Name),
					slog.Int("status_code", st.StatusCode),
					slog.String("error", st.Error))
			}
		}(t)
	}
	wg.Wait()
}

// check sends a HEAD request. Any response below 500 counts as reachable:
// the upstream rejecting a keyless request still proves it is up.
func (p *Prober) check(ctx context.Context, t Target) Status {
	st := Status{Name: t.Name, Checked: true, LastChecked: time.Now()}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, t.URL, nil)
	if err != nil {
		st.Error = err.Error()
		return st
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	st.Latency = time.Since(start)
	if err != nil {
		st.Error = "request failed"
		return st
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, resp.Body)

	st.StatusCode = resp.StatusCode
	st.Up = resp.StatusCode < http.StatusInternalServerError
	if !st.Up {
		st.Error = resp.Status
	}
	return st
}

// Snapshot returns the last status of every target, sorted by name.
func (p *Prober) Snapshot() []Status {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Status, 0, len(p.statuses))
	for _, st := range p.statuses {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Ready reports whether every target has been checked and is up.
func (p *Prober) Ready() bool {
	for _, st := range p.Snapshot() {
		if !st.Checked || !st.Up {
			return false
		}
	}
	return true
}
