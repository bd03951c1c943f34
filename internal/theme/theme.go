// Package theme keeps a local cache of the shared global theme, eventually
// consistent with the server, and applies it to the rendering environment.
package theme

import (
	"context"
	"sync"
	"time"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/model"
)

// Default is the fallback theme applied when the server cannot be reached,
// so the UI is never left unstyled.
var Default = model.ThemeConfig{
	Primary:        "#e91e63",
	Secondary:      "#f06292",
	Accent:         "#ec407a",
	Background:     "linear-gradient(135deg, #ffeef8 0%, #fff0f5 50%, #fdf2f8 100%)",
	CardBackground: "linear-gradient(135deg, rgba(255,255,255,0.9), rgba(253,242,248,0.7))",
	TextColor:      "#4a4a4a",
	BorderColor:    "#f8bbd9",
	ThemeName:      "Pink Theme",
}

// Applier pushes a theme's style tokens into the rendering environment.
// Applying never fails; inputs are assumed well formed.
type Applier interface {
	Apply(cfg model.ThemeConfig)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(cfg model.ThemeConfig)

func (f ApplierFunc) Apply(cfg model.ThemeConfig) { f(cfg) }

// Client is the slice of the API the synchronizer needs.
type Client interface {
	GetTheme(ctx context.Context) (model.ThemeConfig, error)
	UpdateTheme(ctx context.Context, theme model.ThemeConfig, creds api.AdminCreds) error
	ApplyPreset(ctx context.Context, name string, creds api.AdminCreds) (model.ThemeConfig, error)
}

// Synchronizer polls the server for the global theme and applies each
// observed value. Admin mutations go through it so the local cache reflects
// the admin's own change immediately instead of waiting for the next tick.
type Synchronizer struct {
	client   Client
	applier  Applier
	interval time.Duration

	mu      sync.Mutex
	current model.ThemeConfig

	stop chan struct{}
	done chan struct{}
}

// NewSynchronizer returns a stopped Synchronizer. The interval sets the
// bounded propagation delay for changes made by other clients.
func NewSynchronizer(client Client, applier Applier, interval time.Duration) *Synchronizer {
	return &Synchronizer{
		client:   client,
		applier:  applier,
		interval: interval,
		current:  Default,
	}
}

// Current returns the cached theme.
func (s *Synchronizer) Current() model.ThemeConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Synchronizer) setCurrent(cfg model.ThemeConfig) {
	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	s.applier.Apply(cfg)
}

// Refresh fetches the theme once and applies it. A failed fetch applies the
// hardcoded default; the error is returned for callers that want to report
// the degradation but the cache is always left in a usable state.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	cfg, err := s.client.GetTheme(ctx)
	if err != nil {
		s.setCurrent(Default)
		return err
	}
	s.setCurrent(cfg)
	return nil
}

// Start fetches immediately, then keeps refreshing on the configured
// interval until Stop is called. Fetches run from a single loop, so a slow
// request delays the next tick rather than overlapping it.
func (s *Synchronizer) Start(ctx context.Context) {
	if s.stop != nil {
		return // already running
	}
	s.Refresh(ctx)

	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func(stop, done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Refresh(ctx)
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}(s.stop, s.done)
}

// Stop cancels the recurring fetch and waits for the loop to exit. Must be
// called on teardown so no timer outlives its owner.
func (s *Synchronizer) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	s.done = nil
}

// UpdateTheme posts a replacement theme and, on success, caches and applies
// it right away. Other clients observe the change within their poll interval.
func (s *Synchronizer) UpdateTheme(ctx context.Context, cfg model.ThemeConfig, creds api.AdminCreds) error {
	if err := s.client.UpdateTheme(ctx, cfg, creds); err != nil {
		return err
	}
	s.setCurrent(cfg)
	return nil
}

// ApplyPreset activates a named server-side preset and caches the result.
func (s *Synchronizer) ApplyPreset(ctx context.Context, name string, creds api.AdminCreds) (model.ThemeConfig, error) {
	cfg, err := s.client.ApplyPreset(ctx, name, creds)
	if err != nil {
		return model.ThemeConfig{}, err
	}
	s.setCurrent(cfg)
	return cfg, nil
}
