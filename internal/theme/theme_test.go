package theme

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient serves themes from memory and counts fetches.
type fakeClient struct {
	mu       sync.Mutex
	theme    model.ThemeConfig
	fetchErr error
	fetches  int
	updated  []model.ThemeConfig
}

func (f *fakeClient) GetTheme(ctx context.Context) (model.ThemeConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return model.ThemeConfig{}, f.fetchErr
	}
	return f.theme, nil
}

func (f *fakeClient) UpdateTheme(ctx context.Context, theme model.ThemeConfig, creds api.AdminCreds) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, theme)
	f.theme = theme
	return nil
}

func (f *fakeClient) ApplyPreset(ctx context.Context, name string, creds api.AdminCreds) (model.ThemeConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name != "ocean" {
		return model.ThemeConfig{}, errors.New("unknown preset")
	}
	f.theme = model.ThemeConfig{ThemeName: "Ocean Theme", Primary: "#01579b"}
	return f.theme, nil
}

func (f *fakeClient) setTheme(t model.ThemeConfig) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.theme = t
}

func (f *fakeClient) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

// recordingApplier remembers every applied theme.
type recordingApplier struct {
	mu      sync.Mutex
	applied []model.ThemeConfig
}

func (r *recordingApplier) Apply(cfg model.ThemeConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied = append(r.applied, cfg)
}

func (r *recordingApplier) last() (model.ThemeConfig, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.applied) == 0 {
		return model.ThemeConfig{}, false
	}
	return r.applied[len(r.applied)-1], true
}

func TestRefresh(t *testing.T) {
	t.Run("successful fetch caches and applies the server theme", func(t *testing.T) {
		client := &fakeClient{theme: model.ThemeConfig{ThemeName: "Gold Theme", Primary: "#ffd700"}}
		applier := &recordingApplier{}
		s := NewSynchronizer(client, applier, time.Minute)

		require.NoError(t, s.Refresh(context.Background()))

		assert.Equal(t, "Gold Theme", s.Current().ThemeName)
		last, ok := applier.last()
		require.True(t, ok)
		assert.Equal(t, "#ffd700", last.Primary)
	})

	t.Run("failed fetch falls back to the hardcoded default", func(t *testing.T) {
		client := &fakeClient{fetchErr: errors.New("connection refused")}
		applier := &recordingApplier{}
		s := NewSynchronizer(client, applier, time.Minute)

		err := s.Refresh(context.Background())
		require.Error(t, err)

		assert.Equal(t, Default, s.Current())
		last, ok := applier.last()
		require.True(t, ok)
		assert.Equal(t, "Pink Theme", last.ThemeName)
	})
}

func TestStartStop(t *testing.T) {
	t.Run("start fetches immediately and then polls", func(t *testing.T) {
		client := &fakeClient{theme: model.ThemeConfig{ThemeName: "A"}}
		applier := &recordingApplier{}
		s := NewSynchronizer(client, applier, 10*time.Millisecond)

		s.Start(context.Background())
		defer s.Stop()

		require.Equal(t, 1, client.fetchCount(), "start performs one immediate fetch")

		client.setTheme(model.ThemeConfig{ThemeName: "B"})
		require.Eventually(t, func() bool {
			return s.Current().ThemeName == "B"
		}, time.Second, 5*time.Millisecond, "poll must pick up the server-side change")
	})

	t.Run("stop halts polling", func(t *testing.T) {
		client := &fakeClient{theme: model.ThemeConfig{ThemeName: "A"}}
		s := NewSynchronizer(client, &recordingApplier{}, 5*time.Millisecond)

		s.Start(context.Background())
		time.Sleep(20 * time.Millisecond)
		s.Stop()

		count := client.fetchCount()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, count, client.fetchCount(), "no fetches after stop")
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		s := NewSynchronizer(&fakeClient{}, &recordingApplier{}, time.Minute)
		s.Stop()
	})

	t.Run("double start does not spawn a second loop", func(t *testing.T) {
		client := &fakeClient{theme: model.ThemeConfig{ThemeName: "A"}}
		s := NewSynchronizer(client, &recordingApplier{}, time.Hour)

		s.Start(context.Background())
		s.Start(context.Background())
		defer s.Stop()

		assert.Equal(t, 1, client.fetchCount())
	})

	t.Run("context cancellation stops the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		client := &fakeClient{theme: model.ThemeConfig{ThemeName: "A"}}
		s := NewSynchronizer(client, &recordingApplier{}, 5*time.Millisecond)

		s.Start(ctx)
		cancel()
		time.Sleep(20 * time.Millisecond)

		count := client.fetchCount()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, count, client.fetchCount())
		s.Stop()
	})
}

func TestAdminMutations(t *testing.T) {
	t.Run("update theme reflects in cache before any poll tick", func(t *testing.T) {
		client := &fakeClient{theme: model.ThemeConfig{ThemeName: "Old"}}
		applier := &recordingApplier{}
		// Interval is an hour: any observed change must come from the
		// mutation path, not polling.
		s := NewSynchronizer(client, applier, time.Hour)

		newTheme := model.ThemeConfig{ThemeName: "Custom", Primary: "#112233"}
		creds := api.AdminCreds{Email: "admin@example.com", Password: "hunter2"}
		require.NoError(t, s.UpdateTheme(context.Background(), newTheme, creds))

		assert.Equal(t, "Custom", s.Current().ThemeName)
		last, ok := applier.last()
		require.True(t, ok)
		assert.Equal(t, "#112233", last.Primary)
		require.Len(t, client.updated, 1)
	})

	t.Run("apply preset caches the returned theme", func(t *testing.T) {
		client := &fakeClient{}
		s := NewSynchronizer(client, &recordingApplier{}, time.Hour)

		cfg, err := s.ApplyPreset(context.Background(), "ocean", api.AdminCreds{})
		require.NoError(t, err)
		assert.Equal(t, "Ocean Theme", cfg.ThemeName)
		assert.Equal(t, "Ocean Theme", s.Current().ThemeName)
	})

	t.Run("failed preset leaves cache untouched", func(t *testing.T) {
		client := &fakeClient{theme: model.ThemeConfig{ThemeName: "Keep"}}
		s := NewSynchronizer(client, &recordingApplier{}, time.Hour)
		require.NoError(t, s.Refresh(context.Background()))

		_, err := s.ApplyPreset(context.Background(), "nope", api.AdminCreds{})
		require.Error(t, err)
		assert.Equal(t, "Keep", s.Current().ThemeName)
	})
}

func TestDefaultThemeTokens(t *testing.T) {
	// The fallback must populate every named slot so the UI is never unstyled.
	assert.NotEmpty(t, Default.Primary)
	assert.NotEmpty(t, Default.Secondary)
	assert.NotEmpty(t, Default.Accent)
	assert.NotEmpty(t, Default.Background)
	assert.NotEmpty(t, Default.CardBackground)
	assert.NotEmpty(t, Default.TextColor)
	assert.NotEmpty(t, Default.BorderColor)
	assert.Equal(t, "Pink Theme", Default.ThemeName)
}
