package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nslux/shopctl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSession(t *testing.T) {
	t.Run("missing file returns empty session", func(t *testing.T) {
		s := New(t.TempDir())

		sess := s.LoadSession()
		assert.Empty(t, sess.UserToken)
		assert.Empty(t, sess.AdminToken)
		assert.Empty(t, sess.Cart)
	})

	t.Run("malformed session file fails soft to empty session", func(t *testing.T) {
		dir := t.TempDir()
		s := New(dir)

		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".shopctl"), 0755))
		badJSON := []byte(`{"cart": [{"quantity": "not a number"`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".shopctl", "session.json"), badJSON, 0600))

		sess := s.LoadSession()
		assert.Empty(t, sess.Cart)
		assert.Empty(t, sess.UserToken)
	})

	t.Run("round trips cart and tokens", func(t *testing.T) {
		s := New(t.TempDir())

		cart := model.Cart{
			{ProductID: "p1", Name: "Perfume", Price: 120, Quantity: 2},
			{ProductID: "p2", Name: "Scarf", Price: 45.5, Quantity: 1},
		}
		require.NoError(t, s.SaveCart(cart))
		require.NoError(t, s.SaveUserToken("user-token"))

		sess := s.LoadSession()
		assert.Equal(t, cart, sess.Cart)
		assert.Equal(t, "user-token", sess.UserToken)
		assert.Empty(t, sess.AdminToken)
	})
}

func TestTokenLifecycle(t *testing.T) {
	t.Run("user and admin tokens use separate keys", func(t *testing.T) {
		s := New(t.TempDir())

		require.NoError(t, s.SaveUserToken("u-tok"))
		require.NoError(t, s.SaveAdminToken("a-tok"))

		sess := s.LoadSession()
		assert.Equal(t, "u-tok", sess.UserToken)
		assert.Equal(t, "a-tok", sess.AdminToken)
	})

	t.Run("clear user token keeps admin token and cart", func(t *testing.T) {
		s := New(t.TempDir())
		require.NoError(t, s.SaveCart(model.Cart{{ProductID: "p1", Quantity: 1}}))
		require.NoError(t, s.SaveUserToken("u-tok"))
		require.NoError(t, s.SaveAdminToken("a-tok"))

		require.NoError(t, s.ClearUserToken())

		sess := s.LoadSession()
		assert.Empty(t, sess.UserToken)
		assert.Equal(t, "a-tok", sess.AdminToken)
		assert.Len(t, sess.Cart, 1)
	})

	t.Run("clear tokens removes both but keeps cart", func(t *testing.T) {
		s := New(t.TempDir())
		require.NoError(t, s.SaveCart(model.Cart{{ProductID: "p1", Quantity: 3}}))
		require.NoError(t, s.SaveUserToken("u-tok"))
		require.NoError(t, s.SaveAdminToken("a-tok"))

		require.NoError(t, s.ClearTokens())

		sess := s.LoadSession()
		assert.Empty(t, sess.UserToken)
		assert.Empty(t, sess.AdminToken)
		// Cart clearing is the caller's decision, not the store's.
		assert.Len(t, sess.Cart, 1)
	})
}

func TestSaveCart(t *testing.T) {
	t.Run("creates .shopctl directory lazily", func(t *testing.T) {
		dir := t.TempDir()
		s := New(dir)

		require.NoError(t, s.SaveCart(model.Cart{}))

		info, err := os.Stat(filepath.Join(dir, ".shopctl"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("overwrites previous snapshot unconditionally", func(t *testing.T) {
		s := New(t.TempDir())

		require.NoError(t, s.SaveCart(model.Cart{{ProductID: "p1", Quantity: 5}}))
		require.NoError(t, s.SaveCart(model.Cart{{ProductID: "p2", Quantity: 1}}))

		sess := s.LoadSession()
		require.Len(t, sess.Cart, 1)
		assert.Equal(t, "p2", sess.Cart[0].ProductID)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing config returns defaults", func(t *testing.T) {
		s := New(t.TempDir())

		cfg, err := s.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultAPIURL, cfg.APIURL)
		assert.Equal(t, DefaultThemePollSeconds, cfg.ThemePollSeconds)
	})

	t.Run("partial config merges with defaults", func(t *testing.T) {
		dir := t.TempDir()
		s := New(dir)

		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".shopctl"), 0755))
		content := []byte("api_url: https://shop.example.com/api\n")
		require.NoError(t, os.WriteFile(s.ConfigPath(), content, 0644))

		cfg, err := s.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://shop.example.com/api", cfg.APIURL)
		assert.Equal(t, DefaultThemePollSeconds, cfg.ThemePollSeconds)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		s := New(dir)

		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".shopctl"), 0755))
		content := []byte("api_url: https://file.example.com/api\ntheme_poll_seconds: 60\n")
		require.NoError(t, os.WriteFile(s.ConfigPath(), content, 0644))

		t.Setenv("SHOPCTL_API_URL", "https://env.example.com/api")
		t.Setenv("SHOPCTL_THEME_POLL", "10")

		cfg, err := s.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com/api", cfg.APIURL)
		assert.Equal(t, 10, cfg.ThemePollSeconds)
	})

	t.Run("rejects non-numeric poll override", func(t *testing.T) {
		s := New(t.TempDir())
		t.Setenv("SHOPCTL_THEME_POLL", "soon")

		_, err := s.LoadConfig()
		require.Error(t, err)
	})

	t.Run("malformed yaml returns error", func(t *testing.T) {
		dir := t.TempDir()
		s := New(dir)

		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".shopctl"), 0755))
		require.NoError(t, os.WriteFile(s.ConfigPath(), []byte("api_url: [broken"), 0644))

		_, err := s.LoadConfig()
		require.Error(t, err)
	})
}
