package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nslux/shopctl/internal/model"
)

// AdminCreds authenticates the theme mutation endpoints. Unlike the rest of
// the API these take raw email/password header fields, not the bearer; the
// asymmetry is the backend's contract, so it stays visible in the signature.
type AdminCreds struct {
	Email    string
	Password string
}

func (a AdminCreds) headers() map[string]string {
	return map[string]string{
		"email":    a.Email,
		"password": a.Password,
	}
}

// GetTheme fetches the current global theme.
func (c *Client) GetTheme(ctx context.Context) (model.ThemeConfig, error) {
	var theme model.ThemeConfig
	if err := c.get(ctx, "/theme", &theme); err != nil {
		return model.ThemeConfig{}, err
	}
	return theme, nil
}

// UpdateTheme replaces the global theme. Last writer wins; every client sees
// the change within its poll interval.
func (c *Client) UpdateTheme(ctx context.Context, theme model.ThemeConfig, creds AdminCreds) error {
	return c.do(ctx, http.MethodPost, "/theme", theme, nil, creds.headers())
}

// ApplyPreset activates a named server-defined preset and returns the
// resulting theme.
func (c *Client) ApplyPreset(ctx context.Context, name string, creds AdminCreds) (model.ThemeConfig, error) {
	var res struct {
		Theme model.ThemeConfig `json:"theme"`
	}
	path := "/theme/preset/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodPost, path, struct{}{}, &res, creds.headers()); err != nil {
		return model.ThemeConfig{}, err
	}
	return res.Theme, nil
}

// ListPresets fetches the available named presets.
func (c *Client) ListPresets(ctx context.Context) (map[string]model.ThemeConfig, error) {
	var presets map[string]model.ThemeConfig
	if err := c.get(ctx, "/theme/presets", &presets); err != nil {
		return nil, err
	}
	return presets, nil
}
