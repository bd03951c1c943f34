package main

import (
	"context"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/cart"
	"github.com/nslux/shopctl/internal/cli"
	"github.com/nslux/shopctl/internal/session"
	"github.com/nslux/shopctl/internal/storage"
	"github.com/nslux/shopctl/internal/theme"
)

// app wires the managers together for one command invocation: config and
// session storage, the API client, the rehydrated cart, the session state
// machine, and the theme synchronizer feeding the output palette.
type app struct {
	store   *storage.Storage
	cfg     *storage.Config
	client  *api.Client
	cart    *cart.Manager
	session *session.Manager
	theme   *theme.Synchronizer
}

// newApp loads local state and restores the session. A stored admin token
// is trusted without a network call; a stored user token is validated
// against the profile endpoint and dropped if rejected.
func newApp(ctx context.Context) (*app, error) {
	store := storage.New(storage.DefaultDir())
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.APIURL)
	persisted := store.LoadSession()
	cartMgr := cart.NewManager(store, persisted.Cart)
	sessionMgr := session.NewManager(store, client, cartMgr)
	if err := sessionMgr.Restore(ctx); err != nil {
		return nil, err
	}

	sync := theme.NewSynchronizer(client, theme.ApplierFunc(cli.ApplyTheme), cfg.ThemePollInterval())
	return &app{
		store:   store,
		cfg:     cfg,
		client:  client,
		cart:    cartMgr,
		session: sessionMgr,
		theme:   sync,
	}, nil
}

// loadTheme fetches and applies the current theme before styled output.
// A failed fetch silently styles with the default; commands never break on
// a missing theme.
func (a *app) loadTheme(ctx context.Context) {
	a.theme.Refresh(ctx)
}

// requireUser returns an error unless a regular user is logged in.
func (a *app) requireUser() error {
	if !a.session.IsUser() {
		return &cli.NotLoggedInError{Role: "user"}
	}
	return nil
}

// requireAdmin returns an error unless an administrator is logged in.
func (a *app) requireAdmin() error {
	if !a.session.IsAdmin() {
		return &cli.NotLoggedInError{Role: "admin"}
	}
	return nil
}
