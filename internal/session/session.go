// Package session tracks who is logged in and keeps the API client's
// bearer credential in step with it.
package session

import (
	"context"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/cart"
	"github.com/nslux/shopctl/internal/model"
	"github.com/nslux/shopctl/internal/storage"
)

// Kind is the session state. User and Admin are mutually exclusive;
// entering one exits the other.
type Kind int

const (
	Anonymous Kind = iota
	User
	Admin
)

func (k Kind) String() string {
	switch k {
	case User:
		return "user"
	case Admin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Identity is the current session holder. Profile is set only for User,
// Account only for Admin.
type Identity struct {
	Kind    Kind
	Profile model.Profile
	Account model.AdminAccount
}

// Manager owns the identity state machine. Logging in stores the credential
// and makes it the client's bearer for all subsequent calls; logging out
// clears both stored credentials and empties the cart.
type Manager struct {
	store   *storage.Storage
	client  *api.Client
	cart    *cart.Manager
	current Identity
}

// NewManager returns a Manager in the Anonymous state.
func NewManager(store *storage.Storage, client *api.Client, cartMgr *cart.Manager) *Manager {
	return &Manager{store: store, client: client, cart: cartMgr}
}

// Current returns the active identity.
func (m *Manager) Current() Identity {
	return m.current
}

// IsUser reports whether a regular user is logged in.
func (m *Manager) IsUser() bool {
	return m.current.Kind == User
}

// IsAdmin reports whether an administrator is logged in.
func (m *Manager) IsAdmin() bool {
	return m.current.Kind == Admin
}

// Login exchanges email+password for a user session. The returned token
// becomes the bearer on every future request until changed.
func (m *Manager) Login(ctx context.Context, email, password string) (model.Profile, error) {
	creds, err := m.client.Login(ctx, email, password)
	if err != nil {
		return model.Profile{}, err
	}
	if err := m.store.SaveUserToken(creds.Token); err != nil {
		return model.Profile{}, err
	}

	m.client.SetBearer(creds.Token)
	m.current = Identity{Kind: User, Profile: creds.Profile}
	return creds.Profile, nil
}

// Register creates an account and enters the User state with it.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) (model.Profile, error) {
	creds, err := m.client.Register(ctx, req)
	if err != nil {
		return model.Profile{}, err
	}
	if err := m.store.SaveUserToken(creds.Token); err != nil {
		return model.Profile{}, err
	}

	m.client.SetBearer(creds.Token)
	m.current = Identity{Kind: User, Profile: creds.Profile}
	return creds.Profile, nil
}

// AdminLogin exchanges admin credentials for an Admin session. The admin
// token is stored under its own key so it does not clobber a user token,
// but the last credential set is the one that wins as the active bearer.
func (m *Manager) AdminLogin(ctx context.Context, email, password string) (model.AdminAccount, error) {
	creds, err := m.client.AdminLogin(ctx, email, password)
	if err != nil {
		return model.AdminAccount{}, err
	}
	if err := m.store.SaveAdminToken(creds.Token); err != nil {
		return model.AdminAccount{}, err
	}

	m.client.SetBearer(creds.Token)
	m.current = Identity{Kind: Admin, Account: creds.Admin}
	return creds.Admin, nil
}

// UpdateProfile edits the user profile and refreshes the stored credential,
// since the backend rotates the token on profile changes.
func (m *Manager) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (model.Profile, error) {
	creds, err := m.client.UpdateProfile(ctx, update)
	if err != nil {
		return model.Profile{}, err
	}
	if creds.Token != "" {
		if err := m.store.SaveUserToken(creds.Token); err != nil {
			return model.Profile{}, err
		}
		m.client.SetBearer(creds.Token)
	}
	m.current = Identity{Kind: User, Profile: creds.Profile}
	return creds.Profile, nil
}

// Logout resets to Anonymous: both stored credentials go, the bearer goes,
// and the cart is emptied. Logging out discards the session's cart by
// business rule.
func (m *Manager) Logout() error {
	if err := m.store.ClearTokens(); err != nil {
		return err
	}
	m.client.ClearBearer()
	m.current = Identity{Kind: Anonymous}
	return m.cart.Clear()
}

// Restore rehydrates the session from stored credentials at startup.
//
// A stored admin token is trusted without server validation. A stored user
// token is validated by fetching the profile; on any failure the token is
// discarded and the session stays Anonymous.
func (m *Manager) Restore(ctx context.Context) error {
	sess := m.store.LoadSession()

	if sess.AdminToken != "" {
		m.client.SetBearer(sess.AdminToken)
		m.current = Identity{Kind: Admin, Account: model.AdminAccount{Role: "admin"}}
		return nil
	}

	if sess.UserToken != "" {
		m.client.SetBearer(sess.UserToken)
		profile, err := m.client.GetProfile(ctx)
		if err != nil {
			m.client.ClearBearer()
			m.current = Identity{Kind: Anonymous}
			return m.store.ClearUserToken()
		}
		m.current = Identity{Kind: User, Profile: profile}
		return nil
	}

	m.current = Identity{Kind: Anonymous}
	return nil
}
