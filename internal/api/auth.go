package api

import (
	"context"

	"github.com/nslux/shopctl/internal/model"
)

// Credentials is a token plus the profile it authenticates. The login and
// register responses inline the profile fields next to the token.
type Credentials struct {
	Token   string
	Profile model.Profile
}

// credentialsResponse matches the wire shape: {token, ...profile fields}.
type credentialsResponse struct {
	Token string `json:"token"`
	model.Profile
}

func (r credentialsResponse) toCredentials() Credentials {
	return Credentials{Token: r.Token, Profile: r.Profile}
}

// Login exchanges email+password for a user credential and profile.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var res credentialsResponse
	if err := c.post(ctx, "/auth/login", body, &res); err != nil {
		return Credentials{}, err
	}
	return res.toCredentials(), nil
}

// RegisterRequest is the account-creation payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// Register creates an account and returns its credential and profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Credentials, error) {
	var res credentialsResponse
	if err := c.post(ctx, "/auth/register", req, &res); err != nil {
		return Credentials{}, err
	}
	return res.toCredentials(), nil
}

// GetProfile validates the current bearer and returns the profile behind it.
func (c *Client) GetProfile(ctx context.Context) (model.Profile, error) {
	var profile model.Profile
	if err := c.get(ctx, "/auth/profile", &profile); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// ProfileUpdate carries the editable profile fields. Empty fields are
// omitted so the server keeps their current values.
type ProfileUpdate struct {
	Name    string         `json:"name,omitempty"`
	Email   string         `json:"email,omitempty"`
	Phone   string         `json:"phone,omitempty"`
	Address *model.Address `json:"address,omitempty"`
}

// UpdateProfile edits the profile and returns a refreshed credential.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (Credentials, error) {
	var res credentialsResponse
	if err := c.put(ctx, "/auth/profile", update, &res); err != nil {
		return Credentials{}, err
	}
	return res.toCredentials(), nil
}

// AdminCredentials is an admin token plus the account it belongs to.
type AdminCredentials struct {
	Token string             `json:"token"`
	Admin model.AdminAccount `json:"admin"`
}

// AdminLogin exchanges admin email+password for an admin credential.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (AdminCredentials, error) {
	body := map[string]string{"email": email, "password": password}
	var res AdminCredentials
	if err := c.post(ctx, "/admin/login", body, &res); err != nil {
		return AdminCredentials{}, err
	}
	return res, nil
}
