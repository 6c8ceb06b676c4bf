package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

// ErrLoginFailed is returned when the backend rejects the credentials or
// reports an unsuccessful login without an HTTP error status.
var ErrLoginFailed = errors.New("login failed")

// Registration is the payload for creating a backend account.  Field names
// follow the backend's PascalCase contract.
type Registration struct {
	FullName    string `json:"Fullname"`
	Email       string `json:"Email"`
	Password    string `json:"Password"`
	PhoneNumber string `json:"PhoneNumber"`
}

// Login exchanges credentials for a backend JWT.  The token is opaque to
// this client apart from its expiry; all authorization decisions are made
// by the backend.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"Email": email, "Password": password}
	data, err := c.postJSON(ctx, "", "/api/Authentication/login-jwt", body)
	if err != nil {
		return "", err
	}
	var res struct {
		Token     string `json:"token"`
		IsSuccess bool   `json:"isSuccess"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if !res.IsSuccess || res.Token == "" {
		if res.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrLoginFailed, res.Message)
		}
		return "", ErrLoginFailed
	}
	return res.Token, nil
}

// Register creates a backend account.  The caller is not logged in
// automatically; a fresh login is required afterwards.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	data, err := c.postJSON(ctx, "", "/api/Authentication/register", reg)
	if err != nil {
		return err
	}
	var res struct {
		IsSuccess bool   `json:"isSuccess"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return fmt.Errorf("decode register response: %w", err)
	}
	if !res.IsSuccess {
		if res.Message != "" {
			return errors.New(res.Message)
		}
		return errors.New("registration failed")
	}
	return nil
}

// Profile fetches the authenticated user's profile, including the numeric
// role from which the session role is derived.
func (c *Client) Profile(ctx context.Context, token string) (model.User, error) {
	data, err := c.get(ctx, token, "/api/Authentication/profile", nil)
	if err != nil {
		return model.User{}, err
	}
	return decodeUser(data)
}
