// Package handler exposes HTTP handlers for the booking client.  This file
// implements the authentication flow: credentials are verified by the
// remote backend, which returns its own bearer token; this service wraps
// that token plus the role derived from the user's profile in a signed
// session JWT so later requests can be both authorized locally and
// forwarded to the backend.
package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/khoadang148/galaxy-cinema-client/internal/client"
	"github.com/khoadang148/galaxy-cinema-client/internal/model"
	"github.com/khoadang148/galaxy-cinema-client/internal/utils"
)

// AuthHandler proxies authentication to the backend and issues session
// tokens.
type AuthHandler struct {
	API           *client.Client // backend REST client
	SessionSecret string         // secret for signing session JWTs
	SessionTTLMin int            // session token lifetime in minutes
}

// NewAuthHandler constructs an AuthHandler.  The client must be non-nil.
func NewAuthHandler(api *client.Client, secret string, ttlMin int) *AuthHandler {
	if api == nil {
		panic("nil client passed to NewAuthHandler")
	}
	return &AuthHandler{API: api, SessionSecret: secret, SessionTTLMin: ttlMin}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      model.User `json:"user"`
	Role      string     `json:"role"`
}

// Login handles POST /v1/auth/login.  On success it returns the session
// token in the body and also sets it as an HTTP-only cookie for browser
// flows.
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, false)
}

// StaffLogin handles POST /v1/auth/staff-login.  It performs the same
// exchange as Login but rejects accounts without the staff role, so a
// regular customer cannot enter the back-office by logging in there.
func (h *AuthHandler) StaffLogin(c echo.Context) error {
	return h.login(c, true)
}

func (h *AuthHandler) login(c echo.Context, staffOnly bool) error {
	var body loginRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	email := strings.TrimSpace(body.Email)
	if email == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx := c.Request().Context()
	backendTok, err := h.API.Login(ctx, email, body.Password)
	if err != nil {
		if errors.Is(err, client.ErrLoginFailed) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
		}
		return backendFail(c, err, "")
	}

	user, err := h.API.Profile(ctx, backendTok)
	if err != nil {
		return backendFail(c, err, "")
	}
	role := user.RoleName()
	if staffOnly && role != "STAFF" {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "account has no back-office access"})
	}

	tok, err := utils.NewSessionToken(h.SessionSecret, user.ID, user.FullName, role, backendTok, h.SessionTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue session token"})
	}
	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, loginResponse{Token: tok.Token, ExpiresAt: tok.Exp, User: user, Role: role})
}

// Register handles POST /v1/auth/register.  The account is created on the
// backend; no session is issued so the user logs in explicitly afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	var body struct {
		FullName    string `json:"fullname"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}
	err := h.API.Register(c.Request().Context(), client.Registration{
		FullName:    strings.TrimSpace(body.FullName),
		Email:       strings.TrimSpace(body.Email),
		Password:    body.Password,
		PhoneNumber: strings.TrimSpace(body.PhoneNumber),
	})
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return backendFail(c, err, "")
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "registration successful"})
}

// Logout handles POST /v1/auth/logout by clearing the session cookie.
// The backend token simply ages out; the backend exposes no revocation.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /v1/me and returns the fresh backend profile of the
// authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	tok := backendToken(c)
	if tok == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	user, err := h.API.Profile(c.Request().Context(), tok)
	if err != nil {
		return backendFail(c, err, "")
	}
	return c.JSON(http.StatusOK, user)
}
