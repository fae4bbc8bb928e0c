package api

import (
	"context"
	"net/http"
	"time"

	"github.com/claude/treinolog/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// authResponse is the register/login response: the user, flattened, plus the
// bearer token when the API returns it in the body.
type authResponse struct {
	models.User
	Token string `json:"token"`
}

// Register creates an account. The returned token (possibly empty) is the
// caller's to store.
func (c *Client) Register(ctx context.Context, name, email, password string) (models.User, string, error) {
	body := map[string]string{"email": email, "password": password}
	if name != "" {
		body["name"] = name
	}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &out); err != nil {
		return models.User{}, "", err
	}
	return out.User, out.Token, nil
}

// Login authenticates and returns the user plus the bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, string, error) {
	body := map[string]string{"email": email, "password": password}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return models.User{}, "", err
	}
	return out.User, out.Token, nil
}

// Me returns the identity behind the current token. A 401 means the token is
// missing, expired, or revoked.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/protected", nil, nil, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// Logout tells the server to drop the session. Best-effort: the caller clears
// the local token regardless, so a failed call is not an error.
func (c *Client) Logout(ctx context.Context) {
	_ = c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// TokenExpired inspects a stored JWT's exp claim without verifying the
// signature (the server is the verifier; this only spares a doomed request).
// Opaque or claim-less tokens report false.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
