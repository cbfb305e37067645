package client

import (
	"context"
	"net/http"
	"time"
)

// Session is the result of a successful login
type Session struct {
	Token struct {
		AccessToken string    `json:"accessToken"`
		TokenType   string    `json:"tokenType"`
		ExpiresAt   time.Time `json:"expiresAt"`
	} `json:"token"`
	User struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"fullName"`
		Role     string `json:"role"`
	} `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and installs the returned token on the client, so
// subsequent calls are authorized without an explicit SetToken.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", loginRequest{Email: email, Password: password}, &session); err != nil {
		return nil, err
	}
	c.token = session.Token.AccessToken
	return &session, nil
}
