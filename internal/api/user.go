package api

import (
	"context"
	"github.com/pkg/errors"
	"net/http"
	"net/url"
	"pricewatch/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

func (c Client) Register(ctx context.Context, username string, email string, password string) (model.User, error) {
	type request struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	var u model.User
	err := c.do(ctx, http.MethodPost, "/users", request{
		Username: username,
		Email:    email,
		Password: password,
	}, &u)
	if err != nil {
		return u, err
	}
	c.Logger.Infof("Register: Registered User with ID: %d, email: %s", u.ID, u.Email)
	return u, nil
}

// FindUserByEmail resolves a user record by email. This is all the backend
// offers for logging in: there is no credential-verification endpoint, so the
// password a user types is never sent anywhere. See the note in DESIGN.md.
func (c Client) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodGet, "/users/email/"+url.PathEscape(email), nil, &u)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return u, errors.Wrapf(ErrUserNotFound, "no user with email: %s", email)
		}
		return u, err
	}
	return u, nil
}
