package githubapi

import (
	"context"
	"net/http"
)

// UserProfile is the slice of the GitHub user object this application cares
// about.
type UserProfile struct {
	Login string
	Name  string
}

// ProfileSource resolves the authenticated user's identity from a bearer
// token.
type ProfileSource interface {
	Profile(ctx context.Context, token string) (*UserProfile, error)
	// PrimaryEmail returns the address flagged primary, or nil with the
	// upstream status when there is none or the list could not be read.
	PrimaryEmail(ctx context.Context, token string) (*string, int, error)
}

func (c *Client) Profile(ctx context.Context, token string) (*UserProfile, error) {
	gh, err := c.api(ctx, token)
	if err != nil {
		return nil, err
	}

	user, _, err := gh.Users.Get(ctx, "")
	if err != nil {
		return nil, err
	}

	return &UserProfile{
		Login: user.GetLogin(),
		Name:  user.GetName(),
	}, nil
}

func (c *Client) PrimaryEmail(ctx context.Context, token string) (*string, int, error) {
	gh, err := c.api(ctx, token)
	if err != nil {
		return nil, 0, err
	}

	emails, resp, err := gh.Users.ListEmails(ctx, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, status, err
	}

	for _, e := range emails {
		if e.GetPrimary() {
			email := e.GetEmail()
			return &email, http.StatusOK, nil
		}
	}

	return nil, http.StatusOK, nil
}
