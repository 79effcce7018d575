package user

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Profile is the identity returned by the login provider.
type Profile struct {
	ID     string
	Name   string
	Avatar string
	Email  string
}

// IdentityProvider runs the OAuth authorization code flow.
type IdentityProvider interface {
	AuthCodeURL() string
	Exchange(ctx context.Context, code string) (*Profile, error)
}

// GoogleIdentity implements IdentityProvider against Google accounts.
type GoogleIdentity struct {
	cfg *oauth2.Config
}

func NewGoogleIdentity(clientID, clientSecret, redirectURL string) *GoogleIdentity {
	return &GoogleIdentity{cfg: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			oauth2api.UserinfoEmailScope,
			oauth2api.UserinfoProfileScope,
		},
	}}
}

func (g *GoogleIdentity) AuthCodeURL() string {
	return g.cfg.AuthCodeURL("", oauth2.AccessTypeOnline)
}

func (g *GoogleIdentity) Exchange(ctx context.Context, code string) (*Profile, error) {
	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange failed: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(g.cfg.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create google oauth2 client: %w", err)
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google profile: %w", err)
	}

	return &Profile{
		ID:     info.Id,
		Name:   info.Name,
		Avatar: info.Picture,
		Email:  info.Email,
	}, nil
}
