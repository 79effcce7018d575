package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tinyhouse/database"
	"tinyhouse/models"

	"go.uber.org/zap"
)

func (s *DefaultUserService) AuthURL() string {
	return s.Google.AuthCodeURL()
}

// LogIn exchanges a Google authorization code, upserts the user and issues a token.
func (s *DefaultUserService) LogIn(ctx context.Context, code string) (*models.Viewer, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrMissingCode
	}

	profile, err := s.Google.Exchange(ctx, code)
	if err != nil {
		s.Logger.Warn("google login failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	if profile.ID == "" || profile.Name == "" || profile.Email == "" {
		return nil, fmt.Errorf("%w: google profile is incomplete", ErrLoginFailed)
	}

	stored, err := s.Users.Upsert(ctx, &models.User{
		ID:      profile.ID,
		Name:    profile.Name,
		Avatar:  profile.Avatar,
		Contact: profile.Email,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.Issue(stored.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.Logger.Info("user logged in", zap.String("userId", stored.ID))
	return &models.Viewer{
		ID:         stored.ID,
		Token:      token,
		Avatar:     stored.Avatar,
		HasWallet:  stored.HasWallet(),
		DidRequest: true,
	}, nil
}

// LogOut is stateless; clients drop their token.
func (s *DefaultUserService) LogOut() *models.Viewer {
	return &models.Viewer{DidRequest: true}
}

func (s *DefaultUserService) loadViewer(ctx context.Context, viewerID string) (*models.User, error) {
	if viewerID == "" {
		return nil, ErrViewerNotFound
	}
	u, err := s.Users.GetByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrViewerNotFound
		}
		return nil, fmt.Errorf("failed to load viewer: %w", err)
	}
	return u, nil
}

// ConnectStripe links the viewer's Stripe account so they can receive payouts.
func (s *DefaultUserService) ConnectStripe(ctx context.Context, viewerID, code string) (*models.Viewer, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrMissingCode
	}
	viewer, err := s.loadViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	walletID, err := s.Payments.Connect(ctx, code)
	if err != nil {
		return nil, err
	}
	updated, err := s.Users.SetWallet(ctx, viewer.ID, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to store wallet: %w", err)
	}

	s.Logger.Info("stripe connected", zap.String("userId", viewer.ID))
	return &models.Viewer{ID: updated.ID, Avatar: updated.Avatar, HasWallet: updated.HasWallet(), DidRequest: true}, nil
}

// DisconnectStripe revokes and forgets the viewer's Stripe account.
func (s *DefaultUserService) DisconnectStripe(ctx context.Context, viewerID string) (*models.Viewer, error) {
	viewer, err := s.loadViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if viewer.HasWallet() {
		if err := s.Payments.Disconnect(ctx, viewer.WalletID); err != nil {
			s.Logger.Warn("stripe deauthorize failed", zap.String("userId", viewer.ID), zap.Error(err))
		}
	}
	updated, err := s.Users.SetWallet(ctx, viewer.ID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to clear wallet: %w", err)
	}
	return &models.Viewer{ID: updated.ID, Avatar: updated.Avatar, HasWallet: updated.HasWallet(), DidRequest: true}, nil
}
