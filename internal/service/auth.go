package service

import (
	"context"

	"github.com/inkpress/backend/internal/db"
	"github.com/inkpress/backend/internal/model"
)

// AuthService owns the session state machine: login issues a pair and
// persists the refresh value, refresh rotates it behind a conditional
// update, logout clears it.
type AuthService struct {
	users  UserRepo
	tokens *TokenService
	creds  *Credentials
}

func NewAuthService(users UserRepo, tokens *TokenService, creds *Credentials) *AuthService {
	return &AuthService{users: users, tokens: tokens, creds: creds}
}

// Login returns the authenticated user and a fresh token pair.
// ErrNotFound and ErrInvalidCredential stay distinct here; the handler
// renders them identically to avoid account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, model.TokenPair, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, model.TokenPair{}, ErrNotFound
		}
		return nil, model.TokenPair{}, err
	}

	if err := s.creds.Compare(user.PasswordHash, password); err != nil {
		return nil, model.TokenPair{}, err
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, model.TokenPair{}, err
	}

	if err := s.users.SetRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, model.TokenPair{}, err
	}

	return user, pair, nil
}

// Refresh exchanges a valid, still-current refresh token for a new pair.
// The persisted value is swapped with a compare-and-set: if the
// presented token is no longer the stored one (rotated out, cleared, or
// a concurrent refresh won the race), the exchange fails with
// ErrSessionInvalid and no tokens are issued to the caller.
func (s *AuthService) Refresh(ctx context.Context, presented string) (string, model.TokenPair, error) {
	userID, err := s.tokens.Verify(presented, TokenRefresh)
	if err != nil {
		return "", model.TokenPair{}, err
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if db.IsNoRows(err) {
			return "", model.TokenPair{}, ErrNotFound
		}
		return "", model.TokenPair{}, err
	}

	pair, err := s.issuePair(userID)
	if err != nil {
		return "", model.TokenPair{}, err
	}

	rotated, err := s.users.RotateRefreshToken(ctx, userID, presented, pair.RefreshToken)
	if err != nil {
		return "", model.TokenPair{}, err
	}
	if !rotated {
		return "", model.TokenPair{}, ErrSessionInvalid
	}

	return userID, pair, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.users.ClearRefreshToken(ctx, userID)
}

func (s *AuthService) issuePair(userID string) (model.TokenPair, error) {
	access, err := s.tokens.IssueAccess(userID)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := s.tokens.IssueRefresh(userID)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
