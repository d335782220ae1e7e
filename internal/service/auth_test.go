package service

import (
	"context"
	"errors"
	"testing"

	"github.com/inkpress/backend/internal/model"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()

	creds := NewCredentials()
	hash, err := creds.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	repo := newFakeUserRepo(&model.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		Fullname:     "Ada Lovelace",
		PasswordHash: hash,
		Avatar:       "https://cdn.example.com/avatar",
		AvatarID:     "blob-avatar",
	})

	tokens := testTokenService(t, "4h", "168h")
	return NewAuthService(repo, tokens, creds), repo
}

func TestLoginSuccess(t *testing.T) {
	svc, repo := newAuthFixture(t)

	user, pair, err := svc.Login(context.Background(), "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("expected user-1, got %s", user.ID)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a full token pair")
	}

	stored, _ := repo.GetUserByID(context.Background(), "user-1")
	if stored.RefreshToken != pair.RefreshToken {
		t.Fatalf("refresh value was not persisted")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoginBadPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestRefreshRotationChains(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, pair, err := svc.Login(ctx, "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Each refresh must invalidate the presented token and hand back a
	// usable successor, indefinitely.
	current := pair.RefreshToken
	for i := 0; i < 3; i++ {
		userID, next, err := svc.Refresh(ctx, current)
		if err != nil {
			t.Fatalf("rotation %d: %v", i, err)
		}
		if userID != "user-1" {
			t.Fatalf("rotation %d: wrong user %s", i, userID)
		}
		if next.RefreshToken == current {
			t.Fatalf("rotation %d: token was not rotated", i)
		}
		current = next.RefreshToken
	}
}

func TestRefreshReplayDetected(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, pair, err := svc.Login(ctx, "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, _, err := svc.Refresh(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	// Second use of the rotated-out token is the theft signal.
	_, _, err = svc.Refresh(ctx, pair.RefreshToken)
	if !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestRefreshRejectsForgedToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Refresh(context.Background(), "not-a-jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, pair, err := svc.Login(ctx, "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, "user-1"); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	_, _, err = svc.Refresh(ctx, pair.RefreshToken)
	if !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid after logout, got %v", err)
	}
}

func TestReloginAfterLogout(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	if err := svc.Logout(ctx, "user-1"); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	_, pair, err := svc.Login(ctx, "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("re-login: %v", err)
	}
	if _, _, err := svc.Refresh(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("refresh after re-login: %v", err)
	}
}
