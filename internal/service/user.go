package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/inkpress/backend/internal/db"
	"github.com/inkpress/backend/internal/model"
	"github.com/inkpress/backend/internal/validate"
)

// UserService implements signup and profile maintenance with the paired
// avatar lifecycle. Every failure after a file was staged cleans the
// temp file up before the error propagates.
type UserService struct {
	users UserRepo
	media Media
	creds *Credentials
}

func NewUserService(users UserRepo, media Media, creds *Credentials) *UserService {
	return &UserService{users: users, media: media, creds: creds}
}

// Signup creates an identity with a mandatory avatar. The email
// pre-check is a fast path; the unique index is the authoritative guard
// and a store-level violation after the upload releases the fresh blob.
func (s *UserService) Signup(ctx context.Context, in validate.SignupInput, localPath, contentType string) (*model.User, error) {
	if localPath == "" {
		return nil, ErrFieldRequired
	}

	if _, err := s.users.GetUserByEmail(ctx, in.Email); err == nil {
		s.media.CleanupLocal(localPath)
		return nil, ErrConflict
	} else if !db.IsNoRows(err) {
		s.media.CleanupLocal(localPath)
		return nil, err
	}

	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		s.media.CleanupLocal(localPath)
		return nil, err
	}

	ref, err := s.media.AttachNew(ctx, localPath, contentType)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &model.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Fullname:     in.Fullname,
		PasswordHash: hash,
		Avatar:       ref.URL,
		AvatarID:     ref.ID,
	})
	if err != nil {
		// The blob is not yet referenced by any committed record.
		_ = s.media.Release(ctx, ref)
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile replaces the fullname and, when a file is supplied, the
// avatar. The record commit happens before the superseded blob is
// released; a failed commit releases the new blob instead, leaving the
// record pointing at the old one.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in validate.ProfileInput, localPath, contentType string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.media.CleanupLocal(localPath)
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	avatar, avatarID := user.Avatar, user.AvatarID
	replaced := false
	if localPath != "" {
		ref, err := s.media.Replace(ctx, localPath, contentType)
		if err != nil {
			return nil, err
		}
		avatar, avatarID = ref.URL, ref.ID
		replaced = true
	}

	updated, err := s.users.UpdateUserProfile(ctx, userID, in.Fullname, avatar, avatarID)
	if err != nil {
		if replaced {
			_ = s.media.Release(ctx, model.MediaRef{ID: avatarID, URL: avatar})
		}
		return nil, err
	}

	if replaced && user.AvatarID != "" {
		// Commit succeeded; superseded blob failure is logged only.
		_ = s.media.Release(ctx, model.MediaRef{ID: user.AvatarID, URL: user.Avatar})
	}

	return updated, nil
}
