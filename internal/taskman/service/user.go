package service

import (
	"context"
	"log/slog"

	"github.com/Banup3/TaskManager/internal/taskman/domain"
	"github.com/Banup3/TaskManager/internal/taskman/store"
	"github.com/Banup3/TaskManager/pkg/cryptox"
	"github.com/Banup3/TaskManager/pkg/slogx"
)

type UserService struct {
	Store store.Store
	Auth  *AuthService
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields and returns a fresh token so the
// caller's claims stay in sync with the stored profile. A supplied password
// is re-hashed before it touches the database.
func (s *UserService) UpdateProfile(
	ctx context.Context,
	userID string,
	name, bio, avatar, password *string,
) (*AuthResult, error) {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if name != nil || bio != nil || avatar != nil {
			if err := tx.Users().UpdateProfile(ctx, userID, name, bio, avatar); err != nil {
				return err
			}
		}
		if password != nil {
			hash, err := cryptox.HashPassword(*password)
			if err != nil {
				return err
			}
			if err := tx.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	l.Info("profile updated", slog.String("user_id", userID))
	return s.Auth.issue(user)
}

// DeleteAccount removes the user permanently. Their tasks go with them via
// the foreign key cascade; outstanding tokens turn stale since the subject
// no longer resolves.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		return err
	}

	l.Info("account deleted", slog.String("user_id", userID))
	return nil
}
