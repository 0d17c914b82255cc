package service

import (
	"context"
	"errors"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// checkIdentityAvailable verifies that username, email and phone (any
// of which may be empty, meaning "unchanged") are not taken by a user
// other than excludeID. The unique store indexes remain the backstop
// against concurrent inserts racing past this check.
func checkIdentityAvailable(ctx context.Context, users ports.UserRepository, username, email, phone, excludeID string) error {
	if username != "" {
		existing, err := users.FindByUsername(ctx, username)
		if err == nil && existing.ID != excludeID {
			return domain.ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
	}
	if email != "" {
		existing, err := users.FindByEmail(ctx, email)
		if err == nil && existing.ID != excludeID {
			return domain.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
	}
	if phone != "" {
		existing, err := users.FindByPhone(ctx, phone)
		if err == nil && existing.ID != excludeID {
			return domain.ErrPhoneTaken
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
	}
	return nil
}
