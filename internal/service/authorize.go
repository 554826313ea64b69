package service

import (
	"context"
	"errors"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"
)

// authorizeOwner applies the owner-or-admin rule against the owner
// email read from the stored resource, never from the request. The
// caller must fetch the resource first; this closes the window between
// check and action as tightly as the store allows.
func authorizeOwner(ctx context.Context, users repository.UserRepository, ownerEmail, callerEmail string) error {
	if ownerEmail == callerEmail {
		return nil
	}
	caller, err := users.FindByEmail(ctx, callerEmail)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrForbidden
	}
	if err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
