package user

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned by repositories when no row matches.
var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByIDs returns the users that exist; unknown IDs are skipped.
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	ListByRole(ctx context.Context, role Role) ([]*User, error)
}
