// Package repository declares the storage contracts the network is built on.
//
// The registry is the only owner of user identity: every other component
// refers to users by id and resolves aliases through this interface.
package repository

import "github.com/sakif/friendgraph/internal/model"

// UserRepository is the bidirectional id <-> alias registry.
//
// CONTRACT:
//   - Register fails with apperror.ErrDuplicateUser if the id is taken,
//     apperror.ErrInvalidAlias if the alias is empty or too long, and
//     apperror.ErrDuplicateAlias if another live id owns the alias.
//   - Unregister fails with apperror.ErrUnknownUser and removes both
//     directions of the mapping otherwise.
//   - Lookups fail with apperror.ErrUnknownUser / apperror.ErrUnknownAlias.
//
// A failed call never changes the mapping.
type UserRepository interface {
	Register(user model.User) error
	Unregister(id int) error
	AliasOf(id int) (string, error)
	IDOf(alias string) (int, error)
	Exists(id int) bool
	// IDs returns every registered id in ascending order.
	IDs() []int
	Len() int
}
