// Package memory implements repository.UserRepository with two Go maps.
//
// The registry is not safe for concurrent use. The service layer serializes
// access to it together with the rest of the network.
package memory

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/sakif/friendgraph/internal/apperror"
	"github.com/sakif/friendgraph/internal/model"
	"github.com/sakif/friendgraph/internal/repository"
)

var _ repository.UserRepository = (*Registry)(nil)

// Config holds registry limits.
type Config struct {
	// MaxAliasLength is the longest alias accepted, counted in characters.
	MaxAliasLength int
}

// DefaultConfig returns the limits of the social network: aliases of 1 to
// model.MaxAliasLength characters.
func DefaultConfig() Config {
	return Config{MaxAliasLength: model.MaxAliasLength}
}

// Registry keeps aliases and ids as exact inverses of each other.
type Registry struct {
	config  Config
	aliases map[int]string // id -> alias
	ids     map[string]int // alias -> id
}

// New creates an empty registry. A non-positive MaxAliasLength falls back to
// the default.
func New(cfg Config) *Registry {
	if cfg.MaxAliasLength <= 0 {
		cfg.MaxAliasLength = model.MaxAliasLength
	}
	return &Registry{
		config:  cfg,
		aliases: make(map[int]string),
		ids:     make(map[string]int),
	}
}

// ValidateAlias checks the alias against the configured length bounds.
func (r *Registry) ValidateAlias(alias string) error {
	if alias == "" {
		return apperror.InvalidAlias("alias is required")
	}
	if utf8.RuneCountInString(alias) > r.config.MaxAliasLength {
		return apperror.InvalidAlias(
			fmt.Sprintf("alias must be %d characters or less", r.config.MaxAliasLength))
	}
	return nil
}

// Register binds user.ID and user.Alias to each other.
//
// All checks run before the maps are touched, so a rejected registration
// leaves the registry exactly as it was.
func (r *Registry) Register(user model.User) error {
	if _, ok := r.aliases[user.ID]; ok {
		return apperror.DuplicateUser(user.ID)
	}
	if err := r.ValidateAlias(user.Alias); err != nil {
		return err
	}
	if owner, ok := r.ids[user.Alias]; ok {
		return apperror.DuplicateAlias(user.Alias, owner)
	}

	r.aliases[user.ID] = user.Alias
	r.ids[user.Alias] = user.ID
	return nil
}

// Unregister removes both directions of the mapping for id.
func (r *Registry) Unregister(id int) error {
	alias, ok := r.aliases[id]
	if !ok {
		return apperror.UnknownUser(id)
	}
	delete(r.aliases, id)
	delete(r.ids, alias)
	return nil
}

func (r *Registry) AliasOf(id int) (string, error) {
	alias, ok := r.aliases[id]
	if !ok {
		return "", apperror.UnknownUser(id)
	}
	return alias, nil
}

func (r *Registry) IDOf(alias string) (int, error) {
	id, ok := r.ids[alias]
	if !ok {
		return 0, apperror.UnknownAlias(alias)
	}
	return id, nil
}

func (r *Registry) Exists(id int) bool {
	_, ok := r.aliases[id]
	return ok
}

// IDs returns a fresh, ascending slice of every registered id.
func (r *Registry) IDs() []int {
	return slices.Sorted(maps.Keys(r.aliases))
}

func (r *Registry) Len() int {
	return len(r.aliases)
}
