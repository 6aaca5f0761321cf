package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/friendgraph/internal/apperror"
	"github.com/sakif/friendgraph/internal/model"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return New(DefaultConfig())
}

func registerTestUser(t *testing.T, r *Registry, id int, alias string) {
	t.Helper()
	require.NoError(t, r.Register(model.User{ID: id, Alias: alias}))
}

func TestRegister(t *testing.T) {
	r := newTestRegistry(t)
	registerTestUser(t, r, 1, "Ana")

	alias, err := r.AliasOf(1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", alias)

	id, err := r.IDOf("Ana")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	assert.True(t, r.Exists(1))
	assert.Equal(t, 1, r.Len())
}

func TestRegister_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		user    model.User
		wantErr error
	}{
		{"duplicate id", model.User{ID: 1, Alias: "Other"}, apperror.ErrDuplicateUser},
		{"duplicate alias", model.User{ID: 2, Alias: "Ana"}, apperror.ErrDuplicateAlias},
		{"empty alias", model.User{ID: 3, Alias: ""}, apperror.ErrInvalidAlias},
		{"alias too long", model.User{ID: 4, Alias: strings.Repeat("a", model.MaxAliasLength+1)}, apperror.ErrInvalidAlias},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(t)
			registerTestUser(t, r, 1, "Ana")

			err := r.Register(tt.user)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			// A rejected registration must not disturb the existing mapping.
			assert.Equal(t, 1, r.Len())
			id, err := r.IDOf("Ana")
			require.NoError(t, err)
			assert.Equal(t, 1, id)
		})
	}
}

func TestRegister_AliasLengthCountsCharacters(t *testing.T) {
	r := newTestRegistry(t)

	// 200 two-byte runes is 400 bytes but still 200 characters.
	alias := strings.Repeat("ñ", model.MaxAliasLength)
	require.NoError(t, r.Register(model.User{ID: 1, Alias: alias}))
}

func TestRegister_CustomLimit(t *testing.T) {
	r := New(Config{MaxAliasLength: 3})

	assert.NoError(t, r.Register(model.User{ID: 1, Alias: "abc"}))
	assert.ErrorIs(t, r.Register(model.User{ID: 2, Alias: "abcd"}), apperror.ErrInvalidAlias)
}

func TestUnregister(t *testing.T) {
	r := newTestRegistry(t)
	registerTestUser(t, r, 1, "Ana")

	require.NoError(t, r.Unregister(1))

	_, err := r.AliasOf(1)
	assert.ErrorIs(t, err, apperror.ErrUnknownUser)
	_, err = r.IDOf("Ana")
	assert.ErrorIs(t, err, apperror.ErrUnknownAlias)

	// The alias is free again once its owner is gone.
	registerTestUser(t, r, 2, "Ana")
}

func TestUnregister_Unknown(t *testing.T) {
	r := newTestRegistry(t)
	assert.ErrorIs(t, r.Unregister(9), apperror.ErrUnknownUser)
}

func TestIDs_Ascending(t *testing.T) {
	r := newTestRegistry(t)
	registerTestUser(t, r, 30, "c")
	registerTestUser(t, r, 10, "a")
	registerTestUser(t, r, 20, "b")

	assert.Equal(t, []int{10, 20, 30}, r.IDs())

	ids := r.IDs()
	ids[0] = 99
	assert.Equal(t, []int{10, 20, 30}, r.IDs(), "IDs() must return a copy")
}
