package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/friendgraph/internal/apperror"
	"github.com/sakif/friendgraph/internal/repository/memory"
)

func newTestService(t *testing.T) *SocialService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := DefaultConfig()
	cfg.VerifyInvariants = true
	return NewSocialService(memory.New(memory.DefaultConfig()), cfg, logger)
}

// newLoggedService returns a service whose JSON log output lands in buf.
func newLoggedService(t *testing.T, buf *bytes.Buffer) *SocialService {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewSocialService(memory.New(memory.DefaultConfig()), DefaultConfig(), logger)
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestSocialService_Scenarios(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Register("Ana", 1))
	require.NoError(t, svc.Register("Beto", 2))
	require.NoError(t, svc.Register("Cami", 3))

	require.NoError(t, svc.AddFriendship(1, 2))
	acq, err := svc.AcquaintancesOf(1)
	require.NoError(t, err)
	assert.Empty(t, acq)

	require.NoError(t, svc.AddFriendship(2, 3))
	friends, err := svc.FriendsOf(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Cami"}, friends)
	acq, err = svc.AcquaintancesOf(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cami"}, acq)
	acq, err = svc.AcquaintancesOf(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana"}, acq)

	most, err := svc.MostPopularAcquaintances()
	require.NoError(t, err)
	assert.Empty(t, most, "Beto is the most popular and has no acquaintances")

	require.NoError(t, svc.RemoveFriendship(1, 2))
	for _, id := range svc.AllUserIDs() {
		acq, err := svc.AcquaintancesOf(id)
		require.NoError(t, err)
		assert.Empty(t, acq, "user %d", id)
	}
	assert.Equal(t, 1, svc.FriendshipCount())
	require.NoError(t, svc.CheckInvariants())
}

func TestSocialService_ErrorsKeepKind(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Register("Ana", 1))

	tests := []struct {
		name     string
		err      error
		kind     error
		category error
		prefix   string
	}{
		{"duplicate user", svc.Register("Beto", 1), apperror.ErrDuplicateUser, apperror.ErrConflict, "registering user 1"},
		{"invalid alias", svc.Register("", 2), apperror.ErrInvalidAlias, apperror.ErrValidation, "registering user 2"},
		{"self reference", svc.AddFriendship(1, 1), apperror.ErrSelfReference, apperror.ErrValidation, "adding friendship 1-1"},
		{"unknown user", svc.RemoveFriendship(1, 5), apperror.ErrUnknownUser, apperror.ErrNotFound, "removing friendship 1-5"},
		{"unknown delete", svc.Unregister(5), apperror.ErrUnknownUser, apperror.ErrNotFound, "deleting user 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.ErrorIs(t, tt.err, tt.category)
			assert.True(t, strings.HasPrefix(tt.err.Error(), tt.prefix), "error %q", tt.err)
		})
	}
}

func TestSocialService_EmptyPopulation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.MostPopularAcquaintances()
	assert.True(t, errors.Is(err, apperror.ErrEmptyPopulation))
	assert.Nil(t, svc.Stats().MostPopular)
}

func TestSocialService_DeleteMostPopular(t *testing.T) {
	svc := newTestService(t)
	for i, alias := range []string{"Ana", "Beto", "Cami", "Dani"} {
		require.NoError(t, svc.Register(alias, i+1))
	}
	require.NoError(t, svc.AddFriendship(1, 2))
	require.NoError(t, svc.AddFriendship(2, 3))
	require.NoError(t, svc.AddFriendship(3, 4))

	id, err := svc.MostPopular()
	require.NoError(t, err)
	require.Equal(t, 2, id)

	require.NoError(t, svc.Unregister(2))

	stats := svc.Stats()
	assert.Equal(t, 3, stats.Users)
	assert.Equal(t, 1, stats.Friendships)
	require.NotNil(t, stats.MostPopular)
	assert.Equal(t, 3, *stats.MostPopular)

	ok, err := svc.IsAcquaintance(1, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSocialService_Logging(t *testing.T) {
	var buf bytes.Buffer
	svc := newLoggedService(t, &buf)

	require.NoError(t, svc.Register("Ana", 1))
	require.NoError(t, svc.Register("Beto", 2))
	require.NoError(t, svc.AddFriendship(1, 2))
	require.Error(t, svc.AddFriendship(1, 2))

	entries := logEntries(t, &buf)
	require.Len(t, entries, 4)

	assert.Equal(t, "user registered", entries[0]["msg"])
	assert.Equal(t, "Ana", entries[0]["alias"])

	added := entries[2]
	assert.Equal(t, "friendship added", added["msg"])
	assert.Equal(t, float64(1), added["friendships"])
	assert.Equal(t, float64(1), added["mostPopular"])

	rejected := entries[3]
	assert.Equal(t, "WARN", rejected["level"])
	assert.Equal(t, "friendship rejected", rejected["msg"])
	assert.Contains(t, rejected["error"], "already friends")
}

func TestSocialService_ConcurrentAccess(t *testing.T) {
	svc := newTestService(t)
	const users = 16
	for i := 0; i < users; i++ {
		require.NoError(t, svc.Register(fmt.Sprintf("user-%02d", i), i))
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < users; i++ {
				a, b := i, (i+w+1)%users
				// Collisions between writers are expected; only consistency matters.
				_ = svc.AddFriendship(a, b)
				_, _ = svc.AcquaintancesOf(a)
				_, _ = svc.MostPopularAcquaintances()
				if i%3 == 0 {
					_ = svc.RemoveFriendship(a, b)
				}
			}
		}(w)
	}
	wg.Wait()

	require.NoError(t, svc.CheckInvariants())
}

func TestSocialService_NilLogger(t *testing.T) {
	svc := NewSocialService(memory.New(memory.DefaultConfig()), Config{}, nil)
	assert.NoError(t, svc.Register("Ana", 1))
}
