// Package service is the boundary callers use to drive the social network.
//
// SocialService sits on top of the core graph:
//
//	caller → SocialService (locking, logging, error context) → network.Network → UserRepository
//
// KEY RESPONSIBILITIES:
//   - Serialize access: one exclusive lock per mutation, shared lock for reads
//   - Log every mutation with structured fields
//   - Wrap errors with the operation that failed, keeping apperror kinds
//     reachable through errors.Is
package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/sakif/friendgraph/internal/model"
	"github.com/sakif/friendgraph/internal/network"
	"github.com/sakif/friendgraph/internal/repository"
)

// Config holds service options.
type Config struct {
	// Concurrent guards the whole network with a single RWMutex. A mutation
	// touches the friend sets of many users, the friendship count and the
	// popularity cache at once, so nothing finer-grained is safe.
	// Turn it off only when a single goroutine owns the service.
	Concurrent bool
	// VerifyInvariants runs network.CheckInvariants after every successful
	// mutation and logs any violation at Error level. It costs a full
	// graph walk per call.
	VerifyInvariants bool
}

// DefaultConfig enables locking and leaves invariant checks off.
func DefaultConfig() Config {
	return Config{
		Concurrent:       true,
		VerifyInvariants: false,
	}
}

// SocialService exposes every network operation behind one lock.
type SocialService struct {
	mu     sync.RWMutex
	config Config
	net    *network.Network
	logger *slog.Logger
}

// NewSocialService wires a network on top of users. The service takes
// ownership of users: callers must not register or delete through it
// afterwards. A nil logger falls back to slog.Default().
func NewSocialService(users repository.UserRepository, cfg Config, logger *slog.Logger) *SocialService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SocialService{
		config: cfg,
		net:    network.New(users),
		logger: logger,
	}
}

func (s *SocialService) lock() func() {
	if !s.config.Concurrent {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *SocialService) rlock() func() {
	if !s.config.Concurrent {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// Register adds a user named alias under the caller-chosen id.
func (s *SocialService) Register(alias string, id int) error {
	defer s.lock()()

	if err := s.net.Register(model.User{ID: id, Alias: alias}); err != nil {
		s.logger.Warn("user registration rejected",
			slog.Int("id", id),
			slog.String("alias", alias),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("registering user %d: %w", id, err)
	}

	s.logger.Info("user registered",
		slog.Int("id", id),
		slog.String("alias", alias),
	)
	s.verify("register")
	return nil
}

// Unregister deletes a user and every friendship it holds.
func (s *SocialService) Unregister(id int) error {
	defer s.lock()()

	// Resolved up front for the log line; Unregister reports unknown ids.
	alias, _ := s.net.AliasOf(id)
	degree, _ := s.net.Degree(id)

	if err := s.net.Unregister(id); err != nil {
		s.logger.Warn("user deletion rejected",
			slog.Int("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("deleting user %d: %w", id, err)
	}

	s.logger.Info("user deleted",
		slog.Int("id", id),
		slog.String("alias", alias),
		slog.Int("droppedFriendships", degree),
		slog.Int("friendships", s.net.FriendshipCount()),
	)
	s.verify("unregister")
	return nil
}

// AddFriendship makes a and b friends and updates the derived state.
func (s *SocialService) AddFriendship(a, b int) error {
	defer s.lock()()

	if err := s.net.AddFriendship(a, b); err != nil {
		s.logger.Warn("friendship rejected",
			slog.Int("a", a),
			slog.Int("b", b),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("adding friendship %d-%d: %w", a, b, err)
	}

	s.logMutation("friendship added", a, b)
	s.verify("add friendship")
	return nil
}

// RemoveFriendship ends the friendship between a and b.
func (s *SocialService) RemoveFriendship(a, b int) error {
	defer s.lock()()

	if err := s.net.RemoveFriendship(a, b); err != nil {
		s.logger.Warn("friendship removal rejected",
			slog.Int("a", a),
			slog.Int("b", b),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("removing friendship %d-%d: %w", a, b, err)
	}

	s.logMutation("friendship removed", a, b)
	s.verify("remove friendship")
	return nil
}

func (s *SocialService) logMutation(msg string, a, b int) {
	attrs := []any{
		slog.Int("a", a),
		slog.Int("b", b),
		slog.Int("friendships", s.net.FriendshipCount()),
	}
	if id, err := s.net.MostPopular(); err == nil {
		attrs = append(attrs, slog.Int("mostPopular", id))
	}
	s.logger.Info(msg, attrs...)
}

// verify runs the invariant check when enabled. Callers hold the lock.
func (s *SocialService) verify(op string) {
	if !s.config.VerifyInvariants {
		return
	}
	if err := s.net.CheckInvariants(); err != nil {
		s.logger.Error("network invariant violated",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	}
}
