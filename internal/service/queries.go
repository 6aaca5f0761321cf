package service

import "github.com/sakif/friendgraph/internal/model"

// Reads take the shared lock and return copies; nothing here recomputes
// derived state. Errors are already apperrors and propagate unchanged.

// AliasOf returns the alias registered for id.
func (s *SocialService) AliasOf(id int) (string, error) {
	defer s.rlock()()
	return s.net.AliasOf(id)
}

// IDOf returns the id that owns alias.
func (s *SocialService) IDOf(alias string) (int, error) {
	defer s.rlock()()
	return s.net.IDOf(alias)
}

// FriendsOf returns the sorted aliases of id's friends.
func (s *SocialService) FriendsOf(id int) ([]string, error) {
	defer s.rlock()()
	return s.net.FriendsOf(id)
}

// AcquaintancesOf returns the sorted aliases of id's acquaintances.
func (s *SocialService) AcquaintancesOf(id int) ([]string, error) {
	defer s.rlock()()
	return s.net.AcquaintancesOf(id)
}

// Degree is the number of friends id has.
func (s *SocialService) Degree(id int) (int, error) {
	defer s.rlock()()
	return s.net.Degree(id)
}

// IsFriend reports whether a and b are direct friends.
func (s *SocialService) IsFriend(a, b int) (bool, error) {
	defer s.rlock()()
	return s.net.IsFriend(a, b)
}

// IsAcquaintance reports whether a and b share a friend without being friends.
func (s *SocialService) IsAcquaintance(a, b int) (bool, error) {
	defer s.rlock()()
	return s.net.IsAcquaintance(a, b)
}

// FriendshipCount is the number of undirected friendships.
func (s *SocialService) FriendshipCount() int {
	defer s.rlock()()
	return s.net.FriendshipCount()
}

// AllUserIDs returns every registered id in ascending order.
func (s *SocialService) AllUserIDs() []int {
	defer s.rlock()()
	return s.net.UserIDs()
}

// MostPopular returns the id with the most friends (smallest id on ties).
// It fails with apperror.ErrEmptyPopulation when nobody is registered.
func (s *SocialService) MostPopular() (int, error) {
	defer s.rlock()()
	return s.net.MostPopular()
}

// MostPopularAcquaintances returns the acquaintances of the most popular user.
func (s *SocialService) MostPopularAcquaintances() ([]string, error) {
	defer s.rlock()()
	return s.net.MostPopularAcquaintances()
}

// Stats returns user and friendship counts and the most popular id.
func (s *SocialService) Stats() model.Stats {
	defer s.rlock()()
	return s.net.Stats()
}

// CheckInvariants verifies the full representation. See network.CheckInvariants.
func (s *SocialService) CheckInvariants() error {
	defer s.rlock()()
	return s.net.CheckInvariants()
}
