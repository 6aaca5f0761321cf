// Package network maintains a friendship graph together with two caches
// derived from it: every user's acquaintances and the most popular user.
//
// COMPONENTS:
//
//	Registry (repository.UserRepository)  id <-> alias, owns identity
//	Friendship graph (friendship.go)       symmetric adjacency by id
//	Acquaintance maintainer (acquaintance.go)
//	Popularity tracker (popularity.go)
//
// Every mutation goes through the friendship graph, which updates the
// acquaintance sets and then the popularity cache before returning. Reads
// return the cached state and never recompute.
//
// A Network is not safe for concurrent use; see service.SocialService.
package network

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/sakif/friendgraph/internal/apperror"
	"github.com/sakif/friendgraph/internal/model"
	"github.com/sakif/friendgraph/internal/repository"
)

// Network is the social graph. The zero value is not usable; call New.
type Network struct {
	users repository.UserRepository

	// friends and acquaintances are keyed by id and hold ids. Aliases are
	// only resolved when a set is read.
	friends       map[int]mapset.Set[int]
	acquaintances map[int]mapset.Set[int]

	friendships int
	popular     popularity
}

// New builds a network on top of users. Users already present in the
// registry start with no friends.
//
// From here on the network owns users: every registration and deletion must
// go through the Network. A user added to the registry behind its back has no
// friend or acquaintance set and is reported as unknown by every mutation.
func New(users repository.UserRepository) *Network {
	n := &Network{
		users:         users,
		friends:       make(map[int]mapset.Set[int]),
		acquaintances: make(map[int]mapset.Set[int]),
	}
	for _, id := range users.IDs() {
		n.addVertex(id)
	}
	n.recomputeMostPopular()
	return n
}

func (n *Network) addVertex(id int) {
	n.friends[id] = mapset.NewThreadUnsafeSet[int]()
	n.acquaintances[id] = mapset.NewThreadUnsafeSet[int]()
}

// Register adds a user with no friends.
func (n *Network) Register(user model.User) error {
	if err := n.users.Register(user); err != nil {
		return err
	}
	n.addVertex(user.ID)
	n.recomputeMostPopular()
	return nil
}

// Unregister deletes a user. Each of its friendships is removed through the
// regular removal path first, so former neighbours have their acquaintances
// rebuilt before the user disappears from every structure.
func (n *Network) Unregister(id int) error {
	if err := n.checkKnown(id); err != nil {
		return err
	}

	// The friend set shrinks with every removal; walk a snapshot of it.
	for _, peer := range n.friends[id].ToSlice() {
		n.removeEdge(id, peer)
	}

	if err := n.users.Unregister(id); err != nil {
		return err
	}
	delete(n.friends, id)
	delete(n.acquaintances, id)

	n.recomputeMostPopular()
	return nil
}

// AliasOf returns the alias registered for id.
func (n *Network) AliasOf(id int) (string, error) {
	return n.users.AliasOf(id)
}

// IDOf returns the id that owns alias.
func (n *Network) IDOf(alias string) (int, error) {
	return n.users.IDOf(alias)
}

// UserIDs returns every registered id in ascending order.
func (n *Network) UserIDs() []int {
	return n.users.IDs()
}

// FriendshipCount is the number of undirected friendship edges.
func (n *Network) FriendshipCount() int {
	return n.friendships
}

// FriendsOf returns the aliases of id's friends, sorted.
func (n *Network) FriendsOf(id int) ([]string, error) {
	set, ok := n.friends[id]
	if !ok {
		return nil, apperror.UnknownUser(id)
	}
	return n.aliases(set)
}

// AcquaintancesOf returns the aliases of id's acquaintances, sorted.
func (n *Network) AcquaintancesOf(id int) ([]string, error) {
	set, ok := n.acquaintances[id]
	if !ok {
		return nil, apperror.UnknownUser(id)
	}
	return n.aliases(set)
}

// Stats summarises the network in one read.
func (n *Network) Stats() model.Stats {
	s := model.Stats{
		Users:       n.users.Len(),
		Friendships: n.friendships,
	}
	if id, ok := n.popular.get(); ok {
		s.MostPopular = &id
	}
	return s
}

// aliases resolves a set of ids into a fresh, sorted slice of aliases.
func (n *Network) aliases(set mapset.Set[int]) ([]string, error) {
	out := make([]string, 0, set.Cardinality())
	var err error
	set.Each(func(id int) bool {
		var alias string
		alias, err = n.users.AliasOf(id)
		if err != nil {
			return true
		}
		out = append(out, alias)
		return false
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(out)
	return out, nil
}
