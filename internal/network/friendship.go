package network

import "github.com/sakif/friendgraph/internal/apperror"

// AddFriendship makes a and b friends.
//
// Preconditions are checked before anything changes: both users exist,
// a != b, and they are not already friends.
func (n *Network) AddFriendship(a, b int) error {
	if err := n.checkPair(a, b); err != nil {
		return err
	}
	if n.friends[a].Contains(b) {
		return apperror.EdgeAlreadyExists(a, b)
	}

	n.friends[a].Add(b)
	n.friends[b].Add(a)
	n.friendships++

	n.onFriendshipAdded(a, b)
	n.recomputeMostPopular()
	return nil
}

// RemoveFriendship ends the friendship between a and b.
func (n *Network) RemoveFriendship(a, b int) error {
	if err := n.checkPair(a, b); err != nil {
		return err
	}
	if !n.friends[a].Contains(b) {
		return apperror.EdgeDoesNotExist(a, b)
	}

	n.removeEdge(a, b)
	n.recomputeMostPopular()
	return nil
}

// removeEdge drops an existing edge and rebuilds the affected acquaintance
// sets. It leaves the popularity cache to the caller.
func (n *Network) removeEdge(a, b int) {
	beforeA := n.friends[a].Clone()
	beforeB := n.friends[b].Clone()

	n.friends[a].Remove(b)
	n.friends[b].Remove(a)
	n.friendships--

	n.onFriendshipRemoved(a, b, beforeA, beforeB)
}

func (n *Network) checkPair(a, b int) error {
	if err := n.checkKnown(a, b); err != nil {
		return err
	}
	if a == b {
		return apperror.SelfReference(a)
	}
	return nil
}

// Degree is the number of friends id has.
func (n *Network) Degree(id int) (int, error) {
	set, ok := n.friends[id]
	if !ok {
		return 0, apperror.UnknownUser(id)
	}
	return set.Cardinality(), nil
}

// IsFriend reports whether a and b are direct friends.
func (n *Network) IsFriend(a, b int) (bool, error) {
	if err := n.checkKnown(a, b); err != nil {
		return false, err
	}
	return n.friends[a].Contains(b), nil
}

// IsAcquaintance reports whether a and b share a friend without being
// friends themselves.
func (n *Network) IsAcquaintance(a, b int) (bool, error) {
	if err := n.checkKnown(a, b); err != nil {
		return false, err
	}
	return n.acquaintances[a].Contains(b), nil
}

func (n *Network) checkKnown(ids ...int) error {
	for _, id := range ids {
		if _, ok := n.friends[id]; !ok {
			return apperror.UnknownUser(id)
		}
	}
	return nil
}
