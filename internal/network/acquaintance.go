package network

import mapset "github.com/deckarep/golang-set/v2"

// ACQUAINTANCES:
// V is an acquaintance of U when some friend W of U is a friend of V, V is
// not a friend of U, and V != U. The relation is symmetric, so both
// directions are stored and updated together.
//
// The two update rules below are deliberately different. Adding an edge can
// only create acquaintances bridged by that edge, so a fan-out from its two
// endpoints is exact. Removing an edge can flip pairs in either direction
// depending on which other witnesses remain, so the affected users are
// re-derived from the current friend sets instead.

// onFriendshipAdded runs after the edge a-b has been inserted.
// Cost: O(degree(a) + degree(b)).
func (n *Network) onFriendshipAdded(a, b int) {
	n.acquaintances[a].Remove(b)
	n.acquaintances[b].Remove(a)

	n.bridge(a, b)
	n.bridge(b, a)
}

// bridge makes every friend of via, other than u and u's own friends, an
// acquaintance of u (and u of them). via is the witness.
func (n *Network) bridge(u, via int) {
	n.friends[via].Each(func(f int) bool {
		if f != u && !n.friends[u].Contains(f) {
			n.acquaintances[u].Add(f)
			n.acquaintances[f].Add(u)
		}
		return false
	})
}

// onFriendshipRemoved runs after the edge a-b has been deleted. beforeA and
// beforeB are the friend sets of a and b as they were before the removal.
// Cost: O(|affected| * maxDegree^2).
func (n *Network) onFriendshipRemoved(a, b int, beforeA, beforeB mapset.Set[int]) {
	affected := beforeA.Union(beforeB)
	affected.Add(a)
	affected.Add(b)

	affected.Each(func(id int) bool {
		n.acquaintances[id] = n.deriveAcquaintances(id)
		return false
	})
}

// deriveAcquaintances computes id's acquaintances from the current friend
// sets alone.
func (n *Network) deriveAcquaintances(id int) mapset.Set[int] {
	own := n.friends[id]
	out := mapset.NewThreadUnsafeSet[int]()
	own.Each(func(f int) bool {
		n.friends[f].Each(func(w int) bool {
			if w != id && !own.Contains(w) {
				out.Add(w)
			}
			return false
		})
		return false
	})
	return out
}
