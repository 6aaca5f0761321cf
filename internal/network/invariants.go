package network

import (
	"errors"
	"fmt"
)

// CheckInvariants verifies the whole representation and returns every
// violation found, joined. A nil result means:
//
//   - the registry, friend sets and acquaintance sets know the same ids,
//     and every alias maps back to its id
//   - friendship and acquaintance are symmetric and irreflexive
//   - no user is both a friend and an acquaintance of another
//   - the friendship count is half the sum of all degrees
//   - every acquaintance set equals a fresh derivation from the friend sets
//   - the popularity cache holds the smallest id of maximum degree
//
// It walks the entire graph and is meant for tests and debugging.
func (n *Network) CheckInvariants() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	ids := n.users.IDs()
	if len(n.friends) != len(ids) || len(n.acquaintances) != len(ids) {
		fail("identity: %d registered, %d friend sets, %d acquaintance sets",
			len(ids), len(n.friends), len(n.acquaintances))
	}

	degrees := 0
	for _, id := range ids {
		alias, err := n.users.AliasOf(id)
		if err != nil {
			fail("identity: %w", err)
			continue
		}
		if back, err := n.users.IDOf(alias); err != nil || back != id {
			fail("identity: alias %q of user %d resolves to %d (%v)", alias, id, back, err)
		}

		friends, ok := n.friends[id]
		if !ok {
			fail("identity: user %d has no friend set", id)
			continue
		}
		acq, ok := n.acquaintances[id]
		if !ok {
			fail("identity: user %d has no acquaintance set", id)
			continue
		}
		degrees += friends.Cardinality()

		if friends.Contains(id) {
			fail("irreflexive: user %d is its own friend", id)
		}
		if acq.Contains(id) {
			fail("irreflexive: user %d is its own acquaintance", id)
		}
		friends.Each(func(f int) bool {
			if other, ok := n.friends[f]; !ok || !other.Contains(id) {
				fail("symmetry: %d lists %d as friend but not the reverse", id, f)
			}
			if acq.Contains(f) {
				fail("disjoint: %d is both friend and acquaintance of %d", f, id)
			}
			return false
		})
		acq.Each(func(v int) bool {
			if other, ok := n.acquaintances[v]; !ok || !other.Contains(id) {
				fail("symmetry: %d lists %d as acquaintance but not the reverse", id, v)
			}
			return false
		})
		if want := n.deriveAcquaintances(id); !acq.Equal(want) {
			fail("derivation: acquaintances of %d are %v, want %v", id, acq.ToSlice(), want.ToSlice())
		}
	}

	if degrees != 2*n.friendships {
		fail("count: friendship count %d, degree sum %d", n.friendships, degrees)
	}

	// Reference rule: ascending ids, strict ">".
	wantID, wantOK, maxDegree := 0, false, -1
	for _, id := range ids {
		if set, ok := n.friends[id]; ok && set.Cardinality() > maxDegree {
			wantID, wantOK, maxDegree = id, true, set.Cardinality()
		}
	}
	if gotID, gotOK := n.popular.get(); gotOK != wantOK || gotID != wantID {
		fail("popularity: cached %d (present=%v), want %d (present=%v)", gotID, gotOK, wantID, wantOK)
	}

	return errors.Join(errs...)
}
