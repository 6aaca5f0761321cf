package network

import "github.com/sakif/friendgraph/internal/apperror"

// popularity caches the id of the most popular user. Only the id is kept:
// its acquaintance set is looked up again on every read, so the cache can
// never point at a set that has since been replaced.
type popularity struct {
	id int
	ok bool // false when there are no users
}

func (p popularity) get() (int, bool) {
	return p.id, p.ok
}

// recomputeMostPopular picks the user with the most friends, breaking ties
// by the smallest id. It is a full O(users) scan and runs after every
// mutation that can change a degree or the population.
//
// The result equals an ascending-id scan with a strict ">" comparison; the
// explicit id tie-break lets the scan walk the map in any order.
func (n *Network) recomputeMostPopular() {
	best := popularity{}
	bestDegree := -1
	for id, set := range n.friends {
		d := set.Cardinality()
		if d > bestDegree || (d == bestDegree && id < best.id) {
			best = popularity{id: id, ok: true}
			bestDegree = d
		}
	}
	n.popular = best
}

// MostPopular returns the id of the user with the most friends, the
// smallest such id on ties.
func (n *Network) MostPopular() (int, error) {
	id, ok := n.popular.get()
	if !ok {
		return 0, apperror.EmptyPopulation()
	}
	return id, nil
}

// MostPopularAcquaintances returns the acquaintances of the most popular
// user as sorted aliases.
func (n *Network) MostPopularAcquaintances() ([]string, error) {
	id, err := n.MostPopular()
	if err != nil {
		return nil, err
	}
	return n.AcquaintancesOf(id)
}
