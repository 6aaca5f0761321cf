// Package model defines the data structures shared by the registry, the
// friendship network and the service layer.
package model

// MaxAliasLength is the longest alias, in characters, a user may register with.
const MaxAliasLength = 200

// User is a registered member of the network.
//
// WHY TWO KEYS?
// The ID is chosen by the caller and is the internal join key: adjacency
// and acquaintance sets are indexed by it. The Alias is the externally
// visible name: friend and acquaintance lists are reported as aliases.
// The registry keeps the two in exact one-to-one correspondence.
type User struct {
	ID    int    `json:"id"`
	Alias string `json:"alias"`
}

// Stats is a point-in-time summary of the network.
// MostPopular is nil when no users are registered.
type Stats struct {
	Users       int  `json:"users"`
	Friendships int  `json:"friendships"`
	MostPopular *int `json:"mostPopular,omitempty"`
}
