// Package users is the catalog of sample customers the demo ships with.
package users

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackzampolin/coffeequest/internal/quest"
)

//go:embed seed.json
var seedJSON []byte

// ErrNotFound is returned by Find for an unknown id.
var ErrNotFound = errors.New("user not found")

var seed = mustParse(seedJSON)

func mustParse(data []byte) []quest.UserProfile {
	var list []quest.UserProfile
	if err := json.Unmarshal(data, &list); err != nil {
		panic(fmt.Sprintf("users: invalid seed data: %v", err))
	}
	return list
}

// List returns a copy of the seed users.
func List() []quest.UserProfile {
	out := make([]quest.UserProfile, len(seed))
	copy(out, seed)
	return out
}

// Find returns the seed user with id.
func Find(id string) (quest.UserProfile, error) {
	for _, u := range seed {
		if u.ID == id {
			return u, nil
		}
	}
	return quest.UserProfile{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
