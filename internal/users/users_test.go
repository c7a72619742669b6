package users

import (
	"errors"
	"testing"
)

func TestList(t *testing.T) {
	list := List()
	if len(list) != 3 {
		t.Fatalf("expected 3 seed users, got %d", len(list))
	}

	want := []struct{ id, name, city string }{
		{"u1", "Aarav", "Bengaluru"},
		{"u2", "Isha", "Pune"},
		{"u3", "Vikram", "Mumbai"},
	}
	for i, w := range want {
		if list[i].ID != w.id || list[i].Name != w.name || list[i].City != w.city {
			t.Errorf("user %d = %s/%s/%s, want %s/%s/%s", i, list[i].ID, list[i].Name, list[i].City, w.id, w.name, w.city)
		}
	}

	list[0].Name = "changed"
	if List()[0].Name != "Aarav" {
		t.Error("List must return a copy")
	}
}

func TestFind(t *testing.T) {
	u, err := Find("u3")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if u.Loyalty.Level != 5 || u.Preferences.RewardPreference != "early-access" {
		t.Errorf("unexpected profile %+v", u)
	}

	if _, err := Find("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
