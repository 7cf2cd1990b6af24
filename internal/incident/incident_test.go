package incident

import (
	"errors"
	"testing"

	"dispatch/internal/geo"

	"github.com/google/uuid"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	cases := map[string]Type{
		"fire":            Fire,
		"FIRE":            Fire,
		" gas leak ":      GasLeak,
		"gas-leak":        GasLeak,
		"Cat on the tree": CatOnTree,
		"cat-in-tree":     CatOnTree,
	}
	for in, want := range cases {
		got, err := ParseType(in)
		if err != nil {
			t.Errorf("ParseType(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseType_Unknown(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "flood", "cat"} {
		if _, err := ParseType(in); !errors.Is(err, ErrUnknownType) {
			t.Errorf("ParseType(%q): expected ErrUnknownType, got %v", in, err)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	a := New(geo.Point{X: 1, Y: 2}, "smoke", nil, nil)
	b := New(geo.Point{X: 1, Y: 2}, "smoke", nil, nil)
	if a.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct ids")
	}
	if a.Phone != nil || a.Type != nil {
		t.Fatal("expected optional fields to stay unset")
	}
}
