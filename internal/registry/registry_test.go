package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRegisterAndLookup(t *testing.T) {
	Register(Theme{
		ID:    "test_mono",
		Title: "Mono",
		Glyphs: core.Glyphs{
			Empty: core.Cell{Rune: ' '},
			Food:  core.Cell{Rune: '@'},
			Body:  core.Cell{Rune: '#'},
		},
	})

	if !Exists("test_mono") {
		t.Fatal("Exists() = false after Register")
	}

	th, err := Lookup("test_mono")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if th.Title != "Mono" || th.Glyphs.Food.Rune != '@' {
		t.Errorf("Lookup() = %+v", th)
	}

	if _, err := Lookup("missing"); err == nil {
		t.Error("Lookup() of an unknown theme should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register(Theme{ID: "test_b", Title: "B"})
	Register(Theme{ID: "test_a", Title: "A"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Theme{ID: "test_dup"})

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate theme should panic")
		}
	}()
	Register(Theme{ID: "test_dup"})
}
