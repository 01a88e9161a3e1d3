package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestRegisterAndGet(t *testing.T) {
	Register(Mode{
		ID:    "test_tiny",
		Title: "Tiny",
		Configure: func(cfg *config.SnakeConfig) {
			cfg.Board.Rows = 5
			cfg.Board.Cols = 5
		},
	})

	if !Exists("test_tiny") {
		t.Fatal("Exists() = false after Register")
	}

	m, err := Get("test_tiny")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	base := config.DefaultSnakeConfig()
	got := m.Apply(base)
	if got.Board.Rows != 5 || got.Board.Cols != 5 {
		t.Errorf("Apply() board = %dx%d, expected 5x5", got.Board.Rows, got.Board.Cols)
	}
	if base.Board.Rows != 20 {
		t.Error("Apply() must not modify the caller's config")
	}
}

func TestApplyNilConfigure(t *testing.T) {
	m := Mode{ID: "plain"}
	base := config.DefaultSnakeConfig()
	if got := m.Apply(base); got != base {
		t.Errorf("Apply() = %+v, expected unchanged config", got)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("does_not_exist"); err == nil {
		t.Error("Get() expected error for unknown mode")
	}
	if Exists("does_not_exist") {
		t.Error("Exists() = true for unknown mode")
	}
}

func TestListSorted(t *testing.T) {
	Register(Mode{ID: "test_list_b", Title: "B"})
	Register(Mode{ID: "test_list_a", Title: "A"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Mode{ID: "test_dup"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(Mode{ID: "test_dup"})
}
