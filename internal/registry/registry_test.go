package registry

import (
	"testing"

	"github.com/vovakirdan/tui-flow/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should exist")
	}
	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "aa_stub" {
		t.Errorf("ID = %q, want aa_stub", g.ID())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub zz_stub"
		}
	}
	if !found {
		t.Error("List should carry the registered title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("missing") {
		t.Fatal("missing should not exist")
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for unknown ids")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
}
