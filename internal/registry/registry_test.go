package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                                          { return g.id }
func (g *stubGame) Title() string                                       { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)                            {}
func (g *stubGame) Step(time.Duration, core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Attach(core.HUD, core.Notifier)                      {}
func (g *stubGame) Resize(int, int)                                     {}
func (g *stubGame) Render(*core.Screen)                                 {}
func (g *stubGame) State() core.GameState                               { return core.GameState{} }

func stubFactory(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_zeta", stubFactory("test_zeta", "Zeta"))
	Register("test_alpha", stubFactory("test_alpha", "Alpha"))

	if !Exists("test_alpha") || Exists("test_missing") {
		t.Error("Exists reports wrong registrations")
	}

	g, err := Create("test_zeta")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_zeta" || g.Title() != "Zeta" {
		t.Errorf("created %q/%q", g.ID(), g.Title())
	}

	other, _ := Create("test_zeta")
	if other == g {
		t.Error("Create should return a fresh instance")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if strings.Join(ids, ",") != "test_alpha=Alpha,test_zeta=Zeta" {
		t.Errorf("List() = %v, expected sorted by ID", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	if err == nil || !strings.Contains(err.Error(), `unknown game "nope"`) {
		t.Errorf("Create(nope) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", stubFactory("test_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", stubFactory("test_dup", "Dup"))
}
