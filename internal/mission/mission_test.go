package mission

import (
	"testing"

	"github.com/neonrift/neonrift/internal/config"
)

func TestBuildCatalogue(t *testing.T) {
	c := Build(config.Default().Missions)

	if c.Len() != 40 {
		t.Fatalf("expected 40 missions, got %d", c.Len())
	}

	for _, m := range c.All() {
		wantBoss := m.ID%4 == 0
		if m.IsBoss != wantBoss {
			t.Errorf("mission %d: boss flag %v, want %v", m.ID, m.IsBoss, wantBoss)
		}
		if m.TargetCorrect != 12+m.ID {
			t.Errorf("mission %d: target %d, want %d", m.ID, m.TargetCorrect, 12+m.ID)
		}
		if wantBoss {
			if m.TimeLimitSeconds != 70 {
				t.Errorf("boss %d: time %d, want 70", m.ID, m.TimeLimitSeconds)
			}
			if m.BaseXpReward != 220+6*m.ID {
				t.Errorf("boss %d: reward %d, want %d", m.ID, m.BaseXpReward, 220+6*m.ID)
			}
			if m.Archetype != Boss {
				t.Errorf("boss %d: archetype %v", m.ID, m.Archetype)
			}
		} else {
			if m.TimeLimitSeconds != 55+m.ID/2 {
				t.Errorf("mission %d: time %d, want %d", m.ID, m.TimeLimitSeconds, 55+m.ID/2)
			}
			if m.BaseXpReward != 120+4*m.ID {
				t.Errorf("mission %d: reward %d, want %d", m.ID, m.BaseXpReward, 120+4*m.ID)
			}
			if m.Archetype == Boss {
				t.Errorf("mission %d flagged as boss archetype", m.ID)
			}
		}
	}
}

func TestGetBounds(t *testing.T) {
	c := Build(config.Default().Missions)

	if _, ok := c.Get(0); ok {
		t.Error("Get(0) should fail")
	}
	if _, ok := c.Get(41); ok {
		t.Error("Get(41) should fail")
	}
	m, ok := c.Get(1)
	if !ok || m.ID != 1 {
		t.Errorf("Get(1) = %+v, %v", m, ok)
	}
}

func TestArchetypeRotation(t *testing.T) {
	c := Build(config.Default().Missions)

	want := []Archetype{Arithmetic, Comparison, Memory, Boss, Logic}
	for i, a := range want {
		m, _ := c.Get(i + 1)
		if m.Archetype != a {
			t.Errorf("mission %d: archetype %v, want %v", i+1, m.Archetype, a)
		}
	}
}
