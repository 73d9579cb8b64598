package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/svandijk/watershed/internal/util"
)

func TestThemeCyclingWrapsAround(t *testing.T) {
	names := themeNames()
	current := names[0]
	for i := 0; i < len(names); i++ {
		current = nextThemeName(current, 1)
	}
	if current != names[0] {
		t.Fatalf("cycling %d steps should wrap: got %q want %q", len(names), current, names[0])
	}
	if nextThemeName(names[0], -1) != names[len(names)-1] {
		t.Fatalf("negative step should wrap to last theme")
	}
}

func TestPaletteForUnknownFallsBack(t *testing.T) {
	if paletteFor("nope") != palettes["catppuccin"] {
		t.Fatalf("unknown theme should fall back to catppuccin")
	}
}

func TestCountrySelectEnterStartsSession(t *testing.T) {
	m := initialModel(context.Background(), nil, util.Config{SeedText: "abc"})
	if m.view != viewCountrySelect {
		t.Fatalf("expected country selection first, got %q", m.view)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if m.view != viewGame || m.session == nil {
		t.Fatalf("enter should start a session: view=%q session=%v", m.view, m.session)
	}
	if m.session.State.Country.ID != m.countries[0].ID {
		t.Fatalf("session started with wrong country %q", m.session.State.Country.ID)
	}
}

func TestPreselectedCountrySkipsSelection(t *testing.T) {
	m := initialModel(context.Background(), nil, util.Config{SeedText: "abc", CountryID: "deltopia"})
	if m.view != viewGame || m.session == nil {
		t.Fatalf("country flag should skip selection: view=%q", m.view)
	}
	if m.session.State.Country.ID != "deltopia" {
		t.Fatalf("wrong preselected country %q", m.session.State.Country.ID)
	}
}

func TestNumberKeyTakesAction(t *testing.T) {
	m := initialModel(context.Background(), nil, util.Config{SeedText: "abc", CountryID: "alpinia"})
	before := m.session.State.Turn
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	m = next.(model)
	if m.session.State.Turn != before+1 {
		t.Fatalf("number key should advance turn: got %d want %d", m.session.State.Turn, before+1)
	}
}

func TestMetricBarLength(t *testing.T) {
	bar := metricBar(paletteFor("catppuccin"), "Water", 50, 20)
	if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 20 {
		t.Fatalf("bar should span 20 cells, got %d", n)
	}
	if strings.Count(bar, "█") != 10 {
		t.Fatalf("half-full gauge should fill 10 cells, got %d", strings.Count(bar, "█"))
	}
}
