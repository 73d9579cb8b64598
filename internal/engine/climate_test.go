package engine

import (
	"fmt"
	"testing"
)

func TestAdvanceClimateMonotonics(t *testing.T) {
	seed, _ := NewRunSeed("climate-mono")
	c := NewClimateState()
	for turn := 2; turn <= 40; turn++ {
		prev := c
		c = AdvanceClimate(c, turn, seed.Stream(fmt.Sprintf("t%d", turn)))
		if c.GlobalWarming <= prev.GlobalWarming {
			t.Fatalf("warming did not increase at turn %d: %v -> %v", turn, prev.GlobalWarming, c.GlobalWarming)
		}
		if c.ClimateStability > prev.ClimateStability {
			t.Fatalf("stability rose without a trend at turn %d", turn)
		}
		want := 25 + c.GlobalWarming*8 + (100-c.ClimateStability)*0.3
		if want > 100 {
			want = 100
		}
		if c.ExtremeWeatherRisk != want {
			t.Fatalf("risk not derived at turn %d: want %v, got %v", turn, want, c.ExtremeWeatherRisk)
		}
	}
	if c.ClimateStability < 0 {
		t.Fatalf("stability went negative: %v", c.ClimateStability)
	}
}

func TestAdvanceClimateSeasonEveryFourTurns(t *testing.T) {
	seed, _ := NewRunSeed("climate-season")
	c := NewClimateState()
	seasons := []Season{c.Season}
	for turn := 2; turn <= 9; turn++ {
		c = AdvanceClimate(c, turn, seed.Stream(fmt.Sprintf("t%d", turn)))
		seasons = append(seasons, c.Season)
	}
	// turns 1-3 spring, rolls at 4 and 8
	if seasons[0] != SeasonSpring || seasons[2] != SeasonSpring {
		t.Fatalf("season advanced early: %v", seasons)
	}
	if seasons[3] != SeasonSummer {
		t.Fatalf("season should roll at turn 4: %v", seasons)
	}
	if seasons[7] != SeasonAutumn {
		t.Fatalf("season should roll again at turn 8: %v", seasons)
	}
}

func TestTickClimateEventLifecycle(t *testing.T) {
	ev := &ClimateEvent{
		Name:      "Test Drought",
		Type:      EventDrought,
		Severity:  SeverityMinor,
		Duration:  3,
		Remaining: 3,
		Immediate: metricDeltas(map[Metric]float64{MetricWater: -10}),
	}
	s := baseState()

	// two ongoing ticks at -3 each
	s, active, notes := TickClimateEvents(s, []*ClimateEvent{ev})
	if len(active) != 1 || len(notes) != 0 {
		t.Fatalf("event should survive first tick")
	}
	if s.WaterLevel != 47 {
		t.Fatalf("ongoing tick 1: want 47, got %v", s.WaterLevel)
	}
	s, active, notes = TickClimateEvents(s, active)
	if len(active) != 1 {
		t.Fatalf("event should survive second tick")
	}
	if s.WaterLevel != 44 {
		t.Fatalf("ongoing tick 2: want 44, got %v", s.WaterLevel)
	}

	// final tick applies the long-term tail once and removes the event
	s, active, notes = TickClimateEvents(s, active)
	if len(active) != 0 {
		t.Fatalf("event should be removed at zero duration")
	}
	if len(notes) != 1 {
		t.Fatalf("expected one ended note, got %v", notes)
	}
	if s.WaterLevel != 43 {
		t.Fatalf("long-term tail: want 43, got %v", s.WaterLevel)
	}
}

func TestSpawnSkipsActiveTypes(t *testing.T) {
	c := NewClimateState()
	c.ExtremeWeatherRisk = 100 // force frequent spawns

	var active []*ClimateEvent
	for _, typ := range AllClimateEventTypes {
		active = append(active, &ClimateEvent{Type: typ})
	}

	seed, _ := NewRunSeed("spawn-full")
	for i := 0; i < 200; i++ {
		if ev := MaybeSpawnClimateEvent(c, active, seed.Stream(fmt.Sprintf("i%d", i))); ev != nil {
			t.Fatalf("spawned duplicate type %s with all types active", ev.Type)
		}
	}
}

func TestSpawnSeverityScalesEffects(t *testing.T) {
	c := NewClimateState()
	c.ExtremeWeatherRisk = 100
	c.GlobalWarming = 5 // floor at extreme

	seed, _ := NewRunSeed("spawn-sev")
	spawned := 0
	for i := 0; i < 200 && spawned < 20; i++ {
		ev := MaybeSpawnClimateEvent(c, nil, seed.Stream(fmt.Sprintf("i%d", i)))
		if ev == nil {
			continue
		}
		spawned++
		if ev.Severity != SeverityExtreme {
			t.Fatalf("warming > 3 should force extreme severity, got %s", ev.Severity)
		}
		ongoing := ev.Ongoing()
		for m, v := range ev.Immediate.Metrics {
			if ongoing.Metrics[m] != v*0.3 {
				t.Fatalf("ongoing should be immediate x0.3 for %s", m)
			}
		}
	}
	if spawned == 0 {
		t.Fatalf("no events spawned at risk 100 across 200 rolls")
	}
}

func TestClimateTrendLatchFiresOnce(t *testing.T) {
	c := NewClimateState()
	c.GlobalWarming = 4 // fast progression
	trends := []*ClimateTrend{{
		ID: "test_trend", Name: "Test Trend",
		Progression: 50, Threshold: 55,
		Shift: ClimateShift{SeaLevel: 10},
	}}

	seed, _ := NewRunSeed("trend-latch")
	fired := 0
	for i := 0; i < 60; i++ {
		var notes []string
		c, notes = AdvanceClimateTrends(c, trends, seed.Stream(fmt.Sprintf("i%d", i)))
		fired += len(notes)
	}
	if fired != 1 {
		t.Fatalf("trend should fire exactly once, fired %d times", fired)
	}
	if !trends[0].Triggered {
		t.Fatalf("trend latch not set")
	}
	if trends[0].Progression > 100 {
		t.Fatalf("progression exceeded clamp: %v", trends[0].Progression)
	}
	if c.SeaLevel != NewClimateState().SeaLevel+10 {
		t.Fatalf("trend shift not applied once: %v", c.SeaLevel)
	}
}
