package engine

import (
	"fmt"
	"testing"
)

func TestPollutionSpawnRateScalesWithExposure(t *testing.T) {
	seed, _ := NewRunSeed("pollution-rate")

	spawnCount := func(countryID string, pollution float64, label string) int {
		c, _ := CountryByID(countryID)
		s := baseState()
		s.Country = c
		s.WaterQuality.PollutionLevel = pollution
		hits := 0
		for i := 0; i < 600; i++ {
			if ev := MaybeSpawnPollutionEvent(s, seed.Stream(fmt.Sprintf("%s:%d", label, i))); ev != nil {
				hits++
			}
		}
		return hits
	}

	// downstream at high pollution: chance 0.2 + 100/200 = 0.7
	high := spawnCount("deltopia", 100, "high")
	// source at zero pollution: chance 0.1
	low := spawnCount("alpinia", 0, "low")

	if high <= low {
		t.Fatalf("downstream+polluted should spawn more: high=%d low=%d", high, low)
	}
	if low < 20 || low > 120 {
		t.Fatalf("low-rate spawn count out of bounds: %d/600", low)
	}
	if high < 330 || high > 510 {
		t.Fatalf("high-rate spawn count out of bounds: %d/600", high)
	}
}

func TestPollutionSpawnNilWithoutCountry(t *testing.T) {
	s := baseState()
	s.Country = nil
	seed, _ := NewRunSeed("pollution-nil")
	if ev := MaybeSpawnPollutionEvent(s, seed.Stream("x")); ev != nil {
		t.Fatalf("spawn without a country should return nil")
	}
}

func TestPollutionEventTableEffectsApply(t *testing.T) {
	s := baseState()
	for _, ev := range pollutionEventTable {
		if ev.Title == "" || ev.Effects.Empty() {
			t.Fatalf("malformed pollution event: %+v", ev)
		}
	}
	// the sewage overflow event raises pollution and health impacts
	var sewage PollutionEvent
	for _, ev := range pollutionEventTable {
		if ev.Title == "Urban Sewage Overflow" {
			sewage = ev
		}
	}
	got := Apply(s, sewage.Effects)
	if got.WaterQuality.PollutionLevel != s.WaterQuality.PollutionLevel+25 {
		t.Fatalf("pollution delta: want +25, got %v", got.WaterQuality.PollutionLevel-s.WaterQuality.PollutionLevel)
	}
	if got.WaterQuality.HealthImpacts != s.WaterQuality.HealthImpacts+20 {
		t.Fatalf("health delta: want +20")
	}
	if got.PublicSupport != s.PublicSupport-15 {
		t.Fatalf("public delta: want -15")
	}
}
