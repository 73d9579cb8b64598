package engine

import "testing"

func TestCountryCatalogIntegrity(t *testing.T) {
	countries := ListCountries()
	if len(countries) != 5 {
		t.Fatalf("expected 5 countries, got %d", len(countries))
	}
	sources, downstream := 0, 0
	for _, c := range countries {
		if !c.Type.Validate() {
			t.Fatalf("%s has invalid type %q", c.ID, c.Type)
		}
		if c.Type == CountrySource {
			sources++
		} else {
			downstream++
		}
		if len(countryPollutionSources[c.ID]) == 0 {
			t.Fatalf("%s has no local pollution sources", c.ID)
		}
	}
	if sources != 2 || downstream != 3 {
		t.Fatalf("expected 2 source / 3 downstream, got %d/%d", sources, downstream)
	}
}

func TestCountryByID(t *testing.T) {
	c, ok := CountryByID("desert_emirates")
	if !ok {
		t.Fatalf("desert_emirates missing")
	}
	if c.StartingStats.Resources != 160 {
		t.Fatalf("desert_emirates resources: want 160, got %v", c.StartingStats.Resources)
	}
	if _, ok := CountryByID("atlantis"); ok {
		t.Fatalf("unknown id should not resolve")
	}
}

func TestInitialWaterQualityDownstream(t *testing.T) {
	deltopia, _ := CountryByID("deltopia")
	wq := initialWaterQuality(deltopia)

	if wq.PollutionLevel != 50 || wq.WaterTreatmentCapacity != 30 {
		t.Fatalf("downstream init: pollution=%v treatment=%v", wq.PollutionLevel, wq.WaterTreatmentCapacity)
	}
	if wq.HealthImpacts != 40 || wq.EnvironmentalDamage != 45 {
		t.Fatalf("downstream init: health=%v damage=%v", wq.HealthImpacts, wq.EnvironmentalDamage)
	}
	if wq.DisputeLevel != DisputeModerate {
		t.Fatalf("downstream dispute: want moderate, got %s", wq.DisputeLevel)
	}
	// local sources plus cross-border inflow from riverlandia and alpinia
	if len(wq.ContaminationSources) != 4 {
		t.Fatalf("deltopia should start with 4 contamination sources, got %d", len(wq.ContaminationSources))
	}
	crossBorder := 0
	for _, src := range wq.ContaminationSources {
		if src.CrossBorder && src.Origin != deltopia.ID {
			crossBorder++
		}
	}
	if crossBorder != 2 {
		t.Fatalf("deltopia should inherit 2 cross-border sources, got %d", crossBorder)
	}
}

func TestInitialWaterQualitySource(t *testing.T) {
	alpinia, _ := CountryByID("alpinia")
	wq := initialWaterQuality(alpinia)

	if wq.PollutionLevel != 30 || wq.WaterTreatmentCapacity != 50 {
		t.Fatalf("source init: pollution=%v treatment=%v", wq.PollutionLevel, wq.WaterTreatmentCapacity)
	}
	if wq.DisputeLevel != DisputeNone {
		t.Fatalf("source dispute: want none, got %s", wq.DisputeLevel)
	}
	if len(wq.ContaminationSources) != 2 {
		t.Fatalf("alpinia should start with only local sources, got %d", len(wq.ContaminationSources))
	}
}
