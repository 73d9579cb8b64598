package engine

import "testing"

func baseState() MetricState {
	c, _ := CountryByID("alpinia")
	return MetricState{
		Role:                RoleGovernment,
		Turn:                1,
		WaterLevel:          50,
		PublicSupport:       50,
		EconomicHealth:      50,
		EnvironmentalHealth: 50,
		DiplomaticRelations: 50,
		Resources:           100,
		ClimateResilience:   50,
		AdaptationLevel:     50,
		WaterControl:        50,
		GeopoliticalPower:   50,
		WaterQuality: WaterQualityState{
			PollutionLevel:         40,
			WaterTreatmentCapacity: 40,
			MonitoringEfficiency:   30,
			HealthImpacts:          20,
			EnvironmentalDamage:    25,
			DisputeLevel:           DisputeNone,
		},
		Country: c,
	}
}

func TestApplyEmptyEffectIsIdentity(t *testing.T) {
	s := baseState()
	got := Apply(s, Effect{})
	if got.WaterLevel != s.WaterLevel || got.Resources != s.Resources || got.Turn != s.Turn {
		t.Fatalf("empty effect mutated state: %+v", got)
	}
}

func TestApplyClampsHighAndLow(t *testing.T) {
	s := baseState()
	s.WaterLevel = 95
	s.PublicSupport = 3
	got := Apply(s, metricDeltas(map[Metric]float64{MetricWater: 20, MetricPublic: -10}))
	if got.WaterLevel != 100 {
		t.Fatalf("water not clamped to 100: %v", got.WaterLevel)
	}
	if got.PublicSupport != 0 {
		t.Fatalf("public not clamped to 0: %v", got.PublicSupport)
	}
}

func TestApplyResourcesUnclamped(t *testing.T) {
	s := baseState()
	got := Apply(s, metricDeltas(map[Metric]float64{MetricResources: 80}))
	if got.Resources != 180 {
		t.Fatalf("resources should exceed 100: %v", got.Resources)
	}
	got = Apply(got, metricDeltas(map[Metric]float64{MetricResources: -300}))
	if got.Resources != -120 {
		t.Fatalf("resources should go negative: %v", got.Resources)
	}
}

func TestApplyZeroDeltaIsPresentButNoop(t *testing.T) {
	s := baseState()
	got := Apply(s, metricDeltas(map[Metric]float64{MetricWater: 0}))
	if got.WaterLevel != s.WaterLevel {
		t.Fatalf("zero delta changed water: %v", got.WaterLevel)
	}
}

func TestApplyWaterQualityDeltasAndOverwrites(t *testing.T) {
	s := baseState()
	eff := Effect{
		WaterQuality: &WaterQualityEffect{
			Deltas:    map[QualityMetric]float64{QualityPollutionLevel: -50, QualityTreatmentCapacity: 70},
			Standards: boolPtr(true),
			Dispute:   disputePtr(DisputeSevere),
		},
	}
	got := Apply(s, eff)
	if got.WaterQuality.PollutionLevel != 0 {
		t.Fatalf("pollution not clamped at 0: %v", got.WaterQuality.PollutionLevel)
	}
	if got.WaterQuality.WaterTreatmentCapacity != 100 {
		t.Fatalf("treatment not clamped at 100: %v", got.WaterQuality.WaterTreatmentCapacity)
	}
	if !got.WaterQuality.InternationalStandards {
		t.Fatalf("standards overwrite not applied")
	}
	if got.WaterQuality.DisputeLevel != DisputeSevere {
		t.Fatalf("dispute overwrite not applied: %v", got.WaterQuality.DisputeLevel)
	}
	// original untouched
	if s.WaterQuality.DisputeLevel != DisputeNone {
		t.Fatalf("input state mutated")
	}
}

func TestScaleLeavesOverwritesAlone(t *testing.T) {
	eff := Effect{
		Metrics: map[Metric]float64{MetricWater: 10},
		WaterQuality: &WaterQualityEffect{
			Deltas:  map[QualityMetric]float64{QualityPollutionLevel: -20},
			Dispute: disputePtr(DisputeMinor),
		},
	}
	scaled := eff.Scale(1.5)
	if scaled.Metrics[MetricWater] != 15 {
		t.Fatalf("metric not scaled: %v", scaled.Metrics[MetricWater])
	}
	if scaled.WaterQuality.Deltas[QualityPollutionLevel] != -30 {
		t.Fatalf("quality delta not scaled: %v", scaled.WaterQuality.Deltas[QualityPollutionLevel])
	}
	if scaled.WaterQuality.Dispute == nil || *scaled.WaterQuality.Dispute != DisputeMinor {
		t.Fatalf("dispute overwrite lost in scaling")
	}
}

func TestWaterRationingExactDeltas(t *testing.T) {
	action, ok := FindAction(RoleGovernment, "water_rationing")
	if !ok {
		t.Fatalf("water_rationing missing from catalog")
	}
	s := baseState()
	got := Apply(s, action.Impact)
	if got.WaterLevel != 65 {
		t.Fatalf("water: want 65, got %v", got.WaterLevel)
	}
	if got.PublicSupport != 40 {
		t.Fatalf("public: want 40, got %v", got.PublicSupport)
	}
	if got.EconomicHealth != 45 {
		t.Fatalf("economic: want 45, got %v", got.EconomicHealth)
	}
}
