package engine

// PollutionEvent is one entry of the fixed pollution incident table. Its
// effects apply in full on the turn it fires; Duration is flavor carried
// from the incident record and does not gate repeated application.
type PollutionEvent struct {
	Title       string
	Description string
	Effects     Effect
	Duration    int
}

var pollutionEventTable = []PollutionEvent{
	{
		Title:       "Industrial Discharge Incident",
		Description: "A factory has illegally discharged untreated wastewater into the river system.",
		Effects: Effect{
			Metrics: map[Metric]float64{MetricEnvironmental: -15, MetricPublic: -10},
			WaterQuality: &WaterQualityEffect{
				Deltas: map[QualityMetric]float64{
					QualityPollutionLevel: 20, QualityEnvironmentalDamage: 15, QualityHealthImpacts: 10,
				},
			},
		},
		Duration: 3,
	},
	{
		Title:       "Agricultural Runoff Surge",
		Description: "Heavy rains have washed fertilizers and pesticides from farmlands into water sources.",
		Effects: Effect{
			Metrics: map[Metric]float64{MetricEnvironmental: -10, MetricWater: -5},
			WaterQuality: &WaterQualityEffect{
				Deltas: map[QualityMetric]float64{
					QualityPollutionLevel: 15, QualityEnvironmentalDamage: 20,
				},
			},
		},
		Duration: 2,
	},
	{
		Title:       "Cross-Border Pollution Complaint",
		Description: "A neighboring country has filed a formal complaint about water pollution from your territory.",
		Effects: Effect{
			Metrics: map[Metric]float64{MetricDiplomatic: -15, MetricGeopoliticalPower: -5},
			WaterQuality: &WaterQualityEffect{
				Dispute: disputePtr(DisputeModerate),
			},
		},
		Duration: 4,
	},
	{
		Title:       "Urban Sewage Overflow",
		Description: "Heavy rainfall has caused urban sewage systems to overflow into water sources.",
		Effects: Effect{
			Metrics: map[Metric]float64{MetricEnvironmental: -10, MetricPublic: -15},
			WaterQuality: &WaterQualityEffect{
				Deltas: map[QualityMetric]float64{
					QualityPollutionLevel: 25, QualityHealthImpacts: 20,
				},
			},
		},
		Duration: 2,
	},
}

// MaybeSpawnPollutionEvent rolls for a pollution incident. Downstream
// nations carry a higher base chance, and the chance rises with the current
// pollution level (pollutionLevel/200, up to +0.5). Returns nil when
// nothing fires; the caller applies the event's effects.
func MaybeSpawnPollutionEvent(state MetricState, rng *Stream) *PollutionEvent {
	if state.Country == nil {
		return nil
	}
	baseChance := 0.1
	if state.Country.Type == CountryDownstream {
		baseChance = 0.2
	}
	chance := baseChance + state.WaterQuality.PollutionLevel/200
	if rng.Float64() >= chance {
		return nil
	}
	ev := pollutionEventTable[rng.Intn(len(pollutionEventTable))]
	return &ev
}
