package engine

// Recommendation is one advisor suggestion tied to a catalog action.
type Recommendation struct {
	ID          string
	ActionKey   string
	Title       string
	Description string
	Impact      string
	Urgency     string
}

// Recommend inspects current state and returns the advisor's suggested
// actions, highest-priority crisis rules first.
func Recommend(state MetricState) []Recommendation {
	var recs []Recommendation

	if state.WaterQuality.PollutionLevel > 60 {
		recs = append(recs, Recommendation{
			ID:          "pollution_crisis",
			ActionKey:   "pollution_regulations",
			Title:       "Address Pollution Crisis",
			Description: "Water pollution levels are critically high. Implement pollution regulations immediately.",
			Impact:      "high",
			Urgency:     "high",
		})
	}
	if state.WaterQuality.DisputeLevel == DisputeSevere || state.WaterQuality.DisputeLevel == DisputeCritical {
		recs = append(recs, Recommendation{
			ID:          "pollution_diplomacy",
			ActionKey:   "water_quality_agreement",
			Title:       "Resolve Water Quality Disputes",
			Description: "Diplomatic tensions over water quality are escalating. Consider negotiating a water quality treaty.",
			Impact:      "high",
			Urgency:     "high",
		})
	}
	if state.WaterQuality.HealthImpacts > 50 {
		recs = append(recs, Recommendation{
			ID:          "health_crisis",
			ActionKey:   "treatment_facilities",
			Title:       "Address Health Crisis",
			Description: "Water pollution is causing serious health impacts. Build treatment facilities to protect public health.",
			Impact:      "high",
			Urgency:     "high",
		})
	}
	if state.WaterLevel < 30 {
		recs = append(recs, Recommendation{
			ID:          "water_crisis",
			ActionKey:   "water_rationing",
			Title:       "Address Water Crisis",
			Description: "Water levels are critically low. Implement emergency rationing measures.",
			Impact:      "high",
			Urgency:     "high",
		})
	}
	return recs
}
