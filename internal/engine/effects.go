package engine

// Effect is a partial key-to-delta mapping applied additively to MetricState.
// Presence is determined by map membership, never by value truthiness, so a
// legitimate zero delta is applied (as a no-op) rather than silently dropped.
type Effect struct {
	Metrics      map[Metric]float64
	WaterQuality *WaterQualityEffect
}

// WaterQualityEffect carries the nested water-quality portion of an effect
// map. Numeric deltas are additive and clamped; Standards and Dispute are
// direct overwrites when non-nil.
type WaterQualityEffect struct {
	Deltas    map[QualityMetric]float64
	Standards *bool
	Dispute   *DisputeLevel
}

// Empty reports whether the effect carries no keys at all.
func (e Effect) Empty() bool {
	if len(e.Metrics) > 0 {
		return false
	}
	if e.WaterQuality == nil {
		return true
	}
	return len(e.WaterQuality.Deltas) == 0 && e.WaterQuality.Standards == nil && e.WaterQuality.Dispute == nil
}

// Scale returns a copy of the effect with every numeric delta multiplied by
// factor. Boolean and enum overwrites pass through unscaled.
func (e Effect) Scale(factor float64) Effect {
	out := Effect{}
	if len(e.Metrics) > 0 {
		out.Metrics = make(map[Metric]float64, len(e.Metrics))
		for k, v := range e.Metrics {
			out.Metrics[k] = v * factor
		}
	}
	if e.WaterQuality != nil {
		wq := &WaterQualityEffect{Standards: e.WaterQuality.Standards, Dispute: e.WaterQuality.Dispute}
		if len(e.WaterQuality.Deltas) > 0 {
			wq.Deltas = make(map[QualityMetric]float64, len(e.WaterQuality.Deltas))
			for k, v := range e.WaterQuality.Deltas {
				wq.Deltas[k] = v * factor
			}
		}
		out.WaterQuality = wq
	}
	return out
}

// Apply folds an effect map into state and returns the new state. Every
// scalar metric except resources is clamped to [0,100]; resources is
// additive and unclamped. Applying the empty effect returns state unchanged.
func Apply(state MetricState, eff Effect) MetricState {
	for m, delta := range eff.Metrics {
		switch m {
		case MetricWater:
			state.WaterLevel = Clamp(state.WaterLevel + delta)
		case MetricPublic:
			state.PublicSupport = Clamp(state.PublicSupport + delta)
		case MetricEconomic:
			state.EconomicHealth = Clamp(state.EconomicHealth + delta)
		case MetricEnvironmental:
			state.EnvironmentalHealth = Clamp(state.EnvironmentalHealth + delta)
		case MetricDiplomatic:
			state.DiplomaticRelations = Clamp(state.DiplomaticRelations + delta)
		case MetricResources:
			state.Resources += delta
		case MetricClimateResilience:
			state.ClimateResilience = Clamp(state.ClimateResilience + delta)
		case MetricAdaptationLevel:
			state.AdaptationLevel = Clamp(state.AdaptationLevel + delta)
		case MetricWaterControl:
			state.WaterControl = Clamp(state.WaterControl + delta)
		case MetricGeopoliticalPower:
			state.GeopoliticalPower = Clamp(state.GeopoliticalPower + delta)
		}
	}
	if eff.WaterQuality != nil {
		wq := state.WaterQuality
		for q, delta := range eff.WaterQuality.Deltas {
			switch q {
			case QualityPollutionLevel:
				wq.PollutionLevel = Clamp(wq.PollutionLevel + delta)
			case QualityTreatmentCapacity:
				wq.WaterTreatmentCapacity = Clamp(wq.WaterTreatmentCapacity + delta)
			case QualityMonitoringEfficiency:
				wq.MonitoringEfficiency = Clamp(wq.MonitoringEfficiency + delta)
			case QualityHealthImpacts:
				wq.HealthImpacts = Clamp(wq.HealthImpacts + delta)
			case QualityEnvironmentalDamage:
				wq.EnvironmentalDamage = Clamp(wq.EnvironmentalDamage + delta)
			}
		}
		if eff.WaterQuality.Standards != nil {
			wq.InternationalStandards = *eff.WaterQuality.Standards
		}
		if eff.WaterQuality.Dispute != nil {
			wq.DisputeLevel = *eff.WaterQuality.Dispute
		}
		state.WaterQuality = wq
	}
	return state
}

// helper constructors for static effect tables

func metricDeltas(pairs map[Metric]float64) Effect {
	return Effect{Metrics: pairs}
}

func boolPtr(b bool) *bool { return &b }

func disputePtr(d DisputeLevel) *DisputeLevel { return &d }
