package engine

import (
	"fmt"
	"strings"
)

// Bounds is an optional min/max window used by trigger-condition groups.
// A nil side is unbounded.
type Bounds struct {
	Min *float64
	Max *float64
}

func (b Bounds) contains(v float64) bool {
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil && v > *b.Max {
		return false
	}
	return true
}

func minBound(v float64) Bounds { return Bounds{Min: &v} }

func maxBound(v float64) Bounds { return Bounds{Max: &v} }

// TurnRange bounds the turns in which a template may fire.
type TurnRange struct {
	Min int
	Max int
}

// TriggerConditions is the trigger language for challenge templates. The
// actions group is the only one that can arm a template; every other
// present group can only veto. A template without an actions group can
// never fire through generation.
type TriggerConditions struct {
	Actions              []string
	Roles                []Role
	StateThresholds      map[Metric]Bounds
	ClimateConditions    map[string]Bounds
	ClimateEvents        []ClimateEventType
	ActionCount          int
	TurnRange            *TurnRange
	CountryTypes         []CountryType
	DiplomaticThresholds map[Metric]Bounds
	PollutionThresholds  map[QualityMetric]Bounds
}

// ChallengeTemplate is the static blueprint a DynamicChallenge is scaled
// from at generation time.
type ChallengeTemplate struct {
	ID                 string
	Title              string
	Description        string
	Type               ChallengeType
	Trigger            TriggerConditions
	BaseRequirements   map[Metric]float64
	RequirementScaling map[Metric]float64
	BaseRewards        Effect
	BasePenalties      Effect
	Complexity         int
	CountrySpecific    []string
}

// DynamicChallenge is a live, scaled instance of a template. Status is
// terminal once completed or failed. Deadline 0 means no timeout.
type DynamicChallenge struct {
	ID           string
	TemplateID   string
	Title        string
	Description  string
	Type         ChallengeType
	Requirements map[Metric]float64
	Rewards      Effect
	Penalties    Effect
	Status       ChallengeStatus
	Deadline     int
	Complexity   int
	CreatedAt    int
}

// challengeFireChance is the independent per-template probability that a
// surviving candidate actually instantiates.
const challengeFireChance = 0.7

// maxComplexity caps turn-driven difficulty scaling.
const maxComplexity = 5

// recentActionWindow is how many trailing history entries the actions
// trigger group consults.
const recentActionWindow = 5

var challengeTemplates = []ChallengeTemplate{
	{
		ID:          "cross_border_pollution",
		Title:       "Cross-Border Pollution Crisis",
		Description: "Industrial pollution from upstream is contaminating your water supply, causing diplomatic tensions.",
		Type:        ChallengePollution,
		Trigger: TriggerConditions{
			CountryTypes:        []CountryType{CountryDownstream},
			PollutionThresholds: map[QualityMetric]Bounds{QualityPollutionLevel: minBound(60)},
		},
		BaseRequirements:   map[Metric]float64{MetricDiplomatic: 60, MetricEnvironmental: 50},
		RequirementScaling: map[Metric]float64{MetricDiplomatic: 5},
		BaseRewards: Effect{
			Metrics: map[Metric]float64{MetricDiplomatic: 20, MetricEnvironmental: 15},
			WaterQuality: &WaterQualityEffect{
				Deltas:  map[QualityMetric]float64{QualityPollutionLevel: -20},
				Dispute: disputePtr(DisputeMinor),
			},
		},
		BasePenalties:   metricDeltas(map[Metric]float64{MetricDiplomatic: -15, MetricEnvironmental: -10, MetricPublic: -15}),
		Complexity:      3,
		CountrySpecific: []string{"riverlandia", "deltopia"},
	},
	{
		ID:          "industrial_contamination",
		Title:       "Industrial Contamination Emergency",
		Description: "A major industrial accident has released toxic chemicals into the water system.",
		Type:        ChallengePollution,
		Trigger: TriggerConditions{
			Roles:               []Role{RoleIndustry},
			PollutionThresholds: map[QualityMetric]Bounds{QualityPollutionLevel: minBound(40)},
		},
		BaseRequirements:   map[Metric]float64{MetricEnvironmental: 60, MetricPublic: 50},
		RequirementScaling: map[Metric]float64{MetricEnvironmental: 5},
		BaseRewards: Effect{
			Metrics: map[Metric]float64{MetricEnvironmental: 20, MetricPublic: 15},
			WaterQuality: &WaterQualityEffect{
				Deltas: map[QualityMetric]float64{QualityPollutionLevel: -25, QualityHealthImpacts: -20},
			},
		},
		BasePenalties:   metricDeltas(map[Metric]float64{MetricEnvironmental: -20, MetricPublic: -25, MetricEconomic: -15}),
		Complexity:      4,
		CountrySpecific: []string{"all"},
	},
	{
		ID:          "water_quality_standards",
		Title:       "International Water Quality Standards",
		Description: "International organizations are pressuring for compliance with water quality standards.",
		Type:        ChallengePollution,
		Trigger: TriggerConditions{
			PollutionThresholds:  map[QualityMetric]Bounds{QualityPollutionLevel: minBound(50)},
			DiplomaticThresholds: map[Metric]Bounds{MetricDiplomatic: minBound(40)},
		},
		BaseRequirements:   map[Metric]float64{MetricEnvironmental: 55, MetricResources: 30},
		RequirementScaling: map[Metric]float64{MetricResources: 10},
		BaseRewards: Effect{
			Metrics: map[Metric]float64{MetricDiplomatic: 25, MetricEnvironmental: 15},
			WaterQuality: &WaterQualityEffect{
				Standards: boolPtr(true),
			},
		},
		BasePenalties:   metricDeltas(map[Metric]float64{MetricDiplomatic: -20, MetricEconomic: -15}),
		Complexity:      3,
		CountrySpecific: []string{"all"},
	},
	{
		ID:          "public_health_crisis",
		Title:       "Water Pollution Health Crisis",
		Description: "Contaminated drinking water is causing widespread health issues among the population.",
		Type:        ChallengePollution,
		Trigger: TriggerConditions{
			PollutionThresholds: map[QualityMetric]Bounds{QualityHealthImpacts: minBound(60)},
		},
		BaseRequirements:   map[Metric]float64{MetricPublic: 60, MetricResources: 25},
		RequirementScaling: map[Metric]float64{MetricPublic: 5},
		BaseRewards: Effect{
			Metrics: map[Metric]float64{MetricPublic: 30},
			WaterQuality: &WaterQualityEffect{
				Deltas: map[QualityMetric]float64{QualityHealthImpacts: -30, QualityPollutionLevel: -15},
			},
		},
		BasePenalties:   metricDeltas(map[Metric]float64{MetricPublic: -25, MetricEconomic: -20}),
		Complexity:      4,
		CountrySpecific: []string{"all"},
	},
	{
		ID:          "emergency_mobilization",
		Title:       "Emergency Water Mobilization",
		Description: "Reserves are critically low. The rationing program must stabilize supply before shortages turn into unrest.",
		Type:        ChallengeImmediate,
		Trigger: TriggerConditions{
			Actions:         []string{"water_rationing"},
			StateThresholds: map[Metric]Bounds{MetricWater: maxBound(35)},
		},
		BaseRequirements:   map[Metric]float64{MetricWater: 40},
		RequirementScaling: map[Metric]float64{MetricWater: 5},
		BaseRewards:        metricDeltas(map[Metric]float64{MetricWater: 20, MetricPublic: 10}),
		BasePenalties:      metricDeltas(map[Metric]float64{MetricPublic: -20}),
		Complexity:         1,
		CountrySpecific:    []string{"all"},
	},
	{
		ID:          "drought_response",
		Title:       "Basin-Wide Drought Response",
		Description: "Extreme weather is bearing down on the basin and conservation measures must hold the line.",
		Type:        ChallengeClimate,
		Trigger: TriggerConditions{
			Actions:           []string{"water_rationing", "conservation", "efficiency"},
			ClimateConditions: map[string]Bounds{"extremeWeatherRisk": minBound(40)},
		},
		BaseRequirements:   map[Metric]float64{MetricWater: 45, MetricPublic: 50},
		RequirementScaling: map[Metric]float64{MetricWater: 5},
		BaseRewards:        metricDeltas(map[Metric]float64{MetricWater: 15, MetricClimateResilience: 10}),
		BasePenalties:      metricDeltas(map[Metric]float64{MetricWater: -10, MetricPublic: -15}),
		Complexity:         2,
		CountrySpecific:    []string{"all"},
	},
	{
		ID:          "upstream_backlash",
		Title:       "Upstream Development Backlash",
		Description: "Downstream neighbors are protesting your control over shared flows and threatening retaliation.",
		Type:        ChallengeDiplomatic,
		Trigger: TriggerConditions{
			Actions:      []string{"dam_construction", "water_release_control", "water_pricing"},
			CountryTypes: []CountryType{CountrySource},
		},
		BaseRequirements:   map[Metric]float64{MetricDiplomatic: 50},
		RequirementScaling: map[Metric]float64{MetricDiplomatic: 8},
		BaseRewards:        metricDeltas(map[Metric]float64{MetricDiplomatic: 20, MetricGeopoliticalPower: 10}),
		BasePenalties:      metricDeltas(map[Metric]float64{MetricDiplomatic: -20, MetricPublic: -10}),
		Complexity:         3,
		CountrySpecific:    []string{"alpinia", "highland_federation"},
	},
	{
		ID:          "coalition_pressure",
		Title:       "Coalition Pressure Campaign",
		Description: "The downstream coalition expects results. Keep the bloc united and the pressure on upstream neighbors.",
		Type:        ChallengeGeopolitical,
		Trigger: TriggerConditions{
			Actions:      []string{"downstream_coalition", "international_arbitration", "compensation_claims"},
			CountryTypes: []CountryType{CountryDownstream},
		},
		BaseRequirements:   map[Metric]float64{MetricDiplomatic: 55, MetricGeopoliticalPower: 45},
		RequirementScaling: map[Metric]float64{MetricGeopoliticalPower: 5},
		BaseRewards:        metricDeltas(map[Metric]float64{MetricGeopoliticalPower: 15, MetricDiplomatic: 10}),
		BasePenalties:      metricDeltas(map[Metric]float64{MetricGeopoliticalPower: -10, MetricDiplomatic: -10}),
		Complexity:         3,
		CountrySpecific:    []string{"riverlandia", "deltopia", "desert_emirates"},
	},
	{
		ID:          "adaptation_drive",
		Title:       "National Adaptation Drive",
		Description: "Long-term investment in adaptation must now translate into measurable resilience.",
		Type:        ChallengeStrategic,
		Trigger: TriggerConditions{
			Actions:   []string{"efficiency", "desalination_expansion", "technology_sharing"},
			TurnRange: &TurnRange{Min: 5, Max: 1000},
		},
		BaseRequirements:   map[Metric]float64{MetricAdaptationLevel: 50, MetricClimateResilience: 45},
		RequirementScaling: map[Metric]float64{MetricAdaptationLevel: 5},
		BaseRewards:        metricDeltas(map[Metric]float64{MetricAdaptationLevel: 10, MetricClimateResilience: 10}),
		BasePenalties:      metricDeltas(map[Metric]float64{MetricEconomic: -10}),
		Complexity:         2,
		CountrySpecific:    []string{"all"},
	},
	{
		ID:          "treaty_negotiation",
		Title:       "Basin Treaty Negotiation",
		Description: "Negotiations over a binding water-sharing treaty have reached a decisive phase.",
		Type:        ChallengeDiplomatic,
		Trigger: TriggerConditions{
			Actions: []string{"cooperation", "water_quality_agreement", "pollution_mediation"},
			Roles:   []Role{RoleInternational},
		},
		BaseRequirements:   map[Metric]float64{MetricDiplomatic: 65},
		RequirementScaling: map[Metric]float64{MetricDiplomatic: 5},
		BaseRewards: Effect{
			Metrics: map[Metric]float64{MetricDiplomatic: 20, MetricGeopoliticalPower: 10},
			WaterQuality: &WaterQualityEffect{
				Dispute: disputePtr(DisputeMinor),
			},
		},
		BasePenalties:   metricDeltas(map[Metric]float64{MetricDiplomatic: -15}),
		Complexity:      3,
		CountrySpecific: []string{"all"},
	},
}

// climateValue reads a climate field by its wire name for climate-condition
// checks.
func climateValue(c ClimateState, key string) float64 {
	switch key {
	case "temperature":
		return c.Temperature
	case "precipitation":
		return c.Precipitation
	case "humidity":
		return c.Humidity
	case "windSpeed":
		return c.WindSpeed
	case "climateStability":
		return c.ClimateStability
	case "globalWarming":
		return c.GlobalWarming
	case "seaLevel":
		return c.SeaLevel
	case "extremeWeatherRisk":
		return c.ExtremeWeatherRisk
	default:
		return 0
	}
}

// templateEligible applies the countrySpecific list the same way action
// eligibility works.
func templateEligible(tmpl ChallengeTemplate, c *Country) bool {
	if len(tmpl.CountrySpecific) == 0 {
		return true
	}
	for _, entry := range tmpl.CountrySpecific {
		if entry == "all" || (c != nil && entry == c.ID) {
			return true
		}
	}
	return false
}

// shouldTrigger evaluates a template's trigger conditions. Only an action
// match within the recent history window can arm the template; every other
// present group may veto but never re-arm.
func shouldTrigger(tmpl ChallengeTemplate, state MetricState, climate ClimateState, activeEvents []*ClimateEvent, history []ActionRecord) bool {
	trig := tmpl.Trigger

	armed := false
	if len(trig.Actions) > 0 {
		start := len(history) - recentActionWindow
		if start < 0 {
			start = 0
		}
		for _, rec := range history[start:] {
			if contains(trig.Actions, rec.ActionKey) {
				armed = true
				break
			}
		}
	}
	if !armed {
		return false
	}

	if len(trig.Roles) > 0 && !contains(trig.Roles, state.Role) {
		return false
	}
	if len(trig.CountryTypes) > 0 {
		if state.Country == nil || !contains(trig.CountryTypes, state.Country.Type) {
			return false
		}
	}
	for m, b := range trig.StateThresholds {
		if !b.contains(state.Value(m)) {
			return false
		}
	}
	for m, b := range trig.DiplomaticThresholds {
		if !b.contains(state.Value(m)) {
			return false
		}
	}
	for q, b := range trig.PollutionThresholds {
		if !b.contains(state.QualityValue(q)) {
			return false
		}
	}
	for key, b := range trig.ClimateConditions {
		if !b.contains(climateValue(climate, key)) {
			return false
		}
	}
	if len(trig.ClimateEvents) > 0 {
		match := false
		for _, ev := range activeEvents {
			if contains(trig.ClimateEvents, ev.Type) {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	if trig.ActionCount > 0 && len(history) < trig.ActionCount {
		return false
	}
	if trig.TurnRange != nil {
		if state.Turn < trig.TurnRange.Min || state.Turn > trig.TurnRange.Max {
			return false
		}
	}
	return true
}

// instantiate builds the scaled live challenge from a template at the
// current turn.
func instantiate(tmpl ChallengeTemplate, turn int) *DynamicChallenge {
	complexity := tmpl.Complexity + turn/10
	if complexity > maxComplexity {
		complexity = maxComplexity
	}

	reqs := make(map[Metric]float64, len(tmpl.BaseRequirements))
	for m, base := range tmpl.BaseRequirements {
		reqs[m] = base + tmpl.RequirementScaling[m]*float64(complexity)
	}

	deadline := 0
	switch tmpl.Type {
	case ChallengeImmediate:
		deadline = turn + 2
	case ChallengeCrisis, ChallengeClimate:
		deadline = turn + 3
	}

	return &DynamicChallenge{
		ID:           fmt.Sprintf("%s_%d", tmpl.ID, turn),
		TemplateID:   tmpl.ID,
		Title:        tmpl.Title,
		Description:  tmpl.Description,
		Type:         tmpl.Type,
		Requirements: reqs,
		Rewards:      tmpl.BaseRewards.Scale(1 + float64(complexity)*0.2),
		Penalties:    tmpl.BasePenalties.Scale(1 + float64(complexity)*0.3),
		Status:       StatusActive,
		Deadline:     deadline,
		Complexity:   complexity,
		CreatedAt:    turn,
	}
}

// GenerateChallenges evaluates every template against current state and
// returns the newly instantiated challenges. At most one instance per
// template may be active at a time; surviving candidates fire with
// independent probability 0.7.
func GenerateChallenges(state MetricState, climate ClimateState, activeEvents []*ClimateEvent, history []ActionRecord, active []*DynamicChallenge, rng *Stream) []*DynamicChallenge {
	var spawned []*DynamicChallenge
	for _, tmpl := range challengeTemplates {
		if !templateEligible(tmpl, state.Country) {
			continue
		}
		alreadyActive := false
		for _, ch := range active {
			if ch.Status == StatusActive && strings.HasPrefix(ch.ID, tmpl.ID) {
				alreadyActive = true
				break
			}
		}
		if alreadyActive {
			continue
		}
		if !shouldTrigger(tmpl, state, climate, activeEvents, history) {
			continue
		}
		if rng.Float64() >= challengeFireChance {
			continue
		}
		spawned = append(spawned, instantiate(tmpl, state.Turn))
	}
	return spawned
}

// requirementsMet reports whether every requirement threshold is reached.
// There is no partial credit.
func (ch *DynamicChallenge) requirementsMet(state MetricState) bool {
	for m, threshold := range ch.Requirements {
		if state.Value(m) < threshold {
			return false
		}
	}
	return true
}

// ChallengeResolution records one terminal transition from a completion
// check.
type ChallengeResolution struct {
	Challenge *DynamicChallenge
	Completed bool
}

// CheckChallengeCompletion resolves every active challenge against current
// state. A challenge past its deadline fails regardless of requirements;
// otherwise it completes when all thresholds are met. Rewards and penalties
// are folded into the returned state. Resolved transitions are terminal.
func CheckChallengeCompletion(state MetricState, active []*DynamicChallenge) (MetricState, []ChallengeResolution) {
	var resolved []ChallengeResolution
	for _, ch := range active {
		if ch.Status != StatusActive {
			continue
		}
		if ch.Deadline > 0 && state.Turn > ch.Deadline {
			ch.Status = StatusFailed
			state = Apply(state, ch.Penalties)
			resolved = append(resolved, ChallengeResolution{Challenge: ch, Completed: false})
			continue
		}
		if ch.requirementsMet(state) {
			ch.Status = StatusCompleted
			state = Apply(state, ch.Rewards)
			resolved = append(resolved, ChallengeResolution{Challenge: ch, Completed: true})
		}
	}
	return state, resolved
}
