package engine

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ClimateState is the shared basin climate, one per session. Stability,
// precipitation and risk live in [0,100]; warming and sea level only rise.
// ExtremeWeatherRisk is fully derived and recomputed every advance, never
// accumulated.
type ClimateState struct {
	Season             Season
	Temperature        float64
	Precipitation      float64
	Humidity           float64
	WindSpeed          float64
	ClimateStability   float64
	GlobalWarming      float64
	SeaLevel           float64
	ExtremeWeatherRisk float64
}

// NewClimateState returns the opening climate for a fresh session.
func NewClimateState() ClimateState {
	return ClimateState{
		Season:             SeasonSpring,
		Temperature:        20,
		Precipitation:      75,
		Humidity:           60,
		WindSpeed:          15,
		ClimateStability:   70,
		GlobalWarming:      1.2,
		SeaLevel:           15,
		ExtremeWeatherRisk: 25,
	}
}

// seasonBaseline holds the season-conditioned weather centers that
// temperature and precipitation are resampled around each turn.
type seasonBaseline struct {
	Temperature   float64
	Precipitation float64
	Humidity      float64
	WindSpeed     float64
}

var seasonBaselines = map[Season]seasonBaseline{
	SeasonSpring: {Temperature: 20, Precipitation: 75, Humidity: 60, WindSpeed: 15},
	SeasonSummer: {Temperature: 32, Precipitation: 40, Humidity: 50, WindSpeed: 12},
	SeasonAutumn: {Temperature: 14, Precipitation: 70, Humidity: 65, WindSpeed: 18},
	SeasonWinter: {Temperature: 2, Precipitation: 55, Humidity: 70, WindSpeed: 22},
}

// AdvanceClimate computes the next climate state for the given turn number.
// Season rolls over every 4 turns; warming strictly increases; stability
// only decays here (trend effects may push it back up); weather readings
// are resampled from the season baseline with jitter.
func AdvanceClimate(c ClimateState, turn int, rng *Stream) ClimateState {
	if turn%4 == 0 {
		c.Season = NextSeason(c.Season)
	}
	c.GlobalWarming += 0.02 + rng.Float64()*0.03
	c.ClimateStability = math.Max(0, c.ClimateStability-0.5-rng.Float64()*1)

	base := seasonBaselines[c.Season]
	c.Temperature = base.Temperature + rng.Float64()*6 - 3 + c.GlobalWarming
	c.Precipitation = Clamp(base.Precipitation + rng.Float64()*20 - 10)
	c.Humidity = Clamp(base.Humidity + rng.Float64()*10 - 5)
	c.WindSpeed = math.Max(0, base.WindSpeed+rng.Float64()*8-4)

	c.ExtremeWeatherRisk = math.Min(100, 25+c.GlobalWarming*8+(100-c.ClimateStability)*0.3)
	return c
}

// ClimateEvent is a transient, duration-bound perturbation. Ongoing effects
// are the immediate ones scaled to 0.3 and apply while remaining duration is
// positive; the long-term tail is scaled to 0.1 and applies exactly once
// when the countdown reaches zero.
type ClimateEvent struct {
	ID                uuid.UUID
	Type              ClimateEventType
	Severity          EventSeverity
	Name              string
	Description       string
	Duration          int
	Remaining         int
	Immediate         Effect
	AdaptationOptions []string
}

// Ongoing returns the per-turn effect applied while the event is active.
func (e ClimateEvent) Ongoing() Effect { return e.Immediate.Scale(0.3) }

// LongTerm returns the one-shot tail effect applied when the event ends.
func (e ClimateEvent) LongTerm() Effect { return e.Immediate.Scale(0.1) }

// climateEventTemplate is the static blueprint for one event type. Base
// effects are calibrated for minor severity and scaled up from there.
type climateEventTemplate struct {
	Type              ClimateEventType
	Name              string
	Description       string
	Duration          int
	BaseEffects       map[Metric]float64
	AdaptationOptions []string
}

var climateEventTemplates = []climateEventTemplate{
	{
		Type: EventDrought, Name: "Prolonged Drought",
		Description: "Rainfall has collapsed across the basin and reservoirs are falling fast.",
		Duration:    3,
		BaseEffects: map[Metric]float64{
			MetricWater: -15, MetricEconomic: -8, MetricEnvironmental: -5, MetricPublic: -5,
		},
		AdaptationOptions: []string{"water_rationing", "efficiency", "conservation"},
	},
	{
		Type: EventFlood, Name: "River Flooding",
		Description: "Swollen rivers have burst their banks, inundating farmland and settlements.",
		Duration:    2,
		BaseEffects: map[Metric]float64{
			MetricWater: 10, MetricEconomic: -12, MetricEnvironmental: -10, MetricPublic: -8,
		},
		AdaptationOptions: []string{"infrastructure", "delta_restoration"},
	},
	{
		Type: EventHeatwave, Name: "Extreme Heatwave",
		Description: "Record temperatures are driving evaporation and straining water demand.",
		Duration:    2,
		BaseEffects: map[Metric]float64{
			MetricWater: -10, MetricPublic: -6, MetricEconomic: -5,
		},
		AdaptationOptions: []string{"efficiency", "conservation"},
	},
	{
		Type: EventStorm, Name: "Severe Storm Front",
		Description: "Violent storms are damaging water infrastructure and power lines.",
		Duration:    1,
		BaseEffects: map[Metric]float64{
			MetricEconomic: -8, MetricEnvironmental: -6,
		},
		AdaptationOptions: []string{"infrastructure"},
	},
	{
		Type: EventFreeze, Name: "Hard Freeze",
		Description: "A deep cold snap has frozen intakes and burst distribution pipes.",
		Duration:    2,
		BaseEffects: map[Metric]float64{
			MetricWater: -5, MetricEconomic: -7, MetricPublic: -4,
		},
		AdaptationOptions: []string{"infrastructure"},
	},
	{
		Type: EventWildfire, Name: "Watershed Wildfires",
		Description: "Fires in the upper watershed are stripping vegetation and fouling runoff.",
		Duration:    2,
		BaseEffects: map[Metric]float64{
			MetricEnvironmental: -15, MetricPublic: -8, MetricWater: -5,
		},
		AdaptationOptions: []string{"conservation", "biodiversity_protection"},
	},
	{
		Type: EventHurricane, Name: "Coastal Hurricane",
		Description: "A hurricane has made landfall, bringing storm surge and widespread damage.",
		Duration:    2,
		BaseEffects: map[Metric]float64{
			MetricWater: 5, MetricEconomic: -18, MetricEnvironmental: -12, MetricPublic: -10,
		},
		AdaptationOptions: []string{"infrastructure", "delta_restoration"},
	},
	{
		Type: EventBlizzard, Name: "Mountain Blizzard",
		Description: "Blizzard conditions have cut off highland communities and halted transport.",
		Duration:    1,
		BaseEffects: map[Metric]float64{
			MetricEconomic: -10, MetricPublic: -6,
		},
		AdaptationOptions: []string{"infrastructure"},
	},
}

// severityMultipliers index-aligns with AllEventSeverities.
var severityMultipliers = []float64{1, 1.5, 2, 3}

// severityFor picks an event severity from current risk and warming. The
// floor rises with risk and warming and a random bump can push it up one
// step, never down.
func severityFor(c ClimateState, rng *Stream) EventSeverity {
	idx := 0
	if c.ExtremeWeatherRisk > 60 {
		idx = 1
	}
	if c.ExtremeWeatherRisk > 80 {
		idx = 2
	}
	if c.GlobalWarming > 3 {
		idx = 3
	}
	idx += int(math.Floor(rng.Float64() * 2))
	if idx > len(AllEventSeverities)-1 {
		idx = len(AllEventSeverities) - 1
	}
	return AllEventSeverities[idx]
}

// MaybeSpawnClimateEvent rolls for a new climate event. Spawn probability
// is risk/100 scaled by 0.4. Types already present in the active set are
// excluded so no two concurrent events share a type. Returns nil when
// nothing spawns. The caller applies the event's immediate effects.
func MaybeSpawnClimateEvent(c ClimateState, active []*ClimateEvent, rng *Stream) *ClimateEvent {
	if rng.Float64() >= (c.ExtremeWeatherRisk/100)*0.4 {
		return nil
	}
	var candidates []climateEventTemplate
	for _, tmpl := range climateEventTemplates {
		taken := false
		for _, ev := range active {
			if ev.Type == tmpl.Type {
				taken = true
				break
			}
		}
		if !taken {
			candidates = append(candidates, tmpl)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	tmpl := candidates[rng.Intn(len(candidates))]
	sev := severityFor(c, rng)
	mult := severityMultipliers[severityIndex(sev)]

	effects := make(map[Metric]float64, len(tmpl.BaseEffects))
	for m, v := range tmpl.BaseEffects {
		effects[m] = v * mult
	}
	return &ClimateEvent{
		ID:                uuid.New(),
		Type:              tmpl.Type,
		Severity:          sev,
		Name:              tmpl.Name,
		Description:       tmpl.Description,
		Duration:          tmpl.Duration,
		Remaining:         tmpl.Duration,
		Immediate:         Effect{Metrics: effects},
		AdaptationOptions: append([]string(nil), tmpl.AdaptationOptions...),
	}
}

// TickClimateEvents advances every active event by one turn, applying
// ongoing effects while an event still has duration left and the one-shot
// long-term tail on the turn it expires. Expired events are dropped from
// the returned slice.
func TickClimateEvents(state MetricState, active []*ClimateEvent) (MetricState, []*ClimateEvent, []string) {
	var kept []*ClimateEvent
	var notes []string
	for _, ev := range active {
		ev.Remaining--
		if ev.Remaining > 0 {
			state = Apply(state, ev.Ongoing())
			kept = append(kept, ev)
			continue
		}
		state = Apply(state, ev.LongTerm())
		notes = append(notes, fmt.Sprintf("%s has ended. Long-term impacts are settling in.", ev.Name))
	}
	return state, kept, notes
}

// ClimateShift is the one-time climate adjustment a triggered trend applies.
// Only the persistent fields are shifted; derived and resampled readings
// pick the change up on the next advance.
type ClimateShift struct {
	Stability float64
	Warming   float64
	SeaLevel  float64
}

// ClimateTrend is a persistent, monotonically progressing indicator. Its
// shift fires exactly once, on the turn progression first crosses the
// threshold.
type ClimateTrend struct {
	ID          string
	Name        string
	Description string
	Progression float64
	Threshold   float64
	Triggered   bool
	Shift       ClimateShift
}

// NewClimateTrends returns the basin's long-running climate trends at their
// starting progression.
func NewClimateTrends() []*ClimateTrend {
	return []*ClimateTrend{
		{
			ID: "glacial_retreat", Name: "Glacial Retreat",
			Description: "Headwater glaciers are shrinking year over year, reducing dry-season flows.",
			Progression: 20, Threshold: 60,
			Shift: ClimateShift{Stability: -8, SeaLevel: 4},
		},
		{
			ID: "sea_level_rise", Name: "Sea Level Rise",
			Description: "Rising seas are pushing saltwater into delta aquifers.",
			Progression: 15, Threshold: 70,
			Shift: ClimateShift{SeaLevel: 10, Stability: -5},
		},
		{
			ID: "desertification", Name: "Desertification",
			Description: "Arid zones are expanding into formerly productive land.",
			Progression: 10, Threshold: 65,
			Shift: ClimateShift{Stability: -10},
		},
		{
			ID: "monsoon_shift", Name: "Monsoon Shift",
			Description: "Seasonal rain patterns are arriving later and less predictably.",
			Progression: 25, Threshold: 55,
			Shift: ClimateShift{Stability: -6, Warming: 0.3},
		},
	}
}

// AdvanceClimateTrends progresses every trend and fires each trend's shift
// on the turn it first crosses its threshold. Progression keeps advancing
// after the latch, clamped at 100.
func AdvanceClimateTrends(c ClimateState, trends []*ClimateTrend, rng *Stream) (ClimateState, []string) {
	var notes []string
	for _, tr := range trends {
		tr.Progression = math.Min(100, tr.Progression+rng.Float64()*2+c.GlobalWarming*0.5)
		if !tr.Triggered && tr.Progression >= tr.Threshold {
			tr.Triggered = true
			c.ClimateStability = Clamp(c.ClimateStability + tr.Shift.Stability)
			c.GlobalWarming += tr.Shift.Warming
			c.SeaLevel += tr.Shift.SeaLevel
			notes = append(notes, fmt.Sprintf("%s has reached a tipping point: %s", tr.Name, tr.Description))
		}
	}
	return c, notes
}
