package engine

// RandomEvent is one entry of the small ambient event table rolled every
// turn alongside the climate and pollution engines.
type RandomEvent struct {
	Message string
	Effects Effect
}

var randomEventTable = []RandomEvent{
	{
		Message: "Heavy rainfall increases water reserves by 10%",
		Effects: metricDeltas(map[Metric]float64{MetricWater: 10}),
	},
	{
		Message: "Industrial accident contaminates water supply",
		Effects: metricDeltas(map[Metric]float64{MetricWater: -15, MetricEnvironmental: -10}),
	},
	{
		Message: "Public protests demand better water management",
		Effects: metricDeltas(map[Metric]float64{MetricPublic: -20}),
	},
	{
		Message: "International aid package approved",
		Effects: metricDeltas(map[Metric]float64{MetricResources: 30, MetricDiplomatic: 10}),
	},
	{
		Message: "New water-efficient technology discovered",
		Effects: metricDeltas(map[Metric]float64{MetricWater: 5, MetricEconomic: 5}),
	},
	{
		Message: "Climate research breakthrough improves adaptation",
		Effects: metricDeltas(map[Metric]float64{MetricAdaptationLevel: 8, MetricClimateResilience: 5}),
	},
}

// randomEventChance is the per-turn probability that an ambient event fires.
const randomEventChance = 0.3

// MaybeSpawnRandomEvent rolls for an ambient event. Returns nil when
// nothing fires; the caller applies the event's effects.
func MaybeSpawnRandomEvent(rng *Stream) *RandomEvent {
	if rng.Float64() >= randomEventChance {
		return nil
	}
	ev := randomEventTable[rng.Intn(len(randomEventTable))]
	return &ev
}
