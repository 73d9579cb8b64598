package engine

import (
	"time"

	"github.com/google/uuid"
)

// Metric identifies one of the scalar nation metrics in effect maps and
// challenge requirements. The wire names match the original balance tables.
type Metric string

const (
	MetricWater             Metric = "water"
	MetricPublic            Metric = "public"
	MetricEconomic          Metric = "economic"
	MetricEnvironmental     Metric = "environmentalHealth"
	MetricDiplomatic        Metric = "diplomatic"
	MetricResources         Metric = "resources"
	MetricClimateResilience Metric = "climateResilience"
	MetricAdaptationLevel   Metric = "adaptationLevel"
	MetricWaterControl      Metric = "waterControl"
	MetricGeopoliticalPower Metric = "geopoliticalPower"
)

var AllMetrics = []Metric{
	MetricWater, MetricPublic, MetricEconomic, MetricEnvironmental,
	MetricDiplomatic, MetricResources, MetricClimateResilience,
	MetricAdaptationLevel, MetricWaterControl, MetricGeopoliticalPower,
}

// QualityMetric identifies one of the numeric water-quality sub-metrics.
type QualityMetric string

const (
	QualityPollutionLevel       QualityMetric = "pollutionLevel"
	QualityTreatmentCapacity    QualityMetric = "waterTreatmentCapacity"
	QualityMonitoringEfficiency QualityMetric = "monitoringEfficiency"
	QualityHealthImpacts        QualityMetric = "healthImpacts"
	QualityEnvironmentalDamage  QualityMetric = "environmentalDamage"
)

var AllQualityMetrics = []QualityMetric{
	QualityPollutionLevel, QualityTreatmentCapacity, QualityMonitoringEfficiency,
	QualityHealthImpacts, QualityEnvironmentalDamage,
}

// PollutionSource is a named contamination origin feeding the holder's
// water system. CrossBorder is true when the origin country differs from
// the holder's own.
type PollutionSource struct {
	ID          string
	Name        string
	Type        PollutionSourceType
	Severity    float64 // 0-100
	Location    string
	Description string
	Origin      string // country id
	CrossBorder bool
}

// WaterQualityState is the pollution sub-record owned by MetricState.
type WaterQualityState struct {
	PollutionLevel         float64
	WaterTreatmentCapacity float64
	MonitoringEfficiency   float64
	HealthImpacts          float64
	EnvironmentalDamage    float64
	InternationalStandards bool
	DisputeLevel           DisputeLevel
	ContaminationSources   []PollutionSource
}

// MetricState is the canonical nation-state record for one game session.
// All scalar metrics except Resources are held in [0,100] by EffectApplier;
// Resources is additive and unclamped. Turn starts at 1 and increments
// exactly once per completed action.
type MetricState struct {
	Role                Role
	Turn                int
	WaterLevel          float64
	PublicSupport       float64
	EconomicHealth      float64
	EnvironmentalHealth float64
	DiplomaticRelations float64
	Resources           float64
	ClimateResilience   float64
	AdaptationLevel     float64
	WaterControl        float64
	GeopoliticalPower   float64
	WaterQuality        WaterQualityState
	Country             *Country `json:"-"` // selected once at game start, immutable
}

// Clamp restricts a metric value to [0,100].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Value returns the current reading of a named metric. Used by the
// challenge engine to compare state against scaled requirement thresholds.
func (s MetricState) Value(m Metric) float64 {
	switch m {
	case MetricWater:
		return s.WaterLevel
	case MetricPublic:
		return s.PublicSupport
	case MetricEconomic:
		return s.EconomicHealth
	case MetricEnvironmental:
		return s.EnvironmentalHealth
	case MetricDiplomatic:
		return s.DiplomaticRelations
	case MetricResources:
		return s.Resources
	case MetricClimateResilience:
		return s.ClimateResilience
	case MetricAdaptationLevel:
		return s.AdaptationLevel
	case MetricWaterControl:
		return s.WaterControl
	case MetricGeopoliticalPower:
		return s.GeopoliticalPower
	default:
		return 0
	}
}

// QualityValue returns the current reading of a water-quality sub-metric.
func (s MetricState) QualityValue(q QualityMetric) float64 {
	switch q {
	case QualityPollutionLevel:
		return s.WaterQuality.PollutionLevel
	case QualityTreatmentCapacity:
		return s.WaterQuality.WaterTreatmentCapacity
	case QualityMonitoringEfficiency:
		return s.WaterQuality.MonitoringEfficiency
	case QualityHealthImpacts:
		return s.WaterQuality.HealthImpacts
	case QualityEnvironmentalDamage:
		return s.WaterQuality.EnvironmentalDamage
	default:
		return 0
	}
}

// Message is one entry in the append-only game log. The log is the sole
// notification channel; newest entries come first.
type Message struct {
	ID        uuid.UUID
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// ActionRecord is one entry of the append-only action history. The
// challenge engine consults the last five records for trigger matching.
type ActionRecord struct {
	ActionKey string
	Role      Role
	Turn      int
	Impact    Effect
	Timestamp time.Time
}
