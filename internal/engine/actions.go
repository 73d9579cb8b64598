package engine

// Country eligibility sentinels used in ActionDefinition.Countries
// alongside explicit country ids.
const (
	eligibleAll        = "all"
	eligibleSourceOnly = "source_only"
	eligibleDownstream = "downstream_only"
	eligibleWealthy    = "wealthy_only"
)

// wealthyThreshold is the starting economic health at or above which a
// country qualifies for wealthy_only actions.
const wealthyThreshold = 70

// ActionDefinition is one costed, role-scoped choice in the static catalog.
type ActionDefinition struct {
	Key       string
	Name      string
	Cost      int
	Impact    Effect
	Tags      []string
	Countries []string
}

// HasTag reports whether the action carries the given tag.
func (a ActionDefinition) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// actionCatalog holds the static per-role action tables. Declaration order
// is preserved by EligibleActions.
var actionCatalog = map[Role][]ActionDefinition{
	RoleGovernment: {
		{
			Key:  "water_rationing",
			Name: "Implement Water Rationing",
			Cost: 2,
			Impact: metricDeltas(map[Metric]float64{
				MetricWater: 15, MetricPublic: -10, MetricEconomic: -5,
			}),
			Tags:      []string{"regulation", "emergency", "public_policy"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "infrastructure",
			Name: "Build Water Infrastructure",
			Cost: 5,
			Impact: metricDeltas(map[Metric]float64{
				MetricWater: 25, MetricEconomic: 10, MetricEnvironmental: -5, MetricClimateResilience: 10,
			}),
			Tags:      []string{"infrastructure", "long_term", "investment"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "dam_construction",
			Name: "Construct Strategic Dam",
			Cost: 8,
			Impact: metricDeltas(map[Metric]float64{
				MetricWater: 40, MetricWaterControl: 20, MetricEconomic: 15, MetricEnvironmental: -15, MetricDiplomatic: -10,
			}),
			Tags:      []string{"infrastructure", "control", "source_only"},
			Countries: []string{"alpinia", "highland_federation"},
		},
		{
			Key:  "water_release_control",
			Name: "Control Water Releases",
			Cost: 3,
			Impact: metricDeltas(map[Metric]float64{
				MetricWaterControl: 15, MetricDiplomatic: -5, MetricGeopoliticalPower: 10,
			}),
			Tags:      []string{"control", "diplomatic", "source_only"},
			Countries: []string{"alpinia", "highland_federation"},
		},
		{
			Key:  "downstream_coalition",
			Name: "Form Downstream Coalition",
			Cost: 4,
			Impact: metricDeltas(map[Metric]float64{
				MetricDiplomatic: 20, MetricGeopoliticalPower: 15, MetricPublic: 10,
			}),
			Tags:      []string{"diplomatic", "coalition", "downstream_only"},
			Countries: []string{"riverlandia", "deltopia", "desert_emirates"},
		},
		{
			Key:  "international_arbitration",
			Name: "Seek International Arbitration",
			Cost: 6,
			Impact: metricDeltas(map[Metric]float64{
				MetricDiplomatic: 25, MetricGeopoliticalPower: 10, MetricResources: -20,
			}),
			Tags:      []string{"legal", "international", "downstream_only"},
			Countries: []string{"riverlandia", "deltopia", "desert_emirates"},
		},
		{
			Key:  "pollution_regulations",
			Name: "Enforce Pollution Regulations",
			Cost: 5,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricEnvironmental: 15, MetricEconomic: -10, MetricPublic: 5},
				WaterQuality: &WaterQualityEffect{
					Deltas: map[QualityMetric]float64{
						QualityPollutionLevel: -15, QualityTreatmentCapacity: 5, QualityEnvironmentalDamage: -10,
					},
				},
			},
			Tags:      []string{"regulation", "pollution", "enforcement"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "water_quality_standards",
			Name: "Implement Water Quality Standards",
			Cost: 4,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricEnvironmental: 10, MetricDiplomatic: 5, MetricEconomic: -5},
				WaterQuality: &WaterQualityEffect{
					Deltas:    map[QualityMetric]float64{QualityPollutionLevel: -10},
					Standards: boolPtr(true),
					Dispute:   disputePtr(DisputeMinor),
				},
			},
			Tags:      []string{"regulation", "standards", "quality"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "treatment_facilities",
			Name: "Build Treatment Facilities",
			Cost: 7,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricEnvironmental: 20, MetricEconomic: -15, MetricPublic: 10},
				WaterQuality: &WaterQualityEffect{
					Deltas: map[QualityMetric]float64{
						QualityPollutionLevel: -25, QualityTreatmentCapacity: 30, QualityHealthImpacts: -20,
					},
				},
			},
			Tags:      []string{"infrastructure", "treatment", "health"},
			Countries: []string{eligibleAll},
		},
	},
	RoleIndustry: {
		{
			Key:  "efficiency",
			Name: "Improve Water Efficiency",
			Cost: 4,
			Impact: metricDeltas(map[Metric]float64{
				MetricWater: 20, MetricEconomic: 5, MetricEnvironmental: 10, MetricAdaptationLevel: 8,
			}),
			Tags:      []string{"efficiency", "technology", "sustainable"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "hydroelectric_expansion",
			Name: "Expand Hydroelectric Power",
			Cost: 7,
			Impact: metricDeltas(map[Metric]float64{
				MetricEconomic: 25, MetricWaterControl: 15, MetricEnvironmental: -10, MetricDiplomatic: -8,
			}),
			Tags:      []string{"energy", "infrastructure", "source_only"},
			Countries: []string{"alpinia", "highland_federation"},
		},
		{
			Key:  "desalination_expansion",
			Name: "Expand Desalination Capacity",
			Cost: 10,
			Impact: metricDeltas(map[Metric]float64{
				MetricWater: 35, MetricEconomic: -15, MetricAdaptationLevel: 20, MetricEnvironmental: -5,
			}),
			Tags:      []string{"technology", "adaptation", "downstream_only"},
			Countries: []string{"deltopia", "desert_emirates"},
		},
		{
			Key:  "water_imports",
			Name: "Establish Water Import System",
			Cost: 8,
			Impact: metricDeltas(map[Metric]float64{
				MetricWater: 30, MetricEconomic: -20, MetricDiplomatic: 15, MetricResources: -30,
			}),
			Tags:      []string{"trade", "dependency", "downstream_only"},
			Countries: []string{"desert_emirates", "deltopia"},
		},
		{
			Key:  "clean_production",
			Name: "Implement Clean Production",
			Cost: 6,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricEnvironmental: 15, MetricEconomic: -5, MetricPublic: 10},
				WaterQuality: &WaterQualityEffect{
					Deltas: map[QualityMetric]float64{QualityPollutionLevel: -20, QualityEnvironmentalDamage: -15},
				},
			},
			Tags:      []string{"technology", "pollution", "industry"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "industrial_monitoring",
			Name: "Industrial Discharge Monitoring",
			Cost: 3,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricEnvironmental: 5, MetricEconomic: -2},
				WaterQuality: &WaterQualityEffect{
					Deltas: map[QualityMetric]float64{QualityPollutionLevel: -5, QualityMonitoringEfficiency: 25},
				},
			},
			Tags:      []string{"monitoring", "pollution", "regulation"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "pollution_treatment",
			Name: "Industrial Wastewater Treatment",
			Cost: 8,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricEnvironmental: 20, MetricEconomic: -10, MetricDiplomatic: 5},
				WaterQuality: &WaterQualityEffect{
					Deltas: map[QualityMetric]float64{
						QualityPollutionLevel: -30, QualityTreatmentCapacity: 20, QualityHealthImpacts: -15,
					},
				},
			},
			Tags:      []string{"treatment", "technology", "pollution"},
			Countries: []string{eligibleAll},
		},
	},
	RoleEnvironmental: {
		{
			Key:  "conservation",
			Name: "Launch Conservation Campaign",
			Cost: 2,
			Impact: metricDeltas(map[Metric]float64{
				MetricWater: 10, MetricEnvironmental: 20, MetricPublic: 15, MetricAdaptationLevel: 5,
			}),
			Tags:      []string{"conservation", "awareness", "public"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "glacier_protection",
			Name: "Glacier Protection Initiative",
			Cost: 6,
			Impact: metricDeltas(map[Metric]float64{
				MetricEnvironmental: 30, MetricClimateResilience: 20, MetricWater: 15, MetricEconomic: -10,
			}),
			Tags:      []string{"climate", "protection", "source_only"},
			Countries: []string{"alpinia", "highland_federation"},
		},
		{
			Key:  "delta_restoration",
			Name: "Delta Ecosystem Restoration",
			Cost: 7,
			Impact: metricDeltas(map[Metric]float64{
				MetricEnvironmental: 35, MetricClimateResilience: 25, MetricWater: 10, MetricEconomic: -12,
			}),
			Tags:      []string{"restoration", "ecosystem", "downstream_only"},
			Countries: []string{"deltopia", "riverlandia"},
		},
		{
			Key:  "biodiversity_protection",
			Name: "Biodiversity Protection Initiative",
			Cost: 6,
			Impact: metricDeltas(map[Metric]float64{
				MetricEnvironmental: 35, MetricClimateResilience: 18, MetricWater: 10, MetricEconomic: -8,
			}),
			Tags:      []string{"biodiversity", "protection", "climate"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "water_quality_monitoring",
			Name: "Water Quality Monitoring Network",
			Cost: 4,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricEnvironmental: 10, MetricPublic: 5},
				WaterQuality: &WaterQualityEffect{
					Deltas: map[QualityMetric]float64{QualityMonitoringEfficiency: 40, QualityPollutionLevel: -5},
				},
			},
			Tags:      []string{"monitoring", "quality", "data"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "ecosystem_restoration",
			Name: "Aquatic Ecosystem Restoration",
			Cost: 7,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricEnvironmental: 25, MetricEconomic: -5, MetricPublic: 10},
				WaterQuality: &WaterQualityEffect{
					Deltas: map[QualityMetric]float64{QualityEnvironmentalDamage: -30, QualityPollutionLevel: -15},
				},
			},
			Tags:      []string{"restoration", "ecosystem", "biodiversity"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "pollution_litigation",
			Name: "Pollution Litigation Campaign",
			Cost: 5,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricEnvironmental: 15, MetricEconomic: -10, MetricPublic: 5},
				WaterQuality: &WaterQualityEffect{
					Deltas:  map[QualityMetric]float64{QualityPollutionLevel: -20},
					Dispute: disputePtr(DisputeModerate),
				},
			},
			Tags:      []string{"legal", "enforcement", "pollution"},
			Countries: []string{eligibleAll},
		},
	},
	RoleInternational: {
		{
			Key:  "cooperation",
			Name: "Regional Water Cooperation",
			Cost: 4,
			Impact: metricDeltas(map[Metric]float64{
				MetricWater: 20, MetricDiplomatic: 25, MetricEconomic: 5, MetricClimateResilience: 10,
			}),
			Tags:      []string{"cooperation", "regional", "diplomatic"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "water_pricing",
			Name: "Implement Water Pricing",
			Cost: 3,
			Impact: metricDeltas(map[Metric]float64{
				MetricResources: 40, MetricDiplomatic: -15, MetricGeopoliticalPower: 15, MetricPublic: -10,
			}),
			Tags:      []string{"economic", "pricing", "source_only"},
			Countries: []string{"alpinia", "highland_federation"},
		},
		{
			Key:  "compensation_claims",
			Name: "Demand Upstream Compensation",
			Cost: 5,
			Impact: metricDeltas(map[Metric]float64{
				MetricDiplomatic: -10, MetricGeopoliticalPower: 10, MetricResources: 25, MetricPublic: 15,
			}),
			Tags:      []string{"legal", "compensation", "downstream_only"},
			Countries: []string{"riverlandia", "deltopia", "desert_emirates"},
		},
		{
			Key:  "technology_sharing",
			Name: "Technology Sharing Agreement",
			Cost: 6,
			Impact: metricDeltas(map[Metric]float64{
				MetricDiplomatic: 30, MetricAdaptationLevel: 15, MetricEconomic: 10, MetricResources: -20,
			}),
			Tags:      []string{"technology", "cooperation", "wealthy_only"},
			Countries: []string{"highland_federation", "desert_emirates"},
		},
		{
			Key:  "water_quality_agreement",
			Name: "Water Quality Treaty",
			Cost: 6,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricDiplomatic: 25, MetricEnvironmental: 15, MetricEconomic: -5},
				WaterQuality: &WaterQualityEffect{
					Standards: boolPtr(true),
					Dispute:   disputePtr(DisputeNone),
				},
			},
			Tags:      []string{"treaty", "quality", "cooperation"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "pollution_mediation",
			Name: "Cross-Border Pollution Mediation",
			Cost: 4,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricDiplomatic: 20, MetricEnvironmental: 10},
				WaterQuality: &WaterQualityEffect{
					Dispute: disputePtr(DisputeMinor),
				},
			},
			Tags:      []string{"mediation", "pollution", "diplomatic"},
			Countries: []string{eligibleAll},
		},
		{
			Key:  "diplomatic_protest",
			Name: "File Diplomatic Protest",
			Cost: 3,
			Impact: Effect{
				Metrics: map[Metric]float64{MetricDiplomatic: -15, MetricGeopoliticalPower: 5, MetricPublic: 10},
				WaterQuality: &WaterQualityEffect{
					Dispute: disputePtr(DisputeSevere),
				},
			},
			Tags:      []string{"protest", "diplomatic", "downstream_only"},
			Countries: []string{"riverlandia", "deltopia", "desert_emirates"},
		},
	},
}

// eligibleForCountry applies the catalog filter rule: an action is eligible
// iff its country list names the country, "all", or a sentinel matching the
// country's type or wealth.
func eligibleForCountry(a ActionDefinition, c *Country) bool {
	if c == nil {
		return false
	}
	for _, entry := range a.Countries {
		switch entry {
		case eligibleAll:
			return true
		case c.ID:
			return true
		case eligibleSourceOnly:
			if c.Type == CountrySource {
				return true
			}
		case eligibleDownstream:
			if c.Type == CountryDownstream {
				return true
			}
		case eligibleWealthy:
			if c.StartingStats.EconomicHealth >= wealthyThreshold {
				return true
			}
		}
	}
	return false
}

// EligibleActions returns the ordered actions available to a role playing
// the given country, preserving declaration order.
func EligibleActions(role Role, country *Country) []ActionDefinition {
	var out []ActionDefinition
	for _, a := range actionCatalog[role] {
		if eligibleForCountry(a, country) {
			out = append(out, a)
		}
	}
	return out
}

// FindAction resolves an action key within a role's catalog without
// applying country eligibility.
func FindAction(role Role, key string) (ActionDefinition, bool) {
	for _, a := range actionCatalog[role] {
		if a.Key == key {
			return a, true
		}
	}
	return ActionDefinition{}, false
}
