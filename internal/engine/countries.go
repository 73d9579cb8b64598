package engine

// StartingStats holds a country's opening position on every tracked metric.
type StartingStats struct {
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
}

// Country is one playable nation in the basin.
type Country struct {
	ID                string
	Name              string
	Type              CountryType
	Region            string
	Description       string
	Advantages        []string
	Challenges        []string
	StartingStats     StartingStats
	SpecialActions    []string
	DiplomaticOptions []string
	WaterSources      []string
	Dependencies      []string
	Neighbors         []string
	Flag              string
}

var countryCatalog = []Country{
	{
		ID:     "alpinia",
		Name:   "Alpinia",
		Type:   CountrySource,
		Region: "Mountain Highlands",
		Description: "A mountainous nation controlling the headwaters of three major river systems. " +
			"Rich in freshwater resources but facing climate-induced glacial melt.",
		Advantages: []string{
			"Controls major river headwaters",
			"Abundant freshwater reserves",
			"Hydroelectric potential",
			"Strong negotiating position",
			"Tourism revenue from pristine nature",
		},
		Challenges: []string{
			"Climate change affecting glaciers",
			"International pressure for water sharing",
			"Limited agricultural land",
			"Seasonal water flow variations",
			"Environmental protection costs",
		},
		StartingStats: StartingStats{
			WaterLevel:          85,
			PublicSupport:       75,
			EconomicHealth:      60,
			EnvironmentalHealth: 80,
			DiplomaticRelations: 55,
			Resources:           120,
			ClimateResilience:   45,
			AdaptationLevel:     35,
			WaterControl:        90,
			GeopoliticalPower:   70,
		},
		SpecialActions:    []string{"dam_construction", "water_release_control", "hydroelectric_expansion", "glacier_protection"},
		DiplomaticOptions: []string{"water_pricing", "flow_agreements", "upstream_cooperation", "environmental_treaties"},
		WaterSources:      []string{"Glacial melt", "Mountain springs", "Seasonal snowpack"},
		Dependencies:      []string{"Food imports", "Technology imports", "Tourism revenue"},
		Neighbors:         []string{"Riverlandia", "Deltopia", "Midstream Republic"},
		Flag:              "🏔️",
	},
	{
		ID:     "highland_federation",
		Name:   "Highland Federation",
		Type:   CountrySource,
		Region: "Northern Plateau",
		Description: "A federal state controlling vast highland watersheds. Balances water export revenues " +
			"with domestic needs and environmental conservation.",
		Advantages: []string{
			"Multiple river system control",
			"Water export revenues",
			"Strong federal institutions",
			"Advanced water management",
			"Regional influence",
		},
		Challenges: []string{
			"Federal vs state water rights",
			"Downstream diplomatic pressure",
			"Infrastructure maintenance costs",
			"Environmental degradation",
			"Climate adaptation needs",
		},
		StartingStats: StartingStats{
			WaterLevel:          80,
			PublicSupport:       70,
			EconomicHealth:      75,
			EnvironmentalHealth: 65,
			DiplomaticRelations: 60,
			Resources:           140,
			ClimateResilience:   50,
			AdaptationLevel:     45,
			WaterControl:        85,
			GeopoliticalPower:   75,
		},
		SpecialActions:    []string{"federal_water_policy", "interstate_compacts", "water_infrastructure", "export_agreements"},
		DiplomaticOptions: []string{"multilateral_treaties", "water_trade", "technical_assistance", "joint_projects"},
		WaterSources:      []string{"Highland lakes", "Forest watersheds", "Groundwater aquifers"},
		Dependencies:      []string{"Manufacturing imports", "Energy imports", "International markets"},
		Neighbors:         []string{"Coastal Republic", "Desert Emirates", "Plains Confederation"},
		Flag:              "⛰️",
	},
	{
		ID:     "riverlandia",
		Name:   "Riverlandia",
		Type:   CountryDownstream,
		Region: "Central River Valley",
		Description: "An agricultural powerhouse dependent on upstream water flows. Faces increasing water " +
			"stress due to upstream development and climate change.",
		Advantages: []string{
			"Fertile agricultural lands",
			"Established irrigation systems",
			"Food export capabilities",
			"Strategic river location",
			"Strong agricultural economy",
		},
		Challenges: []string{
			"Upstream water dependency",
			"Seasonal flow variations",
			"Agricultural water demands",
			"Flood and drought cycles",
			"Limited water storage",
		},
		StartingStats: StartingStats{
			WaterLevel:          55,
			PublicSupport:       65,
			EconomicHealth:      70,
			EnvironmentalHealth: 50,
			DiplomaticRelations: 50,
			Resources:           100,
			ClimateResilience:   40,
			AdaptationLevel:     30,
			WaterControl:        30,
			GeopoliticalPower:   45,
		},
		SpecialActions:    []string{"irrigation_efficiency", "water_storage", "crop_adaptation", "downstream_coalition"},
		DiplomaticOptions: []string{"water_rights_advocacy", "compensation_claims", "regional_cooperation", "international_arbitration"},
		WaterSources:      []string{"River flows", "Irrigation canals", "Limited groundwater"},
		Dependencies:      []string{"Upstream water flows", "Technology imports", "International food markets"},
		Neighbors:         []string{"Alpinia", "Deltopia", "Midstream Republic"},
		Flag:              "🌾",
	},
	{
		ID:     "deltopia",
		Name:   "Deltopia",
		Type:   CountryDownstream,
		Region: "River Delta",
		Description: "A densely populated delta nation at the river mouth. Highly vulnerable to both water " +
			"scarcity and flooding, with significant economic and environmental challenges.",
		Advantages: []string{
			"Strategic coastal location",
			"Major port facilities",
			"Fishing industry",
			"Delta agriculture",
			"International trade hub",
		},
		Challenges: []string{
			"Extreme water vulnerability",
			"Sea level rise threats",
			"Saltwater intrusion",
			"Dense population pressure",
			"Limited freshwater sources",
		},
		StartingStats: StartingStats{
			WaterLevel:          40,
			PublicSupport:       60,
			EconomicHealth:      65,
			EnvironmentalHealth: 35,
			DiplomaticRelations: 45,
			Resources:           90,
			ClimateResilience:   25,
			AdaptationLevel:     20,
			WaterControl:        15,
			GeopoliticalPower:   35,
		},
		SpecialActions:    []string{"desalination", "flood_protection", "delta_restoration", "emergency_reserves"},
		DiplomaticOptions: []string{"crisis_diplomacy", "humanitarian_appeals", "international_aid", "legal_action"},
		WaterSources:      []string{"River mouth flows", "Coastal aquifers", "Desalination plants"},
		Dependencies:      []string{"All upstream water", "Food imports", "International aid", "Technology"},
		Neighbors:         []string{"Riverlandia", "Coastal Republic", "Island Nations"},
		Flag:              "🏝️",
	},
	{
		ID:     "desert_emirates",
		Name:   "Desert Emirates",
		Type:   CountryDownstream,
		Region: "Arid Lowlands",
		Description: "A wealthy but water-scarce nation relying on technology and diplomacy to secure water " +
			"resources. Uses oil wealth to fund water infrastructure.",
		Advantages: []string{
			"Oil wealth for water projects",
			"Advanced desalination technology",
			"Strong international relations",
			"Efficient water use systems",
			"Investment in innovation",
		},
		Challenges: []string{
			"Extreme water scarcity",
			"High infrastructure costs",
			"Energy-intensive water production",
			"Limited natural water sources",
			"Climate vulnerability",
		},
		StartingStats: StartingStats{
			WaterLevel:          30,
			PublicSupport:       70,
			EconomicHealth:      85,
			EnvironmentalHealth: 40,
			DiplomaticRelations: 75,
			Resources:           160,
			ClimateResilience:   35,
			AdaptationLevel:     60,
			WaterControl:        20,
			GeopoliticalPower:   65,
		},
		SpecialActions:    []string{"desalination_expansion", "water_imports", "technology_investment", "diplomatic_pressure"},
		DiplomaticOptions: []string{"economic_incentives", "technology_sharing", "investment_deals", "strategic_partnerships"},
		WaterSources:      []string{"Desalination", "Water imports", "Deep aquifers"},
		Dependencies:      []string{"Water imports", "Technology", "International partnerships"},
		Neighbors:         []string{"Highland Federation", "Coastal Republic", "Mountain States"},
		Flag:              "🏜️",
	},
}

// ListCountries returns the playable nations in catalog order.
func ListCountries() []Country {
	out := make([]Country, len(countryCatalog))
	copy(out, countryCatalog)
	return out
}

// CountryByID looks up a nation by its catalog id.
func CountryByID(id string) (*Country, bool) {
	for i := range countryCatalog {
		if countryCatalog[i].ID == id {
			c := countryCatalog[i]
			return &c, true
		}
	}
	return nil, false
}

// countryPollutionSources maps each nation to its domestic contamination
// sources, present from the first turn.
var countryPollutionSources = map[string][]PollutionSource{
	"alpinia": {
		{
			ID: "alp_mining_1", Name: "Highland Mining Operations", Type: SourceIndustrial,
			Severity: 45, Location: "Northern Mountains",
			Description: "Metal mining operations releasing heavy metals into mountain streams.",
			Origin:      "alpinia", CrossBorder: true,
		},
		{
			ID: "alp_urban_1", Name: "Capital City Runoff", Type: SourceUrban,
			Severity: 30, Location: "Capital Region",
			Description: "Urban runoff from the capital city affecting local water quality.",
			Origin:      "alpinia", CrossBorder: false,
		},
	},
	"highland_federation": {
		{
			ID: "hf_industry_1", Name: "Federation Industrial Zone", Type: SourceIndustrial,
			Severity: 55, Location: "Eastern Plateau",
			Description: "Large industrial complex with multiple factories releasing chemical waste.",
			Origin:      "highland_federation", CrossBorder: true,
		},
		{
			ID: "hf_agri_1", Name: "Highland Agriculture", Type: SourceAgricultural,
			Severity: 35, Location: "Southern Valleys",
			Description: "Intensive agriculture using fertilizers and pesticides.",
			Origin:      "highland_federation", CrossBorder: true,
		},
	},
	"riverlandia": {
		{
			ID: "riv_industry_1", Name: "Riverside Manufacturing", Type: SourceIndustrial,
			Severity: 50, Location: "Central Valley",
			Description: "Manufacturing facilities located along the main river.",
			Origin:      "riverlandia", CrossBorder: true,
		},
		{
			ID: "riv_agri_1", Name: "Intensive Farming District", Type: SourceAgricultural,
			Severity: 60, Location: "Fertile Plains",
			Description: "Large-scale farming with heavy use of agrochemicals.",
			Origin:      "riverlandia", CrossBorder: false,
		},
	},
	"deltopia": {
		{
			ID: "del_urban_1", Name: "Delta Metropolis", Type: SourceUrban,
			Severity: 65, Location: "Main Delta",
			Description: "Dense urban area with inadequate sewage treatment.",
			Origin:      "deltopia", CrossBorder: false,
		},
		{
			ID: "del_industry_1", Name: "Coastal Industrial Complex", Type: SourceIndustrial,
			Severity: 55, Location: "Eastern Coast",
			Description: "Heavy industries located near the coast with ocean discharge.",
			Origin:      "deltopia", CrossBorder: false,
		},
	},
	"desert_emirates": {
		{
			ID: "de_industry_1", Name: "Oil Refineries", Type: SourceIndustrial,
			Severity: 70, Location: "Northern Region",
			Description: "Oil refineries with significant water contamination issues.",
			Origin:      "desert_emirates", CrossBorder: false,
		},
		{
			ID: "de_urban_1", Name: "Luxury Resort Development", Type: SourceUrban,
			Severity: 40, Location: "Coastal Zone",
			Description: "Luxury tourism development with wastewater discharge issues.",
			Origin:      "desert_emirates", CrossBorder: false,
		},
	},
}

// crossBorderPollution maps downstream nations to the contamination
// arriving from upstream on turn one.
var crossBorderPollution = map[string][]PollutionSource{
	"riverlandia": {
		{
			ID: "alp_to_riv_1", Name: "Upstream Mining Discharge", Type: SourceIndustrial,
			Severity: 55, Location: "Upper River",
			Description: "Mining waste from Alpinia flowing downstream into Riverlandia's water system.",
			Origin:      "alpinia", CrossBorder: true,
		},
	},
	"deltopia": {
		{
			ID: "riv_to_del_1", Name: "Agricultural Runoff", Type: SourceAgricultural,
			Severity: 60, Location: "River Mouth",
			Description: "Agricultural chemicals from Riverlandia farms flowing into the delta.",
			Origin:      "riverlandia", CrossBorder: true,
		},
		{
			ID: "alp_to_del_1", Name: "Long-Distance Industrial Pollution", Type: SourceIndustrial,
			Severity: 40, Location: "Main River Channel",
			Description: "Industrial pollutants from Alpinia reaching the delta after traveling the entire river.",
			Origin:      "alpinia", CrossBorder: true,
		},
	},
}

// initialWaterQuality builds the starting water quality state for a nation.
// Downstream nations begin with inherited pollution and an active dispute.
func initialWaterQuality(c *Country) WaterQualityState {
	sources := append([]PollutionSource(nil), countryPollutionSources[c.ID]...)
	if c.Type == CountryDownstream {
		sources = append(sources, crossBorderPollution[c.ID]...)
	}
	wq := WaterQualityState{
		PollutionLevel:         30,
		ContaminationSources:   sources,
		WaterTreatmentCapacity: 50,
		MonitoringEfficiency:   30,
		HealthImpacts:          20,
		EnvironmentalDamage:    25,
		InternationalStandards: false,
		DisputeLevel:           DisputeNone,
	}
	if c.Type == CountryDownstream {
		wq.PollutionLevel = 50
		wq.WaterTreatmentCapacity = 30
		wq.HealthImpacts = 40
		wq.EnvironmentalDamage = 45
		wq.DisputeLevel = DisputeModerate
	}
	return wq
}
