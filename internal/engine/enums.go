package engine

// String backed enums for DB interoperability.

type Role string
type CountryType string
type Season string
type DisputeLevel string
type ClimateEventType string
type EventSeverity string
type PollutionSourceType string
type ChallengeType string
type ChallengeStatus string
type MessageType string

const (
	RoleGovernment    Role = "government"
	RoleIndustry      Role = "industry"
	RoleEnvironmental Role = "environmental"
	RoleInternational Role = "international"
)

var AllRoles = []Role{RoleGovernment, RoleIndustry, RoleEnvironmental, RoleInternational}

const (
	CountrySource     CountryType = "source"
	CountryDownstream CountryType = "downstream"
)

var AllCountryTypes = []CountryType{CountrySource, CountryDownstream}

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

var AllSeasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// Dispute levels are ordered none < minor < moderate < severe < critical.
const (
	DisputeNone     DisputeLevel = "none"
	DisputeMinor    DisputeLevel = "minor"
	DisputeModerate DisputeLevel = "moderate"
	DisputeSevere   DisputeLevel = "severe"
	DisputeCritical DisputeLevel = "critical"
)

var AllDisputeLevels = []DisputeLevel{DisputeNone, DisputeMinor, DisputeModerate, DisputeSevere, DisputeCritical}

const (
	EventDrought   ClimateEventType = "drought"
	EventFlood     ClimateEventType = "flood"
	EventHeatwave  ClimateEventType = "heatwave"
	EventStorm     ClimateEventType = "storm"
	EventFreeze    ClimateEventType = "freeze"
	EventWildfire  ClimateEventType = "wildfire"
	EventHurricane ClimateEventType = "hurricane"
	EventBlizzard  ClimateEventType = "blizzard"
)

var AllClimateEventTypes = []ClimateEventType{EventDrought, EventFlood, EventHeatwave, EventStorm, EventFreeze, EventWildfire, EventHurricane, EventBlizzard}

// Severities are ordered; index into AllEventSeverities matters for scaling.
const (
	SeverityMinor    EventSeverity = "minor"
	SeverityModerate EventSeverity = "moderate"
	SeveritySevere   EventSeverity = "severe"
	SeverityExtreme  EventSeverity = "extreme"
)

var AllEventSeverities = []EventSeverity{SeverityMinor, SeverityModerate, SeveritySevere, SeverityExtreme}

const (
	SourceIndustrial   PollutionSourceType = "industrial"
	SourceAgricultural PollutionSourceType = "agricultural"
	SourceUrban        PollutionSourceType = "urban"
	SourceNatural      PollutionSourceType = "natural"
)

var AllPollutionSourceTypes = []PollutionSourceType{SourceIndustrial, SourceAgricultural, SourceUrban, SourceNatural}

const (
	ChallengeImmediate    ChallengeType = "immediate"
	ChallengeCascading    ChallengeType = "cascading"
	ChallengeStrategic    ChallengeType = "strategic"
	ChallengeCrisis       ChallengeType = "crisis"
	ChallengeClimate      ChallengeType = "climate"
	ChallengeDiplomatic   ChallengeType = "diplomatic"
	ChallengeGeopolitical ChallengeType = "geopolitical"
	ChallengePollution    ChallengeType = "pollution"
)

var AllChallengeTypes = []ChallengeType{ChallengeImmediate, ChallengeCascading, ChallengeStrategic, ChallengeCrisis, ChallengeClimate, ChallengeDiplomatic, ChallengeGeopolitical, ChallengePollution}

const (
	StatusActive    ChallengeStatus = "active"
	StatusCompleted ChallengeStatus = "completed"
	StatusFailed    ChallengeStatus = "failed"
)

var AllChallengeStatuses = []ChallengeStatus{StatusActive, StatusCompleted, StatusFailed}

const (
	MsgAction     MessageType = "action"
	MsgEvent      MessageType = "event"
	MsgAI         MessageType = "ai"
	MsgCrisis     MessageType = "crisis"
	MsgChallenge  MessageType = "challenge"
	MsgSuccess    MessageType = "success"
	MsgClimate    MessageType = "climate"
	MsgWarning    MessageType = "warning"
	MsgDiplomatic MessageType = "diplomatic"
	MsgConflict   MessageType = "conflict"
	MsgPollution  MessageType = "pollution"
)

var AllMessageTypes = []MessageType{MsgAction, MsgEvent, MsgAI, MsgCrisis, MsgChallenge, MsgSuccess, MsgClimate, MsgWarning, MsgDiplomatic, MsgConflict, MsgPollution}

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (r Role) Validate() bool                { return contains(AllRoles, r) }
func (c CountryType) Validate() bool         { return contains(AllCountryTypes, c) }
func (s Season) Validate() bool              { return contains(AllSeasons, s) }
func (d DisputeLevel) Validate() bool        { return contains(AllDisputeLevels, d) }
func (t ClimateEventType) Validate() bool    { return contains(AllClimateEventTypes, t) }
func (s EventSeverity) Validate() bool       { return contains(AllEventSeverities, s) }
func (p PollutionSourceType) Validate() bool { return contains(AllPollutionSourceTypes, p) }
func (t ChallengeType) Validate() bool       { return contains(AllChallengeTypes, t) }
func (s ChallengeStatus) Validate() bool     { return contains(AllChallengeStatuses, s) }
func (m MessageType) Validate() bool         { return contains(AllMessageTypes, m) }

// severityIndex returns the position of s in the ordered severity scale.
func severityIndex(s EventSeverity) int {
	for i, x := range AllEventSeverities {
		if x == s {
			return i
		}
	}
	return 0
}

// disputeIndex returns the position of d in the ordered dispute scale.
func disputeIndex(d DisputeLevel) int {
	for i, x := range AllDisputeLevels {
		if x == d {
			return i
		}
	}
	return 0
}

// NextSeason returns the season following s in the annual cycle.
func NextSeason(s Season) Season {
	for i, x := range AllSeasons {
		if x == s {
			return AllSeasons[(i+1)%len(AllSeasons)]
		}
	}
	return SeasonSpring
}

// List helpers
func ListRoles() []Role                 { return append([]Role{}, AllRoles...) }
func ListSeasons() []Season             { return append([]Season{}, AllSeasons...) }
func ListDisputeLevels() []DisputeLevel { return append([]DisputeLevel{}, AllDisputeLevels...) }
