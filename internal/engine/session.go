package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnknownAction is returned when an action key does not exist in
	// the current role's catalog.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInsufficientResources is returned when the nation cannot afford
	// an action's cost. No state mutates and the turn does not advance.
	ErrInsufficientResources = errors.New("insufficient resources")
	// ErrUnknownCountry is returned for a country id outside the catalog.
	ErrUnknownCountry = errors.New("unknown country")
)

// Session owns one full simulation run: the nation state, the shared
// climate, active events and challenges, the action history and the game
// log. All mutation happens synchronously inside TakeAction; nothing
// advances between calls.
type Session struct {
	ID      uuid.UUID
	State   MetricState
	Climate ClimateState

	seed       RunSeed
	events     []*ClimateEvent
	trends     []*ClimateTrend
	challenges []*DynamicChallenge
	history    []ActionRecord
	messages   []Message

	now func() time.Time
}

// NewSession starts a run for the given country. Two sessions created from
// the same seed text play out identically for identical action sequences.
func NewSession(countryID, seedText string) (*Session, error) {
	country, ok := CountryByID(countryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, countryID)
	}
	seed, err := NewRunSeed(seedText)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID: uuid.New(),
		State: MetricState{
			Role:                RoleGovernment,
			Turn:                1,
			WaterLevel:          country.StartingStats.WaterLevel,
			PublicSupport:       country.StartingStats.PublicSupport,
			EconomicHealth:      country.StartingStats.EconomicHealth,
			EnvironmentalHealth: country.StartingStats.EnvironmentalHealth,
			DiplomaticRelations: country.StartingStats.DiplomaticRelations,
			Resources:           country.StartingStats.Resources,
			ClimateResilience:   country.StartingStats.ClimateResilience,
			AdaptationLevel:     country.StartingStats.AdaptationLevel,
			WaterControl:        country.StartingStats.WaterControl,
			GeopoliticalPower:   country.StartingStats.GeopoliticalPower,
			WaterQuality:        initialWaterQuality(country),
			Country:             country,
		},
		Climate: NewClimateState(),
		seed:    seed,
		trends:  NewClimateTrends(),
		now:     time.Now,
	}

	s.log(fmt.Sprintf("Welcome to %s! You are now leading this %s nation in the hydro-political simulation.",
		country.Name, country.Type), MsgEvent)
	if country.Type == CountryDownstream {
		s.log("As a downstream country, you're receiving water that may be polluted by upstream activities. Monitor water quality closely.", MsgPollution)
	} else {
		s.log("As a source country, your activities can affect downstream water quality. Be mindful of potential diplomatic consequences.", MsgPollution)
	}
	return s, nil
}

// Seed returns the session's seed text.
func (s *Session) Seed() string { return s.seed.Text }

// Messages returns the game log, newest first.
func (s *Session) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

// History returns the append-only action history, oldest first.
func (s *Session) History() []ActionRecord {
	return append([]ActionRecord(nil), s.history...)
}

// ActiveClimateEvents returns the currently running climate events.
func (s *Session) ActiveClimateEvents() []*ClimateEvent {
	return append([]*ClimateEvent(nil), s.events...)
}

// Trends returns the basin's long-running climate trends.
func (s *Session) Trends() []*ClimateTrend {
	return append([]*ClimateTrend(nil), s.trends...)
}

// Challenges returns every challenge instantiated so far, including
// resolved ones.
func (s *Session) Challenges() []*DynamicChallenge {
	return append([]*DynamicChallenge(nil), s.challenges...)
}

// ActiveChallenges returns only the challenges still awaiting resolution.
func (s *Session) ActiveChallenges() []*DynamicChallenge {
	var out []*DynamicChallenge
	for _, ch := range s.challenges {
		if ch.Status == StatusActive {
			out = append(out, ch)
		}
	}
	return out
}

// Actions returns the ordered actions available to the current role.
func (s *Session) Actions() []ActionDefinition {
	return EligibleActions(s.State.Role, s.State.Country)
}

// Recommendations returns the advisor's current suggestions.
func (s *Session) Recommendations() []Recommendation {
	return Recommend(s.State)
}

// log prepends a message to the game log.
func (s *Session) log(text string, typ MessageType) {
	msg := Message{ID: uuid.New(), Text: text, Type: typ, Timestamp: s.now()}
	s.messages = append([]Message{msg}, s.messages...)
}

// SwitchRole changes the active role. Free, unconditional, and does not
// advance the turn.
func (s *Session) SwitchRole(role Role, reason string) error {
	if !role.Validate() {
		return fmt.Errorf("invalid role %q", role)
	}
	s.State.Role = role
	if reason != "" {
		s.log(fmt.Sprintf("Switched to %s: %s", role, reason), MsgEvent)
	} else {
		s.log(fmt.Sprintf("Switched to %s", role), MsgEvent)
	}
	return nil
}

// TakeAction plays one turn. The action is resolved within the current
// role's catalog and validated against resources; on failure nothing
// mutates and the turn does not advance. On success the action's effects
// and cost apply, the turn increments, and the background engines run as
// one atomic pipeline over the post-action state.
func (s *Session) TakeAction(actionKey string) error {
	action, ok := FindAction(s.State.Role, actionKey)
	if !ok {
		s.log("Insufficient resources to take this action!", MsgCrisis)
		return fmt.Errorf("%w: %q", ErrUnknownAction, actionKey)
	}
	if s.State.Resources < float64(action.Cost) {
		s.log("Insufficient resources to take this action!", MsgCrisis)
		return fmt.Errorf("%w: %s costs %d", ErrInsufficientResources, action.Key, action.Cost)
	}

	s.history = append(s.history, ActionRecord{
		ActionKey: action.Key,
		Role:      s.State.Role,
		Turn:      s.State.Turn,
		Impact:    action.Impact,
		Timestamp: s.now(),
	})

	s.State = Apply(s.State, action.Impact)
	s.State.Resources -= float64(action.Cost)
	s.State.Turn++

	s.log(fmt.Sprintf("Action taken: %s", action.Name), MsgAction)

	if action.HasTag("climate") || action.HasTag("adaptation") {
		bonus := float64(int(s.State.AdaptationLevel) / 20)
		if bonus > 0 {
			s.State.ClimateResilience = Clamp(s.State.ClimateResilience + bonus)
		}
	}

	s.advanceWorld()
	return nil
}

// advanceWorld runs the per-turn background pipeline in dependency order:
// ambient event, climate advance, event lifecycle and spawn, trend
// progression, pollution spawn, challenge generation, completion check.
// Every pass observes the state left by the previous one.
func (s *Session) advanceWorld() {
	turnRNG := s.seed.Stream(fmt.Sprintf("turn:%d", s.State.Turn))

	if ev := MaybeSpawnRandomEvent(turnRNG.Child("random-event")); ev != nil {
		s.log(ev.Message, MsgEvent)
		s.State = Apply(s.State, ev.Effects)
	}

	s.Climate = AdvanceClimate(s.Climate, s.State.Turn, turnRNG.Child("climate"))

	var notes []string
	s.State, s.events, notes = TickClimateEvents(s.State, s.events)
	for _, n := range notes {
		s.log(n, MsgClimate)
	}
	if ev := MaybeSpawnClimateEvent(s.Climate, s.events, turnRNG.Child("climate-event")); ev != nil {
		s.events = append(s.events, ev)
		s.State = Apply(s.State, ev.Immediate)
		s.log(fmt.Sprintf("%s (%s): %s", ev.Name, ev.Severity, ev.Description), MsgClimate)
	}

	s.Climate, notes = AdvanceClimateTrends(s.Climate, s.trends, turnRNG.Child("trends"))
	for _, n := range notes {
		s.log(n, MsgWarning)
	}

	if ev := MaybeSpawnPollutionEvent(s.State, turnRNG.Child("pollution")); ev != nil {
		s.log(fmt.Sprintf("Pollution Event: %s - %s", ev.Title, ev.Description), MsgPollution)
		s.State = Apply(s.State, ev.Effects)
	}

	spawned := GenerateChallenges(s.State, s.Climate, s.events, s.history, s.challenges, turnRNG.Child("challenges"))
	for _, ch := range spawned {
		s.challenges = append(s.challenges, ch)
		s.log(fmt.Sprintf("New challenge: %s - %s", ch.Title, ch.Description), MsgChallenge)
	}

	var resolved []ChallengeResolution
	s.State, resolved = CheckChallengeCompletion(s.State, s.challenges)
	for _, r := range resolved {
		if r.Completed {
			s.log(fmt.Sprintf("Challenge completed: %s", r.Challenge.Title), MsgSuccess)
		} else {
			s.log(fmt.Sprintf("Challenge failed: %s", r.Challenge.Title), MsgCrisis)
		}
	}
}
