package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the flat, serializable form of a Session. The country is
// referenced by id and re-linked against the catalog on restore.
type Snapshot struct {
	ID         uuid.UUID           `json:"id"`
	CountryID  string              `json:"countryId"`
	SeedText   string              `json:"seed"`
	State      MetricState         `json:"state"`
	Climate    ClimateState        `json:"climate"`
	Events     []*ClimateEvent     `json:"events,omitempty"`
	Trends     []*ClimateTrend     `json:"trends,omitempty"`
	Challenges []*DynamicChallenge `json:"challenges,omitempty"`
	History    []ActionRecord      `json:"history,omitempty"`
	Messages   []Message           `json:"messages,omitempty"`
}

// Snapshot captures the session's full state for persistence.
func (s *Session) Snapshot() Snapshot {
	countryID := ""
	if s.State.Country != nil {
		countryID = s.State.Country.ID
	}
	return Snapshot{
		ID:         s.ID,
		CountryID:  countryID,
		SeedText:   s.seed.Text,
		State:      s.State,
		Climate:    s.Climate,
		Events:     append([]*ClimateEvent(nil), s.events...),
		Trends:     append([]*ClimateTrend(nil), s.trends...),
		Challenges: append([]*DynamicChallenge(nil), s.challenges...),
		History:    append([]ActionRecord(nil), s.history...),
		Messages:   append([]Message(nil), s.messages...),
	}
}

// RestoreSession rebuilds a live session from a snapshot. The stored seed
// text reproduces the same deterministic streams, so a restored run
// continues exactly where it left off.
func RestoreSession(snap Snapshot) (*Session, error) {
	country, ok := CountryByID(snap.CountryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, snap.CountryID)
	}
	seed, err := NewRunSeed(snap.SeedText)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:         snap.ID,
		State:      snap.State,
		Climate:    snap.Climate,
		seed:       seed,
		events:     append([]*ClimateEvent(nil), snap.Events...),
		trends:     append([]*ClimateTrend(nil), snap.Trends...),
		challenges: append([]*DynamicChallenge(nil), snap.Challenges...),
		history:    append([]ActionRecord(nil), snap.History...),
		messages:   append([]Message(nil), snap.Messages...),
		now:        time.Now,
	}
	s.State.Country = country
	return s, nil
}
