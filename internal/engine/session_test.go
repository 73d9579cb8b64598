package engine

import (
	"errors"
	"testing"
)

func TestNewSessionInitialization(t *testing.T) {
	s, err := NewSession("deltopia", "init-seed")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.State.Turn != 1 {
		t.Fatalf("turn should start at 1, got %d", s.State.Turn)
	}
	if s.State.Role != RoleGovernment {
		t.Fatalf("role should start as government, got %s", s.State.Role)
	}
	if s.State.WaterLevel != 40 || s.State.Resources != 90 {
		t.Fatalf("starting stats not seeded: water=%v resources=%v", s.State.WaterLevel, s.State.Resources)
	}
	if s.State.WaterQuality.PollutionLevel != 50 {
		t.Fatalf("downstream water quality not seeded: %v", s.State.WaterQuality.PollutionLevel)
	}
	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 welcome messages, got %d", len(msgs))
	}
	// newest first: the pollution notice was logged after the welcome
	if msgs[0].Type != MsgPollution || msgs[1].Type != MsgEvent {
		t.Fatalf("log not reverse-chronological: %s, %s", msgs[0].Type, msgs[1].Type)
	}
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	if _, err := NewSession("atlantis", "seed"); !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("want ErrUnknownCountry, got %v", err)
	}
	if _, err := NewSession("alpinia", ""); err == nil {
		t.Fatalf("empty seed should be rejected")
	}
}

func TestTakeActionUnknownKeyNoMutation(t *testing.T) {
	s, _ := NewSession("alpinia", "unknown-action")
	before := s.State
	err := s.TakeAction("compensation_claims") // international action, wrong role
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("want ErrUnknownAction, got %v", err)
	}
	if s.State.Turn != before.Turn || s.State.Resources != before.Resources {
		t.Fatalf("failed action mutated state")
	}
	if s.Messages()[0].Type != MsgCrisis {
		t.Fatalf("failed action should log a crisis message")
	}
}

func TestTakeActionInsufficientResources(t *testing.T) {
	s, _ := NewSession("alpinia", "broke")
	s.State.Resources = 1
	before := s.State
	err := s.TakeAction("water_rationing") // cost 2
	if !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("want ErrInsufficientResources, got %v", err)
	}
	if s.State.Turn != before.Turn || s.State.WaterLevel != before.WaterLevel {
		t.Fatalf("failed action mutated state")
	}
	if len(s.History()) != 0 {
		t.Fatalf("failed action recorded in history")
	}
}

func TestTakeActionAdvancesTurnAndDeductsCost(t *testing.T) {
	s, _ := NewSession("alpinia", "advance")
	startResources := s.State.Resources
	if err := s.TakeAction("water_rationing"); err != nil {
		t.Fatalf("TakeAction: %v", err)
	}
	if s.State.Turn != 2 {
		t.Fatalf("turn should advance to 2, got %d", s.State.Turn)
	}
	// random events may add resources but never remove them, so the cost
	// deduction is visible as a lower bound
	if s.State.Resources > startResources-2+30 {
		t.Fatalf("resources out of range: %v", s.State.Resources)
	}
	hist := s.History()
	if len(hist) != 1 || hist[0].ActionKey != "water_rationing" || hist[0].Turn != 1 {
		t.Fatalf("history not recorded: %+v", hist)
	}
}

func TestSessionDeterministicReplay(t *testing.T) {
	script := []string{"water_rationing", "infrastructure", "water_rationing", "dam_construction"}

	run := func() *Session {
		s, err := NewSession("alpinia", "replay-seed")
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		for _, key := range script {
			if err := s.TakeAction(key); err != nil {
				t.Fatalf("TakeAction(%s): %v", key, err)
			}
		}
		return s
	}

	a, b := run(), run()
	if a.State.WaterLevel != b.State.WaterLevel ||
		a.State.Resources != b.State.Resources ||
		a.State.WaterQuality.PollutionLevel != b.State.WaterQuality.PollutionLevel {
		t.Fatalf("replay diverged: %+v vs %+v", a.State, b.State)
	}
	if a.Climate != b.Climate {
		t.Fatalf("climate diverged: %+v vs %+v", a.Climate, b.Climate)
	}
	if len(a.Messages()) != len(b.Messages()) {
		t.Fatalf("logs diverged: %d vs %d messages", len(a.Messages()), len(b.Messages()))
	}
}

func TestSwitchRoleFreeAndUnconditional(t *testing.T) {
	s, _ := NewSession("alpinia", "roles")
	turn, resources := s.State.Turn, s.State.Resources
	if err := s.SwitchRole(RoleIndustry, "testing the waters"); err != nil {
		t.Fatalf("SwitchRole: %v", err)
	}
	if s.State.Role != RoleIndustry {
		t.Fatalf("role not switched: %s", s.State.Role)
	}
	if s.State.Turn != turn || s.State.Resources != resources {
		t.Fatalf("role switch should not cost anything")
	}
	if err := s.SwitchRole("pirate", ""); err == nil {
		t.Fatalf("invalid role should be rejected")
	}
}

func TestAdaptationBonus(t *testing.T) {
	s, _ := NewSession("desert_emirates", "bonus") // adaptationLevel 60
	s.State.Role = RoleEnvironmental
	resilienceBefore := s.State.ClimateResilience

	// biodiversity_protection carries the climate tag: +18 resilience from
	// the action itself plus floor(adaptation/20) bonus on the result
	if err := s.TakeAction("biodiversity_protection"); err != nil {
		t.Fatalf("TakeAction: %v", err)
	}
	// effects may shift resilience further via events, but the bonus floor
	// guarantees at least the action delta plus 3
	if s.State.ClimateResilience < resilienceBefore+18 {
		t.Fatalf("adaptation bonus missing: before=%v after=%v", resilienceBefore, s.State.ClimateResilience)
	}
}

func TestRecommendationsSurfaceCrises(t *testing.T) {
	s, _ := NewSession("deltopia", "advisor")
	s.State.WaterLevel = 20
	s.State.WaterQuality.PollutionLevel = 70
	s.State.WaterQuality.HealthImpacts = 60
	s.State.WaterQuality.DisputeLevel = DisputeSevere

	recs := s.Recommendations()
	if len(recs) != 4 {
		t.Fatalf("expected all 4 crisis rules to fire, got %d", len(recs))
	}
	keys := map[string]bool{}
	for _, r := range recs {
		keys[r.ActionKey] = true
	}
	for _, want := range []string{"pollution_regulations", "water_quality_agreement", "treatment_facilities", "water_rationing"} {
		if !keys[want] {
			t.Fatalf("missing recommendation for %s", want)
		}
	}
}
