package engine

import (
	"encoding/json"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s, err := NewSession("riverlandia", "snap-seed")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for _, key := range []string{"water_rationing", "infrastructure"} {
		if err := s.TakeAction(key); err != nil {
			t.Fatalf("TakeAction(%s): %v", key, err)
		}
	}

	raw, err := json.Marshal(s.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := RestoreSession(snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.State.Turn != s.State.Turn || restored.State.Resources != s.State.Resources {
		t.Fatalf("state mismatch after restore")
	}
	if restored.State.Country == nil || restored.State.Country.ID != "riverlandia" {
		t.Fatalf("country not re-linked")
	}
	if len(restored.History()) != len(s.History()) || len(restored.Messages()) != len(s.Messages()) {
		t.Fatalf("collections not restored")
	}

	// both sessions share the seed, so play continues identically
	if err := s.TakeAction("water_rationing"); err != nil {
		t.Fatalf("original TakeAction: %v", err)
	}
	if err := restored.TakeAction("water_rationing"); err != nil {
		t.Fatalf("restored TakeAction: %v", err)
	}
	if restored.State.WaterLevel != s.State.WaterLevel || restored.Climate != s.Climate {
		t.Fatalf("restored session diverged from original")
	}
}

func TestRestoreRejectsUnknownCountry(t *testing.T) {
	if _, err := RestoreSession(Snapshot{CountryID: "atlantis", SeedText: "x"}); err == nil {
		t.Fatalf("restore should reject unknown country")
	}
}
