package store

import (
	"context"
	"database/sql"
	"encoding/json"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/svandijk/watershed/internal/engine"
	"github.com/svandijk/watershed/internal/util"
)

var (
	ErrNoChange = errs.New("no change")
	ErrNotFound = errs.New("session not found")
)

// schemaVersion stamps each saved record so future readers can migrate
// old payloads.
const schemaVersion = 1

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Open connects to DB per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping")
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// SessionSummary is the listing row for saved runs.
type SessionSummary struct {
	ID        uuid.UUID
	CountryID string
	Turn      int
	UpdatedAt time.Time
}

// SessionRepo persists full session snapshots as flat versioned records.
type SessionRepo struct{ db *DB }

func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

// Save upserts the snapshot keyed by session id.
func (r *SessionRepo) Save(ctx context.Context, snap engine.Snapshot) error {
	state, err := json.Marshal(snap.State)
	if err != nil {
		return errors.Wrap(err, "marshal state")
	}
	climate, err := json.Marshal(snap.Climate)
	if err != nil {
		return errors.Wrap(err, "marshal climate")
	}
	events, err := json.Marshal(snap.Events)
	if err != nil {
		return errors.Wrap(err, "marshal events")
	}
	trends, err := json.Marshal(snap.Trends)
	if err != nil {
		return errors.Wrap(err, "marshal trends")
	}
	challenges, err := json.Marshal(snap.Challenges)
	if err != nil {
		return errors.Wrap(err, "marshal challenges")
	}
	history, err := json.Marshal(snap.History)
	if err != nil {
		return errors.Wrap(err, "marshal history")
	}
	messages, err := json.Marshal(snap.Messages)
	if err != nil {
		return errors.Wrap(err, "marshal messages")
	}

	err = r.db.gorm.WithContext(ctx).Exec(`
		INSERT INTO sessions(id, country_id, seed, schema_version, turn, state, climate, events, trends, challenges, history, messages, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,now())
		ON CONFLICT (id) DO UPDATE SET
			turn = EXCLUDED.turn,
			state = EXCLUDED.state,
			climate = EXCLUDED.climate,
			events = EXCLUDED.events,
			trends = EXCLUDED.trends,
			challenges = EXCLUDED.challenges,
			history = EXCLUDED.history,
			messages = EXCLUDED.messages,
			updated_at = now()`,
		snap.ID, snap.CountryID, snap.SeedText, schemaVersion, snap.State.Turn,
		state, climate, events, trends, challenges, history, messages,
	).Error
	return errors.Wrap(err, "save session")
}

// Load reads a snapshot by id.
func (r *SessionRepo) Load(ctx context.Context, id uuid.UUID) (engine.Snapshot, error) {
	row := r.db.gorm.WithContext(ctx).Raw(`
		SELECT id, country_id, seed, state, climate, events, trends, challenges, history, messages
		FROM sessions WHERE id = ?`, id).Row()

	var (
		snap                                                         engine.Snapshot
		state, climate, events, trends, challenges, history, msgsRaw []byte
	)
	if err := row.Scan(&snap.ID, &snap.CountryID, &snap.SeedText,
		&state, &climate, &events, &trends, &challenges, &history, &msgsRaw); err != nil {
		if err == sql.ErrNoRows {
			return engine.Snapshot{}, ErrNotFound
		}
		return engine.Snapshot{}, errors.Wrap(err, "load session")
	}
	if err := json.Unmarshal(state, &snap.State); err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "unmarshal state")
	}
	if err := json.Unmarshal(climate, &snap.Climate); err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "unmarshal climate")
	}
	if err := json.Unmarshal(events, &snap.Events); err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "unmarshal events")
	}
	if err := json.Unmarshal(trends, &snap.Trends); err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "unmarshal trends")
	}
	if err := json.Unmarshal(challenges, &snap.Challenges); err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "unmarshal challenges")
	}
	if err := json.Unmarshal(history, &snap.History); err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "unmarshal history")
	}
	if err := json.Unmarshal(msgsRaw, &snap.Messages); err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "unmarshal messages")
	}
	return snap, nil
}

// List returns saved runs, most recently updated first.
func (r *SessionRepo) List(ctx context.Context) ([]SessionSummary, error) {
	rows, err := r.db.gorm.WithContext(ctx).Raw(`
		SELECT id, country_id, turn, updated_at FROM sessions ORDER BY updated_at DESC`).Rows()
	if err != nil {
		return nil, errors.Wrap(err, "list sessions")
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.ID, &s.CountryID, &s.Turn, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a saved run.
func (r *SessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.gorm.WithContext(ctx).Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete session")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}
