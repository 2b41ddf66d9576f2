// Package store persists campaign tracker state and the generation audit log
// in SQLite, so angle cycles survive process restarts.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"brandforge/internal/angles"
	"brandforge/internal/generation"
	"brandforge/internal/logging"
)

// SQLiteStore implements angles.StateStore and generation.AuditLog on one
// database file.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open initializes the SQLite database at the given path, creating the
// schema if needed.
func Open(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.Get(logging.CategoryStore).Debug("failed to set busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.Get(logging.CategoryStore).Debug("failed to set journal_mode=WAL", zap.Error(err))
	}

	s := &SQLiteStore{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tracker_state (
		brand_key    TEXT NOT NULL,
		platform     TEXT NOT NULL,
		used_angles  TEXT NOT NULL,
		campaign_id  TEXT NOT NULL,
		last_used_at TIMESTAMP,
		PRIMARY KEY (brand_key, platform)
	);
	CREATE TABLE IF NOT EXISTS generation_log (
		result_id    TEXT PRIMARY KEY,
		brand_key    TEXT NOT NULL,
		platform     TEXT NOT NULL,
		angle        TEXT NOT NULL,
		tier         INTEGER NOT NULL,
		score        INTEGER NOT NULL,
		model        TEXT,
		generated_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_generation_log_brand
		ON generation_log(brand_key, platform);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load implements angles.StateStore. A missing row returns (nil, nil).
func (s *SQLiteStore) Load(brandKey, platform string) (*angles.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var usedJSON, campaignID string
	var lastUsed sql.NullTime
	err := s.db.QueryRow(
		"SELECT used_angles, campaign_id, last_used_at FROM tracker_state WHERE brand_key = ? AND platform = ?",
		brandKey, platform,
	).Scan(&usedJSON, &campaignID, &lastUsed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tracker state: %w", err)
	}

	var used []string
	if err := json.Unmarshal([]byte(usedJSON), &used); err != nil {
		return nil, fmt.Errorf("corrupt used_angles for %s/%s: %w", brandKey, platform, err)
	}

	st := &angles.State{
		UsedAngles: make(map[angles.Angle]bool, len(used)),
		CampaignID: campaignID,
	}
	for _, a := range used {
		st.UsedAngles[angles.Angle(a)] = true
	}
	if lastUsed.Valid {
		st.LastUsedAt = lastUsed.Time
	}
	return st, nil
}

// Save implements angles.StateStore with an upsert.
func (s *SQLiteStore) Save(brandKey, platform string, st *angles.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := make([]string, 0, len(st.UsedAngles))
	for a := range st.UsedAngles {
		used = append(used, string(a))
	}
	usedJSON, err := json.Marshal(used)
	if err != nil {
		return fmt.Errorf("failed to encode used angles: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO tracker_state (brand_key, platform, used_angles, campaign_id, last_used_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(brand_key, platform) DO UPDATE SET
			used_angles = excluded.used_angles,
			campaign_id = excluded.campaign_id,
			last_used_at = excluded.last_used_at`,
		brandKey, platform, string(usedJSON), st.CampaignID, st.LastUsedAt)
	if err != nil {
		return fmt.Errorf("failed to save tracker state: %w", err)
	}
	return nil
}

// RecordGeneration implements generation.AuditLog.
func (s *SQLiteStore) RecordGeneration(rec generation.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO generation_log (result_id, brand_key, platform, angle, tier, score, model, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ResultID, rec.BrandKey, rec.Platform, rec.Angle, rec.Tier, rec.Score, rec.Model, rec.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

// RecentGenerations returns the newest audit records for a brand+platform.
func (s *SQLiteStore) RecentGenerations(brandKey, platform string, limit int) ([]generation.AuditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT result_id, brand_key, platform, angle, tier, score, model, generated_at
		FROM generation_log
		WHERE brand_key = ? AND platform = ?
		ORDER BY generated_at DESC
		LIMIT ?`,
		brandKey, platform, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generation log: %w", err)
	}
	defer rows.Close()

	var recs []generation.AuditRecord
	for rows.Next() {
		var rec generation.AuditRecord
		var generatedAt time.Time
		if err := rows.Scan(&rec.ResultID, &rec.BrandKey, &rec.Platform, &rec.Angle,
			&rec.Tier, &rec.Score, &rec.Model, &generatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation record: %w", err)
		}
		rec.GeneratedAt = generatedAt
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
