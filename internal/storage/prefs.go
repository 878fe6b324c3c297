package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Prefs exposes the prefs table as an integer key-value store. Failures are
// logged and reads fall back to the caller's default, so a broken database
// degrades to "nothing stored" instead of stopping the game.
type Prefs struct {
	store  *Store
	logger *log.Logger
}

// Prefs returns the key-value view of the store. A nil logger means
// log.Default().
func (s *Store) Prefs(logger *log.Logger) *Prefs {
	if logger == nil {
		logger = log.Default()
	}
	return &Prefs{store: s, logger: logger}
}

// Lookup reads key, reporting whether it exists.
func (p *Prefs) Lookup(key string) (int64, bool, error) {
	var v int64
	err := p.store.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read pref %s: %w", key, err)
	}
	return v, true, nil
}

// Set writes key, replacing any previous value.
func (p *Prefs) Set(key string, value int64) error {
	_, err := p.store.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write pref %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (p *Prefs) Delete(key string) error {
	if _, err := p.store.db.Exec("DELETE FROM prefs WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete pref %s: %w", key, err)
	}
	return nil
}

func (p *Prefs) GetInt(key string, def int) int {
	return int(p.GetLong(key, int64(def)))
}

func (p *Prefs) GetLong(key string, def int64) int64 {
	v, ok, err := p.Lookup(key)
	if err != nil {
		p.logger.Warn("pref read failed", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	return v
}

func (p *Prefs) PutInt(key string, value int) {
	p.PutLong(key, int64(value))
}

func (p *Prefs) PutLong(key string, value int64) {
	if err := p.Set(key, value); err != nil {
		p.logger.Error("pref write failed", "key", key, "error", err)
	}
}

func (p *Prefs) Remove(key string) {
	if err := p.Delete(key); err != nil {
		p.logger.Error("pref delete failed", "key", key, "error", err)
	}
}
