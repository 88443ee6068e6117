// Package store persists generated projects. The whole history is a
// single JSON-serialized array round-tripped through the kv_store
// table under one fixed key.
package store

import (
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/appforge/appforge/pkg/models"
)

// storageKey is the single key the project array lives under.
const storageKey = "appforge.generated_projects"

// Store reads and writes the project history. Persistence is
// best-effort: read failures yield an empty history and write
// failures are logged and swallowed, so a failed save is invisible to
// callers.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// New creates a project history store on top of an opened database.
func New(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger.Named("store")}
}

// List returns all stored projects, newest first. Any read or parse
// failure is treated as an empty history.
func (s *Store) List() []models.GeneratedProject {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, storageKey).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("failed to read project history", zap.Error(err))
		}
		return nil
	}

	var projects []models.GeneratedProject
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		s.logger.Warn("failed to parse project history", zap.Error(err))
		return nil
	}
	return projects
}

// Get looks up a single project by id.
func (s *Store) Get(id string) (models.GeneratedProject, bool) {
	for _, p := range s.List() {
		if p.ID == id {
			return p, true
		}
	}
	return models.GeneratedProject{}, false
}

// Save upserts a project by id: an existing entry is replaced in
// place, a new one is inserted at the front.
func (s *Store) Save(project models.GeneratedProject) {
	projects := s.List()

	replaced := false
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append([]models.GeneratedProject{project}, projects...)
	}

	s.write(projects)
}

// Delete removes all entries with the given id.
func (s *Store) Delete(id string) {
	projects := s.List()

	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	s.write(kept)
}

func (s *Store) write(projects []models.GeneratedProject) {
	raw, err := json.Marshal(projects)
	if err != nil {
		s.logger.Error("failed to serialize project history", zap.Error(err))
		return
	}

	_, err = s.db.Exec(`INSERT OR REPLACE INTO kv_store (key, value) VALUES (?, ?)`, storageKey, string(raw))
	if err != nil {
		s.logger.Error("failed to write project history", zap.Error(err))
	}
}
