// Package project persists named, year-scoped projects as one YAML document
// per project under a data directory. The store is the system's only durable
// state; processed records round-trip through it with field names intact.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no project exists for the given identifier.
var ErrNotFound = errors.New("project not found")

// Store is a file-backed project store. Safe for concurrent use by the HTTP
// handlers.
type Store struct {
	mu     sync.Mutex
	dir    string
	logger logging.Logger
}

// NewStore creates the data directory if needed and returns a store over it.
func NewStore(dir string, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("error creating project directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Create stores a new project with a fresh identifier and an empty tracking
// map.
func (s *Store) Create(name string, year int, records []models.OutputRecord) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p := &models.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Year:      year,
		Records:   records,
		Copied:    map[string]bool{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.write(p); err != nil {
		return nil, err
	}

	s.logger.Info("Created project",
		logging.Field{Key: "id", Value: p.ID},
		logging.Field{Key: "name", Value: name},
		logging.Field{Key: "records", Value: len(records)})
	return p, nil
}

// List returns all projects sorted by creation time, newest first. Archived
// projects are excluded unless includeArchived is set.
func (s *Store) List(includeArchived bool) ([]*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("error reading project directory: %w", err)
	}

	var projects []*models.Project
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		p, err := s.read(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.logger.WithError(err).Warn("Skipping unreadable project file",
				logging.Field{Key: "file", Value: entry.Name()})
			continue
		}
		if p.Archived && !includeArchived {
			continue
		}
		projects = append(projects, p)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

// Get loads one project by identifier.
func (s *Store) Get(id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id)
}

// Update replaces a stored project's name, year, records and tracking map.
func (s *Store) Update(id string, name string, year int, records []models.OutputRecord, copied map[string]bool) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		p.Name = name
	}
	if year != 0 {
		p.Year = year
	}
	if records != nil {
		p.Records = records
	}
	if copied != nil {
		p.Copied = copied
	}
	p.UpdatedAt = time.Now()
	if err := s.write(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetCopied flips the copy flag of one record.
func (s *Store) SetCopied(id, recordID string, copied bool) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if p.Copied == nil {
		p.Copied = map[string]bool{}
	}
	p.Copied[recordID] = copied
	p.UpdatedAt = time.Now()
	if err := s.write(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Archive marks a project archived without deleting its data.
func (s *Store) Archive(id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	p.Archived = true
	p.UpdatedAt = time.Now()
	if err := s.write(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project permanently.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(id)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ErrNotFound
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	s.logger.Info("Deleted project", logging.Field{Key: "id", Value: id})
	return nil
}

// Tracking returns the copy-progress summary of a project.
func (s *Store) Tracking(id string) (*models.TrackingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	summary := p.Summarize()
	return &summary, nil
}

func (s *Store) get(id string) (*models.Project, error) {
	path := s.path(id)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return s.read(path)
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".yaml")
}

func (s *Store) read(path string) (*models.Project, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- paths are store-internal
	if err != nil {
		return nil, fmt.Errorf("error reading project file: %w", err)
	}
	var p models.Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("error parsing project file: %w", err)
	}
	return &p, nil
}

func (s *Store) write(p *models.Project) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("error marshaling project: %w", err)
	}
	if err := os.WriteFile(s.path(p.ID), data, 0600); err != nil {
		return fmt.Errorf("error writing project file: %w", err)
	}
	return nil
}
