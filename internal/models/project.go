package models

import "time"

// Project is the persisted unit of work: a named, year-scoped collection of
// processed records plus the per-record copy-tracking map. Records keep their
// original order; Copied is keyed by the record's position (the value of its
// "Index" field for FCR records, or the 1-based position for PO records).
type Project struct {
	ID        string          `yaml:"id" json:"id"`
	Name      string          `yaml:"name" json:"name"`
	Year      int             `yaml:"year" json:"year"`
	Records   []OutputRecord  `yaml:"records" json:"records"`
	Copied    map[string]bool `yaml:"copied" json:"copied"`
	Archived  bool            `yaml:"archived" json:"archived"`
	CreatedAt time.Time       `yaml:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `yaml:"updated_at" json:"updatedAt"`
}

// TrackingSummary aggregates the copy progress of a project.
type TrackingSummary struct {
	Total      int             `json:"total"`
	Completed  int             `json:"completed"`
	Remaining  int             `json:"remaining"`
	Percentage float64         `json:"percentage"`
	Copied     map[string]bool `json:"copied"`
}

// Summarize computes the tracking summary for a project.
func (p *Project) Summarize() TrackingSummary {
	completed := 0
	for _, done := range p.Copied {
		if done {
			completed++
		}
	}
	total := len(p.Records)
	remaining := total - completed
	if remaining < 0 {
		remaining = 0
	}
	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}
	copied := make(map[string]bool, len(p.Copied))
	for k, v := range p.Copied {
		copied[k] = v
	}
	return TrackingSummary{
		Total:      total,
		Completed:  completed,
		Remaining:  remaining,
		Percentage: pct,
		Copied:     copied,
	}
}
