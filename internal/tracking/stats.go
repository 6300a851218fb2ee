package tracking

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

const (
	topLimit    = 10
	recentLimit = 50
)

// LabelCount is a filter label and how often it was picked.
type LabelCount struct {
	Section string `json:"section"`
	Label   string `json:"label"`
	Count   int64  `json:"count"`
}

// ProjectCount is a project and how often its details were opened.
type ProjectCount struct {
	ProjectID int   `json:"project_id"`
	Count     int64 `json:"count"`
}

// SectionCount is a section and how many visitors scrolled it into view.
type SectionCount struct {
	Section string `json:"section"`
	Count   int64  `json:"count"`
}

// Stats summarizes the tracked data for the admin dashboard.
type Stats struct {
	TotalVisitors    int64          `json:"total_visitors"`
	UniqueVisitors   int64          `json:"unique_visitors"`
	VisitorsToday    int64          `json:"visitors_today"`
	VisitorsThisWeek int64          `json:"visitors_this_week"`
	SectionReveals   []SectionCount `json:"section_reveals"`
	TopFilters       []LabelCount   `json:"top_filters"`
	TopProjects      []ProjectCount `json:"top_projects"`
	RecentVisitors   []Visitor      `json:"recent_visitors"`
}

// Stats computes the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, "SELECT COUNT(*) FROM visitors", nil},
		{&stats.UniqueVisitors, "SELECT COUNT(DISTINCT hashed_ip) FROM visitors", nil},
		{&stats.VisitorsToday, "SELECT COUNT(*) FROM visitors WHERE created_at >= ?", []any{startOfDay.Unix()}},
		{&stats.VisitorsThisWeek, "SELECT COUNT(*) FROM visitors WHERE created_at >= ?", []any{weekAgo.Unix()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, errors.Wrap(err, "count visitors")
		}
	}

	var err error
	if stats.SectionReveals, err = s.sectionReveals(ctx); err != nil {
		return nil, err
	}
	if stats.TopFilters, err = s.topFilters(ctx); err != nil {
		return nil, err
	}
	if stats.TopProjects, err = s.topProjects(ctx); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisitors(ctx, recentLimit); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) sectionReveals(ctx context.Context) ([]SectionCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT section, COUNT(*) AS n
		FROM section_events
		WHERE kind = ?
		GROUP BY section
		ORDER BY n DESC, section
	`, KindReveal)
	if err != nil {
		return nil, errors.Wrap(err, "query section reveals")
	}
	defer rows.Close()

	var out []SectionCount
	for rows.Next() {
		var c SectionCount
		if err := rows.Scan(&c.Section, &c.Count); err != nil {
			return nil, errors.Wrap(err, "scan section reveal")
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "iterate section reveals")
}

func (s *Store) topFilters(ctx context.Context) ([]LabelCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT section, label, COUNT(*) AS n
		FROM section_events
		WHERE kind = ?
		GROUP BY section, label
		ORDER BY n DESC, section, label
		LIMIT ?
	`, KindFilter, topLimit)
	if err != nil {
		return nil, errors.Wrap(err, "query top filters")
	}
	defer rows.Close()

	var out []LabelCount
	for rows.Next() {
		var c LabelCount
		if err := rows.Scan(&c.Section, &c.Label, &c.Count); err != nil {
			return nil, errors.Wrap(err, "scan top filter")
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "iterate top filters")
}

func (s *Store) topProjects(ctx context.Context) ([]ProjectCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT project_id, COUNT(*) AS n
		FROM section_events
		WHERE kind = ?
		GROUP BY project_id
		ORDER BY n DESC, project_id
		LIMIT ?
	`, KindDetail, topLimit)
	if err != nil {
		return nil, errors.Wrap(err, "query top projects")
	}
	defer rows.Close()

	var out []ProjectCount
	for rows.Next() {
		var c ProjectCount
		if err := rows.Scan(&c.ProjectID, &c.Count); err != nil {
			return nil, errors.Wrap(err, "scan top project")
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "iterate top projects")
}
