// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package models

// Display fallbacks used when a project or organization field is missing.
const (
	DefaultTitle   = "No Title"
	NotAvailable   = "N/A"
	UnknownDisplay = "Unknown"
)

// GeolocatedProject is a project resolved to its primary organization's
// validated coordinates. It is a value copy; it holds no reference to the
// source tables.
type GeolocatedProject struct {
	Latitude     float64  `json:"lat"`
	Longitude    float64  `json:"lon"`
	ProjectID    string   `json:"project_id"`
	Title        string   `json:"title"`
	Status       Status   `json:"status"`
	Output       int      `json:"output"`
	Contribution *float64 `json:"contribution"`
	TotalCost    *float64 `json:"total_cost"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	SubFund      string   `json:"sub_fund"`
	Topic        string   `json:"topic"`
}

// NewGeolocatedProject builds the map view of p at (lat, lon), applying the
// display fallbacks for missing text fields.
func NewGeolocatedProject(p *Project, lat, lon float64) GeolocatedProject {
	return GeolocatedProject{
		Latitude:     lat,
		Longitude:    lon,
		ProjectID:    p.ID,
		Title:        orDefault(p.Title, DefaultTitle),
		Status:       p.Status,
		Output:       p.Output,
		Contribution: copyFloat(p.Contribution),
		TotalCost:    copyFloat(p.TotalCost),
		StartDate:    orDefault(p.StartDate, NotAvailable),
		EndDate:      orDefault(p.EndDate, NotAvailable),
		SubFund:      orDefault(p.SubFund, NotAvailable),
		Topic:        orDefault(p.Topic, NotAvailable),
	}
}

// HasOutput reports whether the project is flagged as having produced output.
func (g *GeolocatedProject) HasOutput() bool {
	return g.Output == 1
}

// OrganizationSummary is one entry of the participation ranking.
type OrganizationSummary struct {
	OrganisationID string  `json:"organisation_id"`
	ProjectCount   int     `json:"project_count"`
	Name           *string `json:"name"`
	Country        *string `json:"country"`
}

// DisplayName renders "name (country)", substituting "Unknown" for either
// missing part.
func (s *OrganizationSummary) DisplayName() string {
	return orDefault(s.Name, UnknownDisplay) + " (" + orDefault(s.Country, UnknownDisplay) + ")"
}

// ProjectStats are the headline counts shown above the map.
type ProjectStats struct {
	Total         int `json:"total"`
	WithOutput    int `json:"with_output"`
	WithoutOutput int `json:"without_output"`
}

// FilterOptions are the choices offered to the filter controls.
type FilterOptions struct {
	Statuses []string `json:"statuses"`
	Outputs  []string `json:"outputs"`
	Topics   []string `json:"topics"`
	SubFunds []string `json:"sub_funds"`
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
