// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package models

// Status is a normalized (trimmed, upper-cased) project lifecycle status.
// Values outside the known set are preserved verbatim; an absent status
// normalizes to the empty string.
type Status string

// Known project statuses.
const (
	StatusSigned     Status = "SIGNED"
	StatusClosed     Status = "CLOSED"
	StatusTerminated Status = "TERMINATED"
)

// KnownStatuses lists the statuses offered as filter choices, in display order.
var KnownStatuses = []Status{StatusSigned, StatusClosed, StatusTerminated}

// Project is a normalized project registry row.
//
// Optional text fields are nil when the source cell was empty or the column
// was absent. Contribution and TotalCost are nil when the source value could
// not be parsed as a number; a missing value is never reported as zero.
type Project struct {
	ID           string   `json:"project_id"`
	Title        *string  `json:"title,omitempty"`
	Status       Status   `json:"status"`
	Output       int      `json:"output"`
	Contribution *float64 `json:"contribution,omitempty"`
	TotalCost    *float64 `json:"total_cost,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	Topic        *string  `json:"topic,omitempty"`
	SubFund      *string  `json:"sub_fund,omitempty"`
}

// Organization is a raw organization registry row. Several rows may share
// a ProjectID; Order ranks them within the project (1 = primary).
type Organization struct {
	OrganisationID string  `json:"organisation_id"`
	ProjectID      string  `json:"project_id"`
	Order          *int    `json:"order,omitempty"`
	Name           *string `json:"name,omitempty"`
	Country        *string `json:"country,omitempty"`
	Geolocation    *string `json:"geolocation,omitempty"`
}

// IsPrimary reports whether the organization is the project's primary (order 1).
func (o *Organization) IsPrimary() bool {
	return o.Order != nil && *o.Order == 1
}
