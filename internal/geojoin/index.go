// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package geojoin

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/projectatlas/internal/dataset"
	"github.com/tomtom215/projectatlas/internal/models"
	"github.com/tomtom215/projectatlas/internal/normalize"
)

// Organization table columns.
const (
	ColumnOrganisationID = "organisationID"
	ColumnProjectID      = "projectID"
	ColumnOrder          = "order"
	ColumnName           = "name"
	ColumnCountry        = "country"
	ColumnGeolocation    = "geolocation"
)

// ErrMissingColumn is returned when the organization table lacks a join column.
var ErrMissingColumn = errors.New("geojoin: organization table is missing a required column")

var requiredColumns = []string{ColumnProjectID, ColumnOrder, ColumnOrganisationID}

// Index maps project IDs to their organization rows. It is built once per
// pipeline run and never modified afterwards.
type Index struct {
	records   []models.Organization
	byProject map[string][]int
}

// NewIndex reads every row of the organization table, preserving table
// order both in Records and within each project's bucket.
func NewIndex(t *dataset.Table) (*Index, error) {
	for _, c := range requiredColumns {
		if !t.HasColumn(c) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	var (
		orgID   = t.Column(ColumnOrganisationID)
		project = t.Column(ColumnProjectID)
		order   = t.Column(ColumnOrder)
		name    = t.Column(ColumnName)
		country = t.Column(ColumnCountry)
		geo     = t.Column(ColumnGeolocation)
	)

	ix := &Index{
		records:   make([]models.Organization, t.Len()),
		byProject: make(map[string][]int),
	}
	for i := range ix.records {
		rec := &ix.records[i]
		rec.OrganisationID = normalize.Key(orgID.At(i))
		rec.ProjectID = normalize.Key(project.At(i))
		rec.Order = parseOrder(order.At(i))
		rec.Name = normalize.Text(name.At(i))
		rec.Country = normalize.Text(country.At(i))
		rec.Geolocation = normalize.Text(geo.At(i))

		if rec.ProjectID != "" {
			ix.byProject[rec.ProjectID] = append(ix.byProject[rec.ProjectID], i)
		}
	}
	return ix, nil
}

// parseOrder accepts integral values, including "1.0".
func parseOrder(raw string, ok bool) *int {
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}

// Len returns the number of organization rows.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Records returns every organization row in table order. Callers must not
// modify the returned slice.
func (ix *Index) Records() []models.Organization {
	return ix.records
}

// HasProject reports whether any organization row references projectID.
func (ix *Index) HasProject(projectID string) bool {
	_, ok := ix.byProject[projectID]
	return ok
}

// Primary returns the first order-1 organization for projectID and the
// number of order-1 rows found.
func (ix *Index) Primary(projectID string) (*models.Organization, int) {
	var (
		first *models.Organization
		count int
	)
	for _, i := range ix.byProject[projectID] {
		if ix.records[i].IsPrimary() {
			if first == nil {
				first = &ix.records[i]
			}
			count++
		}
	}
	return first, count
}
