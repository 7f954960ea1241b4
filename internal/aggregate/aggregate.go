// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package aggregate

import (
	"sort"

	"github.com/tomtom215/projectatlas/internal/models"
)

// DefaultTopN is the ranking size used when none is requested.
const DefaultTopN = 10

type group struct {
	id       string
	projects map[string]struct{}
	name     *string
	country  *string
}

// TopOrganizations ranks organizations by the number of distinct located
// projects they participate in, under any order value.
//
// Ties keep the order in which organizations first appear in records. Name
// and country come from the first row of each organization that has them.
// Rows without an organisationID are ignored. n <= 0 selects DefaultTopN.
// An empty input yields an empty, non-nil ranking.
func TopOrganizations(records []models.Organization, located []models.GeolocatedProject, n int) []models.OrganizationSummary {
	if n <= 0 {
		n = DefaultTopN
	}

	ids := make(map[string]struct{}, len(located))
	for i := range located {
		ids[located[i].ProjectID] = struct{}{}
	}

	var (
		groups []*group
		byID   = make(map[string]*group)
	)
	for i := range records {
		r := &records[i]
		if r.OrganisationID == "" {
			continue
		}
		if _, ok := ids[r.ProjectID]; !ok {
			continue
		}

		g, ok := byID[r.OrganisationID]
		if !ok {
			g = &group{id: r.OrganisationID, projects: make(map[string]struct{})}
			byID[r.OrganisationID] = g
			groups = append(groups, g)
		}
		g.projects[r.ProjectID] = struct{}{}
		if g.name == nil && r.Name != nil {
			g.name = r.Name
		}
		if g.country == nil && r.Country != nil {
			g.country = r.Country
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].projects) > len(groups[j].projects)
	})
	if len(groups) > n {
		groups = groups[:n]
	}

	out := make([]models.OrganizationSummary, len(groups))
	for i, g := range groups {
		out[i] = models.OrganizationSummary{
			OrganisationID: g.id,
			ProjectCount:   len(g.projects),
			Name:           cloneString(g.name),
			Country:        cloneString(g.country),
		}
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
