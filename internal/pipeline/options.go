// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package pipeline

import (
	"sort"

	"github.com/tomtom215/projectatlas/internal/dataset"
	"github.com/tomtom215/projectatlas/internal/filter"
	"github.com/tomtom215/projectatlas/internal/models"
	"github.com/tomtom215/projectatlas/internal/normalize"
)

// FilterOptions returns the filter choices for the loaded dataset. Each list
// starts with "ALL"; topics and sub-funds are the distinct non-empty
// values of their columns, sorted.
func (p *Pipeline) FilterOptions() models.FilterOptions {
	statuses := []string{filter.All}
	for _, s := range models.KnownStatuses {
		statuses = append(statuses, string(s))
	}

	projects := p.source.Projects()
	return models.FilterOptions{
		Statuses: statuses,
		Outputs:  []string{filter.All, "1", "0"},
		Topics:   distinct(projects, normalize.ColumnTopic),
		SubFunds: distinct(projects, normalize.ColumnSubFund),
	}
}

func distinct(t *dataset.Table, column string) []string {
	col := t.Column(column)
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for i := 0; i < t.Len(); i++ {
		v, ok := col.At(i)
		if !ok || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{filter.All}, values...)
}
