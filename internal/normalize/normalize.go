// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package normalize

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/projectatlas/internal/dataset"
	"github.com/tomtom215/projectatlas/internal/models"
)

// Project table columns.
const (
	ColumnID           = "id"
	ColumnStatus       = "status"
	ColumnOutput       = "output"
	ColumnTopic        = "topic"
	ColumnSubFund      = "sub-fund"
	ColumnContribution = "ecMaxContribution"
	ColumnTotalCost    = "totalCost"
	ColumnStartDate    = "startDate"
	ColumnEndDate      = "endDate"
	ColumnTitle        = "title"
)

var (
	// ErrMissingStatusColumn is returned when the project table has no status column.
	ErrMissingStatusColumn = errors.New("normalize: project table has no status column")

	// ErrMissingIDColumn is returned when the project table has no id column.
	ErrMissingIDColumn = errors.New("normalize: project table has no id column")
)

// Stats counts coercions applied during one normalization pass.
type Stats struct {
	Rows                    int
	OutputDefaulted         int
	ContributionUnparseable int
}

// Projects returns a fresh normalized copy of every row in t, in table order.
//
// Only a missing status or id column is an error. Every other column is
// optional: a missing output column yields output 0 everywhere and missing
// text or numeric columns yield nil fields.
func Projects(t *dataset.Table) ([]models.Project, Stats, error) {
	var (
		id           = t.Column(ColumnID)
		status       = t.Column(ColumnStatus)
		output       = t.Column(ColumnOutput)
		topic        = t.Column(ColumnTopic)
		subFund      = t.Column(ColumnSubFund)
		contribution = t.Column(ColumnContribution)
		totalCost    = t.Column(ColumnTotalCost)
		startDate    = t.Column(ColumnStartDate)
		endDate      = t.Column(ColumnEndDate)
		title        = t.Column(ColumnTitle)
	)
	if !status.Present() {
		return nil, Stats{}, ErrMissingStatusColumn
	}
	if !id.Present() {
		return nil, Stats{}, ErrMissingIDColumn
	}

	stats := Stats{Rows: t.Len()}
	projects := make([]models.Project, t.Len())
	for i := range projects {
		p := &projects[i]
		p.ID = Key(id.At(i))
		p.Status = Status(status.At(i))

		rawOutput, hasOutput := output.At(i)
		var parsed bool
		p.Output, parsed = OutputFlag(rawOutput, hasOutput)
		if hasOutput && !parsed {
			stats.OutputDefaulted++
		}

		rawContribution, hasContribution := contribution.At(i)
		p.Contribution = Number(rawContribution, hasContribution)
		if hasContribution && p.Contribution == nil {
			stats.ContributionUnparseable++
		}
		p.TotalCost = Number(totalCost.At(i))

		p.Title = Text(title.At(i))
		p.Topic = Text(topic.At(i))
		p.SubFund = Text(subFund.At(i))
		p.StartDate = Text(startDate.At(i))
		p.EndDate = Text(endDate.At(i))
	}
	return projects, stats, nil
}

// Status trims and upper-cases a raw status. A NULL status becomes "".
func Status(raw string, ok bool) models.Status {
	if !ok {
		return ""
	}
	return models.Status(strings.ToUpper(strings.TrimSpace(raw)))
}

// OutputFlag coerces a raw output value to a non-negative integer. Integral
// decimals such as "1.0" are accepted. Anything else, including NULL and
// negative values, coerces to 0 and reports parsed == false.
func OutputFlag(raw string, ok bool) (value int, parsed bool) {
	if !ok {
		return 0, false
	}
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Number parses a raw numeric cell. NULL, unparseable and non-finite values
// return nil; a missing value is never reported as zero.
func Number(raw string, ok bool) *float64 {
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Text returns a pointer to a non-empty raw cell, or nil.
func Text(raw string, ok bool) *string {
	if !ok || raw == "" {
		return nil
	}
	return &raw
}

// Key normalizes a join key by trimming surrounding whitespace. NULL keys
// become "", which never matches.
func Key(raw string, ok bool) string {
	if !ok {
		return ""
	}
	return strings.TrimSpace(raw)
}
