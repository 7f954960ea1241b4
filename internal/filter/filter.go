// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package filter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/projectatlas/internal/models"
)

// All is the sentinel option value meaning "do not filter on this field".
const All = "ALL"

// ErrInvalidSpec is returned when a Spec cannot be compiled.
var ErrInvalidSpec = errors.New("filter: invalid spec")

// Range is an inclusive contribution range. A nil bound is open.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Bounded reports whether at least one bound is set.
func (r *Range) Bounded() bool {
	return r != nil && (r.Min != nil || r.Max != nil)
}

// Spec is a composite project filter. The zero Spec, and any field set to
// "" or "ALL", passes everything through on that field.
type Spec struct {
	// Status matches the normalized status; comparison ignores case and
	// surrounding whitespace.
	Status string `json:"status,omitempty" validate:"omitempty,max=64,all_or_text"`

	// OutputFlag is "ALL" or a non-negative integer compared exactly.
	OutputFlag string `json:"output,omitempty" validate:"omitempty,all_or_uint"`

	// Topic and SubFund are exact, case-sensitive matches.
	Topic   string `json:"topic,omitempty" validate:"omitempty,max=256,all_or_text"`
	SubFund string `json:"sub_fund,omitempty" validate:"omitempty,max=256,all_or_text"`

	// Contribution excludes projects with no parseable contribution as soon
	// as either bound is set.
	Contribution *Range `json:"contribution,omitempty"`
}

// Predicate is a compiled Spec.
type Predicate struct {
	status  *models.Status
	output  *int
	topic   *string
	subFund *string
	min     *float64
	max     *float64
	bounded bool
}

// Compile validates s and returns its predicate.
func (s Spec) Compile() (*Predicate, error) {
	p := &Predicate{}

	if st := strings.ToUpper(strings.TrimSpace(s.Status)); st != "" && st != All {
		status := models.Status(st)
		p.status = &status
	}

	if out := strings.TrimSpace(s.OutputFlag); out != "" && !strings.EqualFold(out, All) {
		n, err := strconv.Atoi(out)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: output flag %q is not ALL or a non-negative integer", ErrInvalidSpec, s.OutputFlag)
		}
		p.output = &n
	}

	if !isAll(s.Topic) {
		topic := s.Topic
		p.topic = &topic
	}
	if !isAll(s.SubFund) {
		subFund := s.SubFund
		p.subFund = &subFund
	}

	if s.Contribution.Bounded() {
		for _, b := range []*float64{s.Contribution.Min, s.Contribution.Max} {
			if b != nil && math.IsNaN(*b) {
				return nil, fmt.Errorf("%w: contribution bound is NaN", ErrInvalidSpec)
			}
		}
		p.bounded = true
		p.min = s.Contribution.Min
		p.max = s.Contribution.Max
	}

	return p, nil
}

func isAll(v string) bool {
	return v == "" || v == All
}

// Match reports whether project passes every active criterion.
func (p *Predicate) Match(project *models.Project) bool {
	if p.status != nil && project.Status != *p.status {
		return false
	}
	if p.output != nil && project.Output != *p.output {
		return false
	}
	if p.topic != nil && (project.Topic == nil || *project.Topic != *p.topic) {
		return false
	}
	if p.subFund != nil && (project.SubFund == nil || *project.SubFund != *p.subFund) {
		return false
	}
	if p.bounded {
		if project.Contribution == nil {
			return false
		}
		c := *project.Contribution
		if p.min != nil && c < *p.min {
			return false
		}
		if p.max != nil && c > *p.max {
			return false
		}
	}
	return true
}

// Active reports whether any criterion is set.
func (p *Predicate) Active() bool {
	return p.status != nil || p.output != nil || p.topic != nil || p.subFund != nil || p.bounded
}

// Apply returns the projects matching spec, in their original order. The
// result is a new slice; projects is not modified.
func Apply(projects []models.Project, spec Spec) ([]models.Project, error) {
	pred, err := spec.Compile()
	if err != nil {
		return nil, err
	}
	if !pred.Active() {
		return append([]models.Project(nil), projects...), nil
	}
	out := make([]models.Project, 0, len(projects))
	for i := range projects {
		if pred.Match(&projects[i]) {
			out = append(out, projects[i])
		}
	}
	return out, nil
}
