// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package filter

import (
	"strconv"
	"strings"
)

// AllProjects is the description of a Spec with no active criteria.
const AllProjects = "All Projects"

// Describe renders the chart subtitle for s, for example
// "Filtered by: Status: SIGNED | Output: With Output | Topic: HORIZON-CL5".
func (s Spec) Describe() string {
	var parts []string

	if st := strings.ToUpper(strings.TrimSpace(s.Status)); st != "" && st != All {
		parts = append(parts, "Status: "+st)
	}
	if out := strings.TrimSpace(s.OutputFlag); out != "" && !strings.EqualFold(out, All) {
		switch out {
		case "1":
			parts = append(parts, "Output: With Output")
		case "0":
			parts = append(parts, "Output: Without Output")
		default:
			parts = append(parts, "Output: "+out)
		}
	}
	if !isAll(s.Topic) {
		parts = append(parts, "Topic: "+s.Topic)
	}
	if !isAll(s.SubFund) {
		parts = append(parts, "Sub-fund: "+s.SubFund)
	}
	if s.Contribution.Bounded() {
		parts = append(parts, "Contribution: "+describeRange(s.Contribution))
	}

	if len(parts) == 0 {
		return AllProjects
	}
	return "Filtered by: " + strings.Join(parts, " | ")
}

func describeRange(r *Range) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return formatAmount(*r.Min) + " to " + formatAmount(*r.Max)
	case r.Min != nil:
		return ">= " + formatAmount(*r.Min)
	default:
		return "<= " + formatAmount(*r.Max)
	}
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
