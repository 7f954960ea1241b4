// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if v1, v2 := GetValidator(), GetValidator(); v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one non-nil instance")
	}
}

type filterRequest struct {
	Output string `json:"output" validate:"omitempty,all_or_uint"`
	Topic  string `json:"topic" validate:"omitempty,max=16,all_or_text"`
	Top    int    `json:"top" validate:"min=1,max=100"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     filterRequest
		wantField string
		wantTag   string
	}{
		{name: "zero filters", input: filterRequest{Top: 10}},
		{name: "ALL sentinels", input: filterRequest{Output: "ALL", Topic: "ALL", Top: 10}},
		{name: "lowercase all output", input: filterRequest{Output: "all", Top: 1}},
		{name: "numeric output", input: filterRequest{Output: "1", Top: 100}},
		{name: "negative output", input: filterRequest{Output: "-1", Top: 10}, wantField: "output", wantTag: "all_or_uint"},
		{name: "text output", input: filterRequest{Output: "yes", Top: 10}, wantField: "output", wantTag: "all_or_uint"},
		{name: "control character topic", input: filterRequest{Topic: "a\x00b", Top: 10}, wantField: "topic", wantTag: "all_or_text"},
		{name: "blank topic", input: filterRequest{Topic: "   ", Top: 10}, wantField: "topic", wantTag: "all_or_text"},
		{name: "long topic", input: filterRequest{Topic: strings.Repeat("x", 17), Top: 10}, wantField: "topic", wantTag: "max"},
		{name: "top too small", input: filterRequest{Top: 0}, wantField: "top", wantTag: "min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.input)
			if tt.wantTag == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field != tt.wantField || errs[0].Tag != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", errs[0].Field, errs[0].Tag, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		err := ValidateStruct(&filterRequest{Output: "x", Top: 10})
		apiErr := err.ToAPIError()
		if apiErr.Code != CodeValidationError {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Message != "output must be ALL or a non-negative integer" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "output" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()
		err := ValidateStruct(&filterRequest{Output: "x", Top: 1000})
		apiErr := err.ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Fatalf("Details = %v", apiErr.Details)
		}
		if !strings.Contains(apiErr.Message, "top must be at most 100") {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}
