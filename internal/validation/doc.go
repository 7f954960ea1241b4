// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata, so building one per request would be wasteful. Two custom tags
// cover the filter controls, where every field accepts the "ALL" sentinel:
//
//   - all_or_uint: "ALL" or a non-negative integer (the output flag)
//   - all_or_text: "ALL" or non-blank printable text (status, topic, sub-fund)
//
// Failures convert to the API's VALIDATION_ERROR shape via ToAPIError:
//
//	if verr := validation.ValidateStruct(&spec); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
