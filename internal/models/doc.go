// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

/*
Package models defines the data structures shared across Project Atlas.

Key Components:

  - Project, Organization: normalized registry rows
  - GeolocatedProject: a project placed at its primary organization's coordinates
  - OrganizationSummary: one row of the participation ranking
  - ProjectStats, FilterOptions: dashboard supporting views
  - APIResponse, Metadata, APIError: the HTTP response envelope

Model Categories:

1. Registry Models:
  - Project carries nullable optional fields; a nil Contribution means the
    source value was missing or unparseable, never zero.
  - Organization rows are kept raw; several may share a ProjectID.

2. View Models:
  - GeolocatedProject and OrganizationSummary are value copies owned by the
    caller. They never alias the source tables.

3. API Models:
  - APIResponse wraps every HTTP payload with a status of "success", "empty"
    or "error".

Thread Safety:

Models carry no synchronization. Views returned from a pipeline run are not
shared with other runs and may be mutated freely by their owner.
*/
package models
