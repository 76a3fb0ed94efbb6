// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation wraps go-playground/validator v10 with a shared
// validator instance and messages in the API's VALIDATION_ERROR format.
//
// It validates both HTTP query parameters and the loaded configuration:
//
//	type recommendationQuery struct {
//	    Title string `validate:"required,notblank,max=300"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Tags
//
//   - notblank: string must contain a non-whitespace character
package validation
