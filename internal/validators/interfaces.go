// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request bodies before they reach the
// storage layer.
//
// Struct-level rules are declared with `validate` tags on the models and
// enforced by github.com/go-playground/validator/v10. Failures are reported
// as errors wrapping ErrInvalidField with a "field: rule" description, or as
// one of the other sentinels of this package.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
