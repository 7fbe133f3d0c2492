// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. Every rule of a chain is evaluated eagerly: a payload violating
// three rules reports all three in one error, never just the first.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/pkg/date"
)

var (
	// emailRegex is a conservative email pattern: local part, @, domain
	// labels, and a 2-6 letter TLD. Deliberately stricter than RFC 5322.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	// loginRegex requires at least one character and no whitespace anywhere.
	loginRegex = regexp.MustCompile(`^\S+$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// LenRange fails if the Unicode character count is outside [min, max].
func (v *Validator) LenRange(field, value string, min, max int) *Validator {
	if n := utf8.RuneCountInString(value); n < min || n > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d characters", min, max))
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Email fails if the value does not match the conservative email pattern.
//
// An empty value fails this rule as well as [Validator.Required]: both are
// always evaluated, so an empty email reports two violations.
func (v *Validator) Email(field, value string) *Validator {
	if !emailRegex.MatchString(value) {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Login fails if the value is empty or contains whitespace.
func (v *Validator) Login(field, value string) *Validator {
	if !loginRegex.MatchString(value) {
		v.add(field, "Must not contain whitespace")
	}
	return v
}

// Positive fails if the value is zero or negative.
func (v *Validator) Positive(field string, value int) *Validator {
	if value <= 0 {
		v.add(field, "Must be a positive number")
	}
	return v
}

// RequiredDate fails if the date is absent (zero value).
func (v *Validator) RequiredDate(field string, value date.Date) *Validator {
	if value.IsZero() {
		v.add(field, "This field is required")
	}
	return v
}

// NotBefore fails if the date precedes min. Absent dates are skipped;
// [Validator.RequiredDate] owns the presence rule.
func (v *Validator) NotBefore(field string, value, min date.Date) *Validator {
	if !value.IsZero() && value.Before(min.Time) {
		v.add(field, fmt.Sprintf("Must not be before %s", min))
	}
	return v
}

// NotFuture fails if the date is after today. Today itself is allowed,
// and absent dates are skipped.
func (v *Validator) NotFuture(field string, value date.Date) *Validator {
	if !value.IsZero() && value.After(date.Today().Time) {
		v.add(field, "Must not be in the future")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("mpa", film.Mpa.ID == 0, "The MPA rating reference is required")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// The error message joins every violation with " & " so the caller sees the
// complete rule set in one pass. This is the only output method — call it at
// the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(v.errs))
	for _, fieldError := range v.errs {
		messages = append(messages, fieldError.Field+": "+fieldError.Message)
	}

	return apperr.ValidationError(strings.Join(messages, " & "), v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
