package annotations

import (
	"fmt"
	"strings"
)

// AnnotationError is the interface implemented by every resolver failure. All
// failures are compile-time diagnostics attached to a source span; there is
// no runtime fallback, the enclosing item is simply not expanded.
type AnnotationError interface {
	error
	Location() SourceLocation
	Suggestion() string
	Code() ErrorCode
}

// ErrorCode classifies resolver failures.
type ErrorCode int

const (
	UnrecognizedAttribute ErrorCode = iota
	InvalidAttributeValue
	MisplacedAttribute
	IncompleteVariantConfig
	SyntaxErrorCode
)

// String returns the string representation of the error code.
func (e ErrorCode) String() string {
	switch e {
	case UnrecognizedAttribute:
		return "UnrecognizedAttribute"
	case InvalidAttributeValue:
		return "InvalidAttributeValue"
	case MisplacedAttribute:
		return "MisplacedAttribute"
	case IncompleteVariantConfig:
		return "IncompleteVariantConfig"
	case SyntaxErrorCode:
		return "SyntaxError"
	default:
		return "UnknownError"
	}
}

// UnrecognizedAttributeError reports an unknown annotation kind or an unknown
// parameter key.
type UnrecognizedAttributeError struct {
	Attribute string         // the unknown kind or parameter key
	Loc       SourceLocation // where the error occurred
	Hint      string         // suggested fix
}

func (e *UnrecognizedAttributeError) Error() string {
	return fmt.Sprintf("%s:%d:%d: unrecognized attribute '%s'. %s",
		e.Loc.File, e.Loc.Line, e.Loc.Column, e.Attribute, e.Hint)
}

func (e *UnrecognizedAttributeError) Location() SourceLocation { return e.Loc }
func (e *UnrecognizedAttributeError) Suggestion() string       { return e.Hint }
func (e *UnrecognizedAttributeError) Code() ErrorCode          { return UnrecognizedAttribute }

// InvalidAttributeValueError reports a malformed attribute value, e.g. a
// status identifier outside the fixed table or a transformer name that is not
// a valid identifier.
type InvalidAttributeValueError struct {
	Parameter string         // parameter name that failed validation
	Expected  string         // what was expected
	Actual    string         // what was provided
	Loc       SourceLocation // where the error occurred
	Hint      string         // suggested fix
}

func (e *InvalidAttributeValueError) Error() string {
	return fmt.Sprintf("%s:%d:%d: invalid value for '%s': expected %s, got %s. %s",
		e.Loc.File, e.Loc.Line, e.Loc.Column,
		e.Parameter, e.Expected, e.Actual, e.Hint)
}

func (e *InvalidAttributeValueError) Location() SourceLocation { return e.Loc }
func (e *InvalidAttributeValueError) Suggestion() string       { return e.Hint }
func (e *InvalidAttributeValueError) Code() ErrorCode          { return InvalidAttributeValue }

// MisplacedAttributeError reports an annotation attached to a syntactic
// position it is not valid for, e.g. `//proof::status` on the enum type
// itself or a `-Transformer` flag on a variant.
type MisplacedAttributeError struct {
	Attribute string         // the misplaced annotation or parameter
	Placement string         // where it was found
	Valid     string         // where it belongs
	Loc       SourceLocation // where the error occurred
}

func (e *MisplacedAttributeError) Error() string {
	return fmt.Sprintf("%s:%d:%d: '%s' is not valid on %s; it belongs on %s",
		e.Loc.File, e.Loc.Line, e.Loc.Column, e.Attribute, e.Placement, e.Valid)
}

func (e *MisplacedAttributeError) Location() SourceLocation { return e.Loc }

func (e *MisplacedAttributeError) Suggestion() string {
	return fmt.Sprintf("Move '%s' to %s", e.Attribute, e.Valid)
}

func (e *MisplacedAttributeError) Code() ErrorCode { return MisplacedAttribute }

// IncompleteVariantConfigError reports that an enum cannot be expanded
// because at least one of its variants failed resolution. No partial
// conversion is ever emitted; a non-exhaustive match would not compile.
type IncompleteVariantConfigError struct {
	Enum    string         // enum type name
	Variant string         // first variant that failed
	Cause   error          // underlying resolution failure
	Loc     SourceLocation // enum declaration span
}

func (e *IncompleteVariantConfigError) Error() string {
	return fmt.Sprintf("%s:%d:%d: conversion for '%s' not generated: variant '%s' failed resolution: %v",
		e.Loc.File, e.Loc.Line, e.Loc.Column, e.Enum, e.Variant, e.Cause)
}

func (e *IncompleteVariantConfigError) Location() SourceLocation { return e.Loc }

func (e *IncompleteVariantConfigError) Suggestion() string {
	return "Fix the variant's annotations; partial conversions are never emitted"
}

func (e *IncompleteVariantConfigError) Code() ErrorCode { return IncompleteVariantConfig }

func (e *IncompleteVariantConfigError) Unwrap() error { return e.Cause }

// SyntaxError reports an annotation line the tokenizer could not parse.
type SyntaxError struct {
	Msg  string         // error message
	Loc  SourceLocation // where the error occurred
	Hint string         // suggested fix
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error: %s. %s",
		e.Loc.File, e.Loc.Line, e.Loc.Column, e.Msg, e.Hint)
}

func (e *SyntaxError) Location() SourceLocation { return e.Loc }
func (e *SyntaxError) Suggestion() string       { return e.Hint }
func (e *SyntaxError) Code() ErrorCode          { return SyntaxErrorCode }

// MultipleAnnotationErrors aggregates every failure found in a package so a
// single run can report them all.
type MultipleAnnotationErrors struct {
	Errors []AnnotationError
}

func (e *MultipleAnnotationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var messages []string
	for i, err := range e.Errors {
		messages = append(messages, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}
	return fmt.Sprintf("multiple annotation errors (%d total):\n%s", len(e.Errors), strings.Join(messages, "\n"))
}

// Unwrap returns the underlying errors for errors.Is / errors.As inspection.
func (e *MultipleAnnotationErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// HasCode reports whether any aggregated error carries the given code.
func (e *MultipleAnnotationErrors) HasCode(code ErrorCode) bool {
	for _, err := range e.Errors {
		if err.Code() == code {
			return true
		}
	}
	return false
}

// ByCode returns the aggregated errors carrying the given code.
func (e *MultipleAnnotationErrors) ByCode(code ErrorCode) []AnnotationError {
	var out []AnnotationError
	for _, err := range e.Errors {
		if err.Code() == code {
			out = append(out, err)
		}
	}
	return out
}
