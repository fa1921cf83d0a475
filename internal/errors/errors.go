// Package errors provides error handling for gen-manipulator.
//
// This package re-exports github.com/cockroachdb/errors and declares the
// sentinels used to classify per-input failures. Sentinels are attached
// with Mark so the original cause and its stack stay intact:
//
//	return errors.Mark(errors.Wrapf(err, "decode %s", path), errors.ErrSpecLoad)
//
// and are matched with errors.Is.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Failure classes for a single input specification.
var (
	// ErrSpecLoad indicates the input could not be read or decoded.
	ErrSpecLoad = New("spec load failed")

	// ErrInvalidSpec indicates the decoded spec cannot be resolved
	// (missing name or type, malformed type expression, bad identifier).
	ErrInvalidSpec = New("invalid spec")

	// ErrFieldConflict indicates two fields resolve to the same name,
	// key identifier or stable id.
	ErrFieldConflict = New("field conflict")

	// ErrOutputConflict indicates an existing output file could not be removed.
	ErrOutputConflict = New("output conflict")

	// ErrWrite indicates an artifact could not be written.
	ErrWrite = New("write failed")
)

// Class returns a short label for the failure class of err, or "error"
// when err carries none of the sentinels.
func Class(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrSpecLoad):
		return "load"
	case Is(err, ErrInvalidSpec):
		return "invalid"
	case Is(err, ErrFieldConflict):
		return "conflict"
	case Is(err, ErrOutputConflict):
		return "output-conflict"
	case Is(err, ErrWrite):
		return "write"
	default:
		return "error"
	}
}
