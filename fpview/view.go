// Package fpview assembles the classifier and the bit-field extractor into a
// single display-ready result. It is the one entry point a presentation
// surface needs: hand it the raw text and a precision, render what comes
// back.
//
// BuildView is referentially transparent, so hosts may invoke it on every
// keystroke, debounce it, or re-issue calls without consistency concerns.
package fpview

import (
	"github.com/kumab2221/ieee754-viewer/fpbits"
	"github.com/kumab2221/ieee754-viewer/fplex"
)

// Precision selects which IEEE 754 layout the Valid arm carries.
type Precision string

const (
	Float32 Precision = "float32"
	Float64 Precision = "float64"
)

// Result mirrors the classifier's three states. The Valid arm additionally
// carries the selected precision and the matching field decomposition;
// Incomplete and Invalid pass the classifier outcome through unchanged.
//
// Result is a plain value suitable for direct JSON serialization. The raw
// Value is excluded from the payload because NaN and the infinities are not
// JSON numbers; everything displayable is in the fields structs.
type Result struct {
	State      fplex.State  `json:"state"`
	Reason     fplex.Reason `json:"reason,omitempty"`
	Normalized string       `json:"normalized"`
	Precision  Precision    `json:"precision"`

	Value float64 `json:"-"`

	Fields32 *fpbits.Fields32 `json:"fields32,omitempty"`
	Fields64 *fpbits.Fields64 `json:"fields64,omitempty"`
}

// BuildView classifies text with the default options and, when it is a
// complete literal, attaches the bit-field decomposition at the requested
// precision. Any precision other than Float32 is treated as Float64.
func BuildView(text string, prec Precision) Result {
	return BuildViewWithOptions(text, prec, nil)
}

// BuildViewWithOptions is BuildView with explicit classifier options; nil
// opts means fplex.DefaultOptions.
func BuildViewWithOptions(text string, prec Precision, opts *fplex.Options) Result {
	if prec != Float32 {
		prec = Float64
	}

	out := fplex.Classify(text, opts)
	r := Result{
		State:      out.State,
		Reason:     out.Reason,
		Normalized: out.Normalized,
		Precision:  prec,
	}
	if out.State != fplex.StateValid {
		return r
	}

	r.Value = out.Value
	if prec == Float32 {
		f := fpbits.ToFloat32Fields(out.Value)
		r.Fields32 = &f
	} else {
		f := fpbits.ToFloat64Fields(out.Value)
		r.Fields64 = &f
	}
	return r
}
