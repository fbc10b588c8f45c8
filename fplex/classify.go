// Package fplex classifies a user-typed string as a floating-point literal.
//
// The classifier is tri-state on purpose: a string that is a legal prefix of
// a literal but not yet a complete one (such as "1e-" mid-keystroke) is
// Incomplete, not Invalid. Hosts re-run Classify on every text change and use
// the distinction to suppress error styling while the user is still typing a
// token.
//
// Classify is pure, total and deterministic. It never fails, holds no state
// between calls, and the same input with the same options yields
// byte-identical output, so callers may re-issue, debounce or coalesce calls
// freely.
package fplex

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// State is the classification of an input string. Exactly one state is
// produced per call.
type State int

const (
	// StateIncomplete marks input that is a legal prefix of a literal but
	// not yet a complete one.
	StateIncomplete State = iota

	// StateInvalid marks input the grammar can never accept.
	StateInvalid

	// StateValid marks input that fully parses to a double-precision value.
	StateValid
)

func (s State) String() string {
	switch s {
	case StateIncomplete:
		return "incomplete"
	case StateInvalid:
		return "invalid"
	case StateValid:
		return "valid"
	}
	return "unknown"
}

// MarshalText renders the state name for JSON payloads.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Reason is a stable, machine-readable explanation for an Incomplete or
// Invalid outcome. The string values are a contract: hosts key UI affordances
// and tests off them, so they never change.
type Reason string

const (
	ReasonEmpty              Reason = "empty"
	ReasonSignOnly           Reason = "sign only"
	ReasonDotOnly            Reason = "dot only"
	ReasonExponentMarkerOnly Reason = "exponent marker only"
	ReasonExponentSignOnly   Reason = "exponent sign only"
	ReasonIncompleteNaN      Reason = "incomplete NaN token"
	ReasonIncompleteInfinity Reason = "incomplete Infinity token"

	ReasonLeadingPlus        Reason = "leading plus is not allowed"
	ReasonBadSyntax          Reason = "invalid numeric syntax"
	ReasonParsedNaN          Reason = "parsed to NaN"
	ReasonInfinityNotAllowed Reason = "infinity is not allowed"
)

// Outcome is the result of classifying one input string.
//
// Reason is set for Incomplete and Invalid outcomes and empty for Valid.
// Value is meaningful only for Valid. Normalized is always present: the
// trimmed input for Incomplete/Invalid, and the canonical literal for Valid
// (leading '+' stripped, special tokens rewritten to canonical casing).
type Outcome struct {
	State      State
	Reason     Reason
	Value      float64
	Normalized string
}

// Options controls which extensions of the plain decimal grammar Classify
// accepts. A nil *Options means DefaultOptions; a non-nil value is taken
// literally, zero fields included.
type Options struct {
	// AllowLeadingPlus permits a leading '+' on literals and special tokens.
	AllowLeadingPlus bool

	// AllowInfinitySynonyms accepts the "Inf" and "Infinity" tokens and
	// permits out-of-range literals to saturate to an infinity.
	AllowInfinitySynonyms bool

	// AllowNaN accepts the "NaN" token.
	AllowNaN bool

	// CaseInsensitiveSpecials matches special tokens regardless of letter
	// case. When false, only the canonical spellings NaN, Inf and Infinity
	// match, and incomplete-token detection is likewise case-sensitive.
	CaseInsensitiveSpecials bool
}

// DefaultOptions returns the options Classify assumes for a nil *Options:
// everything enabled.
func DefaultOptions() *Options {
	return &Options{
		AllowLeadingPlus:        true,
		AllowInfinitySynonyms:   true,
		AllowNaN:                true,
		CaseInsensitiveSpecials: true,
	}
}

// Classify decides whether text is a complete floating-point literal, a
// prefix of one, or neither. Surrounding whitespace is ignored.
//
// Checks run in a fixed order and the first match wins: empty input,
// disallowed leading plus, the NaN token, the Infinity tokens, the
// incomplete-literal patterns, then the full decimal grammar. NaN prefixes
// are tested before Infinity prefixes; the ordering is an observable part of
// the contract.
func Classify(text string, opts *Options) Outcome {
	if opts == nil {
		opts = DefaultOptions()
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return incomplete(ReasonEmpty, trimmed)
	}
	if trimmed[0] == '+' && !opts.AllowLeadingPlus {
		return invalid(ReasonLeadingPlus, trimmed)
	}

	sign, rest := splitSign(trimmed)

	if out, ok := classifySpecial(sign, rest, opts); ok {
		return out
	}
	if out, ok := classifyPartial(trimmed, rest); ok {
		return out
	}
	if !scanLiteral(trimmed) {
		return invalid(ReasonBadSyntax, trimmed)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		// Out-of-range literals saturate to ±Inf (or underflow to zero);
		// ParseFloat reports that with ErrRange alongside the saturated
		// value. Any other error cannot pass scanLiteral.
		var ne *strconv.NumError
		if !errors.As(err, &ne) || !errors.Is(ne.Err, strconv.ErrRange) {
			return invalid(ReasonBadSyntax, trimmed)
		}
	}
	if math.IsNaN(v) {
		return invalid(ReasonParsedNaN, trimmed)
	}
	if math.IsInf(v, 0) && !opts.AllowInfinitySynonyms {
		return invalid(ReasonInfinityNotAllowed, trimmed)
	}

	norm := trimmed
	if norm[0] == '+' {
		norm = norm[1:]
	}
	return Outcome{State: StateValid, Value: v, Normalized: norm}
}

// classifySpecial handles the NaN and Infinity tokens and their
// letters-only prefixes. sign+rest is the trimmed input.
func classifySpecial(sign, rest string, opts *Options) (Outcome, bool) {
	if rest == "" || !lettersOnly(rest) {
		return Outcome{}, false
	}

	fold := rest
	nan, inf, infinity := "NaN", "Inf", "Infinity"
	if opts.CaseInsensitiveSpecials {
		fold = strings.ToLower(rest)
		nan, inf, infinity = "nan", "inf", "infinity"
	}

	if opts.AllowNaN {
		if fold == nan {
			// The sign survives in the normalized text even though a
			// floating NaN carries no numeric sign.
			return Outcome{State: StateValid, Value: math.NaN(), Normalized: sign + "NaN"}, true
		}
		if strings.HasPrefix(nan, fold) {
			return incomplete(ReasonIncompleteNaN, sign+rest), true
		}
	}

	if opts.AllowInfinitySynonyms {
		if fold == inf || fold == infinity {
			v := math.Inf(1)
			if sign == "-" {
				v = math.Inf(-1)
			}
			return Outcome{State: StateValid, Value: v, Normalized: sign + "Infinity"}, true
		}
		// "inf" itself is complete; shorter prefixes and the longer
		// partial spellings ("infi".."infinit") are typing in progress.
		if len(fold) < len(infinity) && strings.HasPrefix(infinity, fold) {
			return incomplete(ReasonIncompleteInfinity, sign+rest), true
		}
	}

	return Outcome{}, false
}

// classifyPartial matches the incomplete-literal patterns: a bare sign, a
// bare decimal point, and a complete mantissa dangling on an exponent marker
// or exponent sign.
func classifyPartial(trimmed, rest string) (Outcome, bool) {
	if rest == "" {
		return incomplete(ReasonSignOnly, trimmed), true
	}
	if rest == "." {
		return incomplete(ReasonDotOnly, trimmed), true
	}

	i, ok := scanMantissa(rest)
	if ok && i < len(rest) && (rest[i] == 'e' || rest[i] == 'E') {
		switch {
		case i+1 == len(rest):
			return incomplete(ReasonExponentMarkerOnly, trimmed), true
		case i+2 == len(rest) && (rest[i+1] == '+' || rest[i+1] == '-'):
			return incomplete(ReasonExponentSignOnly, trimmed), true
		}
	}
	return Outcome{}, false
}

// scanLiteral reports whether s matches the full decimal grammar: optional
// sign, a mantissa (digits[.digits*] or .digits+), and an optional exponent
// ([eE][+-]?digits+). The whole string must match.
func scanLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	n, ok := scanMantissa(s[i:])
	if !ok {
		return false
	}
	i += n
	if i == len(s) {
		return true
	}
	if s[i] != 'e' && s[i] != 'E' {
		return false
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// scanMantissa scans a complete mantissa at the start of s and returns the
// index just past it. Trailing-dot ("1.") and leading-dot (".5") forms are
// both complete.
func scanMantissa(s string) (int, bool) {
	i := 0
	before := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		before++
	}
	if i < len(s) && s[i] == '.' {
		i++
		after := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			after++
		}
		if before == 0 && after == 0 {
			return 0, false
		}
		return i, true
	}
	if before == 0 {
		return 0, false
	}
	return i, true
}

func splitSign(s string) (sign, rest string) {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1], s[1:]
	}
	return "", s
}

func lettersOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func incomplete(r Reason, normalized string) Outcome {
	return Outcome{State: StateIncomplete, Reason: r, Normalized: normalized}
}

func invalid(r Reason, normalized string) Outcome {
	return Outcome{State: StateInvalid, Reason: r, Normalized: normalized}
}
