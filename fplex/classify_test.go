package fplex_test

import (
	"math"
	"testing"

	"github.com/kumab2221/ieee754-viewer/fplex"
)

func mustValid(t *testing.T, in string, opts *fplex.Options) fplex.Outcome {
	t.Helper()
	out := fplex.Classify(in, opts)
	if out.State != fplex.StateValid {
		t.Fatalf("classify %q: expected valid, got %s (%s)", in, out.State, out.Reason)
	}
	return out
}

func TestClassifyIncompleteBoundaries(t *testing.T) {
	cases := []struct {
		in     string
		reason fplex.Reason
	}{
		{"", fplex.ReasonEmpty},
		{"   ", fplex.ReasonEmpty},
		{"-", fplex.ReasonSignOnly},
		{"+", fplex.ReasonSignOnly},
		{".", fplex.ReasonDotOnly},
		{"-.", fplex.ReasonDotOnly},
		{"+.", fplex.ReasonDotOnly},
		{"1e", fplex.ReasonExponentMarkerOnly},
		{"1.5E", fplex.ReasonExponentMarkerOnly},
		{".5e", fplex.ReasonExponentMarkerOnly},
		{"1.e", fplex.ReasonExponentMarkerOnly},
		{"1e-", fplex.ReasonExponentSignOnly},
		{"-2.5e+", fplex.ReasonExponentSignOnly},
		{"n", fplex.ReasonIncompleteNaN},
		{"na", fplex.ReasonIncompleteNaN},
		{"-Na", fplex.ReasonIncompleteNaN},
		{"i", fplex.ReasonIncompleteInfinity},
		{"in", fplex.ReasonIncompleteInfinity},
		{"infi", fplex.ReasonIncompleteInfinity},
		{"INFINIT", fplex.ReasonIncompleteInfinity},
		{"-infinit", fplex.ReasonIncompleteInfinity},
	}
	for _, c := range cases {
		out := fplex.Classify(c.in, nil)
		if out.State != fplex.StateIncomplete {
			t.Fatalf("classify %q: expected incomplete, got %s (%s)", c.in, out.State, out.Reason)
		}
		if out.Reason != c.reason {
			t.Fatalf("classify %q: expected reason %q, got %q", c.in, c.reason, out.Reason)
		}
	}
}

func TestClassifyInvalidBoundaries(t *testing.T) {
	cases := []string{
		"1ee3", "--1", "e3", "1e1.2", "abc", "1..2", "..", "1.2.3",
		"0x10", "1_000", "na n", "infinityy", "nanx", "+-1", "1e+3e",
	}
	for _, in := range cases {
		out := fplex.Classify(in, nil)
		if out.State != fplex.StateInvalid {
			t.Fatalf("classify %q: expected invalid, got %s (%s)", in, out.State, out.Reason)
		}
		if out.Reason != fplex.ReasonBadSyntax {
			t.Fatalf("classify %q: expected reason %q, got %q", in, fplex.ReasonBadSyntax, out.Reason)
		}
	}
}

func TestClassifyValidLiterals(t *testing.T) {
	cases := []struct {
		in    string
		value float64
		norm  string
	}{
		{"1.0", 1.0, "1.0"},
		{"-1.25", -1.25, "-1.25"},
		{"+1", 1, "1"},
		{" 42 ", 42, "42"},
		{"1.", 1, "1."},
		{".5", 0.5, ".5"},
		{"-.5", -0.5, "-.5"},
		{"+.25", 0.25, ".25"},
		{"6.022e23", 6.022e23, "6.022e23"},
		{"1E-3", 1e-3, "1E-3"},
		{"2e+2", 200, "2e+2"},
		{"0", 0, "0"},
		{"007", 7, "007"},
	}
	for _, c := range cases {
		out := mustValid(t, c.in, nil)
		if out.Value != c.value {
			t.Fatalf("classify %q: expected value %v, got %v", c.in, c.value, out.Value)
		}
		if out.Normalized != c.norm {
			t.Fatalf("classify %q: expected normalized %q, got %q", c.in, c.norm, out.Normalized)
		}
		if out.Reason != "" {
			t.Fatalf("classify %q: valid outcome carries reason %q", c.in, out.Reason)
		}
	}
}

func TestClassifySpecialTokens(t *testing.T) {
	out := mustValid(t, "NaN", nil)
	if !math.IsNaN(out.Value) || out.Normalized != "NaN" {
		t.Fatalf("NaN: got value %v normalized %q", out.Value, out.Normalized)
	}

	// The sign survives normalization even though the value carries none.
	out = mustValid(t, "-nan", nil)
	if !math.IsNaN(out.Value) || out.Normalized != "-NaN" {
		t.Fatalf("-nan: got value %v normalized %q", out.Value, out.Normalized)
	}

	for _, in := range []string{"Inf", "inf", "INFINITY", "Infinity"} {
		out = mustValid(t, in, nil)
		if !math.IsInf(out.Value, 1) || out.Normalized != "Infinity" {
			t.Fatalf("%q: got value %v normalized %q", in, out.Value, out.Normalized)
		}
	}

	out = mustValid(t, "-inf", nil)
	if !math.IsInf(out.Value, -1) || out.Normalized != "-Infinity" {
		t.Fatalf("-inf: got value %v normalized %q", out.Value, out.Normalized)
	}

	// "inf" is a complete token; "in" is typing in progress.
	if got := fplex.Classify("in", nil); got.State != fplex.StateIncomplete {
		t.Fatalf("in: expected incomplete, got %s", got.State)
	}
}

func TestClassifySaturatesOutOfRange(t *testing.T) {
	out := mustValid(t, "1e400", nil)
	if !math.IsInf(out.Value, 1) {
		t.Fatalf("1e400: expected +Inf, got %v", out.Value)
	}
	out = mustValid(t, "-1e400", nil)
	if !math.IsInf(out.Value, -1) {
		t.Fatalf("-1e400: expected -Inf, got %v", out.Value)
	}
	out = mustValid(t, "1e-400", nil)
	if out.Value != 0 {
		t.Fatalf("1e-400: expected underflow to zero, got %v", out.Value)
	}
}

func TestClassifyOptionLeadingPlus(t *testing.T) {
	opts := fplex.DefaultOptions()
	opts.AllowLeadingPlus = false

	out := fplex.Classify("+1", opts)
	if out.State != fplex.StateInvalid || out.Reason != fplex.ReasonLeadingPlus {
		t.Fatalf("+1: expected invalid/%q, got %s/%q", fplex.ReasonLeadingPlus, out.State, out.Reason)
	}

	// A bare '+' is rejected before the sign-only check runs.
	out = fplex.Classify("+", opts)
	if out.State != fplex.StateInvalid {
		t.Fatalf("+: expected invalid, got %s", out.State)
	}

	// Without the option the plus is stripped from the normalized text.
	out = mustValid(t, "+1", nil)
	if out.Normalized != "1" {
		t.Fatalf("+1: expected normalized %q, got %q", "1", out.Normalized)
	}
}

func TestClassifyOptionNaN(t *testing.T) {
	opts := fplex.DefaultOptions()
	opts.AllowNaN = false

	out := fplex.Classify("NaN", opts)
	if out.State != fplex.StateInvalid || out.Reason != fplex.ReasonBadSyntax {
		t.Fatalf("NaN: expected invalid/%q, got %s/%q", fplex.ReasonBadSyntax, out.State, out.Reason)
	}
	// Prefixes fall through to Infinity which they do not match either.
	out = fplex.Classify("na", opts)
	if out.State != fplex.StateInvalid {
		t.Fatalf("na: expected invalid, got %s", out.State)
	}
}

func TestClassifyOptionInfinity(t *testing.T) {
	opts := fplex.DefaultOptions()
	opts.AllowInfinitySynonyms = false

	out := fplex.Classify("Inf", opts)
	if out.State != fplex.StateInvalid || out.Reason != fplex.ReasonBadSyntax {
		t.Fatalf("Inf: expected invalid/%q, got %s/%q", fplex.ReasonBadSyntax, out.State, out.Reason)
	}

	// A literal saturating past the range is rejected when infinities are off.
	out = fplex.Classify("1e400", opts)
	if out.State != fplex.StateInvalid || out.Reason != fplex.ReasonInfinityNotAllowed {
		t.Fatalf("1e400: expected invalid/%q, got %s/%q", fplex.ReasonInfinityNotAllowed, out.State, out.Reason)
	}
}

func TestClassifyCaseSensitiveSpecials(t *testing.T) {
	opts := fplex.DefaultOptions()
	opts.CaseInsensitiveSpecials = false

	// Only the canonical spellings match, exactly.
	out := fplex.Classify("NaN", opts)
	if out.State != fplex.StateValid {
		t.Fatalf("NaN: expected valid, got %s (%s)", out.State, out.Reason)
	}
	out = fplex.Classify("nan", opts)
	if out.State != fplex.StateInvalid {
		t.Fatalf("nan: expected invalid, got %s", out.State)
	}
	out = fplex.Classify("INF", opts)
	if out.State != fplex.StateInvalid {
		t.Fatalf("INF: expected invalid, got %s", out.State)
	}

	// Incomplete detection matches canonical prefixes case-sensitively.
	out = fplex.Classify("Na", opts)
	if out.State != fplex.StateIncomplete || out.Reason != fplex.ReasonIncompleteNaN {
		t.Fatalf("Na: expected incomplete NaN, got %s/%q", out.State, out.Reason)
	}
	out = fplex.Classify("Infini", opts)
	if out.State != fplex.StateIncomplete || out.Reason != fplex.ReasonIncompleteInfinity {
		t.Fatalf("Infini: expected incomplete Infinity, got %s/%q", out.State, out.Reason)
	}
	out = fplex.Classify("na", opts)
	if out.State != fplex.StateInvalid {
		t.Fatalf("na: expected invalid under case-sensitive specials, got %s", out.State)
	}
}

func TestClassifyNaNCheckedBeforeInfinity(t *testing.T) {
	// "n"-prefixes resolve as NaN typing, never Infinity, and the ordering
	// is fixed: NaN first.
	out := fplex.Classify("n", nil)
	if out.Reason != fplex.ReasonIncompleteNaN {
		t.Fatalf("n: expected %q, got %q", fplex.ReasonIncompleteNaN, out.Reason)
	}

	// With NaN disabled the same prefix is no longer incomplete.
	opts := fplex.DefaultOptions()
	opts.AllowNaN = false
	out = fplex.Classify("n", opts)
	if out.State != fplex.StateInvalid {
		t.Fatalf("n with NaN disabled: expected invalid, got %s", out.State)
	}
}

func TestClassifyNormalizedIdempotent(t *testing.T) {
	inputs := []string{"1.0", "+1", " -2.5e-3 ", "NaN", "-nan", "inf", "-Infinity", ".5", "1."}
	for _, in := range inputs {
		first := mustValid(t, in, nil)
		second := mustValid(t, first.Normalized, nil)
		if second.Normalized != first.Normalized {
			t.Fatalf("%q: normalization not idempotent: %q then %q", in, first.Normalized, second.Normalized)
		}
		if math.Float64bits(second.Value) != math.Float64bits(first.Value) {
			t.Fatalf("%q: re-parsing normalized text changed value bits: %016x then %016x",
				in, math.Float64bits(first.Value), math.Float64bits(second.Value))
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []string{"", "-", "1e-", "nan", "infinite", "1.25e10", "xyz"}
	for _, in := range inputs {
		a := fplex.Classify(in, nil)
		b := fplex.Classify(in, nil)
		if a.State != b.State || a.Reason != b.Reason || a.Normalized != b.Normalized ||
			math.Float64bits(a.Value) != math.Float64bits(b.Value) {
			t.Fatalf("%q: classification not deterministic: %+v vs %+v", in, a, b)
		}
	}
}

func TestStateStringsAreExhaustive(t *testing.T) {
	// The outcome is a closed three-variant sum; anything renders as one of
	// these names or the switch above has grown a hole.
	want := map[fplex.State]string{
		fplex.StateIncomplete: "incomplete",
		fplex.StateInvalid:    "invalid",
		fplex.StateValid:      "valid",
	}
	for s, name := range want {
		if s.String() != name {
			t.Fatalf("state %d: expected %q, got %q", s, name, s.String())
		}
	}
}
