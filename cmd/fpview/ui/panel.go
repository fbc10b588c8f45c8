package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kumab2221/ieee754-viewer/fpbits"
	"github.com/kumab2221/ieee754-viewer/fplex"
	"github.com/kumab2221/ieee754-viewer/fpview"
)

// RenderResult renders an assembled view for a terminal. Incomplete input
// gets the pending style, invalid input the error style, and a valid literal
// the full field panel.
func RenderResult(st Styles, res fpview.Result) string {
	switch res.State {
	case fplex.StateIncomplete:
		return st.Pending.Render("… " + string(res.Reason))
	case fplex.StateInvalid:
		return st.Error.Render("invalid: " + string(res.Reason))
	}
	if res.Fields32 != nil {
		return render32(st, res.Normalized, res.Fields32)
	}
	return render64(st, res.Normalized, res.Fields64)
}

func render32(st Styles, normalized string, f *fpbits.Fields32) string {
	rows := []string{
		st.Title.Render(normalized + "  (float32)"),
		row(st, "kind", f.Kind.String()),
		row(st, "hex", f.HexGrouped),
		row(st, "bits", fieldBits(st, f.SignBin, f.ExponentGrouped, f.MantissaGrouped)),
		row(st, "exponent", st.Exponent.Render(exponentCell(f.ExponentBits, f.ExponentUnbiased))),
		row(st, "mantissa", st.Mantissa.Render(fmt.Sprintf("%s  (0x%06x)", f.MantissaGrouped, f.Mantissa))),
	}
	if f.PayloadHex != "" {
		rows = append(rows, row(st, "payload", "0x"+f.PayloadHex))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func render64(st Styles, normalized string, f *fpbits.Fields64) string {
	rows := []string{
		st.Title.Render(normalized + "  (float64)"),
		row(st, "kind", f.Kind.String()),
		row(st, "hex", f.HexGrouped),
		row(st, "bits", fieldBits(st, f.SignBin, f.ExponentGrouped, f.MantissaGrouped)),
		row(st, "exponent", st.Exponent.Render(exponentCell(f.ExponentBits, f.ExponentUnbiased))),
		row(st, "mantissa", st.Mantissa.Render(fmt.Sprintf("%s  (high 0x%05x low 0x%08x)",
			f.MantissaGrouped, f.MantissaHigh, f.MantissaLow))),
	}
	if f.PayloadHex != "" {
		rows = append(rows, row(st, "payload", "0x"+f.PayloadHex))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func fieldBits(st Styles, sign, exponent, mantissa string) string {
	return st.Sign.Render(sign) + " " + st.Exponent.Render(exponent) + " " + st.Mantissa.Render(mantissa)
}

func exponentCell(raw uint32, unbiased *int) string {
	if unbiased == nil {
		return fmt.Sprintf("raw %d", raw)
	}
	return fmt.Sprintf("raw %d  unbiased %d", raw, *unbiased)
}

func row(st Styles, label, value string) string {
	return st.Label.Render(label) + " " + value
}
