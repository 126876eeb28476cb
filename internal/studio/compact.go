package studio

import (
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var compactUnits = []struct {
	div    float64
	suffix string
}{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// formatCompact renders n in short notation: 999, 1.2K, 12K, 3.4M.
// Values below 10 of a unit keep one fraction digit, larger ones none.
func formatCompact(p *message.Printer, n int64) string {
	if n < 0 {
		n = 0
	}
	v := float64(n)

	for i, u := range compactUnits {
		if v < u.div {
			continue
		}
		scaled := v / u.div
		digits := 0
		if scaled < 10 {
			digits = 1
		}
		// 999_950 rounds to 1000K; promote it to the next unit.
		if i > 0 && roundTo(scaled, digits) >= 1000 {
			up := compactUnits[i-1]
			return p.Sprint(number.Decimal(v/up.div, number.MaxFractionDigits(1))) + up.suffix
		}
		return p.Sprint(number.Decimal(scaled, number.MaxFractionDigits(digits))) + u.suffix
	}
	return p.Sprint(number.Decimal(n))
}

func roundTo(v float64, digits int) float64 {
	if digits == 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v*10+0.5)) / 10
}
