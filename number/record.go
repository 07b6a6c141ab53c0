package number

import (
	"strings"

	"github.com/npillmayer/mytok"
	"github.com/npillmayer/mytok/cpclass"
)

// record collects the pieces of an Extraction while the runes of a match
// are visited once, from left to right.
type record struct {
	x       mytok.Extraction
	norm    strings.Builder
	decimal strings.Builder
	digits  int // digits and legacy digits
	real    int // digits only
}

func newRecord() *record {
	return &record{}
}

// normalizeDigit replaces legacy digits by the Myanmar digit they stand for.
func normalizeDigit(r rune) (rune, mytok.NormalizeReason) {
	switch r {
	case cpclass.Wa:
		return cpclass.Zero, mytok.LegacyZero
	case cpclass.Wa4:
		return cpclass.Four, mytok.LegacyFour
	}
	return r, 0
}

// digit appends a normalized digit to the normalized string and returns it.
func (rc *record) digit(r rune) rune {
	n, reason := normalizeDigit(r)
	rc.x.NormalizeReason |= reason
	rc.norm.WriteRune(n)
	rc.digits++
	if cpclass.IsDigit(r) {
		rc.real++
	}
	return n
}

// space appends a visible space, normalized to U+0020.
func (rc *record) space(r rune) {
	rc.x.SpaceIncluded = true
	if r != ' ' {
		rc.x.NormalizeReason |= mytok.SpaceNormalized
	}
	rc.norm.WriteRune(' ')
}

// dropSpace records a space which is not part of the normalized string.
func (rc *record) dropSpace() {
	rc.x.SpaceIncluded = true
	rc.x.NormalizeReason |= mytok.SpaceRemoved
}

// point appends a decimal point, normalized to '.'.
func (rc *record) point(r rune) {
	if r != '.' {
		rc.x.NormalizeReason |= mytok.DecimalPointFixed
	}
	rc.x.SeparatorIncluded = true
	rc.norm.WriteRune('.')
	rc.decimal.WriteRune('.')
}

// separator appends a separator unchanged.
func (rc *record) separator(r rune) {
	rc.x.SeparatorIncluded = true
	rc.norm.WriteRune(r)
}

// extraction finishes the record for the matched runes m.
func (rc *record) extraction(m []rune) *mytok.Extraction {
	x := rc.x
	x.MatchedStr = string(m)
	x.NormalizedStr = rc.norm.String()
	if x.Decimal {
		x.DecimalStr = rc.decimal.String()
	}
	return &x
}

// isVisibleSpace is true for spaces which may separate digit groups.
func isVisibleSpace(r rune) bool {
	return cpclass.Is(cpclass.Space, r)
}

// continuesDigits is true if rs starts with a real digit, or with a legacy
// digit starting a group of digit-likes which contains a real digit. The
// group may be interrupted by a single thousand separator or decimal point.
func continuesDigits(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	if cpclass.IsDigit(rs[0]) {
		return true
	}
	if !cpclass.IsLegacyDigit(rs[0]) {
		return false
	}
	sep := false
	for _, r := range rs[1:] {
		switch {
		case cpclass.IsDigit(r):
			return true
		case cpclass.IsLegacyDigit(r):
		case !sep && (cpclass.Is(cpclass.ThousandSep, r) || cpclass.Is(cpclass.Dot, r)):
			sep = true
		default:
			return false
		}
	}
	return false
}
