package mytok

import (
	"strings"
	"unicode/utf8"
)

// FragmentExtractor is implemented by recognizers which are able to
// extract a fragment at the start of the remaining input.
//
// ExtractNext is called with the not yet consumed input and its first
// code-point. It returns nil if it does not recognize a fragment there.
// Otherwise the fragment's MatchedStr is a prefix of input, and a driver
// will advance by f.Len() code-points.
//
// Implementations must not hold mutable state between calls, as a single
// extractor may be shared by concurrent drivers.
type FragmentExtractor interface {
	ExtractNext(input []rune, first rune) *Fragment
}

// FragmentType tags a fragment with the kind of text it represents.
type FragmentType int8

// Fragment types
const (
	Unknown FragmentType = iota // single code-point, nothing recognized
	Number                      // number-like fragment
)

func (ft FragmentType) String() string {
	switch ft {
	case Number:
		return "Number"
	}
	return "Unknown"
}

// NormalizeReason is a set of flags recording which canonicalizations
// have been applied to get from a matched string to its normalized form.
type NormalizeReason uint8

// Normalization flags
const (
	LegacyZero        NormalizeReason = 1 << iota // ‘ဝ’ U+101D replaced by ‘၀’ U+1040
	LegacyFour                                    // ‘၎’ U+104E replaced by ‘၄’ U+1044
	SpaceRemoved                                  // space characters dropped
	SpaceNormalized                               // space variants replaced by U+0020
	DecimalPointFixed                             // decimal point variants replaced by '.'
	ColonFixed                                    // colon variants replaced by ':'
	PlusSignFixed                                 // plus sign variants replaced by '+'
)

var reasonNames = [...]string{
	"LegacyZero",
	"LegacyFour",
	"SpaceRemoved",
	"SpaceNormalized",
	"DecimalPointFixed",
	"ColonFixed",
	"PlusSignFixed",
}

// Has is true if all flags of reason r2 are set in r.
func (r NormalizeReason) Has(r2 NormalizeReason) bool {
	return r&r2 == r2
}

func (r NormalizeReason) String() string {
	if r == 0 {
		return "none"
	}
	var names []string
	for i, name := range reasonNames {
		if r&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Extraction holds the result of recognizing and normalizing a candidate
// match. It is created fresh for every match attempt and never changed
// after it has become part of a Fragment.
type Extraction struct {
	MatchedStr          string          // exact prefix of input consumed
	NormalizedStr       string          // canonical form of MatchedStr
	DecimalStr          string          // digits and at most one '.', if a decimal
	SpaceIncluded       bool            // MatchedStr contains space characters
	SeparatorIncluded   bool            // MatchedStr contains separator characters
	Decimal             bool            // is a decimal number
	AncientWrittenForm  bool            // archaic numeral notation
	ThousandSeparator   string          // canonical thousand separator, if any
	DateSeparator       string          // canonical date separator, if any
	DateFormat          string          // e.g. "yyyy-MM-dd"
	PhoneNumberStr      string          // phone number without separators
	NormalizeReason     NormalizeReason // which normalizations fired
	AncientMeasureWords []string        // candidate measure words, in order
}

// Fragment is a recognized unit of text, as returned by a
// FragmentExtractor. A Fragment is read-only.
type Fragment struct {
	Extraction
	FragmentType        FragmentType
	PossibleDate        bool
	PossibleTime        bool
	PossiblePhoneNumber bool
}

// Len returns the number of code-points of the matched input.
func (f *Fragment) Len() int {
	if f == nil {
		return 0
	}
	return utf8.RuneCountInString(f.MatchedStr)
}

// Simple stringer for debugging purposes.
func (f *Fragment) String() string {
	if f == nil {
		return "<no fragment>"
	}
	var sb strings.Builder
	sb.WriteString(f.FragmentType.String())
	sb.WriteString("(\"")
	sb.WriteString(f.MatchedStr)
	sb.WriteString("\"")
	if f.NormalizedStr != f.MatchedStr {
		sb.WriteString(" → \"")
		sb.WriteString(f.NormalizedStr)
		sb.WriteString("\"")
	}
	if f.PossibleDate {
		sb.WriteString(" date=" + f.DateFormat)
	}
	if f.PossibleTime {
		sb.WriteString(" time")
	}
	if f.PossiblePhoneNumber {
		sb.WriteString(" phone=" + f.PhoneNumberStr)
	}
	if f.Decimal {
		sb.WriteString(" decimal=" + f.DecimalStr)
	}
	if f.AncientWrittenForm {
		sb.WriteString(" ancient=" + strings.Join(f.AncientMeasureWords, "/"))
	}
	sb.WriteString(")")
	return sb.String()
}
