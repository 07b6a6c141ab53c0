/*
Package cpclass defines the code-point classes for number-like fragments
in mixed Myanmar/Latin text.

Classes

Code-points are partitioned into a small set of classes: digits, digit
look-alikes, visible and invisible spaces, separators of several kinds,
brackets, Myanmar diacritics and consonants. ClassForRune returns exactly
one class for every code-point. A few code-points have more than one role
(the Myanmar visarga ‘း’ is a diacritic, but is also used as a colon in
times). For these, predicate functions are provided in addition to the
classes.

Attention

Class tables are created on first use. Clients may call

  SetupClasses()

beforehand to avoid the setup cost on the first call to ClassForRune.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cpclass

import (
	"sync"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/rangetable"
	"golang.org/x/text/width"
)

// tracer traces with key 'mytok.cpclass'.
func tracer() tracing.Trace {
	return tracing.Select("mytok.cpclass")
}

// Class is a code-point class.
type Class int

// Code-point classes. Classes are tested in this order, i.e. ‘ဝ’ is of class
// LegacyDigit, not Consonant.
const (
	Other          Class = iota
	Digit              // ASCII and Myanmar digits
	LegacyDigit        // letters looking like digits: ‘ဝ’ and ‘၎’
	Space              // visible space variants
	InvisibleSpace     // zero width spaces
	Dash               // hyphen, dashes, minus
	Slash              // slash variants
	Dot                // full stop variants, middle dot and dot above
	Colon              // ':' and ';' variants (visarga is a Diacritic)
	Plus               // plus sign variants
	OpenBracket        // '(' and '[' variants
	CloseBracket       // ')' and ']' variants
	ThousandSep        // ',' and apostrophe variants
	Star               // '*'
	Hash               // '#'
	Section            // Myanmar sign little section '၊'
	Diacritic          // Myanmar dependent vowels, tones and medials
	Consonant          // Myanmar consonants
	EOT                // pseudo class for end of text
)

const lastTableClass = Consonant

var classNames = [...]string{
	"Other", "Digit", "LegacyDigit", "Space", "InvisibleSpace", "Dash", "Slash",
	"Dot", "Colon", "Plus", "OpenBracket", "CloseBracket", "ThousandSep", "Star",
	"Hash", "Section", "Diacritic", "Consonant", "EOT",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Class(?)"
	}
	return classNames[c]
}

// Special code-points
const (
	Wa       = 'ဝ' // MYANMAR LETTER WA, looks like digit zero
	Wa4      = '၎' // MYANMAR SYMBOL AFOREMENTIONED, looks like digit four
	Zero     = '၀' // MYANMAR DIGIT ZERO
	Four     = '၄' // MYANMAR DIGIT FOUR
	Nga      = 'င' // MYANMAR LETTER NGA
	Asat     = '်' // MYANMAR SIGN ASAT, the vowel killer
	Virama   = '္' // MYANMAR SIGN VIRAMA, stacks consonants
	Visarga  = 'း' // MYANMAR SIGN VISARGA
	DotBelow = '့' // MYANMAR SIGN DOT BELOW
	TallAa   = 'ါ' // MYANMAR VOWEL SIGN TALL AA
	Aa       = 'ာ' // MYANMAR VOWEL SIGN AA
)

var rangeFromClass [lastTableClass + 1]*unicode.RangeTable

var setupOnce sync.Once

// SetupClasses is the top-level preparation function:
// Create code-point classes for number-like fragments.
// (Concurrency-safe).
func SetupClasses() {
	setupOnce.Do(setupClasses)
}

func setupClasses() {
	rangeFromClass[Digit] = rangetable.New(append(runeRange('0', '9'), runeRange('\u1040', '\u1049')...)...)
	rangeFromClass[LegacyDigit] = rangetable.New(Wa, Wa4)
	rangeFromClass[Space] = rangetable.New(append([]rune{' ', '\u00a0', '\u1680', '\u202f', '\u205f', '\u3000'},
		runeRange('\u2000', '\u200a')...)...)
	rangeFromClass[InvisibleSpace] = rangetable.New('\u200b', '\u2060', '\ufeff')
	rangeFromClass[Dash] = rangetable.New(append([]rune{'-', '\u2212', '\ufe58', '\ufe63', '\uff0d'},
		runeRange('\u2010', '\u2015')...)...)
	rangeFromClass[Slash] = rangetable.New('/', '\u2044', '\u2215', '\uff0f')
	rangeFromClass[Dot] = rangetable.New('.', '\u00b7', '\u02d9', '\u2024', '\ufe52', '\uff0e')
	rangeFromClass[Colon] = rangetable.New(':', ';', '\ufe13', '\uff1a', '\uff1b')
	rangeFromClass[Plus] = rangetable.New('+', '\ufe62', '\uff0b')
	rangeFromClass[OpenBracket] = rangetable.New('(', '[', '\uff08', '\uff3b')
	rangeFromClass[CloseBracket] = rangetable.New(')', ']', '\uff09', '\uff3d')
	rangeFromClass[ThousandSep] = rangetable.New(',', '\'', '\u066c', '\u2019', '\uff0c')
	rangeFromClass[Star] = rangetable.New('*', '\uff0a')
	rangeFromClass[Hash] = rangetable.New('#', '\uff03')
	rangeFromClass[Section] = rangetable.New('\u104a')
	rangeFromClass[Diacritic] = rangetable.Merge(
		rangetable.New(runeRange('\u102b', '\u103e')...),
		rangetable.New(runeRange('\u1056', '\u1059')...),
		rangetable.New(runeRange('\u105e', '\u1060')...),
		rangetable.New(runeRange('\u1062', '\u1064')...),
		rangetable.New(runeRange('\u1067', '\u106d')...),
		rangetable.New(runeRange('\u1071', '\u1074')...),
		rangetable.New(runeRange('\u1082', '\u108d')...),
		rangetable.New('\u108f', '\u109a', '\u109b', '\u109c', '\u109d'),
	)
	consonants := runeRange('\u1000', '\u1021')
	consonants = append(consonants, '\u103f')
	rangeFromClass[Consonant] = rangetable.New(consonants...)
	tracer().Infof("code-point classes for number fragments initialized")
}

func runeRange(from, to rune) []rune {
	rs := make([]rune, 0, to-from+1)
	for r := from; r <= to; r++ {
		rs = append(rs, r)
	}
	return rs
}

// ClassForRune is the top-level client function:
// Get the code-point class for a Unicode code-point.
// rune(0) is of class EOT.
func ClassForRune(r rune) Class {
	if r == rune(0) {
		return EOT
	}
	SetupClasses()
	for c := Digit; c <= lastTableClass; c++ {
		if unicode.Is(rangeFromClass[c], r) {
			return c
		}
	}
	return Other
}

// Classify is ClassForRune with an integer result, suitable as a
// mytok.Classifier.
func Classify(r rune) int {
	return int(ClassForRune(r))
}

// Is checks if r is of class c.
func Is(c Class, r rune) bool {
	if c <= Other || c > lastTableClass {
		return ClassForRune(r) == c
	}
	SetupClasses()
	return unicode.Is(rangeFromClass[c], r)
}

// --- Predicates ------------------------------------------------------------

// IsDigit is true for ASCII and Myanmar digits.
func IsDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= '\u1040' && r <= '\u1049')
}

// IsLegacyDigit is true for letters which are used in place of digits.
func IsLegacyDigit(r rune) bool {
	return r == Wa || r == Wa4
}

// IsDigitLike is true for digits and legacy digits.
func IsDigitLike(r rune) bool {
	return IsDigit(r) || IsLegacyDigit(r)
}

// IsMyanmarDigit is true for the Myanmar digits ၀ … ၉.
func IsMyanmarDigit(r rune) bool {
	return r >= '\u1040' && r <= '\u1049'
}

// DigitValue returns the numeric value of a digit or legacy digit, or -1.
func DigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= '\u1040' && r <= '\u1049':
		return int(r - '\u1040')
	case r == Wa:
		return 0
	case r == Wa4:
		return 4
	}
	return -1
}

// IsSpace is true for visible and invisible spaces.
func IsSpace(r rune) bool {
	return Is(Space, r) || Is(InvisibleSpace, r)
}

// IsColon is true for colon variants, including the Myanmar visarga.
func IsColon(r rune) bool {
	return r == Visarga || Is(Colon, r)
}

// IsDiacritic is true for Myanmar dependent vowels, signs and medials.
func IsDiacritic(r rune) bool {
	return Is(Diacritic, r)
}

// IsConsonant is true for Myanmar consonants, including ‘ဝ’.
func IsConsonant(r rune) bool {
	return r == Wa || Is(Consonant, r)
}

// IsMyanmar is true for code-points of the Myanmar blocks.
func IsMyanmar(r rune) bool {
	return (r >= '\u1000' && r <= '\u109f') || (r >= '\uaa60' && r <= '\uaa7f') ||
		(r >= '\ua9e0' && r <= '\ua9ff')
}

// IsAThet is true if rs starts with a consonant killed by an asat,
// optionally with a dot below in between.
func IsAThet(rs []rune) bool {
	if len(rs) < 2 || !IsConsonant(rs[0]) {
		return false
	}
	if rs[1] == Asat {
		return true
	}
	return len(rs) > 2 && rs[1] == DotBelow && rs[2] == Asat
}

// ClosingBracket returns the closing bracket matching an opening bracket,
// or 0.
func ClosingBracket(open rune) rune {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '\uff08':
		return '\uff09'
	case '\uff3b':
		return '\uff3d'
	}
	return 0
}

// Fold maps separator, sign and bracket variants to their canonical
// (narrow ASCII) form. Other code-points are returned unchanged.
func Fold(r rune) rune {
	if n := width.LookupRune(r).Narrow(); n != 0 {
		r = n
	}
	switch ClassForRune(r) {
	case Dash:
		return '-'
	case Slash:
		return '/'
	case Dot:
		return '.'
	case Plus:
		return '+'
	case Colon:
		if r == ';' {
			return r
		}
		return ':'
	case ThousandSep:
		if r == '\u066c' {
			return ','
		}
		if r == '\u2019' {
			return '\''
		}
	}
	return r
}
