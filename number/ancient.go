package number

import (
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/mytok"
	"github.com/npillmayer/mytok/cpclass"
)

// In traditional Myanmar writing, a number may be directly followed by
// an abbreviated measure word, which consists of nothing more than the
// vowel signs, medials or final of the measure word. From the abbreviation
// alone the measure word is ambiguous, so we report every candidate.
//
// Keys are the abbreviated forms, values are the candidates in order of
// preference.
var measureWordSuffixes = map[string][]string{
	"\u103d\u1031\u1038": {"ရွေး"},                  // medial wa + e + visarga
	"\u103d\u1031":       {"ရွေး"},                  // medial wa + e
	"\u102d":             {"ကျပ်", "စိတ်", "မိုက်"}, // i
	"\u103d\u102c":       {"ထွာ"},                   // medial wa + aa
	"\u1032":             {"ပဲ", "စလယ်", "ပယ်"},     // ai
	"\u1030\u1038":       {"မူး"},                   // uu + visarga
	"\u1030":             {"မူး"},                   // uu
	"\u1036":             {"လက်သစ်", "မတ်"},         // anusvara
	"\u103b\u1000\u103a": {"လမျက်"},                 // medial ya + ka + asat
	"\u101a\u103a":       {"လမယ်"},                  // ya + asat
	"\u103d\u1000\u103a": {"ခွက်"},                  // medial wa + ka + asat
	"\u103a":             {"ပြည်"},                  // asat
	"\u103d\u1032":       {"ခွဲ"},                   // medial wa + ai
	"\u102b":             {"ပိဿာ"},                  // tall aa
	"\u102b\u1038":       {"ပြား", "ပါး"},           // tall aa + visarga
}

var suffixes *trie.Trie
var suffixesOnce sync.Once

// setupSuffixes creates the lookup structure for measure word suffixes.
// (Concurrency-safe).
func setupSuffixes() {
	suffixesOnce.Do(func() {
		suffixes = trie.New()
		for key, words := range measureWordSuffixes {
			suffixes.Add(key, words)
		}
		tracer().Infof("%d measure word suffixes loaded", len(measureWordSuffixes))
	})
}

// isSign is true for Myanmar vowel signs, medials, tone marks, asat and
// virama.
func isSign(r rune) bool {
	return r >= '\u102b' && r <= '\u103e'
}

// suffixRun returns the length of the abbreviation candidate at the start
// of rs: either a run of signs, or a run of signs followed by a final
// consonant with asat. Only in the latter case a single space may precede
// the final. space reports if the run contains a space.
func suffixRun(rs []rune) (n int, space bool) {
	for n < len(rs) && isSign(rs[n]) {
		n++
	}
	i := n
	if i < len(rs) && cpclass.IsSpace(rs[i]) {
		i++
	}
	if i+1 < len(rs) && rs[i] >= '\u1000' && rs[i] <= '\u1021' && rs[i+1] == cpclass.Asat {
		return i + 2, i > n
	}
	return n, false
}

// lookupSuffix returns the candidate measure words for an abbreviation.
func lookupSuffix(abbrev string) ([]string, bool) {
	setupSuffixes()
	node, ok := suffixes.Find(abbrev)
	if !ok {
		return nil, false
	}
	return node.Meta().([]string), true
}

// mergeSuffix tries to extend the decimal x, matching input[:n], by an
// archaic measure word. This is either an inga or tin/taung form, or an
// abbreviated measure word. It returns nil if nothing applies.
func mergeSuffix(input []rune, n int, x *mytok.Extraction) *mytok.Extraction {
	next := input[n:]
	if len(next) == 0 {
		return nil
	}
	if next[0] == cpclass.Nga {
		f := extractIngaForm(next)
		if f == nil {
			f = extractTinTaungForm(next)
		}
		if f == nil {
			return nil
		}
		y := *x
		y.MatchedStr += f.MatchedStr
		y.NormalizedStr += f.NormalizedStr
		y.DecimalStr += f.DecimalStr
		y.NormalizeReason |= f.NormalizeReason
		y.AncientWrittenForm = true
		y.AncientMeasureWords = f.AncientMeasureWords
		return &y
	}
	l, space := suffixRun(next)
	if l == 0 {
		return nil
	}
	abbrev := string(next[:l])
	if space {
		abbrev = strings.Map(func(r rune) rune {
			if cpclass.IsSpace(r) {
				return -1
			}
			return r
		}, abbrev)
	}
	words, ok := lookupSuffix(abbrev)
	if !ok {
		return nil
	}
	if cpclass.IsLegacyDigit(input[n-1]) && len(next) > l && cpclass.IsMyanmar(next[l]) {
		return nil // ‘ဝ’ + suffix is probably a word
	}
	y := *x
	y.MatchedStr = string(input[:n+l])
	y.NormalizedStr += abbrev
	if space {
		y.SpaceIncluded = true
		y.NormalizeReason |= mytok.SpaceRemoved
	}
	y.AncientWrittenForm = true
	y.AncientMeasureWords = append([]string(nil), words...)
	return &y
}

// --- Archaic skeletons -----------------------------------------------------

// ancientFragment creates a fragment for a complete archaic form m.
// Spaces are dropped, digits go into the decimal string.
func ancientFragment(m []rune, words ...string) *mytok.Fragment {
	rc := newRecord()
	for _, r := range m {
		switch {
		case cpclass.IsDigitLike(r):
			rc.decimal.WriteRune(rc.digit(r))
		case cpclass.IsSpace(r):
			rc.dropSpace()
		default:
			rc.norm.WriteRune(r)
		}
	}
	rc.x.Decimal = true
	rc.x.AncientWrittenForm = true
	rc.x.AncientMeasureWords = words
	return numberFragment(rc.extraction(m))
}

// endsSyllable is false if rs continues the syllable before it.
func endsSyllable(rs []rune) bool {
	return len(rs) == 0 || !(cpclass.IsDiacritic(rs[0]) || cpclass.IsAThet(rs))
}

// extractIngaForm recognizes ‘င’ + asat + virama + digit + tall aa.
func extractIngaForm(input []rune) *mytok.Fragment {
	if len(input) < 5 || !ngaStack(input) || input[4] != cpclass.TallAa {
		return nil
	}
	if !endsSyllable(input[5:]) {
		return nil
	}
	return ancientFragment(input[:5], "အင်္ဂါ")
}

// extractTinTaungForm recognizes ‘င’ + asat + virama + digit.
func extractTinTaungForm(input []rune) *mytok.Fragment {
	if len(input) < 4 || !ngaStack(input) || !endsSyllable(input[4:]) {
		return nil
	}
	return ancientFragment(input[:4], "တောင်း", "တင်း")
}

// ngaStack is true for ‘င’ + asat + virama + Myanmar digit.
func ngaStack(input []rune) bool {
	return input[0] == cpclass.Nga && input[1] == cpclass.Asat &&
		input[2] == cpclass.Virama && cpclass.IsMyanmarDigit(input[3])
}

// extractHsetthaForm recognizes a single bracketed digit, followed by
// ‘၀ိ’, as in "(၅)၀ိ". Single spaces may be inserted between the parts.
func extractHsetthaForm(input []rune) *mytok.Fragment {
	if len(input) < 5 || (input[0] != '(' && input[0] != '\uff08') {
		return nil
	}
	i := 1
	skipSpace := func() {
		if i < len(input) && cpclass.IsSpace(input[i]) {
			i++
		}
	}
	skipSpace()
	if i >= len(input) {
		return nil
	}
	if d := input[i]; d != cpclass.Wa4 && (!cpclass.IsMyanmarDigit(d) || d == cpclass.Zero) {
		return nil
	}
	i++
	skipSpace()
	if i >= len(input) || (input[i] != ')' && input[i] != '\uff09') {
		return nil
	}
	i++
	skipSpace()
	if i+1 >= len(input) || input[i] != cpclass.Zero || input[i+1] != hsetthaVowel {
		return nil
	}
	i += 2
	if !endsSyllable(input[i:]) {
		return nil
	}
	return ancientFragment(input[:i], "ဆယ်သား")
}

// MYANMAR VOWEL SIGN I, completing the hsettha form
const hsetthaVowel = '\u102d'

// extractBracketNumber recognizes a decimal enclosed in matching brackets,
// as used for enumerations.
func (ex *Extractor) extractBracketNumber(input []rune) *mytok.Fragment {
	closing := cpclass.ClosingBracket(input[0])
	x, n := decimalAt(input[1:])
	if x == nil || 1+n >= len(input) || input[1+n] != closing {
		return nil
	}
	m := input[:n+2]
	y := *x
	y.MatchedStr = string(m)
	y.NormalizedStr = string(input[0]) + x.NormalizedStr + string(closing)
	y.SeparatorIncluded = true
	if !safeTrailing(input, len(m), &y) {
		return nil
	}
	return numberFragment(&y)
}
