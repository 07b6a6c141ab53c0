package number

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/mytok"
	"github.com/npillmayer/mytok/cpclass"
)

// datePart is the kind of a digit group of a date.
type datePart int8

const (
	day datePart = iota
	month
	year4
	year2
)

// minimum and maximum number of digits of a part
func (p datePart) width(compact bool) (int, int) {
	switch p {
	case year4:
		return 4, 4
	case year2:
		return 2, 2
	}
	if compact {
		return 2, 2
	}
	return 1, 2
}

// two-digit days start with 0…3, two-digit months with 0…1
func (p datePart) firstDigitOK(first rune) bool {
	switch p {
	case day:
		return cpclass.DigitValue(first) <= 3
	case month:
		return cpclass.DigitValue(first) <= 1
	}
	return true
}

func (p datePart) format(digits int) string {
	switch p {
	case year4:
		return "yyyy"
	case year2:
		return "yy"
	case month:
		if digits == 2 {
			return "MM"
		}
		return "M"
	}
	if digits == 2 {
		return "dd"
	}
	return "d"
}

// dateVariant is one of the date layouts we recognize.
type dateVariant struct {
	name       string
	parts      [3]datePart
	compact    bool // no separators, fixed width parts
	monthStart bool
	minLen     int // shorter input is not tried
}

// Date variants in order of priority.
var dateVariants = []dateVariant{
	{name: "d-M-yyyy", parts: [3]datePart{day, month, year4}},
	{name: "yyyy-M-d", parts: [3]datePart{year4, month, day}},
	{name: "M-d-yyyy", parts: [3]datePart{month, day, year4}, monthStart: true},
	{name: "yyyyMMdd", parts: [3]datePart{year4, month, day}, compact: true, minLen: 8},
	{name: "d-M-yy", parts: [3]datePart{day, month, year2}, minLen: 8},
	{name: "M-d-yy", parts: [3]datePart{month, day, year2}, monthStart: true, minLen: 8},
}

type dateState struct {
	variant *dateVariant
	part    int  // index of current part
	digits  int  // digits seen in current part
	first   rune // first digit of current part
	spaced  bool // space seen in current separator run
	punct   bool // punctuation seen in current separator run
}

func dateDigits(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*dateState)
	part := st.variant.parts[st.part]
	lo, hi := part.width(st.variant.compact)
	if cpclass.IsDigitLike(r) {
		st.digits++
		if st.digits == 1 {
			st.first = r
		}
		if st.digits > hi {
			return mytok.DoReject(rec) // too long, or trailing digit
		}
		if st.digits == 2 && !part.firstDigitOK(st.first) {
			return mytok.DoReject(rec)
		}
		if st.part == 2 {
			if st.digits >= lo {
				return mytok.ShiftAccept(rec, dateDigits)
			}
			return mytok.Shift(rec, dateDigits)
		}
		if st.variant.compact && st.digits == hi {
			st.part++
			st.digits = 0
		}
		return mytok.Shift(rec, dateDigits)
	}
	if st.part == 2 {
		return mytok.DoAbort(rec) // keeps last accepted length, if any
	}
	if st.variant.compact || st.digits < lo {
		return mytok.DoReject(rec)
	}
	switch cpclass.Class(c) {
	case cpclass.Space, cpclass.Dash, cpclass.Slash, cpclass.Dot, cpclass.Section:
		st.part++
		st.digits = 0
		st.spaced, st.punct = false, false
		return dateSeparator(rec, r, c)
	}
	return mytok.DoReject(rec)
}

// dateSeparator matches ` ?P ?`, with P one of dash, slash, dot or '၊'.
func dateSeparator(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*dateState)
	switch cpclass.Class(c) {
	case cpclass.Space:
		if st.spaced {
			return mytok.DoReject(rec)
		}
		st.spaced = true
		return mytok.Shift(rec, dateSeparator)
	case cpclass.Dash, cpclass.Slash, cpclass.Dot, cpclass.Section:
		if st.punct {
			return mytok.DoReject(rec)
		}
		st.punct = true
		st.spaced = false
		return mytok.Shift(rec, dateSeparator)
	}
	if cpclass.IsDigitLike(r) && st.punct {
		return dateDigits(rec, r, c)
	}
	return mytok.DoReject(rec)
}

func dateRules(inputLen int) []mytok.Rule {
	rules := make([]mytok.Rule, 0, len(dateVariants))
	for i := range dateVariants {
		v := &dateVariants[i]
		if inputLen < v.minLen {
			continue
		}
		rules = append(rules, mytok.Rule{
			Name:  v.name,
			Start: dateDigits,
			NewState: func() interface{} {
				return &dateState{variant: v}
			},
		})
	}
	return rules
}

// mightBeDate is a cheap structural test, done before any of the date
// recognizers is run: three groups of digits separated by runs of
// separators, or exactly eight digits.
func mightBeDate(input []rune) bool {
	i, groups := 0, 0
	for {
		start := i
		for i < len(input) && cpclass.IsDigitLike(input[i]) {
			i++
		}
		n := i - start
		groups++
		if groups == 1 && n == 8 {
			return true
		}
		if n == 0 || n > 4 {
			return false
		}
		if groups == 3 {
			break
		}
		seps := i
		for i < len(input) && i-seps < 3 && isDateSeparator(input[i]) {
			i++
		}
		if i == seps {
			return false
		}
	}
	return true // digit groups are maximal, no digit follows
}

func isDateSeparator(r rune) bool {
	switch cpclass.ClassForRune(r) {
	case cpclass.Space, cpclass.Dash, cpclass.Slash, cpclass.Dot, cpclass.Section:
		return true
	}
	return false
}

func (ex *Extractor) extractDate(input []rune) *mytok.Fragment {
	if !mightBeDate(input) {
		return nil
	}
	rules := dateRules(len(input))
	i, n, state := mytok.MatchFirst(input, cpclass.Classify, rules...)
	if i < 0 {
		return nil
	}
	v := state.(*dateState).variant
	tracer().Debugf("date variant %s matched %d runes, month first = %v", v.name, n, v.monthStart)
	x := buildDate(input[:n], v)
	if x == nil || !safeTrailing(input, n, x) {
		return nil
	}
	f := numberFragment(x)
	f.PossibleDate = true
	if v.compact {
		f.PossiblePhoneNumber = true
	}
	return f
}

// buildDate creates the extraction for a date match m of variant v.
// Spaces are dropped from the normalized form. The punctuation separating
// the parts has to be the same code-point for both separators.
func buildDate(m []rune, v *dateVariant) *mytok.Extraction {
	rc := newRecord()
	var sep rune
	for _, r := range m {
		switch {
		case cpclass.IsDigitLike(r):
			rc.digit(r)
		case isVisibleSpace(r):
			rc.dropSpace()
		default:
			if sep == 0 {
				sep = r
			} else if r != sep {
				tracer().Debugf("date %q has inconsistent separators", string(m))
				return nil
			}
			rc.separator(r)
		}
	}
	if rc.real == 0 {
		return nil
	}
	if v.compact {
		rc.x.DateFormat = "yyyyMMdd"
		rc.x.Decimal = true
		x := rc.extraction(m)
		x.DecimalStr = x.NormalizedStr
		x.PhoneNumberStr = x.NormalizedStr
		return x
	}
	x := rc.extraction(m)
	parts := strings.Split(x.NormalizedStr, string(sep))
	if len(parts) != 3 {
		return nil
	}
	canonical := string(cpclass.Fold(sep))
	formats := make([]string, 3)
	for i, p := range parts {
		formats[i] = v.parts[i].format(utf8.RuneCountInString(p))
	}
	x.DateSeparator = canonical
	x.DateFormat = strings.Join(formats, canonical)
	return x
}
