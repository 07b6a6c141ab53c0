package number

import (
	"github.com/npillmayer/mytok"
	"github.com/npillmayer/mytok/cpclass"
)

// Decimal grammars, in order of priority:
//
//    D{1,3} ( T D{2,4} )+ ( . D+ )?    grouped by a thousand separator T
//    D{1,3} ( ␣ D{3} )+ ( . D+ )?      grouped by spaces
//    D+ ( . D+ )?                      plain
//
// Groups of 2 and 4 digits after T cover lakh grouping (၁,၀၀,၀၀၀) and
// myriads. A single space may surround T; it is dropped from the
// normalized form.
// All group separators of a number have to be identical. A group is
// confirmed only when no further digit follows it.
const (
	groupedBySymbol = iota
	groupedBySpace
	plain
)

type groupState struct {
	bySpace bool
	sep     rune // thousand separator in use
	digits  int  // digits in current group
	spaced  bool // space seen after separator
}

var decimalRules = []mytok.Rule{
	{Name: "grouped", Start: groupLead, NewState: func() interface{} {
		return &groupState{}
	}},
	{Name: "grouped by space", Start: groupLead, NewState: func() interface{} {
		return &groupState{bySpace: true}
	}},
	{Name: "plain", Start: plainStart},
}

func groupLead(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*groupState)
	if cpclass.IsDigitLike(r) {
		if st.digits++; st.digits > 3 {
			return mytok.DoReject(rec)
		}
		return mytok.Shift(rec, groupLead)
	}
	if st.digits == 0 {
		return mytok.DoReject(rec)
	}
	switch cpclass.Class(c) {
	case cpclass.Space:
		if st.bySpace {
			st.digits = 0
			return mytok.Shift(rec, groupDigits)
		}
		return mytok.Shift(rec, groupSepAhead)
	case cpclass.ThousandSep:
		if !st.bySpace {
			return groupSepAhead(rec, r, c)
		}
	}
	return mytok.DoReject(rec)
}

// groupSepAhead expects a thousand separator, which has to be the one
// used before, if any.
func groupSepAhead(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*groupState)
	if cpclass.Class(c) != cpclass.ThousandSep || (st.sep != 0 && r != st.sep) {
		return mytok.DoAbort(rec)
	}
	st.sep = r
	st.digits = 0
	st.spaced = false
	return mytok.Shift(rec, groupAfterSep)
}

func groupAfterSep(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*groupState)
	if cpclass.Class(c) == cpclass.Space && !st.spaced {
		st.spaced = true
		return mytok.Shift(rec, groupAfterSep)
	}
	return groupDigits(rec, r, c)
}

func groupDigits(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*groupState)
	if !cpclass.IsDigitLike(r) {
		return mytok.DoAbort(rec)
	}
	least, most := 2, 4
	if st.bySpace {
		least, most = 3, 3
	}
	if st.digits++; st.digits > most {
		return mytok.DoAbort(rec) // group too long, stay with last confirmed one
	}
	if st.digits >= least {
		rec.Expect = rec.MatchLen + 1 // tentative
		return mytok.Shift(rec, groupEnd)
	}
	return mytok.Shift(rec, groupDigits)
}

func groupEnd(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*groupState)
	if cpclass.IsDigitLike(r) {
		return groupDigits(rec, r, c)
	}
	switch cpclass.Class(c) {
	case cpclass.Space:
		rec.Accepted = rec.Expect
		if st.bySpace {
			st.digits = 0
			return mytok.Shift(rec, groupDigits)
		}
		return mytok.Shift(rec, groupSepAhead)
	case cpclass.ThousandSep:
		if !st.bySpace && r == st.sep {
			rec.Accepted = rec.Expect
			return groupSepAhead(rec, r, c)
		}
	case cpclass.Dot:
		rec.Accepted = rec.Expect
		return mytok.Shift(rec, fraction)
	}
	return mytok.AcceptAt(rec, rec.Expect)
}

func fraction(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	if cpclass.IsDigitLike(r) {
		return mytok.ShiftAccept(rec, fraction)
	}
	return mytok.DoAbort(rec)
}

func plainStart(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	if cpclass.IsDigitLike(r) {
		return mytok.ShiftAccept(rec, plainDigits)
	}
	return mytok.DoReject(rec)
}

func plainDigits(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	if cpclass.IsDigitLike(r) {
		return mytok.ShiftAccept(rec, plainDigits)
	}
	if cpclass.Class(c) == cpclass.Dot {
		return mytok.Shift(rec, fraction)
	}
	return mytok.DoAbort(rec)
}

// matchDecimal returns the decimal grammar matching at the start of input
// and the length of the match. If no grammar matches, the length is 0.
func matchDecimal(input []rune) (int, int) {
	rule, n, _ := mytok.MatchFirst(input, cpclass.Classify, decimalRules...)
	return rule, n
}

// buildDecimal creates the extraction for a decimal match m.
func buildDecimal(m []rune, rule int) *mytok.Extraction {
	rc := newRecord()
	rc.x.Decimal = true
	for _, r := range m {
		if cpclass.IsDigitLike(r) {
			rc.decimal.WriteRune(rc.digit(r))
			continue
		}
		switch cpclass.ClassForRune(r) {
		case cpclass.ThousandSep:
			rc.separator(r)
			rc.x.ThousandSeparator = string(cpclass.Fold(r))
		case cpclass.Space:
			if rule == groupedBySpace {
				rc.space(r)
				rc.x.ThousandSeparator = " "
			} else {
				rc.dropSpace()
			}
		case cpclass.Dot:
			rc.point(r)
		}
	}
	if rc.real == 0 {
		return nil
	}
	return rc.extraction(m)
}

// decimalAt matches and builds a decimal at the start of input. A decimal
// of length 1 has to be a real digit.
func decimalAt(input []rune) (*mytok.Extraction, int) {
	rule, n := matchDecimal(input)
	if n == 0 || (n == 1 && !cpclass.IsDigit(input[0])) {
		return nil, 0
	}
	x := buildDecimal(input[:n], rule)
	if x == nil {
		return nil, 0
	}
	return x, n
}

func (ex *Extractor) extractDecimal(input []rune) *mytok.Fragment {
	x, n := decimalAt(input)
	if x == nil {
		return nil
	}
	if ex.ancient {
		if y := mergeSuffix(input, n, x); y != nil {
			return numberFragment(y)
		}
	}
	next := input[n:]
	if len(next) > 0 && (cpclass.IsDiacritic(next[0]) || cpclass.IsAThet(next)) {
		// the last digit is probably a letter of the syllable following it
		tracer().Debugf("decimal %q followed by diacritic, retrying shorter", x.MatchedStr)
		if x, _ = decimalAt(input[:n-1]); x == nil {
			return nil
		}
	}
	return numberFragment(x)
}
