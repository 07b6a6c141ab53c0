package number

import (
	"github.com/npillmayer/mytok"
	"github.com/npillmayer/mytok/cpclass"
)

// Times are matched by
//
//    H{1,2} ␣? : ␣? M ( ␣? : ␣? S )? ( . F{1,7} )? ( Z | [+-]hh:mm )?
//
// where ':' stands for any colon variant, including the Myanmar visarga.
// Minutes and seconds are either two digits, the first of them 0…5, or a
// single digit 1…9. Fractions and zones are allowed after seconds only.

type timeState struct {
	groups int  // groups after the hour, including the current one
	digits int  // digits in current group
	first  rune // first digit of current group
	spaced bool // space seen around current colon
}

func timeStart(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	if !cpclass.IsDigitLike(r) {
		return mytok.DoReject(rec)
	}
	st := rec.UserData.(*timeState)
	st.digits = 1
	return mytok.Shift(rec, timeHour)
}

func timeHour(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*timeState)
	if cpclass.IsDigitLike(r) {
		if st.digits++; st.digits > 2 {
			return mytok.DoReject(rec)
		}
		return mytok.Shift(rec, timeHour)
	}
	return timeColon(rec, r, c)
}

// timeColon matches ` ?: ?` between groups.
func timeColon(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*timeState)
	switch {
	case cpclass.Class(c) == cpclass.Space:
		if st.spaced {
			return mytok.DoAbort(rec)
		}
		st.spaced = true
		return mytok.Shift(rec, timeColon)
	case cpclass.IsColon(r):
		st.spaced = false
		st.digits = 0
		return mytok.Shift(rec, timeGroup)
	}
	return mytok.DoAbort(rec)
}

func timeGroup(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*timeState)
	if cpclass.IsDigitLike(r) {
		st.groups++
		st.first = r
		if cpclass.DigitValue(r) > 0 {
			return mytok.ShiftAccept(rec, timeGroupSecond)
		}
		return mytok.Shift(rec, timeGroupSecond)
	}
	if cpclass.Class(c) == cpclass.Space && !st.spaced {
		st.spaced = true
		return mytok.Shift(rec, timeGroup)
	}
	return mytok.DoAbort(rec)
}

func timeGroupSecond(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*timeState)
	if cpclass.IsDigitLike(r) {
		if cpclass.DigitValue(st.first) > 5 {
			return mytok.DoAbort(rec)
		}
		return mytok.ShiftAccept(rec, timeAfterGroup)
	}
	if cpclass.DigitValue(st.first) == 0 {
		return mytok.DoAbort(rec)
	}
	return timeAfterGroup(rec, r, c)
}

func timeAfterGroup(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*timeState)
	st.spaced = false
	switch cpclass.Class(c) {
	case cpclass.Space, cpclass.Colon:
		if st.groups < 2 {
			return timeColon(rec, r, c)
		}
	case cpclass.Diacritic:
		if r == cpclass.Visarga && st.groups < 2 {
			return timeColon(rec, r, c)
		}
	case cpclass.Dot:
		if st.groups == 2 {
			st.digits = 0
			return mytok.Shift(rec, timeFraction)
		}
	}
	return timeZone(rec, r, c)
}

func timeFraction(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*timeState)
	if cpclass.IsDigitLike(r) {
		if st.digits++; st.digits > 7 {
			return mytok.DoAbort(rec)
		}
		return mytok.ShiftAccept(rec, timeFraction)
	}
	if st.digits == 0 {
		return mytok.DoAbort(rec)
	}
	return timeZone(rec, r, c)
}

// timeZone matches an optional zone suffix. Zones are recognized after
// seconds only, as "10:30-12:00" is rather a range of times.
func timeZone(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*timeState)
	if st.groups < 2 {
		return mytok.DoAbort(rec)
	}
	switch {
	case r == 'Z':
		return mytok.DoAccept(rec)
	case r == '+' || r == '-':
		st.digits = 0
		return mytok.Shift(rec, zoneHour)
	}
	return mytok.DoAbort(rec)
}

func zoneHour(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*timeState)
	if cpclass.IsDigit(r) {
		if st.digits++; st.digits == 2 {
			return mytok.Shift(rec, zoneColon)
		}
		return mytok.Shift(rec, zoneHour)
	}
	return mytok.DoAbort(rec)
}

func zoneColon(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	if r == ':' {
		rec.UserData.(*timeState).digits = 0
		return mytok.Shift(rec, zoneMinute)
	}
	return mytok.DoAbort(rec)
}

func zoneMinute(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*timeState)
	if cpclass.IsDigit(r) {
		if st.digits++; st.digits == 2 {
			return mytok.DoAccept(rec)
		}
		return mytok.Shift(rec, zoneMinute)
	}
	return mytok.DoAbort(rec)
}

// matchTime returns the length of a time at the start of input and the
// number of colons in the match.
func matchTime(input []rune) (int, int) {
	st := &timeState{}
	n := mytok.Match(input, cpclass.Classify, timeStart, st)
	if n == 0 {
		return 0, 0
	}
	colons := 0
	for _, r := range input[:n] {
		if cpclass.IsColon(r) {
			colons++
		}
	}
	return n, colons
}

func (ex *Extractor) extractTime(input []rune) *mytok.Fragment {
	n, colons := matchTime(input)
	if n == 0 {
		return nil
	}
	next := input[n:]
	if len(next) > 0 && (cpclass.IsDiacritic(next[0]) || cpclass.IsAThet(next)) {
		// a trailing legacy digit may be the first letter of the syllable
		// following it
		if colons < 2 || cpclass.IsColon(input[n-2]) {
			return nil
		}
		if cpclass.IsDigit(input[n-1]) || cpclass.IsLegacyDigit(input[n-2]) {
			return nil
		}
		tracer().Debugf("time %q followed by diacritic, retrying shorter", string(input[:n]))
		if n, _ = matchTime(input[:n-1]); n == 0 {
			return nil
		}
		next = input[n:]
	}
	if !timeEndsSafely(next) {
		return nil
	}
	x := buildTime(input[:n])
	if x == nil {
		return nil
	}
	f := numberFragment(x)
	f.PossibleTime = true
	return f
}

// timeEndsSafely is false if the text following a time continues with
// digits, possibly after a colon or an underscore.
func timeEndsSafely(next []rune) bool {
	switch {
	case continuesDigits(next):
		return false
	case len(next) > 1 && (cpclass.IsColon(next[0]) || next[0] == '_') && continuesDigits(next[1:]):
		return false
	}
	return true
}

// buildTime normalizes colon variants to ':' and drops spaces.
func buildTime(m []rune) *mytok.Extraction {
	rc := newRecord()
	for _, r := range m {
		switch {
		case cpclass.IsDigitLike(r):
			rc.digit(r)
		case isVisibleSpace(r):
			rc.dropSpace()
		case cpclass.IsColon(r):
			if r != ':' {
				rc.x.NormalizeReason |= mytok.ColonFixed
			}
			rc.separator(':')
		case cpclass.Is(cpclass.Dot, r):
			rc.point(r)
		default: // zone
			rc.separator(r)
		}
	}
	if rc.real == 0 {
		return nil
	}
	return rc.extraction(m)
}
