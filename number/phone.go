package number

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/mytok"
	"github.com/npillmayer/mytok/cpclass"
)

// Phone numbers consist of digits, single spaces, single separators
// (dash, dot, slash, '၊'), brackets, and the service code characters
// '*' and '#'. They may start with a plus sign. A phone number ends with a digit, a
// closing bracket, or '#'.

type phoneToken int8

const (
	phoneNone phoneToken = iota
	phoneDigit
	phoneSpace
	phoneSep
	phoneOpen
	phoneClose
	phoneStar
	phonePlus
)

type phoneState struct {
	depth int // open brackets
	last  phoneToken
}

func phoneStart(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*phoneState)
	switch cpclass.Class(c) {
	case cpclass.Plus:
		st.last = phonePlus
		return mytok.Shift(rec, phoneBody)
	case cpclass.Star:
		st.last = phoneStar
		return mytok.Shift(rec, phoneBody)
	case cpclass.OpenBracket:
		st.depth++
		st.last = phoneOpen
		return mytok.Shift(rec, phoneBody)
	}
	if cpclass.IsDigitLike(r) {
		st.last = phoneDigit
		return mytok.ShiftAccept(rec, phoneBody)
	}
	return mytok.DoReject(rec)
}

func phoneBody(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*phoneState)
	if cpclass.IsDigitLike(r) {
		st.last = phoneDigit
		return mytok.ShiftAccept(rec, phoneBody)
	}
	switch cpclass.Class(c) {
	case cpclass.Space, cpclass.InvisibleSpace:
		if st.last == phoneSpace || st.last == phonePlus || st.last == phoneOpen {
			return mytok.DoAbort(rec)
		}
		st.last = phoneSpace
		return mytok.Shift(rec, phoneBody)
	case cpclass.Dash, cpclass.Dot, cpclass.Slash, cpclass.Section:
		if st.last != phoneDigit && st.last != phoneSpace && st.last != phoneClose {
			return mytok.DoAbort(rec)
		}
		st.last = phoneSep
		return mytok.Shift(rec, phoneBody)
	case cpclass.OpenBracket:
		if st.last == phoneOpen {
			return mytok.DoAbort(rec)
		}
		st.depth++
		st.last = phoneOpen
		return mytok.Shift(rec, phoneBody)
	case cpclass.CloseBracket:
		if st.depth == 0 || st.last != phoneDigit {
			return mytok.DoAbort(rec)
		}
		st.depth--
		st.last = phoneClose
		return mytok.ShiftAccept(rec, phoneBody)
	case cpclass.Star:
		if st.last != phoneDigit {
			return mytok.DoAbort(rec)
		}
		st.last = phoneStar
		return mytok.Shift(rec, phoneBody)
	case cpclass.Hash:
		if st.last != phoneDigit {
			return mytok.DoAbort(rec)
		}
		return mytok.DoAccept(rec)
	}
	return mytok.DoAbort(rec)
}

func (ex *Extractor) extractPhone(input []rune) *mytok.Fragment {
	n := mytok.Match(input, cpclass.Classify, phoneStart, &phoneState{})
	if n == 0 {
		return nil
	}
	x := buildPhone(input[:n])
	if x == nil || !safeTrailing(input, n, x) {
		return nil
	}
	f := numberFragment(x)
	f.PossiblePhoneNumber = true
	return f
}

// buildPhone checks the plausibility of a phone number match m and creates
// its extraction.
func buildPhone(m []rune) *mytok.Extraction {
	rc := newRecord()
	var phone strings.Builder
	brackets := arraystack.New()
	run, longest := 0, 0
	dots, slashes := 0, 0
	plus, star, hash, bracketed := false, false, false, false
	for i, r := range m {
		if cpclass.IsDigitLike(r) {
			phone.WriteRune(rc.digit(r))
			if run++; run > longest {
				longest = run
			}
			continue
		}
		switch cpclass.ClassForRune(r) {
		case cpclass.Space:
			rc.space(r) // does not interrupt a run of digits
		case cpclass.InvisibleSpace:
			rc.dropSpace()
		case cpclass.Plus:
			if r != '+' {
				rc.x.NormalizeReason |= mytok.PlusSignFixed
			}
			rc.norm.WriteRune('+')
			phone.WriteRune('+')
			plus = true
		case cpclass.Dash, cpclass.Dot, cpclass.Slash, cpclass.Section:
			if cpclass.Is(cpclass.Dot, r) {
				dots++
			} else if cpclass.Is(cpclass.Slash, r) {
				slashes++
			}
			rc.separator(r)
			run = 0
		case cpclass.OpenBracket:
			brackets.Push(cpclass.ClosingBracket(r))
			bracketed = true
			rc.separator(r)
			run = 0
		case cpclass.CloseBracket:
			if expected, ok := brackets.Pop(); !ok || expected.(rune) != r {
				tracer().Debugf("phone number %q has unbalanced brackets", string(m))
				return nil
			}
			rc.separator(r)
			run = 0
		case cpclass.Star:
			if i > 0 && !cpclass.IsDigitLike(m[i-1]) {
				return nil
			}
			star = true
			rc.norm.WriteRune(r)
			phone.WriteRune('*')
			run = 0
		case cpclass.Hash:
			hash = true
			rc.norm.WriteRune(r)
			phone.WriteRune('#')
		}
	}
	if !brackets.Empty() {
		return nil
	}
	digits := rc.digits
	norm := []rune(rc.norm.String())
	switch {
	case rc.real == 0:
		return nil
	case digits < 3 || longest < 2:
		return nil
	case plus && digits < 6:
		return nil
	case len(norm) > 1 && cpclass.DigitValue(norm[0]) == 0 && cpclass.DigitValue(norm[1]) == 0 && digits < 8:
		return nil
	case (rc.x.SeparatorIncluded || rc.x.SpaceIncluded) && digits < 5:
		return nil
	case star && !hash:
		return nil
	case (dots == 1 || slashes == 1) && !plus && cpclass.DigitValue(norm[0]) != 0 && len(norm)-1 == digits:
		// rather a decimal or a fraction
		return nil
	}
	rc.x.PhoneNumberStr = phone.String()
	x := rc.extraction(m)
	if !plus && !star && !hash && !bracketed && cpclass.DigitValue(norm[0]) != 0 {
		tagDecimal(x, norm)
	}
	return x
}

// tagDecimal marks a phone number as a decimal as well, if its normalized
// form is completely matched by one of the decimal grammars.
func tagDecimal(x *mytok.Extraction, norm []rune) {
	for _, r := range norm {
		if !cpclass.IsDigitLike(r) && r != ' ' && r != '.' {
			return
		}
	}
	rule, n := matchDecimal(norm)
	if n != len(norm) {
		return
	}
	d := buildDecimal(norm, rule)
	if d == nil {
		return
	}
	x.Decimal = true
	x.DecimalStr = d.DecimalStr
	x.ThousandSeparator = d.ThousandSeparator
}
