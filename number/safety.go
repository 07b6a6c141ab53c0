package number

import (
	"github.com/npillmayer/mytok"
	"github.com/npillmayer/mytok/cpclass"
)

// safeTrailing inspects the text following a match of length n, for which
// extraction x has been built. A match is unsafe if the following text
// makes it likely that the match is only part of a longer token.
func safeTrailing(input []rune, n int, x *mytok.Extraction) bool {
	next := input[n:]
	if len(next) == 0 {
		return true
	}
	r := next[0]
	switch {
	case continuesDigits(next):
		return false
	case cpclass.IsAThet(next) || cpclass.IsDiacritic(r):
		return false
	case r == '$' || r == '%':
		return x.SeparatorIncluded && !x.SpaceIncluded
	case r == '@':
		if matchDomain(next[1:]) > 0 {
			tracer().Debugf("match %q is the local part of an e-mail address", x.MatchedStr)
			return false
		}
	default:
		switch cpclass.ClassForRune(r) {
		case cpclass.Space, cpclass.InvisibleSpace:
			if x.SeparatorIncluded && !x.SpaceIncluded {
				return true
			}
		case cpclass.Dash, cpclass.Dot, cpclass.Slash, cpclass.ThousandSep:
		default:
			return true
		}
	}
	// a separator: unsafe if digits follow, unless they are a time
	if !continuesDigits(next[1:]) {
		return true
	}
	if t, _ := matchTime(next[1:]); t > 0 {
		return true
	}
	tracer().Debugf("match %q continues with separator and digits", x.MatchedStr)
	return false
}

// --- E-mail domains --------------------------------------------------------

type domainState struct {
	labels int  // complete labels
	chars  int  // characters in current label
	alpha  bool // current label consists of letters only
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func domainLabel(rec *mytok.Recognizer, r rune, c int) mytok.NfaStateFn {
	st := rec.UserData.(*domainState)
	switch {
	case isASCIILetter(r) || (r >= '0' && r <= '9') || r == '-':
		if st.chars == 0 {
			st.alpha = true
		}
		st.chars++
		st.alpha = st.alpha && isASCIILetter(r)
		if st.labels > 0 && st.alpha && st.chars > 1 {
			return mytok.ShiftAccept(rec, domainLabel)
		}
		return mytok.Shift(rec, domainLabel)
	case r == '.' && st.chars > 0:
		st.labels++
		st.chars = 0
		return mytok.Shift(rec, domainLabel)
	}
	return mytok.DoAbort(rec)
}

// matchDomain returns the length of an internet domain name at the start
// of input, or 0. A domain has at least two labels, and its last label
// consists of two or more letters.
func matchDomain(input []rune) int {
	return mytok.Match(input, cpclass.Classify, domainLabel, &domainState{})
}
