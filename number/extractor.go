package number

import (
	"github.com/npillmayer/mytok"
	"github.com/npillmayer/mytok/cpclass"
)

// Extractor recognizes number-like fragments. It implements
// mytok.FragmentExtractor.
//
// An Extractor is immutable after creation and therefore safe for
// concurrent use.
type Extractor struct {
	ancient bool // recognize archaic measure-word forms
	phone   bool // recognize phone numbers
}

var _ mytok.FragmentExtractor = (*Extractor)(nil)

// Option configures an Extractor.
type Option func(*Extractor)

// WithoutAncientForms switches off recognition of archaic numeral forms,
// including measure-word suffixes after decimals.
func WithoutAncientForms() Option {
	return func(ex *Extractor) {
		ex.ancient = false
	}
}

// WithoutPhoneNumbers switches off recognition of phone numbers.
// Digit sequences will then be reported as decimals only.
func WithoutPhoneNumbers() Option {
	return func(ex *Extractor) {
		ex.phone = false
	}
}

// New creates an Extractor. Without options, every kind of number-like
// fragment is recognized.
func New(opts ...Option) *Extractor {
	ex := &Extractor{
		ancient: true,
		phone:   true,
	}
	for _, opt := range opts {
		opt(ex)
	}
	cpclass.SetupClasses()
	setupSuffixes()
	return ex
}

// ExtractNext recognizes a number-like fragment at the start of input.
// first is the first code-point of input. ExtractNext returns nil if input
// does not start with a safe number-like fragment.
//
// The fragment's MatchedStr is always a prefix of input. When more than one
// sub-grammar matches, the one tried first wins: dates, then times, then
// phone numbers, then decimals.
func (ex *Extractor) ExtractNext(input []rune, first rune) *mytok.Fragment {
	if len(input) < 2 {
		return nil
	}
	var f *mytok.Fragment
	switch {
	case cpclass.IsDigitLike(first):
		f = ex.extractDigits(input)
	case first == cpclass.Nga:
		if ex.ancient && len(input) > 3 {
			if f = extractIngaForm(input); f == nil {
				f = extractTinTaungForm(input)
			}
		}
	case cpclass.Is(cpclass.OpenBracket, first):
		if len(input) > 2 {
			if ex.ancient {
				f = extractHsetthaForm(input)
			}
			if f == nil && ex.phone {
				f = ex.extractPhone(input)
			}
			if f == nil {
				f = ex.extractBracketNumber(input)
			}
		}
	case cpclass.Is(cpclass.Star, first) || cpclass.Is(cpclass.Plus, first):
		if ex.phone && len(input) > 3 {
			f = ex.extractPhone(input)
		}
	}
	if f != nil {
		tracer().Debugf("extracted %v", f)
	}
	return f
}

// extractDigits handles input starting with a digit or legacy digit.
func (ex *Extractor) extractDigits(input []rune) *mytok.Fragment {
	if len(input) > 5 {
		if f := ex.extractDate(input); f != nil {
			return f
		}
	}
	if len(input) > 2 {
		if f := ex.extractTime(input); f != nil {
			return f
		}
		if ex.phone {
			if f := ex.extractPhone(input); f != nil {
				return f
			}
		}
	}
	return ex.extractDecimal(input)
}

func numberFragment(x *mytok.Extraction) *mytok.Fragment {
	return &mytok.Fragment{
		Extraction:   *x,
		FragmentType: mytok.Number,
	}
}
