package mytok

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// NfaStateFn is a single state of a rune automaton. A state function is
// called with the recognizer it belongs to, the next code-point of the
// input, and the class of that code-point as reported by a Classifier.
// It answers with the state to use for the following code-point; nil ends
// the match attempt.
//
// Package cpclass defines the classes the number extractors work with.
type NfaStateFn func(*Recognizer, rune, int) NfaStateFn

// Classifier maps a code-point to a code-point class. It has to map
// rune(0) to a class denoting end-of-text.
type Classifier func(rune) int

// A Recognizer drives a chain of state functions over a sequence of
// code-points and remembers how much of the sequence has been consumed
// and accepted.
//
// State functions count every code-point they consume in MatchLen,
// usually by way of Shift or ShiftAccept. Accepted is the length of the
// longest prefix accepted so far, and is the result of a match attempt.
// Expect and UserData are free for state functions to use; Match passes
// per-attempt state in UserData.
type Recognizer struct {
	Expect   int         // free for use by state functions
	MatchLen int         // code-points consumed
	Accepted int         // longest accepted prefix
	UserData interface{} // per-attempt state of a grammar
	nextStep NfaStateFn  // state for the next code-point
}

// NewRecognizer creates a Recognizer which is not pooled.
// Match and NewPooledRecognizer are preferred.
func NewRecognizer(expect int, next NfaStateFn) *Recognizer {
	return &Recognizer{Expect: expect, nextStep: next}
}

// Every sub-grammar match borrows a recognizer, which lives for a single
// match attempt only. They are kept in a pool, shared by all goroutines.
var recognizers = struct {
	objects *pool.ObjectPool
	ctx     context.Context
}{ctx: context.Background()}

func init() {
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Recognizer{}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // unbounded
	config.BlockWhenExhausted = false
	recognizers.objects = pool.NewObjectPool(recognizers.ctx, factory, config)
}

// NewPooledRecognizer borrows a Recognizer from a pool and sets it up with
// an expectation and a start state. Clients call Release when done.
func NewPooledRecognizer(expect int, start NfaStateFn) *Recognizer {
	o, err := recognizers.objects.BorrowObject(recognizers.ctx)
	if err != nil {
		tracer().Errorf("recognizer pool: %v", err)
		return NewRecognizer(expect, start)
	}
	rec := o.(*Recognizer)
	rec.Expect, rec.nextStep = expect, start
	return rec
}

// Release resets rec and hands it back to the pool. rec must not be
// used afterwards.
func (rec *Recognizer) Release() {
	*rec = Recognizer{}
	if err := recognizers.objects.ReturnObject(recognizers.ctx, rec); err != nil {
		tracer().Debugf("recognizer not returned to pool: %v", err)
	}
}

func (rec *Recognizer) String() string {
	if rec == nil {
		return "<no recognizer>"
	}
	return fmt.Sprintf("<recognizer expect=%d done=%v consumed=%d accepted=%d>",
		rec.Expect, rec.Done(), rec.MatchLen, rec.Accepted)
}

// Done is true as soon as a state function has ended the match attempt.
func (rec *Recognizer) Done() bool {
	return rec.nextStep == nil
}

// MatchLength returns the length of the longest accepted prefix.
func (rec *Recognizer) MatchLength() int {
	return rec.Accepted
}

// RuneEvent feeds the next code-point r of class c to the recognizer.
// After the recognizer is done, RuneEvent has no effect.
func (rec *Recognizer) RuneEvent(r rune, c int) {
	if rec.nextStep != nil {
		rec.nextStep = rec.nextStep(rec, r, c)
	}
}

// --- Transitions -------------------------------------------------------

// DoAbort returns a state function which signals the end of a match
// attempt. The longest prefix accepted so far stays valid.
func DoAbort(rec *Recognizer) NfaStateFn {
	return nil
}

// DoReject returns a state function which signals that the whole match
// attempt failed, including every prefix accepted before.
func DoReject(rec *Recognizer) NfaStateFn {
	rec.Accepted = 0
	return nil
}

// DoAccept consumes the current rune, accepts the match up to and including
// it, and ends matching.
func DoAccept(rec *Recognizer) NfaStateFn {
	rec.MatchLen++
	rec.Accepted = rec.MatchLen
	return nil
}

// AcceptAt accepts a prefix of length n (which must not exceed the number
// of consumed runes) and ends matching. This is used for rules which need
// a lookahead of one rune to decide.
func AcceptAt(rec *Recognizer, n int) NfaStateFn {
	if n > rec.MatchLen {
		panic(fmt.Sprintf("recognizer cannot accept %d runes, consumed only %d", n, rec.MatchLen))
	}
	rec.Accepted = n
	return nil
}

// Shift consumes the current rune without accepting and continues with next.
func Shift(rec *Recognizer, next NfaStateFn) NfaStateFn {
	rec.MatchLen++
	return next
}

// ShiftAccept consumes the current rune, accepts the match up to and
// including it, and continues with next, trying to find a longer match.
func ShiftAccept(rec *Recognizer, next NfaStateFn) NfaStateFn {
	rec.MatchLen++
	rec.Accepted = rec.MatchLen
	return next
}

// --- Running recognizers ----------------------------------------------

// Match runs a pooled recognizer, starting with state function start, over
// input. After the last rune of input, rune(0) is sent as end-of-text marker.
// Match returns the length of the longest accepted prefix of input, which
// is 0 if the recognizer did not accept anything.
//
// userData will be available to state functions as Recognizer.UserData.
func Match(input []rune, classify Classifier, start NfaStateFn, userData interface{}) int {
	rec := NewPooledRecognizer(0, start)
	rec.UserData = userData
	defer rec.Release()
	for _, r := range input {
		rec.RuneEvent(r, classify(r))
		if rec.Done() {
			return rec.MatchLength()
		}
	}
	rec.RuneEvent(0, classify(0))
	if !rec.Done() {
		tracer().Debugf("recognizer still active after end-of-text, aborting")
	}
	return rec.MatchLength()
}

// A Rule is a named start state of a recognizer. NewState, if non-nil,
// creates fresh user data for every match attempt.
type Rule struct {
	Name     string
	Start    NfaStateFn
	NewState func() interface{}
}

// MatchFirst tries rules in sequence and returns the index of the first rule
// accepting a non-empty prefix of input, together with the length of the
// accepted prefix and the user data of the match.
// If no rule matches, the index returned is -1.
func MatchFirst(input []rune, classify Classifier, rules ...Rule) (int, int, interface{}) {
	for i, rule := range rules {
		var state interface{}
		if rule.NewState != nil {
			state = rule.NewState()
		}
		if l := Match(input, classify, rule.Start, state); l > 0 {
			tracer().Debugf("rule %s accepted %d runes", rule.Name, l)
			return i, l, state
		}
	}
	return -1, 0, nil
}
