/*
Package segment drives fragment extractors over a stream of text.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the fragments of a file.
Clients are able to get the current fragment by calling Fragment(), or its
text by calling Bytes() or Text().

Clients provide one or more fragment extractors. For every position in the
text, the extractors are asked in turn; the first one to recognize a
fragment wins. If no extractor recognizes anything, a fragment of type
mytok.Unknown, holding a single code-point, is returned.

  segmenter := segment.NewSegmenter(number.New())
  segmenter.Init(...)
  for segmenter.Next() {
    // do something with segmenter.Fragment() or segmenter.Text()
  }

How it works

The segmenter keeps a window of code-points, read ahead from the input.
Extractors see the window as their input, so a fragment can never be
longer than the window. If an extractor consumes the complete window
before the end of input is reached, the fragment may have been cut short;
in this case segmenting stops with ErrTooLong.
*/
package segment

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/mytok"
	"github.com/npillmayer/mytok/number"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mytok.segment'.
func tracer() tracing.Trace {
	return tracing.Select("mytok.segment")
}

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// splits it into fragments.
//
// What a fragment is, is defined by one or more extractors of type
// mytok.FragmentExtractor. The default extractor recognizes number-like
// fragments (see package number).
type Segmenter struct {
	reader     io.RuneReader             // where we get the next runes from
	extractors []mytok.FragmentExtractor // our work horses
	window     []rune                    // code-points read ahead
	maxWindow  int                       // maximum length of window
	fragment   *mytok.Fragment           // the most recent fragment
	pos        int64                     // code-point position of fragment
	next       int64                     // code-point position of window[0]
	err        error
	atEOF      bool
	inUse      bool // Next() has been called; window is in use.
}

// DefaultWindow is the number of code-points a segmenter reads ahead, unless
// the client sets a different window size with Segmenter.Window().
const DefaultWindow = 256

// MaxWindow is the maximum window size.
const MaxWindow = 64 * 1024

// ErrTooLong flags a fragment which is longer than the look-ahead window.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("segmenter: fragment too long for window")
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter by providing extractors.
// Specifying no extractor results in getting a number extractor with
// default options.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter(extractors ...mytok.FragmentExtractor) *Segmenter {
	s := &Segmenter{}
	if len(extractors) == 0 {
		extractors = []mytok.FragmentExtractor{number.New()}
	}
	s.extractors = extractors
	s.maxWindow = DefaultWindow
	return s
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initializes a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.window == nil {
		s.window = make([]rune, 0, s.maxWindow)
	} else {
		s.window = s.window[:0]
	}
	s.fragment = nil
	s.pos, s.next = 0, 0
	s.err = nil
	s.atEOF = false
	s.inUse = false
}

// Window sets the number of code-points to read ahead. n will be clipped to
// [2 … MaxWindow].
//
// Window panics if it is called after scanning has started. Clients will have
// to call Init(...) again to permit re-setting the window.
func (s *Segmenter) Window(n int) {
	if s.inUse {
		panic("segment.Window: window already in use; cannot be re-set")
	}
	if n < 2 {
		n = 2
	} else if n > MaxWindow {
		n = MaxWindow
	}
	s.maxWindow = n
	s.window = make([]rune, 0, n)
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next advances the Segmenter to the next fragment, which will then be
// available through the Fragment(), Bytes() or Text() method. It returns
// false when the segmenting stops, either by reaching the end of the input
// or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
// For the latter case Err() will return nil.
func (s *Segmenter) Next() bool {
	s.fragment = nil
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	if s.err != nil && s.err != io.EOF {
		return false
	}
	s.inUse = true
	if err := s.fillWindow(); err != nil {
		s.setErr(err)
		return false
	}
	if len(s.window) == 0 {
		s.setErr(io.EOF)
		return false
	}
	f := s.extract()
	n := f.Len()
	if n >= len(s.window) && !s.atEOF {
		tracer().Errorf("fragment at position %d fills complete window", s.next)
		s.setErr(ErrTooLong)
		return false
	}
	s.fragment = f
	s.pos = s.next
	s.next += int64(n)
	copy(s.window, s.window[n:])
	s.window = s.window[:len(s.window)-n]
	tracer().Debugf("Next() = %v", f)
	return true
}

// extract asks the extractors for a fragment at the start of the window.
func (s *Segmenter) extract() *mytok.Fragment {
	for _, ex := range s.extractors {
		if f := ex.ExtractNext(s.window, s.window[0]); f != nil && f.Len() > 0 {
			if f.Len() > len(s.window) {
				panic(fmt.Sprintf("segmenter: extractor consumed %d runes of %d", f.Len(), len(s.window)))
			}
			return f
		}
	}
	cp := string(s.window[0])
	return &mytok.Fragment{
		Extraction: mytok.Extraction{
			MatchedStr:    cp,
			NormalizedStr: cp,
		},
		FragmentType: mytok.Unknown,
	}
}

// fillWindow reads runes until the window is full or the input is exhausted.
func (s *Segmenter) fillWindow() error {
	for !s.atEOF && len(s.window) < s.maxWindow {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			s.atEOF = true
			break
		} else if err != nil {
			tracer().Errorf("ReadRune() error: %s", err)
			s.atEOF = true
			return err
		}
		s.window = append(s.window, r)
	}
	return nil
}

// Fragment returns the most recent fragment generated by a call to Next().
func (s *Segmenter) Fragment() *mytok.Fragment {
	return s.fragment
}

// Bytes returns the matched text of the most recent fragment.
func (s *Segmenter) Bytes() []byte {
	if s.fragment == nil {
		return nil
	}
	return []byte(s.fragment.MatchedStr)
}

// Text returns the matched text of the most recent fragment generated by a
// call to Next().
func (s *Segmenter) Text() string {
	if s.fragment == nil {
		return ""
	}
	return s.fragment.MatchedStr
}

// Position returns the position of the most recent fragment, counted in
// code-points from the start of the input.
func (s *Segmenter) Position() int64 {
	return s.pos
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}
