/*
Package mytok is about recognizing fragments of mixed-script Myanmar text.

Description

Myanmar text found in the wild mixes Myanmar and Latin digits, uses
letters which look like digits (wa ‘ဝ’ for zero, ‘၎’ for four), and a
zoo of space, dash, dot and colon variants. A tokenizer for such text
slides a cursor across the input and asks a list of fragment extractors,
one after the other, whether they recognize something at the cursor
position. The first extractor to answer wins, and the cursor moves
forward by the number of code-points the extractor consumed.

Contents

Base package mytok provides the data model shared by all extractors
(Fragment, Extraction, NormalizeReason), the capability interface
FragmentExtractor, and helpers to implement recognizers as small
finite state automata.

Sub-package number implements the extractor for number-like fragments:
decimals, dates, times, phone numbers and archaic numeral notations.
Sub-package segment contains a driver which walks a text and asks
extractors for fragments. Sub-package cpclass holds the code-point
classes all of them are built on.

Recognizers

We recognize fragments with rules, which are short regular expressions,
i.e. finite state automata.
Every step within a rule is performed by executing a function. This
function recognizes a single code-point (class) and returns another
function. The returned function represents the expectation for the next
code-point(-class). Matching by function is continued until a rule is
accepted or aborted. Rules are greedy: a Recognizer remembers the longest
prefix it has accepted so far and reports it after it is done.

An example is the rule for a plain decimal number

   D+ ( '.' D+ )?

which is matched by three functions calling each other:

      plainStart( … )     // match D, accepting
   -> plainDigits( … )    // match D, accepting, loop; or match '.'
   -> fraction( … )       // match D, accepting, loop

BSD License

Copyright (c) 2021, Norbert Pillmayer

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
*/
package mytok

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mytok'.
func tracer() tracing.Trace {
	return tracing.Select("mytok")
}
