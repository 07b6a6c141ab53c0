/*
Package number implements an extractor for number-like fragments of
mixed Myanmar/Latin text.

Content

The extractor recognizes, at the start of the remaining input, the longest
safe fragment of one of the following kinds:

  – dates:           ၂၀၂၁-၀၁-၀၁   ၀၁/၀၁/၂၁   ၂၀၂၁၀၁၀၁
  – times:           ၁၀:၃၀   ၁၀း၃၀း၄၅.၅   10:30+06:30
  – phone numbers:   +၉၅ ၉ ၁၂၃ ၄၅၆၇   (၀၁) ၂၃၄၅၆၇   *၁၂၃#
  – decimals:        ၁,၀၀၀.၅   ၁ ၀၀၀ ၀၀၀   ၁၂၃
  – bracketed:       (၁၂)
  – archaic forms:   ၅ိ   င်္၅   (၅)၀ိ   င်္၁ါ

Recognized text is normalized: letters which are commonly typed in
place of digits (‘ဝ’ for ‘၀’ and ‘၎’ for ‘၄’) are replaced, as are
variants of spaces, colons, decimal points and plus signs. Every
normalization is recorded in the fragment's NormalizeReason.

Sub-grammars are tried in a fixed order, from the most constrained
(dates) to the least constrained (plain decimals). After a tentative
match, the text following it is inspected. If that text makes the match
ambiguous (e.g., it continues with a digit, or with a Myanmar diacritic
which would rather belong to the last matched code-point), the match is
either rejected or shortened by a single code-point.

Typical Usage

  ex := number.New()
  input := []rune("၁,၀၀၀ ကျပ်")
  if f := ex.ExtractNext(input, input[0]); f != nil {
      fmt.Println(f.DecimalStr)  // ၁၀၀၀
  }

An Extractor holds no mutable state and may be shared between goroutines.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package number

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mytok.number'.
func tracer() tracing.Trace {
	return tracing.Select("mytok.number")
}
