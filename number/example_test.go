package number_test

import (
	"fmt"

	"github.com/npillmayer/mytok/number"
)

func ExampleExtractor() {
	ex := number.New()
	input := []rune("၁,၀၀၀ ကျပ်")
	f := ex.ExtractNext(input, input[0])
	fmt.Printf("'%s' decimal=%s separator='%s'\n", f.MatchedStr, f.DecimalStr, f.ThousandSeparator)
	// Output: '၁,၀၀၀' decimal=၁၀၀၀ separator=','
}

func ExampleExtractor_date() {
	ex := number.New()
	input := []rune("၂၀၂၁-၀၁-၀၁ နေ့")
	f := ex.ExtractNext(input, input[0])
	fmt.Println(f.PossibleDate, f.DateFormat)
	// Output: true yyyy-MM-dd
}

func ExampleExtractor_measureWords() {
	ex := number.New()
	input := []rune("၅ါး")
	f := ex.ExtractNext(input, input[0])
	fmt.Println(f.AncientWrittenForm, f.AncientMeasureWords)
	// Output: true [ပြား ပါး]
}
