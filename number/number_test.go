package number

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/mytok"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func extract(ex *Extractor, s string) *mytok.Fragment {
	input := []rune(s)
	return ex.ExtractNext(input, input[0])
}

func TestDates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, c := range []struct {
		input, match, norm, format, sep string
	}{
		{"၂၀၂၁-၀၁-၀၁", "၂၀၂၁-၀၁-၀၁", "၂၀၂၁-၀၁-၀၁", "yyyy-MM-dd", "-"},
		{"၀၁/၀၁/၂၀၂၁ နေ့", "၀၁/၀၁/၂၀၂၁", "၀၁/၀၁/၂၀၂၁", "dd/MM/yyyy", "/"},
		{"၁၂-၂၅-၂၀၂၁", "၁၂-၂၅-၂၀၂၁", "၁၂-၂၅-၂၀၂၁", "MM-dd-yyyy", "-"},
		{"၅.၃.၂၀၂၁", "၅.၃.၂၀၂၁", "၅.၃.၂၀၂၁", "d.M.yyyy", "."},
		{"၀၁ - ၀၁ - ၂၀၂၁", "၀၁ - ၀၁ - ၂၀၂၁", "၀၁-၀၁-၂၀၂၁", "dd-MM-yyyy", "-"},
		{"၂၀၂၁-၀၁-၀၁ ၁၀:၃၀", "၂၀၂၁-၀၁-၀၁", "၂၀၂၁-၀၁-၀၁", "yyyy-MM-dd", "-"},
		{"၃၁/၁၂/၉၉ ည", "၃၁/၁၂/၉၉", "၃၁/၁၂/၉၉", "dd/MM/yy", "/"},
		{"ဝ၁-ဝ၁-၂ဝ၂၁", "ဝ၁-ဝ၁-၂ဝ၂၁", "၀၁-၀၁-၂၀၂၁", "dd-MM-yyyy", "-"},
		{"၁၅၊၁၀၊၂၀၂၁ ရက်", "၁၅၊၁၀၊၂၀၂၁", "၁၅၊၁၀၊၂၀၂၁", "dd၊MM၊yyyy", "၊"},
		{"၂၀၂၁·၀၁·၀၁", "၂၀၂၁·၀၁·၀၁", "၂၀၂၁·၀၁·၀၁", "yyyy.MM.dd", "."},
	} {
		f := extract(ex, c.input)
		if f == nil {
			t.Errorf("%d: expected date for %q, got nothing", i, c.input)
			continue
		}
		if !f.PossibleDate || f.MatchedStr != c.match || f.NormalizedStr != c.norm {
			t.Errorf("%d: expected date %q → %q, got %v", i, c.match, c.norm, f)
		}
		if f.DateFormat != c.format || f.DateSeparator != c.sep {
			t.Errorf("%d: expected format %q with separator %q, got %q and %q",
				i, c.format, c.sep, f.DateFormat, f.DateSeparator)
		}
	}
}

func TestDateNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	f := extract(ex, "၀၁ - ၀၁ - ၂၀၂၁")
	if f == nil || !f.SpaceIncluded || !f.NormalizeReason.Has(mytok.SpaceRemoved) {
		t.Errorf("expected spaces to be removed from date, got %v", f)
	}
	f = extract(ex, "ဝ၁-ဝ၁-၂ဝ၂၁")
	if f == nil || !f.NormalizeReason.Has(mytok.LegacyZero) {
		t.Errorf("expected legacy zero to be replaced in date, got %v", f)
	}
}

func TestCompactDate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	f := extract(ex, "၂၀၂၁၀၁၀၁")
	if f == nil {
		t.Fatalf("expected compact date to be recognized")
	}
	if !f.PossibleDate || f.DateFormat != "yyyyMMdd" {
		t.Errorf("expected date of format yyyyMMdd, got %v", f)
	}
	if !f.PossiblePhoneNumber || f.PhoneNumberStr != "၂၀၂၁၀၁၀၁" {
		t.Errorf("expected compact date to be a possible phone number, got %v", f)
	}
	if !f.Decimal || f.DecimalStr != "၂၀၂၁၀၁၀၁" {
		t.Errorf("expected compact date to be a decimal, got %v", f)
	}
}

func TestDateRejections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, input := range []string{
		"၂၀၂၁-၀၁-၀၁၅",   // trailing digit
		"၀၁-၀၁/၂၀၂၁",    // mixed separators
		"၀၁.၀၁.၂၀၂၁.၅",  // separator followed by digit
		"၂၀၂၁ ၀၁ ၀၁ ခု", // no punctuation
	} {
		if f := extract(ex, input); f != nil && f.PossibleDate {
			t.Errorf("%d: expected %q not to be a date, got %v", i, input, f)
		}
	}
	ex = New(WithoutPhoneNumbers())
	f := extract(ex, "၂၀၂၁-၀၁-၀၁၅")
	if f == nil || f.MatchedStr != "၂၀၂၁" || f.PossibleDate {
		t.Errorf("expected decimal ၂၀၂၁, got %v", f)
	}
}

func TestTimes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, c := range []struct {
		input, match, norm string
		reason             mytok.NormalizeReason
	}{
		{"၁၀:၃၀", "၁၀:၃၀", "၁၀:၃၀", 0},
		{"၁၀း၃၀ နာရီ", "၁၀း၃၀", "၁၀:၃၀", mytok.ColonFixed},
		{"၉:၀၅:၃၀", "၉:၀၅:၃၀", "၉:၀၅:၃၀", 0},
		{"၁၀ : ၃၀ : ၄၅", "၁၀ : ၃၀ : ၄၅", "၁၀:၃၀:၄၅", mytok.SpaceRemoved},
		{"10:30:45.123+06:30", "10:30:45.123+06:30", "10:30:45.123+06:30", 0},
		{"10:30:45Z", "10:30:45Z", "10:30:45Z", 0},
		{"၁၀:၃၀-၁၂:၀၀", "၁၀:၃၀", "၁၀:၃၀", 0},
		{"၁၂:၃၀:၄ဝါ", "၁၂:၃၀:၄", "၁၂:၃၀:၄", 0},
		{"၁၀:၃၀:၄", "၁၀:၃၀:၄", "၁၀:၃၀:၄", 0},
		{"၉:၅ ည", "၉:၅", "၉:၅", 0},
	} {
		f := extract(ex, c.input)
		if f == nil {
			t.Errorf("%d: expected time for %q, got nothing", i, c.input)
			continue
		}
		if !f.PossibleTime || f.MatchedStr != c.match || f.NormalizedStr != c.norm {
			t.Errorf("%d: expected time %q → %q, got %v", i, c.match, c.norm, f)
		}
		if !f.SeparatorIncluded {
			t.Errorf("%d: expected time to include a separator", i)
		}
		if f.NormalizeReason != c.reason {
			t.Errorf("%d: expected normalize reason %s, got %s", i, c.reason, f.NormalizeReason)
		}
	}
}

func TestTimeRejections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, c := range []struct {
		input, match string
	}{
		{"၁၀:၃၀၅", "၁၀"},    // trailing digit
		{"၁၀:၃၀:၀", "၁၀"},   // colon followed by digit
		{"၁၀:၆၀", "၁၀"},     // minutes out of range
		{"၁၂:၃ဝါ", "၁၂"},    // diacritic after a single colon
		{"၁၂:၃၀:၄၅ိ", "၁၂"}, // diacritic after a real digit
		{"၁၂:၃၀:ဝဝါ", "၁၂"}, // diacritic after two legacy digits
		{"၁၀:၃၀_၁", "၁၀"},   // underscore followed by digit
		{"၁၀၀:၃၀", "၁၀၀"},   // hour too long
	} {
		f := extract(ex, c.input)
		if f == nil {
			t.Errorf("%d: expected a fragment for %q", i, c.input)
			continue
		}
		if f.PossibleTime || f.MatchedStr != c.match {
			t.Errorf("%d: expected %q not to be a time, got %v", i, c.input, f)
		}
	}
}

func TestPhoneNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, c := range []struct {
		input, match, norm, phone string
	}{
		{"+၉၅ ၉ ၁၂၃ ၄၅၆၇", "+၉၅ ၉ ၁၂၃ ၄၅၆၇", "+၉၅ ၉ ၁၂၃ ၄၅၆၇", "+၉၅၉၁၂၃၄၅၆၇"},
		{"＋၉၅၉၁၂၃၄၅၆၇", "＋၉၅၉၁၂၃၄၅၆၇", "+၉၅၉၁၂၃၄၅၆၇", "+၉၅၉၁၂၃၄၅၆၇"},
		{"၀၉ဝ၁၂၃၄၅၆၇ ကို", "၀၉ဝ၁၂၃၄၅၆၇", "၀၉၀၁၂၃၄၅၆၇", "၀၉၀၁၂၃၄၅၆၇"},
		{"(၀၁) ၂၃၄၅၆၇", "(၀၁) ၂၃၄၅၆၇", "(၀၁) ၂၃၄၅၆၇", "၀၁၂၃၄၅၆၇"},
		{"၀၉-၁၂၃-၄၅၆၇၈", "၀၉-၁၂၃-၄၅၆၇၈", "၀၉-၁၂၃-၄၅၆၇၈", "၀၉၁၂၃၄၅၆၇၈"},
		{"*၁၂၃#", "*၁၂၃#", "*၁၂၃#", "*၁၂၃#"},
		{"၀၉\u200b၁၂၃၄၅၆၇", "၀၉\u200b၁၂၃၄၅၆၇", "၀၉၁၂၃၄၅၆၇", "၀၉၁၂၃၄၅၆၇"},
		{"၀၉၊၁၂၃၊၄၅၆၇", "၀၉၊၁၂၃၊၄၅၆၇", "၀၉၊၁၂၃၊၄၅၆၇", "၀၉၁၂၃၄၅၆၇"},
	} {
		f := extract(ex, c.input)
		if f == nil {
			t.Errorf("%d: expected phone number for %q, got nothing", i, c.input)
			continue
		}
		if !f.PossiblePhoneNumber || f.MatchedStr != c.match || f.NormalizedStr != c.norm {
			t.Errorf("%d: expected phone number %q → %q, got %v", i, c.match, c.norm, f)
		}
		if f.PhoneNumberStr != c.phone {
			t.Errorf("%d: expected phone number string %q, got %q", i, c.phone, f.PhoneNumberStr)
		}
	}
}

func TestPhoneNumberFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	f := extract(ex, "＋၉၅၉၁၂၃၄၅၆၇")
	if f == nil || !f.NormalizeReason.Has(mytok.PlusSignFixed) || f.Decimal {
		t.Errorf("expected fixed plus sign and no decimal, got %v", f)
	}
	f = extract(ex, "၀၉ဝ၁၂၃၄၅၆၇")
	if f == nil || !f.NormalizeReason.Has(mytok.LegacyZero) {
		t.Fatalf("expected legacy zero to be replaced, got %v", f)
	}
	if f.Decimal {
		t.Errorf("expected phone number with leading zero not to be a decimal, got %v", f)
	}
	f = extract(ex, "၉၅၁၂၃၄၅၆၇")
	if f == nil || !f.Decimal || f.DecimalStr != "၉၅၁၂၃၄၅၆၇" {
		t.Errorf("expected digits-only phone number to be a decimal, got %v", f)
	}
	f = extract(ex, "၀၉\u200b၁၂၃၄၅၆၇")
	if f == nil || !f.SpaceIncluded || !f.NormalizeReason.Has(mytok.SpaceRemoved) {
		t.Errorf("expected invisible space to be removed, got %v", f)
	}
}

func TestPhoneNumberRejections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	if f := extract(ex, "*၁၂၃#၄"); f != nil {
		t.Errorf("expected service code followed by digit to be rejected, got %v", f)
	}
	f := extract(ex, "၁၂-၃၄")
	if f == nil || f.PossiblePhoneNumber || f.MatchedStr != "၁၂" {
		t.Errorf("expected decimal ၁၂, got %v", f)
	}
	f = extract(ex, "၁၂၃.၄၅")
	if f == nil || f.PossiblePhoneNumber || f.DecimalStr != "၁၂၃.၄၅" {
		t.Errorf("expected decimal ၁၂၃.၄၅, got %v", f)
	}
	f = extract(ex, "၀၉၁၂၃၄၅၆၇၈@gmail.com")
	if f == nil || f.PossiblePhoneNumber || !f.Decimal {
		t.Errorf("expected e-mail local part not to be a phone number, got %v", f)
	}
	f = extract(ex, "၁၂၃၄၅@၆၇၈")
	if f == nil || f.PossiblePhoneNumber || f.MatchedStr != "၁၂၃၄၅" || !f.Decimal {
		t.Errorf("expected '@' followed by digits to reject phone number, got %v", f)
	}
	f = extract(ex, "၁၂၃၄၅@ ခု")
	if f == nil || !f.PossiblePhoneNumber || f.MatchedStr != "၁၂၃၄၅" {
		t.Errorf("expected phone number before '@', got %v", f)
	}
}

func TestBuildPhone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	for i, c := range []struct {
		input string
		ok    bool
	}{
		{"+၁၂၃၄၅", false},    // too short after plus
		{"+၁၂၃၄၅၆", true},    //
		{"၀၀၁၂၃၄၅", false},   // too short after 00
		{"၀၀၁၂၃၄၅၆", true},   //
		{"၁၂ ၃၄", false},     // too short with separator
		{"၁*၂၃၄", false},     // star without hash
		{"၁၂.၃၄၅", false},    // decimal
		{"၁၂/၃၄၅", false},    // fraction
		{"၀၉.၁၂၃၄၅၆၇", true}, // leading zero
		{"ဝဝဝ", false},       // no real digit
		{"၁-၂-၃-၄-၅", false}, // no run of digits
		{"(၁၂)၃၄၅", true},    //
		{"(၁၂]၃၄၅", false},   // mismatched brackets
	} {
		x := buildPhone([]rune(c.input))
		if (x != nil) != c.ok {
			t.Errorf("%d: expected phone number %q to be valid=%v", i, c.input, c.ok)
		}
	}
}

func TestDecimals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, c := range []struct {
		input, match, norm, decimal, thousands string
		reason                                 mytok.NormalizeReason
	}{
		{"၁,၀၀၀", "၁,၀၀၀", "၁,၀၀၀", "၁၀၀၀", ",", 0},
		{"၁,၀၀၀,၀၀၀.၅", "၁,၀၀၀,၀၀၀.၅", "၁,၀၀၀,၀၀၀.၅", "၁၀၀၀၀၀၀.၅", ",", 0},
		{"၁,၀၀၀'၀၀၀", "၁,၀၀၀", "၁,၀၀၀", "၁၀၀၀", ",", 0},
		{"၁ ,၀၀၀ ကျပ်", "၁ ,၀၀၀", "၁,၀၀၀", "၁၀၀၀", ",", mytok.SpaceRemoved},
		{"၁,၀၀,၀၀၀", "၁,၀၀,၀၀၀", "၁,၀၀,၀၀၀", "၁၀၀၀၀၀", ",", 0},
		{"၁,၀၀၀၀ ခု", "၁,၀၀၀၀", "၁,၀၀၀၀", "၁၀၀၀၀", ",", 0},
		{"၁,၀၀၀၀၀", "၁", "၁", "၁", "", 0},
		{"၁၂．၅", "၁၂．၅", "၁၂.၅", "၁၂.၅", "", mytok.DecimalPointFixed},
		{"၁·၅", "၁·၅", "၁.၅", "၁.၅", "", mytok.DecimalPointFixed},
		{"၁˙၅ ကျပ်", "၁˙၅", "၁.၅", "၁.၅", "", mytok.DecimalPointFixed},
		{"ဝ၁", "ဝ၁", "၀၁", "၀၁", "", mytok.LegacyZero},
		{"၁၂၃ ခု", "၁၂၃", "၁၂၃", "၁၂၃", "", 0},
		{"12.5%", "12.5", "12.5", "12.5", "", 0},
	} {
		f := extract(ex, c.input)
		if f == nil {
			t.Errorf("%d: expected decimal for %q, got nothing", i, c.input)
			continue
		}
		if !f.Decimal || f.MatchedStr != c.match || f.NormalizedStr != c.norm {
			t.Errorf("%d: expected decimal %q → %q, got %v", i, c.match, c.norm, f)
		}
		if f.DecimalStr != c.decimal || f.ThousandSeparator != c.thousands {
			t.Errorf("%d: expected decimal string %q with separator %q, got %q and %q",
				i, c.decimal, c.thousands, f.DecimalStr, f.ThousandSeparator)
		}
		if f.NormalizeReason != c.reason {
			t.Errorf("%d: expected normalize reason %s, got %s", i, c.reason, f.NormalizeReason)
		}
	}
}

func TestDecimalGroupedBySpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New(WithoutPhoneNumbers())
	f := extract(ex, "၁ ၀၀၀ ၀၀၀ ကျပ်")
	if f == nil || f.MatchedStr != "၁ ၀၀၀ ၀၀၀" {
		t.Fatalf("expected decimal grouped by spaces, got %v", f)
	}
	if f.DecimalStr != "၁၀၀၀၀၀၀" || f.ThousandSeparator != " " || !f.SpaceIncluded {
		t.Errorf("expected decimal ၁၀၀၀၀၀၀ with space separator, got %v", f)
	}
	ex = New()
	f = extract(ex, "၁ ၀၀၀ ၀၀၀")
	if f == nil || !f.PossiblePhoneNumber || !f.Decimal || f.DecimalStr != "၁၀၀၀၀၀၀" {
		t.Errorf("expected phone number and decimal, got %v", f)
	}
}

func TestDecimalRejections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, input := range []string{
		"ဝဝ",   // no real digit
		"ဝါ",   // letter wa with vowel sign
		"၎င်း", // pronoun, not a number
		"၅",    // too short
	} {
		if f := extract(ex, input); f != nil {
			t.Errorf("%d: expected no fragment for %q, got %v", i, input, f)
		}
	}
}

func TestDecimalFollowedBySyllable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, c := range []struct {
		input, match string
	}{
		{"၅ဝက်", "၅"},                     // a-thet after legacy digit
		{"၁၂ို", "၁"},           // vowel cluster
		{"၁ဝားတ", "၁"},    // legacy digit starts a word
		{"၁၀ိတ်", "၁"},    // no abbreviation
	} {
		f := extract(ex, c.input)
		if f == nil || f.MatchedStr != c.match || f.AncientWrittenForm {
			t.Errorf("%d: expected decimal %q for %q, got %v", i, c.match, c.input, f)
		}
	}
}

func TestMeasureWordSuffixes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, c := range []struct {
		input, match string
		words        []string
	}{
		{"၁၀ိ", "၁၀ိ", []string{"ကျပ်", "စိတ်", "မိုက်"}},
		{"၅ါး ဖိုး", "၅ါး", []string{"ပြား", "ပါး"}},
		{"၂ဲ", "၂ဲ", []string{"ပဲ", "စလယ်", "ပယ်"}},
		{"၁၀ွေး", "၁၀ွေး", []string{"ရွေး"}},
		{"၅ွက်", "၅ွက်", []string{"ခွက်"}},
		{"၃်", "၃်", []string{"ပြည်"}},
	} {
		f := extract(ex, c.input)
		if f == nil {
			t.Errorf("%d: expected fragment for %q, got nothing", i, c.input)
			continue
		}
		if !f.AncientWrittenForm || f.MatchedStr != c.match {
			t.Errorf("%d: expected ancient form %q, got %v", i, c.match, f)
		}
		if !reflect.DeepEqual(f.AncientMeasureWords, c.words) {
			t.Errorf("%d: expected measure words %v, got %v", i, c.words, f.AncientMeasureWords)
		}
	}
	f := extract(ex, "၂ ယ် ခု")
	if f == nil || f.MatchedStr != "၂ ယ်" || f.NormalizedStr != "၂ယ်" || !f.NormalizeReason.Has(mytok.SpaceRemoved) {
		t.Errorf("expected abbreviation after space, got %v", f)
	}
	ex = New(WithoutAncientForms())
	f = extract(ex, "၁၀ိ")
	if f == nil || f.AncientWrittenForm || f.MatchedStr != "၁" {
		t.Errorf("expected plain decimal ၁, got %v", f)
	}
}

func TestArchaicForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for i, c := range []struct {
		input, match, norm, decimal string
		words                       []string
	}{
		{"င်္၁ါ", "င်္၁ါ", "င်္၁ါ", "၁",
			[]string{"အင်္ဂါ"}},
		{"င်္၅ ပြည်", "င်္၅", "င်္၅", "၅",
			[]string{"တောင်း", "တင်း"}},
		{"၁၂င်္၃ါ", "၁၂င်္၃ါ", "၁၂င်္၃ါ", "၁၂၃",
			[]string{"အင်္ဂါ"}},
		{"(၅)၀ိ", "(၅)၀ိ", "(၅)၀ိ", "၅၀", []string{"ဆယ်သား"}},
		{"(၎)၀ိ", "(၎)၀ိ", "(၄)၀ိ", "၄၀", []string{"ဆယ်သား"}},
		{"( ၅ )၀ိ ကို", "( ၅ )၀ိ", "(၅)၀ိ", "၅၀", []string{"ဆယ်သား"}},
	} {
		f := extract(ex, c.input)
		if f == nil {
			t.Errorf("%d: expected archaic form for %q, got nothing", i, c.input)
			continue
		}
		if f.MatchedStr != c.match || f.NormalizedStr != c.norm || f.DecimalStr != c.decimal {
			t.Errorf("%d: expected %q → %q, got %v", i, c.match, c.norm, f)
		}
		if !f.AncientWrittenForm || !reflect.DeepEqual(f.AncientMeasureWords, c.words) {
			t.Errorf("%d: expected measure words %v, got %v", i, c.words, f.AncientMeasureWords)
		}
	}
	ex = New(WithoutAncientForms())
	if f := extract(ex, "င်္၅"); f != nil {
		t.Errorf("expected no fragment without ancient forms, got %v", f)
	}
}

func TestBracketNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	f := extract(ex, "(၁၂) ခု")
	if f == nil || f.MatchedStr != "(၁၂)" || !f.Decimal || f.DecimalStr != "၁၂" {
		t.Errorf("expected bracketed decimal ၁၂, got %v", f)
	}
	if f = extract(ex, "(၁၂ ခု"); f != nil {
		t.Errorf("expected unclosed bracket not to match, got %v", f)
	}
	for _, input := range []string{"(၁၂)ဝ", "(၁၂)ဝဝ ခု"} {
		f = extract(ex, input)
		if f == nil || f.MatchedStr != "(၁၂)" {
			t.Errorf("expected legacy digits without a digit not to continue %q, got %v", input, f)
		}
	}
	for _, input := range []string{"(၁၂)ဝ၁", "(၁၂)ဝ,၅"} {
		if f = extract(ex, input); f != nil {
			t.Errorf("expected %q not to match, got %v", input, f)
		}
	}
}

var allInputs = []string{
	"၂၀၂၁-၀၁-၀၁", "၀၁ - ၀၁ - ၂၀၂၁", "၁၂-၂၅-၂၀၂၁", "၂၀၂၁၀၁၀၁", "ဝ၁-ဝ၁-၂ဝ၂၁",
	"၁၀:၃၀", "၁၀း၃၀", "၁၀ : ၃၀ : ၄၅", "10:30:45.123+06:30", "၁၂:၃၀:၄ဝါ",
	"+၉၅ ၉ ၁၂၃ ၄၅၆၇", "＋၉၅၉၁၂၃၄၅၆၇", "၀၉ဝ၁၂၃၄၅၆၇", "(၀၁) ၂၃၄၅၆၇", "*၁၂၃#",
	"၁,၀၀၀", "၁ ,၀၀၀", "၁ ၀၀၀ ၀၀၀", "၁၂．၅", "ဝ၁", "(၁၂)",
	"၁၀ိ", "၅ါး", "င်္၁ါ", "င်္၅", "(၎)၀ိ",
	"၁၅၊၁၀၊၂၀၂၁", "၁၀:၃၀:၄", "၁,၀၀,၀၀၀", "၁·၅", "၀၉၊၁၂၃၊၄၅၆၇",
}

func TestMatchIsPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	tracing.Select("mytok.number").SetTraceLevel(tracing.LevelInfo)
	//
	ex := New()
	for _, input := range allInputs {
		for _, suffix := range []string{"", " ", "က", "ာ", "-၁", ".", "၁"} {
			s := input + suffix
			f := extract(ex, s)
			if f == nil {
				continue
			}
			if !strings.HasPrefix(s, f.MatchedStr) || f.Len() == 0 {
				t.Errorf("match %q is not a prefix of %q", f.MatchedStr, s)
			}
			if len(f.AncientMeasureWords) > 0 && !f.AncientWrittenForm {
				t.Errorf("%q: measure words without ancient form", s)
			}
			if f.Decimal && f.DecimalStr == "" {
				t.Errorf("%q: decimal without decimal string", s)
			}
		}
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	tracing.Select("mytok.number").SetTraceLevel(tracing.LevelInfo)
	//
	ex := New()
	for _, input := range allInputs {
		f := extract(ex, input)
		if f == nil {
			t.Errorf("expected fragment for %q", input)
			continue
		}
		g := extract(ex, f.NormalizedStr)
		if g == nil || g.NormalizedStr != f.NormalizedStr {
			t.Errorf("normalizing %q again yields %v", f.NormalizedStr, g)
		}
	}
}

func TestPlainDigitsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	//
	ex := New()
	for _, input := range []string{"၁၂", "၁၂၃", "12345", "၁၂၃၄၅၆၇၈၉၀၁"} {
		f := extract(ex, input)
		if f == nil || !f.Decimal {
			t.Errorf("expected %q to be a decimal, got %v", input, f)
			continue
		}
		if f.DecimalStr != f.NormalizedStr || f.NormalizedStr != f.MatchedStr {
			t.Errorf("expected %q to be unchanged, got %v", input, f)
		}
	}
}

func TestConcurrentExtraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mytok.number")
	defer teardown()
	tracing.Select("mytok.number").SetTraceLevel(tracing.LevelError)
	//
	ex := New()
	want := make([]string, len(allInputs))
	for i, input := range allInputs {
		want[i] = extract(ex, input).NormalizedStr
	}
	var wg sync.WaitGroup
	errs := make(chan string, 8*len(allInputs))
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, input := range allInputs {
				if f := extract(ex, input); f == nil || f.NormalizedStr != want[i] {
					errs <- input
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for input := range errs {
		t.Errorf("concurrent extraction of %q differs", input)
	}
}

func TestMightBeDate(t *testing.T) {
	for i, c := range []struct {
		input string
		ok    bool
	}{
		{"၂၀၂၁-၀၁-၀၁", true},
		{"၀၁ - ၀၁ - ၂၀၂၁", true},
		{"၂၀၂၁၀၁၀၁", true},
		{"၂၀၂၁၀၁၀၁၅", false},
		{"၁၂၃၄၅-၀၁-၀၁", false},
		{"၁၀:၃၀:၄၅", false},
		{"၀၁-၀၁", false},
	} {
		if mightBeDate([]rune(c.input)) != c.ok {
			t.Errorf("%d: expected mightBeDate(%q) = %v", i, c.input, c.ok)
		}
	}
}

func TestMatchDomain(t *testing.T) {
	for i, c := range []struct {
		input string
		n     int
	}{
		{"gmail.com", 9},
		{"mail.example.org>", 16},
		{"localhost", 0},
		{"host.1", 0},
		{"ကျောင်း.com", 0},
	} {
		if n := matchDomain([]rune(c.input)); n != c.n {
			t.Errorf("%d: expected domain of length %d in %q, got %d", i, c.n, c.input, n)
		}
	}
}
