package text

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yousifnimah/NumToWordsGo/NumToWords"
)

// CurrencyNames carries the spoken unit names for one currency symbol.
// Minor units verbalize the fractional part ("$10.50" → "... fifty cents").
type CurrencyNames struct {
	Singular      string
	Plural        string
	MinorSingular string
	MinorPlural   string
}

// DefaultCurrencies maps common currency symbols to English unit names.
func DefaultCurrencies() map[string]CurrencyNames {
	return map[string]CurrencyNames{
		"$": {Singular: "dollar", Plural: "dollars", MinorSingular: "cent", MinorPlural: "cents"},
		"€": {Singular: "euro", Plural: "euros", MinorSingular: "cent", MinorPlural: "cents"},
		"£": {Singular: "pound", Plural: "pounds", MinorSingular: "penny", MinorPlural: "pence"},
		"¥": {Singular: "yen", Plural: "yen"},
	}
}

var digitWords = map[rune]string{
	'0': "zero", '1': "one", '2': "two", '3': "three", '4': "four",
	'5': "five", '6': "six", '7': "seven", '8': "eight", '9': "nine",
}

// numberPattern matches an optionally signed integer or decimal, with
// optional comma thousands grouping in the integer part.
var numberPattern = regexp.MustCompile(`^-?(\d{1,3}(,\d{3})+|\d+)(\.\d+)?$`)

// expandNumber rewrites a numeric or currency chunk into spoken words.
// ok is false when the chunk is not numeric; a chunk that looks numeric
// but cannot be verbalized degrades to literal text (ok=false), never an
// error.
func (t *Tokenizer) expandNumber(chunk string) (words []string, ok bool) {
	if cur, rest, found := t.splitCurrency(chunk); found {
		if w, curOK := t.expandCurrency(cur, rest); curOK {
			return w, true
		}
		return nil, false
	}
	return t.expandPlainNumber(chunk)
}

// splitCurrency detects a currency symbol prefixed or suffixed to a
// numeric amount and returns its unit names plus the bare amount.
func (t *Tokenizer) splitCurrency(chunk string) (CurrencyNames, string, bool) {
	for symbol, names := range t.opts.Currencies {
		if rest, found := strings.CutPrefix(chunk, symbol); found && rest != "" {
			return names, rest, true
		}
		if rest, found := strings.CutSuffix(chunk, symbol); found && rest != "" {
			return names, rest, true
		}
	}
	return CurrencyNames{}, "", false
}

func (t *Tokenizer) expandCurrency(names CurrencyNames, amount string) ([]string, bool) {
	if !numberPattern.MatchString(amount) {
		return nil, false
	}

	negative := strings.HasPrefix(amount, "-")
	amount = strings.TrimPrefix(amount, "-")
	amount = strings.ReplaceAll(amount, ",", "")

	intPart, fracPart, hasFrac := strings.Cut(amount, ".")

	major, err := strconv.Atoi(intPart)
	if err != nil {
		return nil, false
	}

	var words []string
	if negative {
		words = append(words, "minus")
	}

	majorWords, ok := integerWords(major, t.numberLang())
	if !ok {
		return nil, false
	}
	words = append(words, majorWords...)
	words = append(words, pickUnit(major, names.Singular, names.Plural))

	// Fractional part reads as minor units when the currency has them and
	// the fraction fits in two digits ("$10.50" → "fifty cents").
	if hasFrac && fracPart != "" {
		if names.MinorSingular == "" || len(fracPart) > 2 {
			return nil, false
		}
		minor, err := strconv.Atoi(fracPart)
		if err != nil {
			return nil, false
		}
		if len(fracPart) == 1 {
			minor *= 10
		}
		if minor > 0 {
			minorWords, ok := integerWords(minor, t.numberLang())
			if !ok {
				return nil, false
			}
			words = append(words, minorWords...)
			words = append(words, pickUnit(minor, names.MinorSingular, names.MinorPlural))
		}
	}

	return words, true
}

func (t *Tokenizer) expandPlainNumber(chunk string) ([]string, bool) {
	if !numberPattern.MatchString(chunk) {
		return nil, false
	}

	negative := strings.HasPrefix(chunk, "-")
	chunk = strings.TrimPrefix(chunk, "-")
	chunk = strings.ReplaceAll(chunk, ",", "")

	intPart, fracPart, hasFrac := strings.Cut(chunk, ".")

	n, err := strconv.Atoi(intPart)
	if err != nil {
		// Out of int range; degrade to literal text.
		return nil, false
	}

	var words []string
	if negative {
		words = append(words, "minus")
	}

	intWords, ok := integerWords(n, t.numberLang())
	if !ok {
		return nil, false
	}
	words = append(words, intWords...)

	// Decimal point reads as "point" followed by one word per digit.
	if hasFrac {
		words = append(words, "point")
		for _, r := range fracPart {
			words = append(words, digitWords[r])
		}
	}

	return words, true
}

// integerWords verbalizes a non-negative integer in long form using the
// configured number language, falling back to English for locales the
// converter does not cover.
func integerWords(n int, lang string) ([]string, bool) {
	spoken, err := NumToWords.Convert(n, lang)
	if err != nil && lang != "en" {
		// Locale without converter data: fall back to English words so
		// the number still expands instead of staying a digit token.
		spoken, err = NumToWords.Convert(n, "en")
	}
	if err != nil {
		return nil, false
	}
	// The converter capitalizes words; token surface text is lowercase by
	// convention so lexicon keys stay predictable.
	return strings.Fields(strings.ToLower(spoken)), true
}

func pickUnit(n int, singular, plural string) string {
	if n == 1 || plural == "" {
		return singular
	}
	return plural
}

func (t *Tokenizer) numberLang() string {
	if t.opts.NumberLang == "" {
		return "en"
	}
	return t.opts.NumberLang
}
