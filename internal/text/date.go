package text

import (
	"regexp"
	"strconv"
	"strings"
)

// Date chunks verbalize as month name, ordinal day, then the year read
// in pairs ("2024-01-05" → "january fifth twenty twenty four"). The
// month and ordinal tables are English, so expansion only runs for the
// "en" number language; other languages keep the literal token.

var (
	// isoDatePattern matches YYYY-MM-DD.
	isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	// slashDatePattern matches M/D/YYYY.
	slashDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// ordinalDays spells the ordinal words for days 1 through 31; multi-word
// ordinals are space separated so they emit as separate tokens.
var ordinalDays = []string{
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth",
	"nineteenth", "twentieth", "twenty first", "twenty second",
	"twenty third", "twenty fourth", "twenty fifth", "twenty sixth",
	"twenty seventh", "twenty eighth", "twenty ninth", "thirtieth",
	"thirty first",
}

// expandDate rewrites a date-shaped chunk into spoken words. ok is false
// when the chunk is not a date, the fields are out of range, or the
// number language has no date tables; the chunk then degrades to the
// usual literal handling.
func (t *Tokenizer) expandDate(chunk string) (words []string, ok bool) {
	if t.numberLang() != "en" {
		return nil, false
	}

	var year, month, day int
	if m := isoDatePattern.FindStringSubmatch(chunk); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := slashDatePattern.FindStringSubmatch(chunk); m != nil {
		month, _ = strconv.Atoi(m[1])
		day, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		return nil, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, false
	}

	yearPart, ok := yearWords(year, t.numberLang())
	if !ok {
		return nil, false
	}

	words = append(words, monthNames[month-1])
	words = append(words, strings.Fields(ordinalDays[day-1])...)
	words = append(words, yearPart...)
	return words, true
}

// yearWords reads a four-digit year in pairs ("1999" → "nineteen ninety
// nine", "1900" → "nineteen hundred"); years with a single-digit tail or
// outside four digits read as plain cardinals ("2005" → "two thousand
// five").
func yearWords(year int, lang string) ([]string, bool) {
	if year < 1000 || year > 9999 {
		return integerWords(year, lang)
	}

	high, low := year/100, year%100
	switch {
	case low == 0:
		words, ok := integerWords(high, lang)
		if !ok {
			return nil, false
		}
		return append(words, "hundred"), true
	case low < 10:
		return integerWords(year, lang)
	default:
		highWords, ok := integerWords(high, lang)
		if !ok {
			return nil, false
		}
		lowWords, ok := integerWords(low, lang)
		if !ok {
			return nil, false
		}
		return append(highWords, lowWords...), true
	}
}
