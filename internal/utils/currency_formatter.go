package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type numberStyle struct {
	group   string
	decimal string
}

var supportedLocales = []language.Tag{
	language.MustParse("id-ID"),
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.Dutch,
	language.Spanish,
	language.French,
	language.Japanese,
	language.Malay,
}

var localeMatcher = language.NewMatcher(supportedLocales)

var numberStyles = map[string]numberStyle{
	"id": {group: ".", decimal: ","},
	"de": {group: ".", decimal: ","},
	"nl": {group: ".", decimal: ","},
	"es": {group: ".", decimal: ","},
	"fr": {group: " ", decimal: ","},
	"en": {group: ",", decimal: "."},
	"ja": {group: ",", decimal: "."},
	"ms": {group: ",", decimal: "."},
}

var currencySymbols = map[string]string{
	"IDR": "Rp",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"SGD": "S$",
	"MYR": "RM",
}

// Formatter renders and parses money for one locale and currency.
type Formatter struct {
	Locale   language.Tag
	Currency currency.Unit

	style  numberStyle
	symbol string
	scale  int32
}

// NewFormatter resolves locale to the closest supported number style and
// validates the ISO 4217 currency code.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, style, err := resolveLocale(locale)
	if err != nil {
		return nil, err
	}

	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		symbol = unit.String()
	}

	return &Formatter{
		Locale:   tag,
		Currency: unit,
		style:    style,
		symbol:   symbol,
		scale:    minorDigits(unit),
	}, nil
}

// isoMinorDigits holds the ISO 4217 minor units where CLDR's standard rounding
// disagrees (CLDR rounds IDR to whole rupiah) or where the unit is not two.
var isoMinorDigits = map[string]int32{
	"IDR": 2,
	"HUF": 2,
	"TWD": 2,
	"PKR": 2,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"CLP": 0,
	"BHD": 3,
	"JOD": 3,
	"KWD": 3,
	"OMR": 3,
	"TND": 3,
}

// minorDigits is the number of decimals shown for unit, falling back to the
// CLDR standard rounding for codes outside the table.
func minorDigits(unit currency.Unit) int32 {
	if digits, ok := isoMinorDigits[unit.String()]; ok {
		return digits
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

// resolveLocale matches locale against the supported number styles. Locales
// with no reasonable match use the English style.
func resolveLocale(locale string) (language.Tag, numberStyle, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return language.Und, numberStyle{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return tag, numberStyles["en"], nil
	}

	base, _ := supportedLocales[idx].Base()
	style, ok := numberStyles[base.String()]
	if !ok {
		style = numberStyles["en"]
	}
	return tag, style, nil
}

// MustFormatter is NewFormatter for known-good constants.
func MustFormatter(locale, code string) *Formatter {
	f, err := NewFormatter(locale, code)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Symbol() string {
	return f.symbol
}

// Format renders amount as e.g. "Rp 50.000,00". Negative amounts get a
// leading '-'.
func (f *Formatter) Format(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + f.format(amount.Abs())
	}
	return f.format(amount)
}

// FormatSigned renders the absolute amount with '+' for sign > 0, '-' for
// sign < 0 and no sign for 0.
func (f *Formatter) FormatSigned(amount decimal.Decimal, sign int) string {
	s := f.format(amount.Abs())
	switch {
	case sign > 0:
		return "+" + s
	case sign < 0:
		return "-" + s
	default:
		return s
	}
}

// FormatNumber renders amount without the currency symbol.
func (f *Formatter) FormatNumber(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + f.number(amount.Abs())
	}
	return f.number(amount)
}

func (f *Formatter) format(abs decimal.Decimal) string {
	return f.symbol + " " + f.number(abs)
}

func (f *Formatter) number(abs decimal.Decimal) string {
	fixed := abs.StringFixed(f.scale)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupDigits(intPart, f.style.group)
	if fracPart == "" {
		return grouped
	}
	return grouped + f.style.decimal + fracPart
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Parse reads a user-typed amount in the formatter's locale, e.g. "50.000",
// "50.000,50" or "Rp 50000" for id-ID.
func (f *Formatter) Parse(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if f.symbol != "" {
		s = strings.TrimPrefix(s, f.symbol)
		s = strings.TrimPrefix(s, f.Currency.String())
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	s = strings.ReplaceAll(s, f.style.group, "")
	s = strings.ReplaceAll(s, " ", "")
	if f.style.decimal != "." {
		s = strings.ReplaceAll(s, f.style.decimal, ".")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", input)
	}
	return amount, nil
}

// ParseAmount parses input using the number style of locale.
func ParseAmount(input, locale string) (decimal.Decimal, error) {
	tag, style, err := resolveLocale(locale)
	if err != nil {
		return decimal.Zero, err
	}
	f := &Formatter{Locale: tag, style: style}
	return f.Parse(input)
}
