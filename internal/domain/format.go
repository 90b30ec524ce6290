package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	numcore_errors "numcore/internal"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:generate mockgen -source=format.go -destination=mock_format.go -package=domain

const percentSign = "%"

// NumberFormat is the locale collaborator used to read and
// write the numeric part of a percent.
type NumberFormat interface {
	DecimalSeparator() string
	// ParseFloat reads a numeral written with DecimalSeparator
	// and no grouping.
	ParseFloat(s string) (float64, error)
	FormatFloat(f float64) string
}

type invariantFormat struct{}

var Invariant NumberFormat = invariantFormat{}

func (invariantFormat) DecimalSeparator() string {
	return "."
}

func (invariantFormat) ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func (invariantFormat) FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// LocaleFormat reads and writes numbers the way a language.Tag does,
// always with Latin digits so its output can be parsed back.
type LocaleFormat struct {
	tag       language.Tag
	printer   *message.Printer
	separator string
}

func NewLocaleFormat(tag language.Tag) *LocaleFormat {
	if latn, err := tag.SetTypeForKey("nu", "latn"); err == nil {
		tag = latn
	}
	p := message.NewPrinter(tag)
	// render 1.5 and keep whatever sits between the digits
	sample := p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1), number.NoSeparator()))
	sep := strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5")
	if sep == "" || sep == sample {
		sep = "."
	}
	return &LocaleFormat{
		tag:       tag,
		printer:   p,
		separator: sep,
	}
}

func (f LocaleFormat) Tag() language.Tag {
	return f.tag
}

func (f LocaleFormat) DecimalSeparator() string {
	return f.separator
}

func (f LocaleFormat) ParseFloat(s string) (float64, error) {
	if f.separator != "." && strings.Contains(s, ".") {
		return 0, fmt.Errorf("unexpected separator \".\" in %q for locale %s", s, f.tag)
	}
	return strconv.ParseFloat(strings.Replace(s, f.separator, ".", 1), 64)
}

func (f LocaleFormat) FormatFloat(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.NoSeparator(), number.MaxFractionDigits(10)))
}

// Parse reads text such as "20%" or "2.35%". Both sides of the
// decimal separator must carry digits, so ".5%" and "7.%" fail.
// A nil format parses with Invariant.
func Parse(text string, format NumberFormat) (Percent, error) {
	if format == nil {
		format = Invariant
	}
	s := strings.TrimSpace(stripBidi(text))
	if !strings.HasSuffix(s, percentSign) {
		return Zero, numcore_errors.ErrInvalidPercent{Input: text, Message: "missing percent sign"}
	}
	body := strings.TrimSpace(strings.TrimSuffix(s, percentSign))

	digits := strings.TrimLeft(body, "+-")
	if len(body)-len(digits) > 1 {
		return Zero, numcore_errors.ErrInvalidPercent{Input: text, Message: "more than one sign"}
	}

	// an empty separator means the provider has no fractions
	whole, frac, hasSep := digits, "", false
	if sep := format.DecimalSeparator(); sep != "" {
		whole, frac, hasSep = strings.Cut(digits, sep)
	}
	if !allDigits(whole) {
		return Zero, numcore_errors.ErrInvalidPercent{Input: text, Message: "missing digits before the separator"}
	}
	if hasSep && !allDigits(frac) {
		return Zero, numcore_errors.ErrInvalidPercent{Input: text, Message: "missing digits after the separator"}
	}

	f, err := format.ParseFloat(body)
	if err != nil {
		return Zero, fmt.Errorf("%w: %s", numcore_errors.ErrInvalidPercent{Input: text}, err.Error())
	}
	return Percent(f), nil
}

func MustParse(text string) Percent {
	p, err := Parse(text, Invariant)
	if err != nil {
		panic(err)
	}
	return p
}

// locales such as ar write direction marks around signs
func stripBidi(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Bidi_Control, r) {
			return -1
		}
		return r
	}, s)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (p Percent) FormatWith(format NumberFormat) string {
	if format == nil {
		format = Invariant
	}
	return format.FormatFloat(float64(p)) + percentSign
}

func (p Percent) String() string {
	return p.FormatWith(Invariant)
}

func (p Percent) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Percent) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text), Invariant)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
