package format

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigits - по умолчанию как у Intl.NumberFormat
const maxFractionDigits = 3

// Formatter - локализованное форматирование чисел и сумм в USD
type Formatter struct {
	printer   *message.Printer
	usdSymbol string
}

// New создает Formatter для локали (BCP 47). Неизвестная локаль -> en-US.
func New(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)

	return &Formatter{
		printer:   p,
		usdSymbol: p.Sprint(currency.Symbol(currency.USD)),
	}
}

// Number - число с разделителями разрядов локали, до трех знаков после запятой
func (f *Formatter) Number(v float64) string {
	return f.decimal(v, maxFractionDigits)
}

// USD - сумма в долларах без дробной части: 42 -> "$42"
func (f *Formatter) USD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.usdSymbol + f.decimal(v, 0)
	}
	rounded := roundHalfAway(v, 0)
	if rounded < 0 {
		return "-" + f.usdSymbol + f.decimal(-rounded, 0)
	}
	return f.usdSymbol + f.decimal(rounded, 0)
}

// decimal округляет половину от нуля, остальное делает number.Decimal локали.
// Сам x/text округляет половину к четному.
func (f *Formatter) decimal(v float64, digits int) string {
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		v = roundHalfAway(v, digits)
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(digits)))
}

func roundHalfAway(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	rounded := math.Round(v*scale) / scale
	if rounded == 0 {
		return 0 // без "-0"
	}
	return rounded
}
