// Package format holds the display formatting helpers used by the storefront
// components: prices, numbers, dates, file sizes and text.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is the ISO 4217 code used by FormatPrice.
const DefaultCurrency = "UZS"

// DefaultLocale is the locale used by the locale-less helpers.
var DefaultLocale = language.Uzbek

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_-]+`)
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Slugify lowercases text and reduces it to a URL-safe slug.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FormatPrice renders amount with no fraction digits followed by the
// currency code. An empty code selects DefaultCurrency.
func FormatPrice(amount float64, code string) string {
	return FormatPriceIn(DefaultLocale, amount, code)
}

// FormatPriceIn is FormatPrice for an explicit locale. Unknown currency
// codes are rendered verbatim.
func FormatPriceIn(tag language.Tag, amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}
	if unit, err := currency.ParseISO(code); err == nil {
		code = unit.String()
	}

	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(math.Round(amount), number.MaxFractionDigits(0))) + " " + code
}

// FormatNumber renders num with the locale's digit grouping.
func FormatNumber(num float64) string {
	return FormatNumberIn(DefaultLocale, num)
}

// FormatNumberIn is FormatNumber for an explicit locale.
func FormatNumberIn(tag language.Tag, num float64) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(num))
}

// Layouts accepted by FormatDate for string input.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a date in long form ("January 2, 2006"). date may be a
// time.Time or a string in one of the ISO 8601 layouts.
func FormatDate(date any) (string, error) {
	var t time.Time
	switch v := date.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return "", fmt.Errorf("format date: nil time")
		}
		t = *v
	case string:
		parsed, err := parseDate(v)
		if err != nil {
			return "", err
		}
		t = parsed
	default:
		return "", fmt.Errorf("format date: unsupported type %T", date)
	}
	return t.Format("January 2, 2006"), nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("format date: cannot parse %q", s)
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatFileSize renders bytes in 1024-based units with at most two
// decimals, e.g. "1.5 KB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	const k = 1024
	value := float64(bytes)
	i := 0
	for value >= k && i < len(sizeUnits)-1 {
		value /= k
		i++
	}

	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}

// TruncateText shortens text to maxWidth display cells and appends "...".
// Text that already fits is returned unchanged.
func TruncateText(text string, maxWidth int) string {
	if maxWidth < 0 {
		maxWidth = 0
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	const tail = "..."
	return truncate.StringWithTail(text, uint(maxWidth+len(tail)), tail)
}

// IsValidEmail reports whether email has the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
