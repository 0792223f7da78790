// Package format holds the display conversions shared by every list screen:
// money, percentage discounts and the two date shapes the API speaks.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// Money renders a monetary amount with two decimals and locale grouping,
// e.g. 1234.5 -> "1,234.50".
func Money(v float64) string {
	return moneyPrinter.Sprintf("%.2f", v)
}

// Percent renders an integer discount as "15%".
func Percent(n int) string {
	return fmt.Sprintf("%d%%", n)
}

const (
	displayDateLayout = "02/01/2006"
	inputDateLayout   = "2006-01-02"
)

// InputDate converts an API date ("25/12/2024") into the shape a date-input
// control expects ("2024-12-25").
func InputDate(s string) (string, error) {
	t, err := time.Parse(displayDateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.Format(inputDateLayout), nil
}

// DisplayDate is the inverse of InputDate: "2024-12-25" -> "25/12/2024".
func DisplayDate(s string) (string, error) {
	t, err := time.Parse(inputDateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.Format(displayDateLayout), nil
}
