package models

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PropertyTaxRecord represents one row of the property_tax table
type PropertyTaxRecord struct {
	ID               int64
	Address          string
	AssessmentAmount float64
	PaymentAmount    float64
	PaymentDate      string
}

// Input returns the mutable fields of the record
func (r PropertyTaxRecord) Input() RecordInput {
	return RecordInput{
		Address:          r.Address,
		AssessmentAmount: r.AssessmentAmount,
		PaymentAmount:    r.PaymentAmount,
		PaymentDate:      r.PaymentDate,
	}
}

// RecordInput carries the four fields written by create and update
type RecordInput struct {
	Address          string
	AssessmentAmount float64
	PaymentAmount    float64
	PaymentDate      string
}

// ParseAmount converts user text into an amount. Anything that is not a finite
// decimal number yields 0.0 and ok=false.
func ParseAmount(text string) (amount float64, ok bool) {
	s := strings.TrimSpace(text)
	if s == "" || isHexLiteral(s) {
		return 0.0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0, false
	}
	return v, true
}

func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount for display, e.g. 1200.5 -> "1,200.50"
func FormatAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}
