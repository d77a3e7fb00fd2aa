package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The product is French: user-facing strings and number grouping follow
// fr-FR, matching what the web UI renders.
var frPrinter = message.NewPrinter(language.French)

// FormatSalary renders a salary range for display.
//
//	FormatSalary(nil, nil)     = "Non précisé"
//	FormatSalary(&50000, nil)  = "50 000€"
//	FormatSalary(nil, &60000)  = "Jusqu'à 60 000€"
//	FormatSalary(&min, &max)   = "50 000€ - 60 000€"
func FormatSalary(min, max *int) string {
	switch {
	case min == nil && max == nil:
		return "Non précisé"
	case min != nil && max == nil:
		return frPrinter.Sprintf("%d€", *min)
	case min == nil:
		return frPrinter.Sprintf("Jusqu'à %d€", *max)
	default:
		return frPrinter.Sprintf("%d€ - %d€", *min, *max)
	}
}

// FormatContractType renders a contract type, falling back to
// "Non précisé" when the server provided none.
func FormatContractType(contractType *string) string {
	if contractType == nil || *contractType == "" {
		return "Non précisé"
	}
	return *contractType
}
