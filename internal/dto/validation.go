package dto

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// recipientNameRegexp allows Latin letters, combining marks and spaces only,
// matching what downstream payment rails accept for beneficiary names.
var recipientNameRegexp = regexp.MustCompile(`^[\p{Latin}\p{M} ]+$`)

// ibanShapeRegexp is the coarse IBAN shape: country code, two check digits,
// then the BBAN. Per-country length and the mod-97 checksum are verified
// separately.
var ibanShapeRegexp = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)

// ibanLengths holds the registered IBAN length per country code. A country
// code outside this map is rejected.
var ibanLengths = map[string]int{
	"AD": 24, "AE": 23, "AL": 28, "AT": 20, "AZ": 28, "BA": 20, "BE": 16,
	"BG": 22, "BH": 22, "BR": 29, "BY": 28, "CH": 21, "CR": 22, "CY": 28,
	"CZ": 24, "DE": 22, "DK": 18, "DO": 28, "EE": 20, "EG": 29, "ES": 24,
	"FI": 18, "FO": 18, "FR": 27, "GB": 22, "GE": 22, "GI": 23, "GL": 18,
	"GR": 27, "GT": 28, "HR": 21, "HU": 28, "IE": 22, "IL": 23, "IQ": 23,
	"IS": 26, "IT": 27, "JO": 30, "KW": 30, "KZ": 20, "LB": 28, "LC": 32,
	"LI": 21, "LT": 20, "LU": 20, "LV": 21, "MC": 27, "MD": 24, "ME": 22,
	"MK": 19, "MR": 27, "MT": 31, "MU": 30, "NL": 18, "NO": 15, "PK": 24,
	"PL": 28, "PS": 29, "PT": 25, "QA": 29, "RO": 24, "RS": 22, "SA": 24,
	"SE": 24, "SI": 19, "SK": 24, "SM": 27, "TN": 24, "TR": 26, "UA": 29,
	"VA": 22, "VG": 24, "XK": 20,
}

// isValidIBAN reports whether value is a valid IBAN. Whitespace is stripped
// and the value upper-cased first, so "de89 3704 ..." validates the same as
// its electronic format.
func isValidIBAN(value string) bool {
	iban := strings.ToUpper(strings.Join(strings.Fields(value), ""))
	if !ibanShapeRegexp.MatchString(iban) {
		return false
	}
	wantLen, ok := ibanLengths[iban[:2]]
	if !ok || len(iban) != wantLen {
		return false
	}

	// mod-97 (ISO 7064): move the first four characters to the end, expand
	// letters to 10..35 and the resulting number must leave remainder 1.
	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		if c >= '0' && c <= '9' {
			remainder = (remainder*10 + int(c-'0')) % 97
		} else {
			remainder = (remainder*100 + int(c-'A') + 10) % 97
		}
	}
	return remainder == 1
}

// RegisterCustomValidations installs the payment-specific binding rules on
// gin's validator engine. Call once at startup before routes are served.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("recipientname", func(fl validator.FieldLevel) bool {
		return recipientNameRegexp.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("iban", func(fl validator.FieldLevel) bool {
		return isValidIBAN(fl.Field().String())
	})
}
