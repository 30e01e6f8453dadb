package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIBAN_Accepts(t *testing.T) {
	tests := []struct {
		name string
		iban string
	}{
		{"estonian", "EE382200221020145685"},
		{"swedish", "SE4550000000058398257466"},
		{"finnish", "FI2112345600000785"},
		{"german", "DE89370400440532013000"},
		{"paper format with spaces", "DE89 3704 0044 0532 0130 00"},
		{"tabs and multiple spaces", "SE45  5000\t0000 0583 9825 7466"},
		{"lowercase", "de89370400440532013000"},
		{"mixed case", "Se4550000000058398257466"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, isValidIBAN(tt.iban))
		})
	}
}

func TestIsValidIBAN_Rejects(t *testing.T) {
	tests := []struct {
		name string
		iban string
	}{
		{"empty string", ""},
		{"not an iban at all", "INVALID_IBAN"},
		{"wrong check digits", "DE00370400440532013000"},
		{"unknown country code", "XX89370400440532013000"},
		{"too short", "DE89"},
		{"digits only", "1234567890"},
		{"letters only", "ABCDEFGHIJ"},
		{"too long for country", "DE893704004405320130001234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, isValidIBAN(tt.iban))
		})
	}
}
