// Package normalize converts the raw field encodings found in the legacy
// registry sources (digit-string dates in two orders, concatenated schedule
// strings, unpadded numeric codes, prefix-laden geographic descriptions) into
// the canonical display forms the front end expects.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeCalendarDate accepts the three raw birth-date encodings seen in the
// sources, tried in order:
//
//  1. an already separated YYYY-M-D / YYYY-MM-DD with "-", "/", doubled
//     dashes or doubled spaces as separators;
//  2. exactly 8 ASCII digits as YYYYMMDD;
//  3. fallback: the first 8 digits found anywhere in the string, as YYYYMMDD.
//
// The result is always zero-padded YYYY-MM-DD. ok is false when no form
// parses or month/day fall outside 1..12 / 1..31.
func NormalizeCalendarDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if iso, ok := parseSeparatedDate(s); ok {
		return iso, true
	}

	if len(s) == 8 && allDigits(s) {
		if iso, ok := assembleISO(s[0:4], s[4:6], s[6:8]); ok {
			return iso, true
		}
		return "", false
	}

	if digits := firstDigits(s, 8); len(digits) == 8 {
		return assembleISO(digits[0:4], digits[4:6], digits[6:8])
	}

	return "", false
}

func parseSeparatedDate(s string) (string, bool) {
	t := strings.ReplaceAll(s, "/", "-")
	t = strings.ReplaceAll(t, "  ", "-")
	t = strings.ReplaceAll(t, "--", "-")

	parts := strings.Split(t, "-")
	if len(parts) != 3 {
		return "", false
	}
	year := strings.TrimSpace(parts[0])
	if len(year) != 4 || !allDigits(year) {
		return "", false
	}
	return assembleISO(year, strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]))
}

func assembleISO(year, month, day string) (string, bool) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf("%s-%02d-%02d", year, m, d), true
}

// DecodeLegacyDate re-encodes the roll-style YYYYMMDD prefix of raw as
// YYYY-MM-DD. No range validation: the historical data is already
// inconsistent and is passed through as stored.
func DecodeLegacyDate(raw string) (string, bool) {
	if len(raw) < 8 {
		return "", false
	}
	return raw[0:4] + "-" + raw[4:6] + "-" + raw[6:8], true
}

// DecodeEuropeanDate re-encodes the training-date DDMMYYYY prefix of raw as
// DD-MM-YYYY.
func DecodeEuropeanDate(raw string) (string, bool) {
	if len(raw) < 8 {
		return "", false
	}
	return raw[0:2] + "-" + raw[2:4] + "-" + raw[4:8], true
}

// FormatSchedule renders a concatenated training-schedule digit string as
// "HH:MM-HH:MM". Two widths occur in the source: a 12-character legacy form
// with 4-digit minute fields and the standard 8-character HHMMHHMM form.
//
// The 12-character slicing reproduces the legacy system's literal behavior,
// wide minute fields included ("080000001200" -> "08:0000-00:1200"). Known to
// look wrong; kept until the upstream data is confirmed clean.
func FormatSchedule(raw string) (string, bool) {
	t := strings.TrimSpace(raw)
	if len(t) >= 12 {
		return t[0:2] + ":" + t[2:6] + "-" + t[6:8] + ":" + t[8:12], true
	}
	if len(t) >= 8 {
		return t[0:2] + ":" + t[2:4] + "-" + t[4:6] + ":" + t[6:8], true
	}
	return "", false
}

// PadFixedWidth zero-pads a non-negative integer to width digits. Geographic
// codes use width 2, voting-center codes width 9.
func PadFixedWidth(n int64, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// geoPrefixes is scanned linearly and the first match wins. The order is part
// of the behavior: "MUN" sits before "MUNICIPIO", so a spelled-out
// "MUNICIPIO ..." loses only its first three letters. The stored descriptions
// only ever use the abbreviated forms, so this has not mattered in practice.
var geoPrefixes = []string{
	"EDO.", "EDO", "ESTADO",
	"MP.", "MP", "MUN.", "MUN", "MUNICIPIO",
	"PQ.", "PQ", "PAR.", "PAR", "PARROQUIA",
}

// CleanGeoDescription strips the administrative prefix from a geographic
// description ("ESTADO MIRANDA" -> "MIRANDA") and trims any leading dash,
// em-dash or colon left behind.
func CleanGeoDescription(s string) string {
	t := strings.TrimSpace(s)
	upper := strings.ToUpper(t)

	for _, p := range geoPrefixes {
		if strings.HasPrefix(upper, p) {
			t = strings.TrimSpace(t[len(p):])
			break
		}
	}

	t = strings.TrimLeft(t, "-—:")
	return strings.TrimSpace(t)
}

// FormatGeoLocation renders a geographic code/description pair as
// "13 - MIRANDA". A missing description becomes the literal "NO DEFINIDO".
func FormatGeoLocation(code int64, desc *string) string {
	d := "NO DEFINIDO"
	if desc != nil {
		d = CleanGeoDescription(*desc)
	}
	return fmt.Sprintf("%02d - %s", code, d)
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

func firstDigits(s string, n int) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
			if b.Len() == n {
				break
			}
		}
	}
	return b.String()
}
