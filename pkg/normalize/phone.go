package normalize

import "strings"

// Phone reduces free-form phone input to its canonical stored form: digits
// plus uppercase letters, with all punctuation and whitespace removed.
// Letters are kept to support vanity numbers ("555-stanley" becomes
// "555STANLEY"); input made up entirely of separators canonicalizes to "".
// An eleven-character result starting with the NANP country code "1" is
// stored as its ten-character national number.
func Phone(s string) string {
	s = strings.ToUpper(nonAlphanumericRegex.ReplaceAllString(s, ""))
	if len(s) == 11 && s[0] == '1' {
		s = s[1:]
	}
	return s
}

// PhonePtr is Phone with nil passthrough for nullable columns.
func PhonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Phone(*s)
	return &out
}

// PhoneDigits strips vanity letters as well, keeping only decimal digits.
func PhoneDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
