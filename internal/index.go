package internal

// MaxIndexDigits bounds list index tokens so parsing cannot overflow an int32.
const MaxIndexDigits = 9

// ParseIndex parses a list index token. Only canonical non-negative decimal
// integers qualify: no sign, no leading zeros, no whitespace.
func ParseIndex(s string) (int, bool) {
	if len(s) == 0 || len(s) > MaxIndexDigits {
		return 0, false
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, false
	}

	var result int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		result = result*10 + int(c-'0')
	}
	return result, true
}

// ParseAndValidateIndex parses s and checks it against a list length.
func ParseAndValidateIndex(s string, length int) (int, bool) {
	index, ok := ParseIndex(s)
	if !ok || index >= length {
		return 0, false
	}
	return index, true
}
