package validators

import "unicode"

// IsPhoneValid accepts digits plus the usual separators, requiring at
// least ten digits overall.
func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '(' || r == ')' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return digits >= 10
}
