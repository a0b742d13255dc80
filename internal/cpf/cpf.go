// Package cpf validates 11-digit national identity numbers by their two
// check digits.
package cpf

// IsValid reports whether id is exactly 11 ASCII digits with matching check
// digits. Sequences of a single repeated digit pass the arithmetic but are
// not real identity numbers, so they are rejected up front.
func IsValid(id string) bool {
	if len(id) != 11 {
		return false
	}

	var digits [11]int
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}

	repeated := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	return checkDigit(digits[:], 10) == digits[9] &&
		checkDigit(digits[:], 11) == digits[10]
}

// checkDigit weights the first firstWeight-1 digits by descending weights
// starting at firstWeight and folds the sum modulo 11.
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i := 0; i < firstWeight-1; i++ {
		sum += digits[i] * (firstWeight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
