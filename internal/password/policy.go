package password

import "unicode"

// MinLength is the hard floor below which a password is rejected outright,
// regardless of how many character classes it contains.
const MinLength = 6

// lengthBoost grants one extra class point to long passwords.
const lengthBoost = 10

// Score rates a password from 0 to 4: one point per character class present
// among lowercase, uppercase, digit and symbol, plus one point for length
// >= 10, capped at 4.
func Score(pw string) int {
	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}
	if len(pw) >= lengthBoost && score < 4 {
		score++
	}
	return score
}

// IsAcceptable is the sole strength gate on account creation. Login never
// re-validates strength.
func IsAcceptable(pw string) bool {
	if len(pw) < MinLength {
		return false
	}
	return Score(pw) >= 3
}
