package validate

// CBN weights applied to the bank code and serial digits when deriving
// the NUBAN check digit.
var nubanWeights = [12]int{3, 7, 3, 3, 7, 3, 3, 7, 3, 3, 7, 3}

// IsNUBAN reports whether account is a valid NUBAN for the given
// three-digit CBN bank code: ten digits whose trailing check digit
// matches the weighted sum over the bank code and the nine-digit
// serial.
func IsNUBAN(bankCode, account string) bool {
	if len(bankCode) != 3 || len(account) != 10 {
		return false
	}
	if !allDigits(bankCode) || !allDigits(account) {
		return false
	}

	sum := 0
	for i, r := range bankCode + account[:9] {
		sum += int(r-'0') * nubanWeights[i]
	}
	check := (10 - sum%10) % 10
	return int(account[9]-'0') == check
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
