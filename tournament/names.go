package tournament

import (
	"strings"
	"unicode"
)

// isNumeric mirrors the operator-facing rule "name cannot be a number": a
// name made only of digits is rejected.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func validateMemberName(name string) error {
	if name == "" {
		return invalid("member", "Member name cannot be empty.")
	}
	if isNumeric(name) {
		return invalid("member", "Member name cannot be a number.")
	}
	return nil
}

func validateTeamName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("team", "Team name cannot be empty.")
	}
	if isNumeric(name) {
		return invalid("team", "Team name cannot be a number.")
	}
	return nil
}

// CompareNames orders names so that digit runs compare by value:
// "Team 2" sorts before "Team 10". Names equal by value, like "Team 01" and
// "Team 1", fall back to byte order, so only identical names compare equal.
func CompareNames(a, b string) int {
	if c := compareNatural(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func compareNatural(a, b string) int {
	for a != "" && b != "" {
		ra, rb := rune(a[0]), rune(b[0])
		if isASCIIDigit(ra) && isASCIIDigit(rb) {
			na, restA := splitDigits(a)
			nb, restB := splitDigits(b)
			if c := compareDigitRuns(na, nb); c != 0 {
				return c
			}
			a, b = restA, restB
			continue
		}
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		a, b = a[1:], b[1:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func splitDigits(s string) (string, string) {
	i := 0
	for i < len(s) && isASCIIDigit(rune(s[i])) {
		i++
	}
	return s[:i], s[i:]
}

func compareDigitRuns(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
