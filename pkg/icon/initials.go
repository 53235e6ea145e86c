package icon

import "strings"

// Initials extracts the one-or-two character label drawn on a generated
// icon. A single word contributes its first two characters, multiple
// words contribute the first character of the first two words, and an
// empty name yields "?".
func Initials(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return "?"
	case 1:
		r := []rune(words[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	default:
		first := []rune(words[0])
		second := []rune(words[1])
		return strings.ToUpper(string(first[:1]) + string(second[:1]))
	}
}
