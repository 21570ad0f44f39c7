package navpanel

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxInitials = 2

// Initials takes the first character of each whitespace-separated token of
// name and keeps at most two of them. Case is preserved.
func Initials(name string) string {
	var sb strings.Builder
	n := 0
	for _, token := range strings.Fields(name) {
		if n == maxInitials {
			break
		}
		r, _ := utf8.DecodeRuneInString(token)
		sb.WriteRune(r)
		n++
	}
	return sb.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
