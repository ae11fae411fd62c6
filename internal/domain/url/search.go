package url

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeQueryComponent percent-encodes s the way browsers encode a URI component:
// ASCII letters, digits and -_.!~*'() stay as-is, everything else is escaped
// byte by byte from its UTF-8 form. Spaces become %20, not '+'.
func EncodeQueryComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
