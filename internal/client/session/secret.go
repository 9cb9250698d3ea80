package session

import "unicode/utf8"

// maxSecretBytes is the input limit of the server's credential hash
// algorithm. Longer secrets must be cut before transmission so client and
// server agree on what was hashed.
const maxSecretBytes = 72

// truncateSecret caps s at maxSecretBytes of UTF-8. The cut always lands on
// a rune boundary: counting bytes rather than characters means a multi-byte
// character straddling the limit is dropped whole, never split.
func truncateSecret(s string) string {
	if len(s) <= maxSecretBytes {
		return s
	}
	cut := maxSecretBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
