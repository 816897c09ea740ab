package outcome

import (
	"github.com/mr-tron/base58"
)

// shortDigestLen is how many leading characters of a confirmation
// digest the feedback line shows.
const shortDigestLen = 15

// ValidDigest reports whether s decodes as a base58 transaction
// digest of the expected 32-byte width.
func ValidDigest(s string) bool {
	raw, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(raw) == 32
}

// FormatDigest renders a confirmation digest for the success feedback
// line, truncated for display. Unparseable digests are shown whole
// rather than hidden.
func FormatDigest(digest string) string {
	if ValidDigest(digest) && len(digest) > shortDigestLen {
		return "DIGEST::" + digest[:shortDigestLen] + "..."
	}
	return "DIGEST::" + digest
}
