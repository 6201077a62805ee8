// Package media holds constants shared with the stages that download and
// index subreddit media.
package media

import "slices"

// NullHashes are the placeholder values written when no perceptual hash
// could be computed for an image. Rows carrying one of these must be
// skipped by hash-based deduplication.
var NullHashes = []string{"NOHASH", "0000000000000000", "nan"}

// IsNullHash reports whether h is one of the null-hash placeholders.
func IsNullHash(h string) bool {
	return slices.Contains(NullHashes, h)
}
