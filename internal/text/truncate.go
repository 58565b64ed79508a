package text

// DefaultMaxDisplayLength is the display length the UI applies when the
// platform blocks long text. A configuration constant, not derived from
// restriction data.
const DefaultMaxDisplayLength = 120

// Ellipsis marks truncated display text.
const Ellipsis = "..."

// Truncate bounds s to max characters. Text at or under the limit is
// returned unchanged; longer text is cut to max-3 characters plus the
// ellipsis marker, so the result is exactly max characters long.
// Characters are runes, so multi-byte text is never split mid-rune.
// Callers must pass max >= 4 (marker plus at least one content character).
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-len(Ellipsis)]) + Ellipsis
}
