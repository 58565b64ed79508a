package text

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateIdentityUnderLimit(t *testing.T) {
	cases := []string{"", "a", "hello", strings.Repeat("X", 119)}
	for _, s := range cases {
		if got := Truncate(s, DefaultMaxDisplayLength); got != s {
			t.Errorf("Truncate(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestTruncateAtExactLimit(t *testing.T) {
	s := strings.Repeat("X", 50)
	if got := Truncate(s, 50); got != s {
		t.Errorf("text exactly at limit must be unchanged, got %q", got)
	}
}

func TestTruncateOneOverLimit(t *testing.T) {
	s := strings.Repeat("X", 51)
	got := Truncate(s, 50)

	if len(got) != 50 {
		t.Errorf("expected length 50, got %d", len(got))
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if got != strings.Repeat("X", 47)+Ellipsis {
		t.Errorf("unexpected result %q", got)
	}
}

func TestTruncateLongText(t *testing.T) {
	s := strings.Repeat("ab", 200)
	got := Truncate(s, DefaultMaxDisplayLength)

	if utf8.RuneCountInString(got) != DefaultMaxDisplayLength {
		t.Errorf("expected exactly %d characters, got %d", DefaultMaxDisplayLength, utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if !strings.HasPrefix(s, got[:len(got)-len(Ellipsis)]) {
		t.Error("truncated content must be a prefix of the original")
	}
}

func TestTruncateCountsRunesNotBytes(t *testing.T) {
	// 10 three-byte runes: 30 bytes but only 10 characters.
	s := strings.Repeat("語", 10)
	if got := Truncate(s, 10); got != s {
		t.Errorf("10 runes within a 10-char limit must be unchanged, got %q", got)
	}

	got := Truncate(strings.Repeat("語", 11), 10)
	if utf8.RuneCountInString(got) != 10 {
		t.Errorf("expected 10 characters, got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Error("truncation must never split a rune")
	}
}

func TestTruncateMinimumUsableLimit(t *testing.T) {
	got := Truncate("abcdefgh", 4)
	if got != "a..." {
		t.Errorf("expected %q, got %q", "a...", got)
	}
}
