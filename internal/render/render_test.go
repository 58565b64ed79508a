package render

import (
	"strings"
	"testing"

	"github.com/driveaware/restrictwatch/internal/model"
)

func TestFormatAllClear(t *testing.T) {
	r := New(&strings.Builder{}, 120, "All functions available")
	out := r.Format(model.BlockedSet{})

	if !strings.Contains(out, "OK") {
		t.Errorf("expected all-clear indicator, got %q", out)
	}
	if !strings.Contains(out, "All functions available") {
		t.Errorf("expected all-clear label, got %q", out)
	}
}

func TestFormatListsBlockedLabels(t *testing.T) {
	r := New(&strings.Builder{}, 120, "ok")
	blocked := model.BlockedSet{model.FuncCall: true, model.FuncVideo: true}
	out := r.Format(blocked)

	if !strings.Contains(out, "BLOCK") {
		t.Errorf("expected block indicator, got %q", out)
	}
	if !strings.Contains(out, "Call, Video") {
		t.Errorf("expected sorted labels, got %q", out)
	}
}

func TestRenderWritesToOutput(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, 120, "ok")
	r.Render(model.BlockedSet{model.FuncKeyboard: true})

	if !strings.Contains(buf.String(), "Keyboard") {
		t.Errorf("expected Keyboard in output, got %q", buf.String())
	}
}

func TestDisplayTextTruncatesOnlyWhenBlocked(t *testing.T) {
	r := New(&strings.Builder{}, 20, "ok")
	long := strings.Repeat("x", 40)

	unrestricted := model.BlockedSet{}
	if got := r.DisplayText(unrestricted, long); got != long {
		t.Errorf("text must pass through while long text is not blocked, got %q", got)
	}

	limited := model.BlockedSet{model.FuncLimitStringLength: true}
	got := r.DisplayText(limited, long)
	if len(got) != 20 || !strings.HasSuffix(got, "...") {
		t.Errorf("expected 20-char truncation with ellipsis, got %q", got)
	}

	short := "hello"
	if got := r.DisplayText(limited, short); got != short {
		t.Errorf("short text must be unchanged even when limited, got %q", got)
	}
}
