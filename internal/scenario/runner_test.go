package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPassingCases(t *testing.T) {
	s := &Scenario{
		Name: "basic decode",
		Cases: []Case{
			{
				Mask:                 1,
				RequiresOptimization: true,
				ExpectBlocked:        []string{"call"},
			},
			{
				Flags:                []string{"no_video", "no_keyboard"},
				RequiresOptimization: true,
				ExpectBlocked:        []string{"video", "keyboard"},
			},
			{
				Mask:          31,
				ExpectBlocked: nil, // optimization off blocks nothing
			},
		},
	}

	r, err := Run(s)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Failed != 0 {
		t.Fatalf("expected all cases to pass, got %+v", r.Cases)
	}
	if r.Passed != 3 {
		t.Errorf("expected 3 passed, got %d", r.Passed)
	}
}

func TestRunDetectsWrongExpectation(t *testing.T) {
	s := &Scenario{
		Name: "wrong expectation",
		Cases: []Case{
			{
				Mask:                 16,
				RequiresOptimization: true,
				ExpectBlocked:        []string{"call"}, // actually video
			},
		},
	}

	r, err := Run(s)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Failed != 1 {
		t.Fatalf("expected one failure, got %+v", r)
	}
	c := r.Cases[0]
	if c.Expected != "Call" || c.Actual != "Video" {
		t.Errorf("unexpected result %+v", c)
	}
}

func TestRunTextAssertion(t *testing.T) {
	long := strings.Repeat("X", 51)
	s := &Scenario{
		Name: "truncation",
		Cases: []Case{
			{
				Mask:                 4,
				RequiresOptimization: true,
				ExpectBlocked:        []string{"limit_string_length"},
				Text: &TextCase{
					Input:     long,
					MaxLength: 50,
					Expect:    strings.Repeat("X", 47) + "...",
				},
			},
			{
				// Long text not blocked: input passes through.
				Mask:                 1,
				RequiresOptimization: true,
				ExpectBlocked:        []string{"call"},
				Text: &TextCase{
					Input:     long,
					MaxLength: 50,
					Expect:    long,
				},
			},
		},
	}

	r, err := Run(s)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Failed != 0 {
		t.Fatalf("expected all cases to pass, got %+v", r.Cases)
	}
}

func TestRunTextMismatchFails(t *testing.T) {
	s := &Scenario{
		Cases: []Case{
			{
				Mask:                 4,
				RequiresOptimization: true,
				ExpectBlocked:        []string{"limit_string_length"},
				Text: &TextCase{
					Input:     strings.Repeat("X", 200),
					MaxLength: 50,
					Expect:    "wrong",
				},
			},
		},
	}

	r, err := Run(s)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Failed != 1 {
		t.Fatalf("expected text mismatch failure, got %+v", r)
	}
	if r.Cases[0].Reason != "display text mismatch" {
		t.Errorf("unexpected reason %q", r.Cases[0].Reason)
	}
}

func TestRunRejectsUnknownNames(t *testing.T) {
	if _, err := Run(&Scenario{Cases: []Case{{Flags: []string{"no_radio"}}}}); err == nil {
		t.Error("expected error for unknown flag name")
	}
	if _, err := Run(&Scenario{Cases: []Case{{ExpectBlocked: []string{"radio"}}}}); err == nil {
		t.Error("expected error for unknown function name")
	}
}

func TestLoadAndRun(t *testing.T) {
	content := `name: file scenario
cases:
  - flags: [no_dialpad, no_video, limit_string_length]
    requires_optimization: true
    expect_blocked: [call, video, limit_string_length]
  - mask: 21
    requires_optimization: false
    expect_blocked: []
`
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadAndRun(path)
	if err != nil {
		t.Fatalf("load and run: %v", err)
	}
	if r.Failed != 0 {
		t.Fatalf("expected pass, got %+v", r.Cases)
	}
	if r.File != path || r.Name != "file scenario" {
		t.Errorf("unexpected metadata %+v", r)
	}
}

func TestLoadAndRunBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("cases: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAndRun(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestFormatText(t *testing.T) {
	pass := &RunResult{Name: "ok", Total: 2, Passed: 2}
	fail := &RunResult{
		Name: "bad", Total: 1, Failed: 1,
		Cases: []CaseResult{{Index: 1, Expected: "Call", Actual: "(none)", Reason: "mask 0 decoded to the wrong set"}},
	}

	out := FormatText([]*RunResult{pass, fail})
	if !strings.Contains(out, "PASS  ok (2/2)") {
		t.Errorf("missing pass line: %q", out)
	}
	if !strings.Contains(out, "FAIL  bad (0/1)") {
		t.Errorf("missing fail line: %q", out)
	}
	if !strings.Contains(out, "2 of 3 cases passed. 1 of 2 scenarios failed.") {
		t.Errorf("missing summary: %q", out)
	}
}
