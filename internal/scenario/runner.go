package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/driveaware/restrictwatch/internal/model"
	"github.com/driveaware/restrictwatch/internal/text"
)

// Run evaluates all cases in a scenario. Each case decodes a fresh snapshot
// (cases are independent).
func Run(s *Scenario) (*RunResult, error) {
	result := &RunResult{
		Name:  s.Name,
		Total: len(s.Cases),
	}

	for i, c := range s.Cases {
		mask := model.Flags(c.Mask)
		for _, name := range c.Flags {
			f, err := model.ParseFlag(name)
			if err != nil {
				return nil, fmt.Errorf("case %d: %w", i+1, err)
			}
			mask |= f
		}

		want := make(model.BlockedSet)
		for _, name := range c.ExpectBlocked {
			fn, err := model.ParseFunction(name)
			if err != nil {
				return nil, fmt.Errorf("case %d: %w", i+1, err)
			}
			want[fn] = true
		}

		snap := model.Snapshot{ActiveFlags: mask, RequiresOptimization: c.RequiresOptimization}
		got := model.Decode(&snap)

		cr := CaseResult{
			Index:    i + 1,
			Expected: formatSet(want),
			Actual:   formatSet(got),
		}
		cr.Passed = got.Equal(want)
		if !cr.Passed {
			cr.Reason = fmt.Sprintf("mask %d decoded to the wrong set", uint32(mask))
		}

		// Text assertion piggybacks on the decoded state: truncation only
		// applies while long text is blocked.
		if cr.Passed && c.Text != nil {
			max := c.Text.MaxLength
			if max == 0 {
				max = text.DefaultMaxDisplayLength
			}
			display := c.Text.Input
			if got.Has(model.FuncLimitStringLength) {
				display = text.Truncate(display, max)
			}
			if display != c.Text.Expect {
				cr.Passed = false
				cr.Expected = fmt.Sprintf("%q", c.Text.Expect)
				cr.Actual = fmt.Sprintf("%q", display)
				cr.Reason = "display text mismatch"
			}
		}

		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, cr)
	}

	return result, nil
}

// LoadAndRun loads a scenario YAML file and runs it.
func LoadAndRun(path string) (*RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	result, err := Run(&s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result.File = path

	return result, nil
}

func formatSet(b model.BlockedSet) string {
	if b.Empty() {
		return "(none)"
	}
	return strings.Join(b.Labels(), ", ")
}
