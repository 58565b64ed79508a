package scenario

// TextCase asserts truncation behavior for one piece of display text.
type TextCase struct {
	Input     string `yaml:"input"`
	MaxLength int    `yaml:"max_length,omitempty"`
	Expect    string `yaml:"expect"`
}

// Case is one restriction decode assertion.
type Case struct {
	// Mask and Flags describe the restriction state; symbolic names OR
	// into the numeric mask.
	Mask                 uint32   `yaml:"mask,omitempty"`
	Flags                []string `yaml:"flags,omitempty"`
	RequiresOptimization bool     `yaml:"requires_optimization"`

	// ExpectBlocked names the functions that must be blocked, exactly.
	ExpectBlocked []string `yaml:"expect_blocked"`

	// Text optionally asserts display-text truncation under this state.
	Text *TextCase `yaml:"text,omitempty"`
}

// Scenario is a named collection of decode assertions.
type Scenario struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// CaseResult is the outcome of evaluating one case.
type CaseResult struct {
	Index    int    `json:"index"`
	Passed   bool   `json:"passed"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Reason   string `json:"reason,omitempty"`
}

// RunResult is the outcome of running all cases in one scenario file.
type RunResult struct {
	File   string       `json:"file"`
	Name   string       `json:"name"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}
