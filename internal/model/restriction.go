package model

import (
	"fmt"
	"sort"
	"strings"
)

// Flags is the driver distraction restriction bitmask delivered by the host
// platform. Each defined flag is an independent bit; arbitrary combinations
// are valid.
type Flags uint32

// Flag values are fixed by the platform contract and must not be renumbered.
const (
	NoDialpad         Flags = 1
	NoFiltering       Flags = 2
	LimitStringLength Flags = 4
	NoKeyboard        Flags = 8
	NoVideo           Flags = 16
)

// DefinedFlags lists every flag the decoder understands, in contract order.
var DefinedFlags = []Flags{NoDialpad, NoFiltering, LimitStringLength, NoKeyboard, NoVideo}

// flagNames maps symbolic names (as used in state files and scenario YAML)
// to flag values.
var flagNames = map[string]Flags{
	"no_dialpad":          NoDialpad,
	"no_filtering":        NoFiltering,
	"limit_string_length": LimitStringLength,
	"no_keyboard":         NoKeyboard,
	"no_video":            NoVideo,
}

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// Name returns the symbolic name of a single defined flag.
func (f Flags) Name() string {
	for name, v := range flagNames {
		if v == f {
			return name
		}
	}
	return fmt.Sprintf("unknown(%d)", uint32(f))
}

// ParseFlag maps a symbolic name to its flag value. Matching is
// case-insensitive. Unknown names are an error, not a zero value, so
// hand-edited state files fail loudly.
func ParseFlag(name string) (Flags, error) {
	f, ok := flagNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown restriction flag %q", name)
	}
	return f, nil
}

// Snapshot is one restriction state delivered by the platform. Immutable once
// received; a new state arrives as a whole new Snapshot.
type Snapshot struct {
	ActiveFlags          Flags `json:"active_flags"`
	RequiresOptimization bool  `json:"requires_optimization"`
}

// NoRestrictions is the explicit fallback snapshot used when no platform
// restriction source is available.
func NoRestrictions() Snapshot {
	return Snapshot{}
}

// AppFunction is an application capability that can be suppressed while the
// corresponding restriction bit is set.
type AppFunction int

const (
	FuncCall AppFunction = iota
	FuncMessage
	FuncVideo
	FuncKeyboard
	FuncLimitStringLength
)

// functionLabels holds the display label for each function.
var functionLabels = map[AppFunction]string{
	FuncCall:              "Call",
	FuncMessage:           "Messaging",
	FuncVideo:             "Video",
	FuncKeyboard:          "Keyboard",
	FuncLimitStringLength: "Long text",
}

// Label returns the display label shown to the driver.
func (f AppFunction) Label() string {
	if l, ok := functionLabels[f]; ok {
		return l
	}
	return fmt.Sprintf("unknown(%d)", int(f))
}

// functionNames maps symbolic names (as used in scenario YAML) to functions.
var functionNames = map[string]AppFunction{
	"call":                FuncCall,
	"messaging":           FuncMessage,
	"video":               FuncVideo,
	"keyboard":            FuncKeyboard,
	"limit_string_length": FuncLimitStringLength,
}

// ParseFunction maps a symbolic name to its AppFunction. Matching is
// case-insensitive.
func ParseFunction(name string) (AppFunction, error) {
	fn, ok := functionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown app function %q", name)
	}
	return fn, nil
}

// flagFunctions is the fixed flag-to-function mapping. NoFiltering blocking
// Messaging and NoVideo blocking Video are app-level choices carried over
// as-is; do not read stricter semantics into the flag names.
var flagFunctions = map[Flags]AppFunction{
	NoDialpad:         FuncCall,
	NoFiltering:       FuncMessage,
	NoVideo:           FuncVideo,
	NoKeyboard:        FuncKeyboard,
	LimitStringLength: FuncLimitStringLength,
}

// BlockedSet is the set of currently suppressed functions. It is always
// recomputed in full from a Snapshot and replaced wholesale, never mutated
// in place.
type BlockedSet map[AppFunction]bool

// Decode converts a restriction snapshot into the set of blocked functions.
// A nil snapshot (no restriction data) or one that does not require
// optimization blocks nothing. Undefined high bits in the mask are ignored.
// Pure: no side effects, deterministic for a given input.
func Decode(snap *Snapshot) BlockedSet {
	blocked := make(BlockedSet)
	if snap == nil || !snap.RequiresOptimization {
		return blocked
	}
	for flag, fn := range flagFunctions {
		if snap.ActiveFlags.Has(flag) {
			blocked[fn] = true
		}
	}
	return blocked
}

// Has reports whether fn is blocked.
func (b BlockedSet) Has(fn AppFunction) bool {
	return b[fn]
}

// Empty reports whether no functions are blocked.
func (b BlockedSet) Empty() bool {
	return len(b) == 0
}

// Labels returns the display labels of all blocked functions, sorted for
// stable output.
func (b BlockedSet) Labels() []string {
	labels := make([]string, 0, len(b))
	for fn := range b {
		labels = append(labels, fn.Label())
	}
	sort.Strings(labels)
	return labels
}

// Equal reports whether two sets block exactly the same functions.
func (b BlockedSet) Equal(other BlockedSet) bool {
	if len(b) != len(other) {
		return false
	}
	for fn := range b {
		if !other[fn] {
			return false
		}
	}
	return true
}
