package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/driveaware/restrictwatch/internal/model"
)

// stateFile is the on-disk restriction state format. active_flags carries a
// numeric mask exactly as the platform contract defines it; flags carries
// symbolic names for hand-edited files. Both may be present; names OR into
// the mask.
type stateFile struct {
	ActiveFlags          uint32   `json:"active_flags"`
	Flags                []string `json:"flags"`
	RequiresOptimization bool     `json:"requires_optimization"`
}

// ReadStateFile parses a restriction snapshot from a JSON state file.
func ReadStateFile(path string) (model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read state file: %w", err)
	}
	return ParseState(data)
}

// ParseState parses a restriction snapshot from raw JSON. Unknown symbolic
// flag names are an error; undefined numeric bits pass through untouched
// (the decoder ignores them).
func ParseState(data []byte) (model.Snapshot, error) {
	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return model.Snapshot{}, fmt.Errorf("parse state file: %w", err)
	}

	mask := model.Flags(sf.ActiveFlags)
	for _, name := range sf.Flags {
		f, err := model.ParseFlag(name)
		if err != nil {
			return model.Snapshot{}, fmt.Errorf("parse state file: %w", err)
		}
		mask |= f
	}

	return model.Snapshot{
		ActiveFlags:          mask,
		RequiresOptimization: sf.RequiresOptimization,
	}, nil
}
