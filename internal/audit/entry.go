package audit

// Entry is one restriction transition in the hash-chained JSONL log.
// All fields are scalars or slices (no map[string]any) to guarantee
// deterministic json.Marshal field order for reproducible hashing.
type Entry struct {
	Timestamp            string   `json:"ts"`
	RunID                string   `json:"run_id"`
	Mask                 uint32   `json:"mask"`
	RequiresOptimization bool     `json:"requires_optimization"`
	Blocked              []string `json:"blocked"`
	ConfigHash           string   `json:"config_hash"`
	PrevHash             string   `json:"prev_hash"`
}
