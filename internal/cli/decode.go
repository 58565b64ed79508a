package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driveaware/restrictwatch/internal/model"
)

var (
	decodeMask      uint32
	decodeFlags     string
	decodeOptimized bool
	decodeFormat    string
)

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().Uint32Var(&decodeMask, "mask", 0, "Numeric restriction bitmask")
	decodeCmd.Flags().StringVar(&decodeFlags, "flags", "", "Comma-separated flag names (OR-ed into the mask)")
	decodeCmd.Flags().BoolVar(&decodeOptimized, "optimized", true, "Distraction optimization required")
	decodeCmd.Flags().StringVarP(&decodeFormat, "format", "f", "text", "Output format (text|json)")
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a restriction bitmask into blocked functions",
	Long: "One-shot decode: builds a snapshot from --mask and/or --flags and prints\n" +
		"the blocked-function set.\n\n" +
		"Flag names: no_dialpad, no_filtering, limit_string_length, no_keyboard, no_video.",
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	mask := model.Flags(decodeMask)
	if decodeFlags != "" {
		for _, name := range strings.Split(decodeFlags, ",") {
			f, err := model.ParseFlag(name)
			if err != nil {
				return err
			}
			mask |= f
		}
	}

	snap := model.Snapshot{ActiveFlags: mask, RequiresOptimization: decodeOptimized}
	blocked := model.Decode(&snap)

	switch decodeFormat {
	case "json":
		out, err := json.MarshalIndent(map[string]any{
			"mask":                  uint32(mask),
			"requires_optimization": decodeOptimized,
			"blocked":               blocked.Labels(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		if blocked.Empty() {
			fmt.Println("No functions blocked.")
			return nil
		}
		fmt.Printf("Blocked: %s\n", strings.Join(blocked.Labels(), ", "))
	}

	return nil
}
