package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/driveaware/restrictwatch/internal/audit"
	"github.com/driveaware/restrictwatch/internal/config"
	"github.com/driveaware/restrictwatch/internal/model"
	"github.com/driveaware/restrictwatch/internal/render"
	"github.com/driveaware/restrictwatch/internal/source"
	"github.com/driveaware/restrictwatch/internal/state"
)

var (
	watchConfig   string
	watchState    string
	watchPoll     bool
	watchAuditLog string
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchConfig, "config", "", "Path to config YAML")
	watchCmd.Flags().StringVar(&watchState, "state", "", "Restriction state file (overrides config)")
	watchCmd.Flags().BoolVar(&watchPoll, "poll", false, "Poll the state file instead of using fsnotify")
	watchCmd.Flags().StringVar(&watchAuditLog, "audit-log", "", "Transition log JSONL path (overrides config)")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the restriction state file and render blocked functions",
	Long: "Subscribes to the restriction state file and re-renders the blocked-function\n" +
		"set on every change. Without a state file (or when it cannot be read at\n" +
		"startup) the app runs against an explicit no-restriction snapshot.",
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, cfgHash, err := config.LoadConfigWithHash(watchConfig)
	if err != nil {
		return err
	}
	if watchState != "" {
		cfg.StatePath = watchState
	}
	if watchPoll {
		cfg.Poll = true
	}
	if watchAuditLog != "" {
		cfg.AuditLog = watchAuditLog
	}

	src := openSource(cfg)

	store := state.NewStore()
	renderer := render.New(os.Stdout, cfg.MaxDisplayLength, cfg.AllClearLabel)
	store.Subscribe(renderer.Render)

	if cfg.AuditLog != "" {
		log, err := audit.Open(cfg.AuditLog)
		if err != nil {
			return err
		}
		defer log.Close()

		runID := "r-" + uuid.NewString()
		store.Subscribe(func(blocked model.BlockedSet) {
			snap := store.Snapshot()
			if err := log.Record(audit.Entry{
				RunID:                runID,
				Mask:                 uint32(snap.ActiveFlags),
				RequiresOptimization: snap.RequiresOptimization,
				Blocked:              blocked.Labels(),
				ConfigHash:           cfgHash,
			}); err != nil {
				fmt.Fprintf(os.Stderr, "transition log: %v\n", err)
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		cancel()
	}()

	return src.Run(ctx, store.Apply)
}

// openSource picks the restriction source. Any failure to establish a real
// source falls back to the explicit no-restriction snapshot; the decoder
// never observes a platform failure.
func openSource(cfg *config.Config) source.Source {
	if cfg.StatePath == "" {
		fmt.Fprintln(os.Stderr, "no state file configured, assuming no restrictions")
		return source.Fallback()
	}

	var (
		src source.Source
		err error
	)
	if cfg.Poll {
		src, err = source.NewPollSource(cfg.StatePath, cfg.PollInterval)
	} else {
		src, err = source.NewFileSource(cfg.StatePath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "restriction source unavailable, assuming no restrictions: %v\n", err)
		return source.Fallback()
	}

	fmt.Fprintf(os.Stderr, "watching %s\n", cfg.StatePath)
	return src
}
