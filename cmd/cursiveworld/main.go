// Package main provides the CLI entrypoint for cursiveworld.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/benjaminbelloeil/CursiveWorld/internal/config"
	"github.com/benjaminbelloeil/CursiveWorld/internal/letters"
	"github.com/benjaminbelloeil/CursiveWorld/internal/model"
	"github.com/benjaminbelloeil/CursiveWorld/internal/sequence"
	"github.com/benjaminbelloeil/CursiveWorld/internal/stats"
	"github.com/benjaminbelloeil/CursiveWorld/internal/statsui"
	"github.com/benjaminbelloeil/CursiveWorld/internal/store"
	"github.com/benjaminbelloeil/CursiveWorld/internal/tui"
)

const (
	defaultWeakTop     = 8
	defaultWeakFactor  = 2.0
	defaultWeakWindow  = 20
	defaultCurveWindow = 20
)

var (
	practiceLetters    string
	practiceShuffle    bool
	practiceGuides     bool
	practiceFocusWeak  bool
	practiceWeakTop    int
	practiceWeakFactor float64
	practiceWeakWindow int

	statsLetter      string
	statsSince       string
	statsLast        int
	statsCurveWindow int
	statsLetters     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cursiveworld",
		Short:         "TUI cursive handwriting trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLetters, "letters", "", "letters to practice (default: all supported)")
	rootCmd.Flags().BoolVar(&practiceShuffle, "shuffle", false, "shuffle the practice order")
	rootCmd.Flags().BoolVar(&practiceGuides, "show-guides", true, "show the next checkpoint marker")
	rootCmd.Flags().BoolVar(&practiceFocusWeak, "focus-weak", false, "bias practice toward weak letters")
	rootCmd.Flags().IntVar(&practiceWeakTop, "weak-top", defaultWeakTop, "number of weak letters to focus on")
	rootCmd.Flags().Float64Var(&practiceWeakFactor, "weak-factor", defaultWeakFactor, "weight factor for weak letters")
	rootCmd.Flags().IntVar(&practiceWeakWindow, "weak-window", defaultWeakWindow, "number of recent practices to compute weak letters")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLettersCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "letters", &practiceLetters, fileCfg.Practice.Letters)
	applyBoolConfig(cmd, "shuffle", &practiceShuffle, fileCfg.Practice.Shuffle)
	applyBoolConfig(cmd, "show-guides", &practiceGuides, fileCfg.Practice.ShowGuides)
	applyBoolConfig(cmd, "focus-weak", &practiceFocusWeak, fileCfg.Practice.FocusWeak)
	applyIntConfig(cmd, "weak-top", &practiceWeakTop, fileCfg.Practice.WeakTop)
	applyFloatConfig(cmd, "weak-factor", &practiceWeakFactor, fileCfg.Practice.WeakFactor)
	applyIntConfig(cmd, "weak-window", &practiceWeakWindow, fileCfg.Practice.WeakWindow)

	cfg := model.Config{
		Letters:    practiceLetters,
		Shuffle:    practiceShuffle,
		ShowGuides: practiceGuides,
		FocusWeak:  practiceFocusWeak,
		WeakTop:    practiceWeakTop,
		WeakFactor: practiceWeakFactor,
		WeakWindow: practiceWeakWindow,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	pool, err := parseLetterPool(cfg.Letters)
	if err != nil {
		return err
	}

	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	weakSet := map[rune]struct{}{}
	weakNoticePrinted := false
	if cfg.FocusWeak {
		aggs, err := st.GetWeakLetters(context.Background(), cfg.WeakWindow)
		if err != nil {
			logErrf("failed to load weak letters: %v\n", err)
		} else {
			weakSet = stats.SelectWeakLetters(aggs, cfg.WeakTop)
			if len(weakSet) == 0 {
				logErrln("no stats available for weak-letter focus yet; using configured order")
				weakNoticePrinted = true
			}
		}
	}

	seq := sequence.New()
	model := tui.NewModel(cfg, st, seq, pool, weakSet, weakNoticePrinted)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLettersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "letters",
		Short: "List supported letters",
		Args:  cobra.NoArgs,
		RunE:  runLettersCmd,
	}
}

func runLettersCmd(cmd *cobra.Command, _ []string) error {
	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	mastered, err := st.CompletedLetters(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load completed letters: %w", err)
	}

	for _, r := range letters.Supported() {
		marker := " "
		if _, ok := mastered[string(r)]; ok {
			marker = "✓"
		}
		strokes := len(letters.StrokesFor(r))
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%c  %s  %d stroke(s)\n", r, marker, strokes); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsLetter, "letter", "", "letter filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N practices")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().StringVar(&statsLetters, "letters", "", "letters for per-letter curves")
	return cmd
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Letter:      statsLetter,
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
		Letters:     statsLetters,
	}

	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	model := statsui.NewModel(st, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

// parseLetterPool turns the letters setting into a practice pool.
// An empty setting selects every supported letter.
func parseLetterPool(setting string) ([]rune, error) {
	if strings.TrimSpace(setting) == "" {
		return letters.Supported(), nil
	}
	seen := map[rune]struct{}{}
	pool := make([]rune, 0, len(setting))
	for _, r := range setting {
		if r == ',' || r == ' ' {
			continue
		}
		if !letters.IsSupported(r) {
			return nil, fmt.Errorf("unsupported letter %q (see: cursiveworld letters)", r)
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		pool = append(pool, r)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("--letters must contain at least one letter")
	}
	return pool, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# cursiveworld configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# letters = "abc"         # Letters to practice (default: all supported)
# shuffle = false         # Shuffle the practice order
# show-guides = true      # Show the next checkpoint marker
# focus-weak = false      # Bias practice toward weak letters
# weak-top = %d            # Number of weak letters to focus on
# weak-factor = %.1f       # Weight factor for weak letters
# weak-window = %d         # Number of recent practices to compute weak letters
`,
		defaultWeakTop,
		defaultWeakFactor,
		defaultWeakWindow,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if cfg.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	if cfg.WeakWindow < 0 {
		return fmt.Errorf("--weak-window must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
