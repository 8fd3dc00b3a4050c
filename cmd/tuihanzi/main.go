// Package main provides the CLI entrypoint for tuihanzi.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/tuihanzi/internal/audio"
	"github.com/verte-zerg/tuihanzi/internal/config"
	"github.com/verte-zerg/tuihanzi/internal/console"
	"github.com/verte-zerg/tuihanzi/internal/dataset"
	"github.com/verte-zerg/tuihanzi/internal/game"
	"github.com/verte-zerg/tuihanzi/internal/logger"
	"github.com/verte-zerg/tuihanzi/internal/model"
	"github.com/verte-zerg/tuihanzi/internal/pool"
	"github.com/verte-zerg/tuihanzi/internal/recap"
	"github.com/verte-zerg/tuihanzi/internal/tui"
)

const (
	defaultRounds       = 10
	defaultRoundSeconds = 20
	defaultCorrectDelay = 1500 * time.Millisecond
	defaultWrongDelay   = 2 * time.Second
	defaultTimeoutDelay = 2 * time.Second
	defaultVolume       = 0.6
)

var (
	playRounds       int
	playRoundSeconds int
	playCorrectDelay time.Duration
	playWrongDelay   time.Duration
	playTimeoutDelay time.Duration
	playDataset      string
	playSeed         int64
	playMute         bool
	playVolume       float64
	playPlain        bool
	playLogFile      string
	playDebug        bool

	charsDataset string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuihanzi",
		Short:         "Timed hanzi pinyin quiz",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().IntVar(&playRounds, "rounds", defaultRounds, "rounds per game")
	rootCmd.Flags().IntVar(&playRoundSeconds, "round-seconds", defaultRoundSeconds, "seconds to answer each character")
	rootCmd.Flags().DurationVar(&playCorrectDelay, "correct-delay", defaultCorrectDelay, "pause after a correct answer")
	rootCmd.Flags().DurationVar(&playWrongDelay, "wrong-delay", defaultWrongDelay, "pause after a wrong answer")
	rootCmd.Flags().DurationVar(&playTimeoutDelay, "timeout-delay", defaultTimeoutDelay, "pause after a timeout")
	rootCmd.Flags().StringVar(&playDataset, "dataset", "", "TOML file with [[char]] entries (default: built-in table)")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 = time based)")
	rootCmd.Flags().BoolVar(&playMute, "mute", false, "disable audio cues")
	rootCmd.Flags().Float64Var(&playVolume, "volume", defaultVolume, "audio cue volume (0-1)")
	rootCmd.Flags().BoolVar(&playPlain, "plain", false, "line mode instead of the full-screen UI")
	rootCmd.Flags().StringVar(&playLogFile, "log-file", "", "log file (default: XDG state dir; stderr in plain mode)")
	rootCmd.Flags().BoolVar(&playDebug, "debug", false, "verbose logging")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCharsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFileConfig(cmd, fileCfg); err != nil {
		return err
	}

	cfg := model.Config{
		Rounds:       playRounds,
		RoundSeconds: playRoundSeconds,
		CorrectDelay: playCorrectDelay,
		WrongDelay:   playWrongDelay,
		TimeoutDelay: playTimeoutDelay,
		DatasetPath:  playDataset,
		Seed:         playSeed,
		Mute:         playMute,
		Volume:       playVolume,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	plain := playPlain || !isInteractive()
	logPath := playLogFile
	if logPath == "" && !plain {
		logPath = config.DefaultLogPath()
	}
	log, err := logger.New(logPath, playDebug)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	entries, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return datasetLoadError(cfg.DatasetPath, err)
	}
	if len(entries) < cfg.Rounds {
		log.Warn("dataset smaller than round count; game will end early",
			zap.Int("entries", len(entries)), zap.Int("rounds", cfg.Rounds))
	}

	player := openPlayer(cfg, log)
	if sp, ok := player.(*audio.Speaker); ok {
		defer sp.Close()
	}

	settings := game.SettingsFromConfig(cfg)
	picker := pool.New(entries, cfg.Seed)

	if plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		runner := console.New(cmd.OutOrStdout(), settings, picker, player, log)
		if err := runner.Run(ctx, cmd.InOrStdin()); err != nil && ctx.Err() == nil {
			return fmt.Errorf("failed to run quiz: %w", err)
		}
		return nil
	}

	m := tui.NewModel(settings, picker, player, log)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func openPlayer(cfg model.Config, log *zap.Logger) audio.Player {
	if cfg.Mute || cfg.Volume == 0 {
		return audio.Silent{}
	}
	sp, err := audio.Open(cfg.Volume)
	if err != nil {
		// Non-fatal, the quiz runs without sound.
		log.Warn("audio unavailable", zap.Error(err))
		return audio.Silent{}
	}
	return sp
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
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

func newCharsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chars",
		Short: "List the characters in the active dataset",
		Args:  cobra.NoArgs,
		RunE:  runCharsCmd,
	}
	cmd.Flags().StringVar(&charsDataset, "dataset", "", "TOML file with [[char]] entries (default: built-in table)")
	return cmd
}

func runCharsCmd(cmd *cobra.Command, _ []string) error {
	path := charsDataset
	if !cmd.Flags().Changed("dataset") {
		fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if fileCfg.Game.Dataset != nil {
			path = *fileCfg.Game.Dataset
		}
	}
	entries, err := dataset.Load(path)
	if err != nil {
		return datasetLoadError(path, err)
	}
	if err := recap.RenderEntries(cmd.OutOrStdout(), entries); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyFileConfig(cmd *cobra.Command, fileCfg config.FileConfig) error {
	g := fileCfg.Game
	applyIntConfig(cmd, "rounds", &playRounds, g.Rounds)
	applyIntConfig(cmd, "round-seconds", &playRoundSeconds, g.RoundSeconds)
	applyStringConfig(cmd, "dataset", &playDataset, g.Dataset)
	applyInt64Config(cmd, "seed", &playSeed, g.Seed)
	applyBoolConfig(cmd, "mute", &playMute, fileCfg.Audio.Mute)
	applyFloatConfig(cmd, "volume", &playVolume, fileCfg.Audio.Volume)
	applyStringConfig(cmd, "log-file", &playLogFile, fileCfg.Log.File)
	applyBoolConfig(cmd, "debug", &playDebug, fileCfg.Log.Debug)

	delays := []struct {
		name   string
		target *time.Duration
		value  *string
	}{
		{"correct-delay", &playCorrectDelay, g.CorrectDelay},
		{"wrong-delay", &playWrongDelay, g.WrongDelay},
		{"timeout-delay", &playTimeoutDelay, g.TimeoutDelay},
	}
	for _, d := range delays {
		parsed, err := config.ParseDuration(d.name, d.value)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyDurationConfig(cmd, d.name, d.target, parsed)
	}
	return nil
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

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
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

func applyDurationConfig(cmd *cobra.Command, name string, target, value *time.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuihanzi configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# rounds = %d               # Rounds per game
# round-seconds = %d        # Seconds to answer each character
# correct-delay = %q      # Pause after a correct answer
# wrong-delay = %q          # Pause after a wrong answer
# timeout-delay = %q        # Pause after a timeout
# dataset = ""              # TOML file with [[char]] glyph/reading/meaning entries
# seed = 0                  # Random seed (0 = time based)

[audio]
# mute = false              # Disable audio cues
# volume = %.1f             # Cue volume (0-1)

[log]
# file = ""                 # Log file (default: XDG state dir)
# debug = false             # Verbose logging
`,
		defaultRounds,
		defaultRoundSeconds,
		defaultCorrectDelay.String(),
		defaultWrongDelay.String(),
		defaultTimeoutDelay.String(),
		defaultVolume,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Rounds <= 0 {
		return fmt.Errorf("--rounds must be > 0")
	}
	if cfg.RoundSeconds <= 0 {
		return fmt.Errorf("--round-seconds must be > 0")
	}
	if cfg.CorrectDelay < 0 {
		return fmt.Errorf("--correct-delay must be >= 0")
	}
	if cfg.WrongDelay < 0 {
		return fmt.Errorf("--wrong-delay must be >= 0")
	}
	if cfg.TimeoutDelay < 0 {
		return fmt.Errorf("--timeout-delay must be >= 0")
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1")
	}
	return nil
}

func datasetLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load dataset: %v", err),
		fmt.Sprintf("dataset path: %s", path),
		"Expected TOML entries like:",
		"  [[char]]",
		`  glyph = "山"`,
		`  reading = "shan"`,
		`  meaning = "山"`,
		"Omit --dataset to use the built-in table.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
