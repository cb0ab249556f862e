// Package main provides the CLI entrypoint for megasena.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"megasena/internal/config"
	"megasena/internal/draw"
)

const (
	defaultInput       = "input/mega_sena_resultados.csv"
	defaultOutputDir   = "output"
	defaultTop         = 8
	defaultViradaSince = 2008
	defaultExpBase     = 7.0
	defaultMaxBoost    = 4.0
	defaultWindow      = 5
)

// Flag vars carry their defaults so commands that do not register a flag
// still see a valid effective value in loadSettings.
var (
	flagInput     = defaultInput
	flagOutputDir = defaultOutputDir
	flagTop       = defaultTop
	flagStrict    bool

	flagViradaSince = defaultViradaSince
	flagExpBase     = defaultExpBase
	flagMaxBoost    = defaultMaxBoost
	flagWindow      = defaultWindow
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "megasena",
		Short:         "Mega Sena draw frequency analyzer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&flagInput, "input", defaultInput, "path to the draw results CSV")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", defaultOutputDir, "directory for report files")
	rootCmd.PersistentFlags().IntVar(&flagTop, "top", defaultTop, "numbers per recommendation")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "abort on the first malformed row instead of skipping")

	rootCmd.AddCommand(newAllDrawsCmd())
	rootCmd.AddCommand(newMegaViradaCmd())
	rootCmd.AddCommand(newWeightedCmd())
	rootCmd.AddCommand(newWeightedViradaCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// settings holds the effective analysis configuration after layering the
// TOML file under the command-line flags.
type settings struct {
	input       string
	outputDir   string
	top         int
	strict      bool
	viradaSince int
	expBase     float64
	maxBoost    float64
	window      int
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	s := settings{
		input:       flagInput,
		outputDir:   flagOutputDir,
		top:         flagTop,
		strict:      flagStrict,
		viradaSince: flagViradaSince,
		expBase:     flagExpBase,
		maxBoost:    flagMaxBoost,
		window:      flagWindow,
	}
	applyStringConfig(cmd, "input", &s.input, fileCfg.Analysis.Input)
	applyStringConfig(cmd, "output-dir", &s.outputDir, fileCfg.Analysis.OutputDir)
	applyIntConfig(cmd, "top", &s.top, fileCfg.Analysis.Top)
	applyBoolConfig(cmd, "strict", &s.strict, fileCfg.Analysis.Strict)
	applyIntConfig(cmd, "virada-since", &s.viradaSince, fileCfg.Analysis.ViradaSince)
	applyFloatConfig(cmd, "exp-base", &s.expBase, fileCfg.Analysis.ExpBase)
	applyFloatConfig(cmd, "max-boost", &s.maxBoost, fileCfg.Analysis.MaxBoost)
	applyIntConfig(cmd, "window", &s.window, fileCfg.Analysis.Window)

	if err := validateSettings(s); err != nil {
		return settings{}, err
	}
	return s, nil
}

func validateSettings(s settings) error {
	if s.input == "" {
		return fmt.Errorf("--input must not be empty")
	}
	if s.outputDir == "" {
		return fmt.Errorf("--output-dir must not be empty")
	}
	if s.top <= 0 || s.top > draw.MaxNumber {
		return fmt.Errorf("--top must be between 1 and %d", draw.MaxNumber)
	}
	if s.viradaSince <= 0 {
		return fmt.Errorf("--virada-since must be > 0")
	}
	if s.expBase <= 1 {
		return fmt.Errorf("--exp-base must be > 1")
	}
	if s.maxBoost < 1 {
		return fmt.Errorf("--max-boost must be >= 1")
	}
	if s.window <= 0 {
		return fmt.Errorf("--window must be > 0")
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
	return fmt.Sprintf(`# megasena configuration
# Uncomment a value to enable it. CLI flags override config values.

[analysis]
# input = %q          # Path to the draw results CSV
# output-dir = %q     # Directory for report files
# top = %d            # Numbers per recommendation
# strict = false      # Abort on the first malformed row instead of skipping
# virada-since = %d   # First Mega da Virada year to include
# exp-base = %.1f     # Newest/oldest weight ratio for exponential policies
# max-boost = %.1f    # Newest/oldest weight ratio for the linear policy
# window = %d         # Recency window (years or draws, per command)
`,
		defaultInput,
		defaultOutputDir,
		defaultTop,
		defaultViradaSince,
		defaultExpBase,
		defaultMaxBoost,
		defaultWindow,
	)
}
