package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/termfolio/internal/content"
	"github.com/oakwood-commons/termfolio/internal/ui"
	"github.com/oakwood-commons/termfolio/pkg/logger"
	"github.com/oakwood-commons/termfolio/pkg/settings"
)

const (
	defaultFallbackTermWidth  = 80
	defaultFallbackTermHeight = 24
)

var errWatchNeedsFile = errors.New("--watch needs a content file argument")

var (
	configFile     string
	themeName      string
	noColor        bool
	debug          bool
	logFile        string
	snapshotWidth  int
	snapshotHeight int
	startKeys      []string
	renderSnapshot bool
	watchContent   bool
	noTyping       bool
	configOutput   string
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [content-file]",
	Short: "A personal page you drive from a command prompt",
	Long: `termfolio renders a personal page (about, experience, education, projects,
achievements, contact) in the terminal and lets you move around it by typing
commands at a prompt. Type 'help' in the console for the command list.

The content file is YAML, JSON or TOML (chosen by extension). Without one, a
built-in sample page is shown.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
	RunE:              runConsole,
}

// setupRun builds the run settings and logger and stores both in the command
// context.
func setupRun(cmd *cobra.Command, args []string) error {
	run := settings.NewCliParams()
	run.NoColor = noColor
	run.LogFile = logFile
	run.Interactive = cmd == cmd.Root() && !renderSnapshot
	if debug {
		run.MinLogLevel = -1
	}
	if len(args) > 0 {
		run.ContentPath = args[0]
	}

	sink := logFile
	if sink == "" && !run.Interactive {
		sink = logger.SinkStderr
	}
	base, err := logger.Setup(run.MinLogLevel, sink)
	if err != nil {
		return usageError(err)
	}
	lgr := logger.WithValues(base, logger.RootCommandKey, cmd.Root().Name(), logger.SubCommandKey, cmd.Name())

	ctx := settings.IntoContext(cmd.Context(), run)
	ctx = logger.WithLogger(ctx, lgr)
	cmd.SetContext(ctx)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		lgr.V(1).Info("flag set", "name", f.Name, "value", f.Value.String())
	})
	return nil
}

func runConsole(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	lgr := logger.FromContext(ctx)
	run, ok := settings.FromContext(ctx)
	if !ok {
		run = settings.NewCliParams()
	}

	cfg, theme, err := loadConfigState(resolveConfigPath(configFile), themeName, cmd.Flags().Changed("theme"))
	if err != nil {
		return err
	}
	doc, err := content.LoadOrSample(run.ContentPath)
	if err != nil {
		return usageError(err)
	}
	lgr.V(1).Info("content loaded", "path", run.ContentPath, "sections", len(doc.Sections))

	opts := ui.Options{
		Document: doc,
		Config:   cfg,
		Theme:    theme,
		NoColor:  run.NoColor,
		Debug:    debug,
		Typing:   !noTyping,
		Width:    snapshotWidth,
		Height:   snapshotHeight,
		Logger:   lgr.WithName("ui"),
	}

	if renderSnapshot {
		detW, detH := detectTerminalSize()
		w, h := resolveSnapshotSize(snapshotWidth, snapshotHeight, detW, detH)
		view, err := ui.RenderModelSnapshot(opts, ui.ModelSnapshotConfig{
			Width:     w,
			Height:    h,
			NoColor:   run.NoColor,
			StartKeys: startKeys,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), view)
		return nil
	}

	runCfg := ui.RunConfig{StartKeys: startKeys}
	if watchContent {
		if run.ContentPath == "" {
			return usageError(errWatchNeedsFile)
		}
		runCfg.WatchPath = run.ContentPath
	}
	return ui.RunModel(opts, runCfg, tea.WithContext(ctx))
}

// resolveSnapshotSize prefers explicit flags, then the detected terminal size,
// then 80x24.
func resolveSnapshotSize(flagWidth, flagHeight, detectedWidth, detectedHeight int) (int, int) {
	w, h := flagWidth, flagHeight
	if w <= 0 {
		w = detectedWidth
	}
	if h <= 0 {
		h = detectedHeight
	}
	if w <= 0 {
		w = defaultFallbackTermWidth
	}
	if h <= 0 {
		h = defaultFallbackTermHeight
	}
	return w, h
}

// detectTerminalSize returns the best-effort terminal width/height by probing
// stdout, stderr, and stdin, then falling back to $COLUMNS.
func detectTerminalSize() (int, int) {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, h, err := term.GetSize(int(fd)); err == nil && (w > 0 || h > 0) {
			return w, h
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, 0
		}
	}
	return 0, 0
}

// cliVersionString builds a human-readable version string for CLI output and Cobra's --version flag.
func cliVersionString() string {
	cfg, _ := loadMergedConfig(resolveConfigPath(""))
	name := cfg.App.About.Name
	if name == "" {
		name = settings.CliBinaryName
	}
	version := cfg.App.About.Version
	if version == "" {
		version = "dev"
	}
	out := fmt.Sprintf("%s %s (go %s, %s/%s)", name, version, cfg.App.About.GoVersion, cfg.App.About.BuildOS, cfg.App.About.BuildArch)
	if cfg.App.About.GitCommit != "" {
		out += " commit " + cfg.App.About.GitCommit
	}
	return out
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print termfolio version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return nil
	},
}

// configCmd prints the merged configuration; subcommands inspect parts of it.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the merged termfolio configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigView(cmd)
	},
}

var configThemesCmd = &cobra.Command{
	Use:     "themes",
	Aliases: []string{"theme"},
	Short:   "List available themes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runThemesList(cmd)
	},
}

// runThemesList prints the available themes from merged configuration
func runThemesList(cmd *cobra.Command) error {
	merged, err := loadMergedConfig(resolveConfigPath(configFile))
	if err != nil {
		return usageError(err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Available themes (default: %s):\n", defaultThemeName(merged))
	for _, name := range ui.AvailableThemes(merged.UI.Themes) {
		fmt.Fprintf(out, " - %s\n", name)
	}
	return nil
}

// runConfigView prints the merged configuration honoring --output.
func runConfigView(cmd *cobra.Command) error {
	merged, err := loadMergedConfig(resolveConfigPath(configFile))
	if err != nil {
		return usageError(err)
	}
	sanitized := sanitizeConfig(merged)
	out := cmd.OutOrStdout()

	switch configOutput {
	case "yaml", "":
		data, err := yaml.Marshal(sanitized)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(sanitized, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	default:
		return usageError(fmt.Errorf("invalid output for config: %s (use yaml|json)", configOutput))
	}
}

func init() { //nolint:gochecknoinits
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config-file", "", "path to a YAML config file (themes, timings)")
	pf.BoolVar(&debug, "debug", false, "show the debug bar and log at debug level")
	pf.StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	pf.BoolVar(&noColor, "no-color", false, "disable color output")

	rootCmd.Flags().StringVar(&themeName, "theme", "", "theme name (default from config; see 'termfolio config themes')")
	rootCmd.Flags().BoolVar(&renderSnapshot, "snapshot", false, "render a single console frame and exit; honors --width/--height")
	rootCmd.Flags().StringArrayVar(&startKeys, "press", nil, "Simulate keys on startup. Use <Key> for special keys (e.g. <Enter>, <Esc>, <Tab>, <Up>). Literal text types normally. Example: --press \"projects<Enter>\"")
	rootCmd.Flags().IntVar(&snapshotWidth, "width", 0, "Console width in columns (default: terminal width)")
	rootCmd.Flags().IntVar(&snapshotHeight, "height", 0, "Console height in rows (default: terminal height)")
	rootCmd.Flags().BoolVar(&watchContent, "watch", false, "reload the content file when it changes")
	rootCmd.Flags().BoolVar(&noTyping, "no-typing", false, "show the header without the typing animation")

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(versionCmd)

	configCmd.PersistentFlags().StringVarP(&configOutput, "output", "o", "yaml", "output format: yaml|json")
	configCmd.AddCommand(configThemesCmd)
	rootCmd.AddCommand(configCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the page to this file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
