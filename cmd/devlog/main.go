// devlog - colorized developer console messages gated by NODE_ENV and DEV_MODE.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tralse/devlog/devlog"
	"github.com/tralse/devlog/internal/config"
	"github.com/tralse/devlog/internal/console"
	"github.com/tralse/devlog/internal/validate"
)

const version = "0.2.0"

// app holds state shared by every command after the root pre-run.
type app struct {
	configDir string
	envFiles  []string
	noColor   bool

	root string
	cfg  *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "devlog",
		Short: "Colorized developer console messages",
		Long: `devlog - colorized, headered developer messages.

Output is suppressed when NODE_ENV=production. Debug messages are printed
only when DEV_MODE=debug. Variable names can be changed in .devlog.yaml.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configDir, "config", "c", "", "Directory holding .devlog.yaml (default: nearest parent with one, else current directory)")
	rootCmd.PersistentFlags().StringArrayVarP(&a.envFiles, "env-file", "e", nil, "Extra env file to load (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored status output")

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			console.Print("devlog version %s", version)
		},
	})

	// Init command
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .devlog.yaml",
		Run:   a.runInit,
	}
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config")
	rootCmd.AddCommand(initCmd)

	// Print command
	printCmd := &cobra.Command{
		Use:   "print [color] <message...>",
		Short: "Print a message through the gate",
		Long: `Print a message in a palette color.

The first argument is taken as the color when it names one; otherwise the
color from .devlog.yaml is used and every argument is part of the message.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: a.requireValid,
		Run:     a.runPrint,
	}
	printCmd.Flags().StringP("header", "H", "", "Header to print in brackets (default from config)")
	printCmd.Flags().BoolP("debug", "d", false, "Print in DEBUGMODE")
	printCmd.Flags().StringP("state", "s", "", "Logging state: DEFAULT or DEBUGMODE")
	rootCmd.AddCommand(printCmd)

	// Colors command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "colors",
		Short: "List the palette",
		Run:   a.runColors,
	})

	// Status command
	statusCmd := &cobra.Command{
		Use:   "status",
		Short:   "Show the environment and what the gate would do",
		PreRunE: a.requireValid,
		Run:     a.runStatus,
	}
	statusCmd.Flags().BoolP("json", "j", false, "Output status as JSON")
	rootCmd.AddCommand(statusCmd)

	// Validate command
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `Validate .devlog.yaml for errors and warnings.

Checks for:
- Header format
- Environment variable names
- Default color in the palette
- Env file existence and syntax`,
		Run: a.runValidate,
	}
	validateCmd.Flags().BoolP("quiet", "q", false, "Only show errors, not warnings")
	rootCmd.AddCommand(validateCmd)

	return rootCmd
}

// load resolves the config directory, reads the config and loads env files.
// Status output goes to the command's writers, same as logger output.
func (a *app) load(cmd *cobra.Command, args []string) error {
	console.Stdout = cmd.OutOrStdout()
	console.Stderr = cmd.ErrOrStderr()
	if a.noColor {
		console.SetNoColor(true)
	}

	a.root = a.configDir
	if a.root == "" {
		if root, err := config.FindRoot(""); err == nil {
			a.root = root
		} else if a.root, err = os.Getwd(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.root)
	if err != nil {
		return err
	}
	a.cfg = cfg

	files := append(cfg.EnvFilePaths(a.root), a.envFiles...)
	return devlog.LoadDotenv(files...)
}

// requireValid stops commands that log through the config when it has errors.
func (a *app) requireValid(cmd *cobra.Command, args []string) error {
	if err := validate.QuickValidate(a.cfg, a.root); err != nil {
		return fmt.Errorf("invalid %s: %w", config.Path(a.root), err)
	}
	return nil
}

func (a *app) logger(cmd *cobra.Command) *devlog.Logger {
	opts := append(a.cfg.Options(),
		devlog.WithOutput(cmd.OutOrStdout()),
		devlog.WithDiagnostics(cmd.ErrOrStderr()),
	)
	return devlog.New(opts...)
}

func (a *app) runInit(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")

	path := config.Path(a.root)
	if _, err := os.Stat(path); err == nil && !force {
		console.Fatal("%s already exists. Use --force to overwrite.", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		console.Fatal("Failed to check config: %s", err)
	}

	if err := config.NewDefaultConfig().Save(a.root); err != nil {
		console.Fatal("Failed to create config: %s", err)
	}
	console.Success("Created %s", path)
}

func (a *app) runPrint(cmd *cobra.Command, args []string) {
	header, _ := cmd.Flags().GetString("header")
	debug, _ := cmd.Flags().GetBool("debug")
	stateStr, _ := cmd.Flags().GetString("state")

	c := devlog.Color(a.cfg.Color)
	if named, ok := devlog.LookupColor(args[0]); ok && len(args) > 1 {
		c = named
		args = args[1:]
	}

	state, err := devlog.ParseState(stateStr)
	if err != nil {
		console.Fatal("%s", err)
	}
	if debug {
		state = devlog.DebugMode
	}

	opts := []devlog.CallOption{devlog.WithState(state)}
	if cmd.Flags().Changed("header") {
		opts = append(opts, devlog.Header(header))
	}
	a.logger(cmd).Log(c, strings.Join(args, " "), opts...)
}

func (a *app) runColors(cmd *cobra.Command, args []string) {
	for _, c := range devlog.Colors() {
		marker := " "
		if string(c) == a.cfg.Color {
			marker = "*"
		}
		console.Print("%s %-8s %s", marker, c, devlog.Format(c.Code(), "sample", a.cfg.Header))
	}
}

type statusInfo struct {
	ConfigDir    string             `json:"config_dir"`
	ConfigHash   string             `json:"config_hash"`
	Header       string             `json:"header"`
	ModeVar      string             `json:"mode_var"`
	VerbosityVar string             `json:"verbosity_var"`
	Environment  devlog.Environment `json:"environment"`
	Default      string             `json:"default"`
	DebugMode    string             `json:"debug_mode"`
}

func (a *app) runStatus(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")

	l := a.logger(cmd)
	env := l.Environment()
	info := statusInfo{
		ConfigDir:    a.root,
		ConfigHash:   a.cfg.Hash(),
		Header:       l.Header(),
		ModeVar:      l.ModeVar(),
		VerbosityVar: l.VerbosityVar(),
		Environment:  env,
		Default:      devlog.Decide(env, devlog.DefaultState).String(),
		DebugMode:    devlog.Decide(env, devlog.DebugMode).String(),
	}

	if asJSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		console.Print("%s", data)
		return
	}

	console.Print("Config:      %s", info.ConfigDir)
	console.Print("Config hash: %s", info.ConfigHash)
	console.Print("Header:      %s", info.Header)
	console.Print("%-12s %s", info.ModeVar+":", displayValue(env.Mode))
	console.Print("%-12s %s", info.VerbosityVar+":", displayValue(env.Verbosity))
	console.Print("")
	console.Print("DEFAULT:     %s", info.Default)
	console.Print("DEBUGMODE:   %s", info.DebugMode)

	if env.IsProduction() {
		console.Warning("%s=%s suppresses all output", info.ModeVar, devlog.ProductionMode)
	}
}

func displayValue(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}

func (a *app) runValidate(cmd *cobra.Command, args []string) {
	quiet, _ := cmd.Flags().GetBool("quiet")

	console.Step("Validating %s", config.Path(a.root))
	result := validate.ValidateConfig(a.cfg, a.root)
	if quiet {
		result.Warnings = nil
	}

	console.Print("%s", strings.TrimRight(validate.FormatValidationResult(result), "\n"))
	if !result.Valid {
		console.Fatal("Configuration is invalid")
	}
}
