package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kr-g/xvenv/internal/audit"
	"github.com/kr-g/xvenv/internal/config"
	"github.com/kr-g/xvenv/internal/errors"
	"github.com/kr-g/xvenv/internal/logging"
)

// version is set at build time with -ldflags "-X github.com/kr-g/xvenv/cmd.version=..."
var version = "dev"

var (
	verbose    bool
	debug      bool
	jsonOutput bool
	workDir    string
	python     string
	keepTemp   bool
	envFile    string
	configFile string
)

// settings is resolved once per invocation before any handler runs.
var settings *config.Settings

// runLog is created on first use and shared by all events of one invocation.
var runLog *audit.Logger

var rootCmd = &cobra.Command{
	Use:   "xvenv",
	Short: "Python virtual environment workflow runner",
	Long: `xvenv creates a Python virtual environment in .venv below the working
directory and runs tools inside it.

Every command except setup runs through a generated shell script that
activates the environment first. make chains the usual steps:
  setup, pip, tools, test, build, install`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		logInfo("no operation selected, use --help")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "V", false, "Show the output of executed programs")
	pf.BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	pf.BoolVar(&jsonOutput, "json", false, "Output logs and history in JSON format")
	pf.StringVar(&workDir, "cwd", ".", "Working directory holding the sandbox")
	pf.StringVarP(&python, "python", "p", config.DefaultPython, "Python interpreter")
	pf.BoolVarP(&keepTemp, "keep-temp", "k", false, "Keep generated scripts and print their path")
	pf.StringVar(&envFile, "env-file", "", "Dotenv file exported to sandbox commands")
	pf.StringVar(&configFile, "config", "", "Project file (default <cwd>/"+config.ProjectFileName+" when present)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.ExitGeneralError, "unknown opts", err)
	})
}

// loadSettings builds the settings from defaults, the project file and the
// flags that were set explicitly, in that order.
func loadSettings(cmd *cobra.Command, _ []string) error {
	logging.Setup(logging.Options{Debug: debug, JSON: jsonOutput, Writer: cmd.ErrOrStderr()})

	dir, err := filepath.Abs(workDir)
	if err != nil {
		return errors.ConfigError("invalid working directory", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return errors.NotFound("folder", dir)
	}

	s := config.Default()
	s.WorkDir = dir

	path, optional := configFile, false
	if path == "" {
		path, optional = filepath.Join(dir, config.ProjectFileName), true
	}
	pf, err := config.LoadProjectFile(path, optional)
	if err != nil {
		return errors.ConfigError("invalid project file", err)
	}
	s.Apply(pf)

	flags := cmd.Flags()
	if flags.Changed("python") {
		s.Python = python
	}
	if flags.Changed("env-file") {
		s.EnvFile = envFile
	}
	s.Verbose = verbose
	s.Debug = debug
	s.KeepTemp = keepTemp

	if err := s.Validate(); err != nil {
		return errors.ConfigError("invalid configuration", err)
	}

	logging.Debug("settings loaded", "workdir", s.WorkDir, "python", s.Python, "tools", s.Tools.String())
	settings = s
	runLog = nil
	return nil
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
