package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fswrap/internal/config"
	"github.com/vvka-141/fswrap/internal/logging"
	"github.com/vvka-141/fswrap/pkg/dirinfo"
	"github.com/vvka-141/fswrap/pkg/fileinfo"
	"github.com/vvka-141/fswrap/pkg/fileops"
	"github.com/vvka-141/fswrap/pkg/fsio"
)

var rootCmd = &cobra.Command{
	Use:   "fswrap",
	Short: "File and directory operations through injectable wrappers",
	Long: `fswrap runs file and directory operations through the fileops, fileinfo
and dirinfo wrappers. Every command is a thin consumer of those interfaces.

Settings come from fswrap.yaml in the working directory, then .env and the
environment (FSWRAP_ENCODING, FSWRAP_VERBOSE, NO_COLOR), then flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Path not found
  12 - Access denied
  13 - Target already exists
  14 - Directory not empty
  15 - Wrong entry type (file used as directory or the reverse)
  16 - Path too long`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// globalFlags holds the persistent flag values.
type globalFlags struct {
	verbose  bool
	color    string
	encoding string
}

var globals globalFlags

// appFS is the filesystem every command works on. Tests swap in a MemMapFs.
var appFS afero.Fs = afero.NewOsFs()

// app is the state shared by the commands of one run.
type app struct {
	fs       afero.Fs
	settings *config.Settings
	logger   logging.Logger
	styles   styles
}

var current = newApp(config.Defaults(), logging.NewNullLogger(), os.Stdout, false)

func newApp(settings *config.Settings, logger logging.Logger, out io.Writer, color bool) *app {
	return &app{fs: appFS, settings: settings, logger: logger, styles: newStyles(out, color)}
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globals.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", config.ColorAuto, "Color output: auto, always or never")
	rootCmd.PersistentFlags().StringVarP(&globals.encoding, "encoding", "e", "", "Text encoding (IANA name, e.g. utf-8, utf-16le, iso-8859-1)")
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)
	_ = rootCmd.RegisterFlagCompletionFunc("encoding", completeEncodings)
}

// setup resolves settings and builds the shared app state.
func setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	settings, err := config.Load(appFS, wd)
	if errors.Is(err, config.ErrConfigNotFound) {
		settings = config.Defaults()
	} else if err != nil {
		return err
	}
	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		settings.Verbose = globals.verbose
	}
	if flags.Changed("color") {
		settings.Color = globals.color
	}
	if flags.Changed("encoding") {
		settings.Encoding = globals.encoding
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := useColor(settings.Color, out)
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), settings.Verbose, color)
	current = newApp(settings, logger, out, color)
	logger.Verbose("settings: encoding=%s color=%s", settings.Encoding, settings.Color)
	return nil
}

func (a *app) files() fileops.FileOperations { return fileops.NewWithFS(a.fs) }

func (a *app) file(path string) fileinfo.FileInfoOperations {
	f := fileinfo.NewWithFS(a.fs)
	f.Bind(path)
	return f
}

func (a *app) dir(path string) dirinfo.DirectoryInfoOperations {
	d := dirinfo.NewWithFS(a.fs)
	d.Bind(path)
	return d
}

func (a *app) textOptions() ([]fsio.TextOption, error) {
	enc, err := fsio.LookupEncoding(a.settings.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %q: %v", config.ErrInvalidConfig, a.settings.Encoding, err)
	}
	return []fsio.TextOption{fsio.WithEncoding(enc)}, nil
}
