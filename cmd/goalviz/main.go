package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/touchline/goalviz/internal/config"
	"github.com/touchline/goalviz/internal/dataset"
	"github.com/touchline/goalviz/internal/logging"
	intOtel "github.com/touchline/goalviz/internal/otel"

	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// module defs - Version can be set at build time via ldflags
var (
	Version    string = "0.0.1"
	BinaryName string = "goalviz"
)

// global variables
var (
	// SlogManager handles all slog-based logging
	SlogManager *logging.SlogManager

	// Logger is the slog logger (convenience reference)
	Logger *slog.Logger

	// OTelProvider handles OpenTelemetry
	OTelProvider *intOtel.Provider

	LogFilePath string

	SessionStartTime time.Time = time.Now()
)

const usage = `usage: goalviz [render|validate|scene [-svg]] [configDir]

  render    draw the goal and store the SVG (default)
  validate  check the dataset and list findings
  scene     print the pitch draw commands as JSON, or as a bare SVG with -svg
`

// cliArgs is a parsed command line
type cliArgs struct {
	command   string
	configDir string
	// svg selects SVG output for the scene command
	svg bool
}

// errUsage is returned for malformed command lines
var errUsage = errors.New("invalid arguments")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, "goalviz:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cli, err := parseArgs(args)
	if err != nil {
		return err
	}
	if cli.command == "help" {
		fmt.Fprint(stdout, usage)
		return nil
	}

	cleanup := setup(cli.configDir)
	defer cleanup()

	ds := dataset.Goal()
	ctx := logging.WithContextAttrs(context.Background(), slog.String("command", cli.command))

	switch cli.command {
	case "validate":
		return validateGoal(ctx, ds, stdout)
	case "scene":
		return writeScene(ds, cli.svg, stdout)
	default:
		backend, err := createStorageBackend(config.GetStorageConfig())
		if err != nil {
			Logger.Error("Failed to create storage backend", "error", err)
			return err
		}
		if err := backend.Init(); err != nil {
			Logger.Error("Failed to initialize storage backend", "error", err)
			return err
		}
		defer backend.Close()

		_, err = renderGoal(ctx, ds, backend, config.GetRenderConfig().Width, stdout)
		return err
	}
}

// parseArgs splits the command line into a subcommand, its flags and a
// config directory.
func parseArgs(args []string) (cliArgs, error) {
	cli := cliArgs{command: "render", configDir: "."}

	if len(args) > 0 {
		switch c := strings.ToLower(args[0]); c {
		case "render", "validate", "scene":
			cli.command = c
			args = args[1:]
		case "help", "-h", "--help":
			cli.command = "help"
			return cli, nil
		}
	}
	if cli.command == "scene" && len(args) > 0 && (args[0] == "-svg" || args[0] == "--svg") {
		cli.svg = true
		args = args[1:]
	}
	if len(args) > 0 {
		cli.configDir = args[0]
		args = args[1:]
	}
	if len(args) > 0 {
		return cliArgs{}, fmt.Errorf("%w: unexpected %q", errUsage, args)
	}
	return cli, nil
}

// setup loads the config and points logging at the session log file. The
// returned func flushes telemetry and closes the file.
func setup(configDir string) func() {
	// stderr until the log file is known; stdout may carry command output
	SlogManager = logging.NewSlogManager(BinaryName)
	SlogManager.Setup(os.Stderr, "info", nil)
	Logger = SlogManager.Logger()

	if err := config.Load(configDir); err != nil {
		Logger.Warn("Failed to load config, using defaults!", "error", err)
	} else {
		Logger.Info("Loaded config", "dir", configDir)
	}

	LogFilePath = logging.LogFilePath(config.GetString("logsDir"), BinaryName, SessionStartTime)
	logFile := logging.NewRotatingFile(LogFilePath)

	otelCfg := config.GetOTelConfig()
	if otelCfg.Enabled {
		var err error
		OTelProvider, err = intOtel.New(intOtel.Config{
			Enabled:      otelCfg.Enabled,
			ServiceName:  otelCfg.ServiceName,
			BatchTimeout: otelCfg.BatchTimeout,
			Writer:       logFile, // Write OTel logs and metrics to file
		})
		if err != nil {
			Logger.Error("Failed to initialize OTel provider", "error", err)
			OTelProvider = nil
		} else {
			Logger.Info("OTel provider initialized", "file", LogFilePath)
		}
	}

	// Re-setup logging with file output and optional OTel
	var otelLogProvider *sdklog.LoggerProvider
	if OTelProvider != nil {
		otelLogProvider = OTelProvider.LoggerProvider()
	}
	SlogManager.Setup(logFile, config.GetString("logLevel"), otelLogProvider)
	Logger = SlogManager.Logger()
	Logger.Info("Logging to file", "path", LogFilePath, "version", Version)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := SlogManager.Flush(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "goalviz: log flush failed:", err)
		}
		if OTelProvider != nil {
			if err := OTelProvider.Shutdown(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "goalviz: telemetry shutdown failed:", err)
			}
			OTelProvider = nil
		}
		logFile.Close()
	}
}
