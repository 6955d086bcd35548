package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"mapsheet/common"
	"mapsheet/config"
	"mapsheet/export"
	"mapsheet/layout"
	"mapsheet/measure"
	"mapsheet/misc"
	"mapsheet/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		// save complete processed configuration if external configuration was provided
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 && env.Log != nil {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()

	// log is synced now and result can be used in report if necessary, errors
	// must be reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// reporting is closed now - remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Subcommands return regular errors, cli.Exit() is not used.
var errWasHandled bool

// exitErrHandler runs before application context is destroyed and log is
// still available.
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// reported by exitErrHandler or in main
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt, back ends may take a while
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "page layout calculator and map export dispatcher",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "page",
				Usage:        "Reports page size, margins and content area (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       layout.Run,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "size", Aliases: []string{"s"}, Usage: "page size `SPEC`, configured default if absent"},
					&cli.StringFlag{Name: "margins", Aliases: []string{"m"}, Usage: "page margins `SPEC`, configured default if absent"},
					&cli.StringFlag{Name: "units", Aliases: []string{"u"},
						Usage: "report margins in `UNIT` (supported units: " + strings.Join(lengthUnits(), ", ") + ")"},
				},
				CustomHelpTemplate: fmt.Sprintf(`%s
SPEC:
    page size: "<ID> <PORTRAIT|LANDSCAPE>" or "CUSTOM <PORTRAIT|LANDSCAPE> <width> <height> [unit]"
        standard IDs: %s
    margins: "<n1> [n2] [n3] [n4] [unit]", values follow CSS order (top, right, bottom, left)

Units could be abbreviated: IN, MM, CM, PT, %%. Content area is reported in page units.
`, cli.CommandHelpTemplate, strings.Join(measure.StandardSizes(), ", ")),
			},
			{
				Name:         "convert",
				Usage:        "Converts value between length units",
				OnUsageError: usageErrorHandler,
				Action:       layout.RunConvert,
				ArgsUsage:    "VALUE FROM TO",
				CustomHelpTemplate: fmt.Sprintf(`%s
VALUE:
    number to convert, put "--" in front of negative values

FROM, TO:
    length units (%s)
`, cli.CommandHelpTemplate, strings.Join(lengthUnits(), ", ")),
			},
			{
				Name:         "export",
				Usage:        "Dispatches map document export job",
				OnUsageError: usageErrorHandler,
				Action:       export.Run,
				// frame extents are comma separated
				DisableSliceFlagSeparator: true,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to",
						Usage: "export output `TYPE`, configured format if absent (supported types: " + strings.Join(common.ExportFmtNames(), ", ") + ")"},
					&cli.StringFlag{Name: "size", Aliases: []string{"s"}, Usage: "page size `SPEC`, configured default if absent"},
					&cli.StringFlag{Name: "margins", Aliases: []string{"m"}, Usage: "page margins `SPEC`, configured default if absent"},
					&cli.StringSliceFlag{Name: "frame", Aliases: []string{"f"}, Usage: "data frame `NAME:WxH[@XMIN,YMIN,XMAX,YMAX]`, may be repeated"},
					&cli.StringFlag{Name: "products", Aliases: []string{"p"}, Usage: "product `DIRECTORY` with " + export.ColorMapName + ", configured products path if absent"},
					&cli.BoolFlag{Name: "proof", Usage: "render layout proof next to raster exports"},
				},
				ArgsUsage: "DOCUMENT [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
DOCUMENT:
    path to map document to export

DESTINATION:
    always a path, output file name and extension will be derived from other parameters
    if absent - current working directory

Map package and layout GeoTIFF exports use the largest data frame. Production and
multi-page PDF exports require %s and fall back to standard PDF without it.
`, cli.CommandHelpTemplate, export.ColorMapName),
			},
			{
				Name:         "jobs",
				Usage:        "Lists recent export jobs from the journal (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       export.RunJobs,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 20, Usage: "show at most `N` jobs, 0 - all of them"},
				},
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit sets exit code, no other deferred functions must follow
	defer func() {
		stop()
		if err != nil {
			// log may not be ready yet (argument parsing) or already closed
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	kind, data := "actual", []byte(nil)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		env.Log.Info("Outputing configuration", zap.String("state", kind), zap.String("file", "STDOUT"))
		_, err = cmd.Root().Writer.Write(data)
		return err
	}

	out, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	env.Log.Info("Outputing configuration", zap.String("state", kind), zap.String("file", fname))
	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}

func lengthUnits() []string {
	names := make([]string, 0, len(common.UnitNames()))
	for _, n := range common.UnitNames() {
		if u, err := common.ParseUnit(n); err == nil && u.IsLength() {
			names = append(names, n)
		}
	}
	return names
}
