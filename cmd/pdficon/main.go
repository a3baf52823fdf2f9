package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/pdficon"
	"pkt.systems/pdficon/internal/config"
	"pkt.systems/pdficon/internal/logging"
	"pkt.systems/pdficon/internal/settingsdb"
	"pkt.systems/version"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitDegraded = 3

	defaultWidth = 80
)

// containerEncoder writes the .ico file. Tests swap it to reach the
// single-frame path.
var containerEncoder pdficon.ContainerEncoder = pdficon.ICOEncoder{}

func init() {
	version.SetDefaultModule("pkt.systems/pdficon")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v; using defaults\n", err)
	}
	if len(args) > 0 {
		switch args[0] {
		case "inspect":
			return runInspect(args[1:], cfg, stdout, stderr)
		case "render":
			args = args[1:]
		}
	}
	return runRender(args, cfg, stdout, stderr)
}

func runRender(args []string, cfg config.Config, stdout, stderr io.Writer) int {
	var (
		outDir       string
		name         string
		fontSource   string
		paletteName  string
		label        string
		logLevel     string
		strict       bool
		listPalettes bool
	)

	flags := pflag.NewFlagSet("pdficon", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&outDir, "output-dir", "o", cfg.OutputDir, "Directory for the generated files")
	flags.StringVar(&name, "name", cfg.Name, "Base name of the generated files")
	flags.StringVar(&fontSource, "font", cfg.Font, "Label font: embedded|none|<path to TTF/OTF>")
	flags.StringVarP(&paletteName, "palette", "p", cfg.Palette, "Colour palette")
	flags.StringVar(&label, "label", cfg.Label, "Label text on frames of 32px and up")
	flags.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error|disabled")
	flags.BoolVar(&strict, "strict", false, "Exit with status 3 when only a single-size icon could be written")
	flags.BoolVar(&listPalettes, "list-palettes", false, "List available palettes")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: pdficon [render] [flags]\n")
		fmt.Fprintf(stderr, "       pdficon inspect [flags] [schema|dump|profile]\n")
		fmt.Fprintf(stderr, "\nRenders %s.ico and %s.png at sizes %v.\n", cfg.Name, cfg.Name, pdficon.DefaultSizes())
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		flags.Usage()
		return exitUsage
	}

	if listPalettes {
		printPalettes(stdout)
		return exitOK
	}

	log, err := logging.New(stderr, logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --log-level: %v\n", err)
		return exitUsage
	}

	palette, ok := pdficon.PaletteByName(paletteName)
	if !ok {
		fmt.Fprintf(stderr, "unknown palette %q\n\n", paletteName)
		printPalettes(stderr)
		return exitUsage
	}

	tf, err := pdficon.ResolveTypeface(fontSource)
	if err != nil {
		ev := log.Warn()
		if strings.EqualFold(strings.TrimSpace(fontSource), pdficon.FontNone) {
			ev = log.Debug()
		}
		ev.Err(err).Msg("label text disabled, drawing placeholder bars")
	}

	res, err := pdficon.Build(pdficon.DefaultSizes(),
		pdficon.WithPalette(palette),
		pdficon.WithTypeface(tf),
		pdficon.WithLabel(label),
		pdficon.WithLogger(log),
		pdficon.WithContainerEncoder(containerEncoder),
	)
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return exitFailure
	}

	icoPath, pngPath, err := pdficon.WriteFiles(normalizePath(outDir), name, res)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitFailure
	}
	log.Debug().Str("ico", icoPath).Str("png", pngPath).Msg("icon written")

	icoName, pngName := filepath.Base(icoPath), filepath.Base(pngPath)
	if res.Fallback {
		fmt.Fprintf(stdout, "Created %s (single size %d)\n", icoName, res.LargestSize)
	} else {
		fmt.Fprintf(stdout, "Created %s with sizes: %v\n", icoName, res.Frames)
	}
	fmt.Fprintf(stdout, "Created %s (%dx%d)\n", pngName, res.LargestSize, res.LargestSize)

	if res.Fallback && strict {
		return exitDegraded
	}
	return exitOK
}

func runInspect(args []string, cfg config.Config, stdout, stderr io.Writer) int {
	var (
		dbPath   string
		table    string
		format   string
		limit    int
		logLevel string
	)
	flags := pflag.NewFlagSet("pdficon inspect", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&dbPath, "db", cfg.SettingsDB, "Settings database path")
	flags.StringVar(&table, "table", cfg.SettingsTable, "Settings table name")
	flags.StringVarP(&format, "format", "f", string(settingsdb.FormatText), "Output format: text|yaml")
	flags.IntVarP(&limit, "limit", "n", 1, "Rows to dump (0 dumps every row)")
	flags.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error|disabled")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: pdficon inspect [flags] [schema|dump|profile]\n")
		fmt.Fprintln(stderr, "\nReads the settings database without modifying it. The default action is dump.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	flags.SetInterspersed(true)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	action := "dump"
	switch flags.NArg() {
	case 0:
	case 1:
		action = strings.ToLower(flags.Arg(0))
	default:
		flags.Usage()
		return exitUsage
	}
	if action != "schema" && action != "dump" && action != "profile" {
		fmt.Fprintf(stderr, "unknown inspect action %q\n", action)
		flags.Usage()
		return exitUsage
	}

	log, err := logging.New(stderr, logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --log-level: %v\n", err)
		return exitUsage
	}
	reportFormat, err := settingsdb.ParseFormat(format)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --format: %v\n", err)
		return exitUsage
	}
	report := settingsdb.Report{Format: reportFormat, Width: terminalWidth(stdout, defaultWidth)}

	path := normalizePath(dbPath)
	store, err := settingsdb.Open(path)
	if err != nil {
		if errors.Is(err, settingsdb.ErrNotFound) {
			fmt.Fprintf(stderr, "Database file '%s' not found\n", dbPath)
			return exitFailure
		}
		fmt.Fprintf(stderr, "open database: %v\n", err)
		return exitFailure
	}
	defer func() { _ = store.Close() }()
	log.Debug().Str("db", store.Path()).Str("table", table).Str("action", action).Msg("inspecting settings")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := inspect(ctx, store, report, action, table, limit, stdout, log); err != nil {
		fmt.Fprintf(stderr, "inspect %s: %v\n", action, err)
		return exitFailure
	}
	return exitOK
}

func inspect(ctx context.Context, store *settingsdb.Store, report settingsdb.Report, action, table string, limit int, w io.Writer, log zerolog.Logger) error {
	switch action {
	case "schema":
		cols, err := store.Columns(ctx, table)
		if err != nil {
			return err
		}
		return report.WriteSchema(w, table, cols)
	case "profile":
		rec, found, err := store.First(ctx, table)
		if err != nil {
			return err
		}
		return report.WriteProfile(w, table, rec, found)
	default:
		cols, err := store.Columns(ctx, table)
		if err != nil {
			return err
		}
		recs, err := store.Records(ctx, table, limit)
		if err != nil {
			return err
		}
		log.Debug().Int("rows", len(recs)).Msg("records loaded")
		if report.Format == settingsdb.FormatYAML {
			return report.WriteRecords(w, table, recs)
		}
		if err := report.WriteSchema(w, table, cols); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		return report.WriteRecords(w, table, recs)
	}
}

func printPalettes(w io.Writer) {
	for _, name := range pdficon.AvailablePalettes() {
		fmt.Fprintln(w, name)
	}
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
