package config

// This file implements CLI flag parsing and help text. Flags override
// environment values; the single positional argument is the input directory.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses args (os.Args[1:]) into cfg. On --help or --version it
// prints and exits. On error it returns non-nil (unknown flag, extra
// positional arguments).
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("bookpost", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	// Capture bools and apply after Parse so defaults (and env overlays)
	// hold unless the user passes the flag.
	var showHelp, showVersion, forceColor, noColor bool

	fs.IntVar(&cfg.MaxFileSizeMB, "max-size", cfg.MaxFileSizeMB, "Per-file size cap in MB")
	fs.DurationVar(&cfg.PostDelay, "delay", cfg.PostDelay, "Pause between pairs (e.g. 3s, 500ms)")
	fs.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "Path for the skipped-too-large report")

	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; no uploads")
	fs.BoolVar(&cfg.DryRun, "n", false, "Same as --dry-run")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Validate the bot credential and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")

	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")

	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "bookpost v"+version)
		os.Exit(0)
	}

	if forceColor {
		cfg.ColorMode = ColorAlways
	}
	if noColor {
		cfg.ColorMode = ColorNever
	}

	switch fs.NArg() {
	case 0:
		// Directory may come from BOOKPOST_DIR; Validate decides.
	case 1:
		cfg.InputDir = NormalizeDirArg(fs.Arg(0))
	default:
		return fmt.Errorf("expected at most one directory argument, got %d", fs.NArg())
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage: bookpost [options] [directory]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Pairs book files with cover images by shared stem and posts each pair")
	fmt.Fprintln(out, "(photo with caption, then document) to a Telegram channel.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment (or .env): BOT_TOKEN, CHANNEL_ID, BOOKPOST_DIR,")
	fmt.Fprintln(out, "MAX_FILE_SIZE_MB, POST_DELAY_SECONDS. Flags override the environment.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fmt.Fprintln(out, "  --max-size MB      Per-file size cap in MB (default 50)")
	fmt.Fprintln(out, "  --delay DUR        Pause between pairs (default 3s)")
	fmt.Fprintln(out, "  --report PATH      Skipped-too-large report path (default skipped_too_large.txt)")
	fmt.Fprintln(out, "  -n, --dry-run      Preview only; no uploads")
	fmt.Fprintln(out, "  -c, --check        Validate the bot credential (getMe) and exit")
	fmt.Fprintln(out, "  -v, --verbose      Verbose output")
	fmt.Fprintln(out, "  --color            Force colored logs")
	fmt.Fprintln(out, "  --no-color         Disable colored logs")
	fmt.Fprintln(out, "  -l, --log FILE     Append logs to file")
	fmt.Fprintln(out, "  -V, --version      Print version and exit")
	fmt.Fprintln(out, "  -h, --help         Show this help")
}
