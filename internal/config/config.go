// Package config holds runtime configuration: defaults, environment
// loading, CLI flag parsing, and validation. Credentials come from the
// environment (or a .env file loaded at startup); everything else has a
// default that flags may override.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [ApplyEnv], then [ParseFlags] (flags win over environment), and
// passed by pointer into the packages that need it.
type Config struct {
	// Credentials and target (environment only; never flags, to keep the
	// token out of shell history and process listings).
	BotToken  string
	ChannelID string

	// Source directory with book files and cover images.
	InputDir string

	// Upload limits and pacing.
	MaxFileSizeMB int           // Per-file cap in MB. Default: 50 (Bot API document limit).
	PostDelay     time.Duration // Pause between pairs. Default: 3s.

	// ReportPath is where the skipped-too-large report is written.
	ReportPath string

	// Behavior.
	DryRun    bool
	CheckOnly bool

	// Display.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string
}

// DefaultConfig returns the baseline configuration before environment and
// flag overrides.
func DefaultConfig() Config {
	return Config{
		MaxFileSizeMB: 50,
		PostDelay:     3 * time.Second,
		ReportPath:    "skipped_too_large.txt",
		ColorMode:     ColorAuto,
	}
}

// MaxFileSizeBytes returns the configured per-file cap in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// ApplyEnv overlays environment variables onto cfg. Callers load a .env
// file first (godotenv) so the same names work from either source.
func ApplyEnv(c *Config) error {
	c.BotToken = getenv("BOT_TOKEN", c.BotToken)
	c.ChannelID = getenv("CHANNEL_ID", c.ChannelID)
	c.InputDir = getenv("BOOKPOST_DIR", c.InputDir)

	if v := getenv("MAX_FILE_SIZE_MB", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_FILE_SIZE_MB %q", v)
		}
		c.MaxFileSizeMB = n
	}
	if v := getenv("POST_DELAY_SECONDS", ""); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid POST_DELAY_SECONDS %q", v)
		}
		c.PostDelay = time.Duration(secs * float64(time.Second))
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that credentials are set (and not left at a placeholder),
// and that limits are sane. When not in CheckOnly mode it also requires an
// input directory. Violations here are fatal to the whole run.
func (c *Config) Validate() error {
	if c.BotToken == "" || strings.HasPrefix(c.BotToken, "PASTE_") {
		return errors.New("BOT_TOKEN is not set (export it or put it in .env)")
	}
	if c.ChannelID == "" || strings.HasPrefix(c.ChannelID, "PASTE_") {
		return errors.New("CHANNEL_ID is not set (export it or put it in .env)")
	}
	if c.MaxFileSizeMB <= 0 {
		return fmt.Errorf("max file size must be positive, got %d MB", c.MaxFileSizeMB)
	}
	if c.PostDelay < 0 {
		return errors.New("post delay must not be negative")
	}
	if c.ReportPath == "" {
		return errors.New("report path must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("no input directory (pass it as an argument or set BOOKPOST_DIR)")
	}
	return nil
}
