package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/jennis0/pdf2vtt/internal/statblock"
)

type Config struct {
	Files      []string
	Title      string
	Locale     language.Tag
	StatePath  string
	Sort       statblock.SortMode
	LegacyName bool
	LogFile    string
	LogLevel   string
	Mouse      bool
}

// Load builds the configuration from the environment, then lets
// command-line flags override it. Positional arguments are extra statblock
// files.
func Load(args []string) (Config, error) {
	files := splitList(os.Getenv("STATBLOCKS_FILES"))
	title := envOr("STATBLOCKS_TITLE", "Statblocks")
	locale := envOr("STATBLOCKS_LOCALE", "en")
	statePath := envOr("STATBLOCKS_STATE", ".statblocks_state.yaml")
	sortMode := envOr("STATBLOCKS_SORT", "")
	logFile := envOr("LOG_FILE", "lazystatblock.log")
	logLevel := envOr("LOG_LEVEL", "info")

	legacyName := false
	if v := strings.TrimSpace(os.Getenv("STATBLOCKS_LEGACY_NAME_SORT")); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			legacyName = parsed
		}
	}

	fs := pflag.NewFlagSet("lazystatblock", pflag.ContinueOnError)
	fs.StringSliceVarP(&files, "file", "f", files, "statblock file (YAML or JSON), repeatable")
	fs.StringVarP(&title, "title", "t", title, "list title, empty hides the header")
	fs.StringVar(&locale, "locale", locale, "BCP 47 tag used to collate names")
	fs.StringVar(&statePath, "state", statePath, "file remembering selection and filters, empty disables it")
	fs.StringVarP(&sortMode, "sort", "s", sortMode, "initial sort: none, page, page-desc, name, name-desc")
	fs.BoolVar(&legacyName, "legacy-name-sort", legacyName, "use the legacy alphabetic comparator")
	fs.StringVar(&logFile, "log-file", logFile, "log destination, empty disables logging")
	fs.StringVar(&logLevel, "log-level", logLevel, "debug, info, warn or error")
	noMouse := fs.Bool("no-mouse", false, "disable mouse support")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	files = append(files, fs.Args()...)

	if strings.TrimSpace(locale) == "" {
		locale = "en"
	}
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return Config{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	mode, err := statblock.ParseSortMode(sortMode)
	if err != nil {
		return Config{}, err
	}

	cleaned := make([]string, 0, len(files))
	for _, f := range files {
		if f = strings.TrimSpace(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}
	if len(cleaned) == 0 {
		return Config{}, errors.New("no statblock files: pass them as arguments, with --file, or in STATBLOCKS_FILES")
	}

	return Config{
		Files:      cleaned,
		Title:      title,
		Locale:     tag,
		StatePath:  strings.TrimSpace(statePath),
		Sort:       mode,
		LegacyName: legacyName,
		LogFile:    strings.TrimSpace(logFile),
		LogLevel:   logLevel,
		Mouse:      !*noMouse,
	}, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
