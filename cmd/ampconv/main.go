package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ampconv"
	"github.com/fwojciec/ampconv/fs"
	"github.com/fwojciec/ampconv/goquery"
	amphttp "github.com/fwojciec/ampconv/http"
	ampslog "github.com/fwojciec/ampconv/slog"
	"github.com/fwojciec/ampconv/sqlite"
	"github.com/fwojciec/ampconv/twitter"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	m.Stdin = os.Stdin

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Path of the optional YAML file holding flag defaults.
	ConfigPath string

	// Stdin is read for the "-" input.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ConversionService ampconv.ConversionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ampconv"),
		kong.Description("Convert Twitter embeds in HTML documents to AMP."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Configuration(yamlConfig, m.ConfigPath),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ampconv --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// The database is only needed by commands that read or write history.
	if cmd != "convert" || cli.Convert.Record {
		if m.ConversionService == nil {
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set AMPCONV_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			m.ConversionService = sqlite.NewConversionService(m.DB)
		}
		deps.DB = m.DB
		deps.Conversions = m.ConversionService
	}

	if cmd == "convert" {
		// One request per second per host when converting URLs.
		var fetcher ampconv.Fetcher = amphttp.NewFetcher(
			amphttp.WithTimeout(cli.Convert.Timeout),
			amphttp.WithDomainLimiter(amphttp.NewDomainLimiter(1.0)),
		)
		var logf amphttp.LogFunc
		if !cli.Convert.Quiet {
			logf = func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			}
		}
		fetcher = amphttp.NewRetryFetcher(fetcher, amphttp.DefaultRetryDelays(), logf)

		var pass ampconv.Pass = twitter.NewTransformer()
		if logger != nil {
			fetcher = ampslog.NewLoggingFetcher(fetcher, logger)
			pass = ampslog.NewLoggingPass(pass, logger)
		}
		defer fetcher.Close()

		var converter ampconv.Converter = goquery.NewConverter(pass)
		if logger != nil {
			converter = ampslog.NewLoggingConverter(converter, logger)
		}

		deps.Loader = fs.NewLoader(fetcher, m.Stdin)
		deps.Converter = converter
		if cli.Convert.Output != "" {
			deps.Writer = fs.NewWriter(cli.Convert.Output)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("AMPCONV_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ampconv.db"
	}
	dir := filepath.Join(home, ".ampconv")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ampconv.db")
}
