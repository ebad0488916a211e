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
	"github.com/lmittmann/tint"
	"github.com/pmilosz/leadharvest/csv"
	"github.com/pmilosz/leadharvest/goquery"
	"github.com/pmilosz/leadharvest/harvest"
	lhhttp "github.com/pmilosz/leadharvest/http"
	lhslog "github.com/pmilosz/leadharvest/slog"
	"github.com/pmilosz/leadharvest/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// LeadService for end-to-end testing.
	LeadService *sqlite.LeadService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("leadharvest"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leadharvest --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// First word of the resolved command, e.g. "harvest" from
	// "harvest --deep".
	cmd := strings.Fields(kongCtx.Command())[0]

	level := tint.Options{Level: logLevel(cli.Verbose)}
	logger := slog.New(tint.NewHandler(stderr, &level))
	deps.Logger = logger

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEADHARVEST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.LeadService = sqlite.NewLeadService(m.DB)
	deps.DB = m.DB
	deps.Leads = m.LeadService

	if cmd == "search" {
		apiKey := os.Getenv("GOOGLE_PLACES_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GOOGLE_PLACES_API_KEY environment variable not set")
			return fmt.Errorf("GOOGLE_PLACES_API_KEY not set")
		}
		deps.Searcher = lhslog.NewLoggingPlaceSearcher(lhhttp.NewPlacesClient(apiKey), logger)
	}

	if cmd == "harvest" {
		fetcher := lhhttp.NewFetcher()
		defer fetcher.Close()

		harvester := &harvest.Harvester{
			Fetcher: lhslog.NewLoggingFetcher(fetcher, logger),
			Limiter: harvest.NewHostLimiter(1.0),
			Logger:  logger,
		}
		if cli.Harvest.Deep {
			harvester.Contacts = goquery.NewContactFinder()
			harvester.Sitemaps = lhhttp.NewContactSitemapService(nil)
		}

		deps.Runner = &harvest.Runner{
			Harvester:   harvester,
			Leads:       m.LeadService,
			Logger:      logger,
			Concurrency: cli.Harvest.Concurrency,
			Refresh:     cli.Harvest.Refresh,
		}

		if cli.Harvest.Owners != "" {
			owners, err := csv.NewOwnerDirectory(cli.Harvest.Owners)
			if err != nil {
				return fmt.Errorf("failed to load owner directory: %w", err)
			}
			deps.Runner.Owners = owners
		}
	}

	return kongCtx.Run(deps)
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func defaultDBPath() string {
	if path := os.Getenv("LEADHARVEST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "leadharvest.db"
	}
	dir := filepath.Join(home, ".leadharvest")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "leadharvest.db")
}
