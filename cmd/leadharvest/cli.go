package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pmilosz/leadharvest"
	"github.com/pmilosz/leadharvest/harvest"
	"github.com/pmilosz/leadharvest/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Leads    leadharvest.LeadService
	Searcher leadharvest.PlaceSearcher
	Runner   *harvest.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Search  SearchCmd  `cmd:"" help:"Find businesses via Google Places and store them as leads"`
	Harvest HarvestCmd `cmd:"" help:"Harvest emails from stored leads' websites"`
	Import  ImportCmd  `cmd:"" help:"Import leads from a CSV file"`
	Export  ExportCmd  `cmd:"" help:"Export leads to a CSV file"`
	List    ListCmd    `cmd:"" help:"List stored leads"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a lead"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Keyword string `arg:"" help:"Business type to search for (e.g. plumbers)"`
	City    string `arg:"" help:"City name"`
	State   string `arg:"" help:"State or region code"`
	Max     int    `short:"m" default:"50" help:"Maximum number of leads to collect"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	Keyword     string `short:"k" help:"Only harvest leads found with this keyword"`
	All         bool   `help:"Harvest every lead, not just unharvested ones"`
	Refresh     bool   `help:"Re-harvest pages even if unchanged since last run"`
	Deep        bool   `short:"d" help:"Also crawl contact and about pages"`
	Owners      string `type:"existingfile" help:"CSV owner directory for property owner lookup"`
	Concurrency int    `short:"c" default:"5" help:"Concurrent site limit"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Path    string `arg:"" type:"existingfile" help:"CSV file to import"`
	Keyword string `short:"k" help:"Keyword to tag imported leads with"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path    string `arg:"" help:"Destination CSV file"`
	Keyword string `short:"k" help:"Only export leads found with this keyword"`
	Status  string `short:"s" help:"Only export leads with this harvest status"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Keyword string `short:"k" help:"Only list leads found with this keyword"`
	Limit   int    `short:"n" help:"Maximum number of leads to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Lead ID"`
	Force bool   `help:"Confirm deletion"`
}
