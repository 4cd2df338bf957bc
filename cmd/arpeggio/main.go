// Arpeggio CLI — command-line interface for the technique catalog.
//
// Usage:
//
//	arpeggio <command> [flags]
//
// Commands:
//
//	list      List all techniques in catalog order
//	show      Show one technique with its preview pattern
//	search    Full-text search over names and descriptions
//	history   Show recent selections and usage statistics
//	version   Print version information
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/arpeggio-cli/arpeggio/internal/compose"
	"github.com/arpeggio-cli/arpeggio/internal/library"
	"github.com/arpeggio-cli/arpeggio/internal/report"
	"github.com/arpeggio-cli/arpeggio/internal/store"
	"github.com/arpeggio-cli/arpeggio/pkg/jsonutil"
	"github.com/arpeggio-cli/arpeggio/pkg/timeutil"

	"github.com/charmbracelet/glamour"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".arpeggio", "arpeggio.db")

	switch os.Args[1] {
	case "list":
		cmdList(defaultDB)
	case "show":
		cmdShow(defaultDB)
	case "search":
		cmdSearch(defaultDB)
	case "history":
		cmdHistory(defaultDB)
	case "version":
		fmt.Printf("Arpeggio v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Arpeggio — Algorithmic Composition Technique Browser

Usage:
  arpeggio <command> [flags]

Commands:
  list       List all techniques in catalog order
  show       Show one technique with its preview pattern
  search     Full-text search over names and descriptions
  history    Show recent selections and usage statistics
  version    Print version information

Run 'arpeggio <command> --help' for details on each command.`)
}

// openStore opens the database and mirrors the built-in library into it,
// so every command sees the current catalog without the TUI running first.
func openStore(dbPath string) store.Store {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	st, err := store.NewDBService(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	defs := library.Definitions()
	now := timeutil.NowNano()
	ts := make([]*store.Technique, 0, len(defs))
	for i, def := range defs {
		params := def.ParamsJSON()
		ts = append(ts, &store.Technique{
			ID:          def.ID,
			Name:        def.Name,
			Category:    def.Category,
			Description: def.Description,
			ParamsJSON:  &params,
			Position:    i,
			UpdatedAt:   now,
		})
	}
	if err := st.SyncTechniques(ts); err != nil {
		log.Fatalf("Failed to sync technique library: %v", err)
	}
	return st
}

// cmdList prints the catalog in its fixed order.
func cmdList(defaultDB string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	outputFormat := fs.String("format", "text", "Output format: text, json")
	fs.Parse(os.Args[2:])

	st := openStore(*dbPath)
	defer st.Close()

	techniques, err := st.ListTechniques()
	if err != nil {
		log.Fatalf("Failed to list techniques: %v", err)
	}

	switch *outputFormat {
	case "json":
		fmt.Println(jsonutil.Pretty(jsonutil.MustMarshal(techniques)))
	case "text":
		fmt.Printf("%-18s %-28s %s\n", "ID", "NAME", "CATEGORY")
		for _, t := range techniques {
			fmt.Printf("%-18s %-28s %s\n", t.ID, t.Name, t.Category)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *outputFormat)
		os.Exit(1)
	}
}

// cmdShow prints one technique: metadata, rendered description, and a
// deterministic preview of the pattern it generates.
func cmdShow(defaultDB string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	id := fs.String("id", "", "Technique ID to show (required)")
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	outputFormat := fs.String("format", "text", "Output format: text, json")
	width := fs.Int("width", 100, "Render width for the preview grid")
	steps := fs.Int("steps", 0, "Preview length in steps (0 = default)")
	seed := fs.Uint64("seed", 0, "Preview seed (0 = default)")
	fs.Parse(os.Args[2:])

	if *id == "" {
		fmt.Fprintln(os.Stderr, "Error: --id is required")
		fs.Usage()
		os.Exit(1)
	}

	st := openStore(*dbPath)
	defer st.Close()

	t, err := st.GetTechnique(*id)
	if errors.Is(err, store.ErrNotFound) {
		msg := fmt.Sprintf("Unknown technique: %s", *id)
		if suggestion, serr := st.SuggestID(*id); serr == nil && suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Failed to load technique: %v", err)
	}

	if *outputFormat == "json" {
		fmt.Println(jsonutil.Pretty(jsonutil.MustMarshal(t)))
		return
	}

	fmt.Printf("%s  [%s]\n", t.Name, t.Category)
	fmt.Printf("ID: %s\n", t.ID)
	if t.ParamsJSON != nil {
		fmt.Printf("Params: %s\n", *t.ParamsJSON)
	}
	fmt.Println()
	fmt.Println(renderMarkdown(t.Description, *width))

	opts := library.DefaultOptions()
	if *steps > 0 {
		opts.Steps = *steps
	}
	if *seed > 0 {
		opts.Seed = *seed
	}
	for _, def := range library.Definitions() {
		if def.ID == t.ID {
			fmt.Println("Preview:")
			fmt.Println(compose.RenderGrid(def.Pattern(opts), *width))
			break
		}
	}
}

// cmdSearch runs full-text search over technique names and descriptions.
func cmdSearch(defaultDB string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("query", "", "Search query (required)")
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	limit := fs.Int("limit", 20, "Maximum results")
	fs.Parse(os.Args[2:])

	if *query == "" {
		fmt.Fprintln(os.Stderr, "Error: --query is required")
		fs.Usage()
		os.Exit(1)
	}

	st := openStore(*dbPath)
	defer st.Close()

	results, err := st.SearchTechniques(*query, *limit)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		fmt.Println("No techniques matched.")
		return
	}
	for _, t := range results {
		fmt.Printf("%-18s %-28s %s\n", t.ID, t.Name, t.Category)
	}
}

// cmdHistory shows recent selections, or a full usage report with --report.
func cmdHistory(defaultDB string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	limit := fs.Int("limit", 20, "Maximum events to show")
	asReport := fs.Bool("report", false, "Print an aggregated usage report")
	fs.Parse(os.Args[2:])

	st := openStore(*dbPath)
	defer st.Close()

	if *asReport {
		reporter := report.NewReporter(st)
		rep, err := reporter.UsageSummary()
		if err != nil {
			log.Fatalf("Failed to build usage report: %v", err)
		}
		fmt.Print(reporter.FormatReport(rep))
		return
	}

	events, err := st.RecentSelections(*limit)
	if err != nil {
		log.Fatalf("Failed to load history: %v", err)
	}
	if len(events) == 0 {
		fmt.Println("No selections recorded yet.")
		return
	}

	names := make(map[string]string)
	if techniques, err := st.ListTechniques(); err == nil {
		for _, t := range techniques {
			names[t.ID] = t.Name
		}
	}

	for _, ev := range events {
		name := names[ev.TechniqueID]
		if name == "" {
			name = ev.TechniqueID
		}
		fmt.Printf("%-20s %-28s %s\n",
			timeutil.FormatTimestamp(ev.SelectedAt), name, timeutil.RelativeTime(ev.SelectedAt))
	}
}

// renderMarkdown renders a description to the terminal, falling back to
// the raw text when glamour cannot be initialized.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
