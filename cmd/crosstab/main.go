/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mikeb26/crosstab/crosstab"
	"github.com/mikeb26/crosstab/export"
	"github.com/mikeb26/crosstab/fetch"
	"github.com/mikeb26/crosstab/internal/config"
	"github.com/mikeb26/crosstab/store"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":    handleHelp,
	"players": handlePlayers,
	"rounds":  handleRounds,
	"export":  handleExport,
	"store":   handleStore,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// addInputFlags registers the report source flags shared by every
// subcommand that ingests a report.
func addInputFlags(fs *flag.FlagSet) (file *string, url *string) {
	file = fs.String("file", "", "Path to a crosstable report file")
	url = fs.String("url", "", "URL of a published crosstable report")
	return file, url
}

// loadTables reads the report named by the input flags and runs the full
// pipeline, exiting non-zero on structural errors.
func loadTables(ctx context.Context, file, url string) *crosstab.Tables {
	var text string

	switch {
	case file != "" && url != "":
		fmt.Fprintf(os.Stderr, "Specify either -file or -url, not both\n")
		os.Exit(1)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read %v: %v\n", file, err)
			os.Exit(1)
		}
		text = string(data)
	case url != "":
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to load config: %v\n", err)
			os.Exit(1)
		}
		client := fetch.NewClient(ctx, cfg)
		text, err = client.FetchReport(url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to fetch report: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Specify a report with -file or -url\n")
		os.Exit(1)
	}

	tables, err := crosstab.Parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse report: %v\n", err)
		os.Exit(1)
	}
	if !tables.Diags.Empty() {
		fmt.Fprintf(os.Stderr, "%v", tables.Diags.Summary())
	}

	return tables
}

func handlePlayers(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("players", flag.ExitOnError)
	file, url := addInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tables := loadTables(ctx, *file, *url)
	fmt.Printf("%v", crosstab.BuildPlayersOutput(tables))
}

func handleRounds(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("rounds", flag.ExitOnError)
	file, url := addInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tables := loadTables(ctx, *file, *url)
	fmt.Printf("%v", crosstab.BuildRoundsOutput(tables))
}

func handleExport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	file, url := addInputFlags(fs)
	outDir := fs.String("out", ".", "Directory to write output files into")
	formatList := fs.String("format", "csv",
		"Comma separated output formats (text, csv, xlsx)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	formats, err := parseFormats(*formatList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	tables := loadTables(ctx, *file, *url)
	if err := export.WriteAll(tables, *outDir, formats); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to export tables: %v\n", err)
		os.Exit(1)
	}
}

func handleStore(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("store", flag.ExitOnError)
	file, url := addInputFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		fmt.Fprintf(os.Stderr, "CROSSTAB_DB_URL must be set for store\n")
		os.Exit(1)
	}

	tables := loadTables(ctx, *file, *url)

	st, err := store.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to initialize tables: %v\n", err)
		os.Exit(1)
	}
	if err := st.SaveTables(ctx, tables); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to save tables: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stored %d players and %d rounds\n", len(tables.Players),
		len(tables.Rounds))
}

func parseFormats(list string) ([]export.Format, error) {
	var formats []export.Format
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		format, err := export.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no output formats specified")
	}

	return formats, nil
}
