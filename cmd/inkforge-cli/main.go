package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"inkforge/internal/card"
	"inkforge/internal/deck"
	"inkforge/internal/lorcast"
	"inkforge/internal/trace"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "generate":
		runGenerate(os.Args[2:])
	case "fetch":
		runFetch(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  inkforge generate --inks A,B [--catalog FILE] [--config FILE] [--retries N] [--out FILE] [--name NAME] [--verbose]")
	fmt.Println("  inkforge fetch [--out FILE]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate    Compose a 60-card two-ink deck from the catalog")
	fmt.Println("  fetch       Download the card catalog and write it as a JSON dump")
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	inksArg := fs.String("inks", "", "comma-separated pair of ink colors, e.g. Amber,Steel")
	catalogFile := fs.String("catalog", "catalog.json", "path to catalog JSON dump")
	configFile := fs.String("config", "", "path to weight tuning YAML (defaults built in)")
	retries := fs.Int("retries", deck.DefaultRetries, "regeneration budget when repair shrinks the deck")
	out := fs.String("out", "", "append the deck to this YAML deck file")
	name := fs.String("name", "generated", "deck name used with --out")
	verbose := fs.Bool("verbose", false, "print the composition trace")
	fs.Parse(args)

	inks, err := card.ParseInks(*inksArg)
	if err != nil {
		fatal(err)
	}
	if len(inks) != 2 {
		fatal(fmt.Errorf("exactly two inks required, got %d", len(inks)))
	}

	catalog, err := card.LoadCatalog(*catalogFile)
	if err != nil {
		fatal(err)
	}

	cfg := deck.DefaultConfig()
	if *configFile != "" {
		if cfg, err = deck.LoadConfig(*configFile); err != nil {
			fatal(err)
		}
	}

	cp := deck.NewComposer(catalog)
	cp.Config = cfg
	cp.Retries = *retries
	if *verbose {
		cp.Log = trace.NewTextLogger(os.Stderr)
	}

	d := cp.Build(inks, nil)

	if len(d) < cfg.DeckSize {
		fmt.Fprintf(os.Stderr, "Warning: deck incomplete (%d/%d cards) after exhausting retries\n", len(d), cfg.DeckSize)
	}
	for _, entry := range deck.Summarize(d) {
		fmt.Printf("%d x %s\n", entry.Count, entry.Name)
	}

	if *out != "" {
		if err := deck.WriteDeckFile(*out, *name, inks, d); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "Saved deck %q to %s\n", *name, *out)
	}
}

func runFetch(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	out := fs.String("out", "catalog.json", "path to write the catalog JSON dump")
	fs.Parse(args)

	client := lorcast.NewClient()
	catalog, err := client.FetchAll(context.Background())
	if err != nil {
		fatal(err)
	}
	if err := lorcast.WriteCatalog(*out, catalog); err != nil {
		fatal(err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d printings to %s\n", catalog.Len(), *out)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
