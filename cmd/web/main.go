package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"inkforge/internal/card"
	"inkforge/internal/deck"
	"inkforge/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	catalogFile := flag.String("catalog", "catalog.json", "path to catalog JSON dump")
	configFile := flag.String("config", "", "path to weight tuning YAML")
	decksFile := flag.String("decks", "decks.yaml", "path to saved decks YAML file")
	flag.Parse()

	catalog, err := card.LoadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := deck.DefaultConfig()
	if *configFile != "" {
		if cfg, err = deck.LoadConfig(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	srv := web.NewServer(catalog, cfg, *decksFile)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("inkforge web UI listening on http://localhost:%d (%d printings)", *port, catalog.Len())
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
