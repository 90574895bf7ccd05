package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"inkforge/internal/deck"
	inkforgemcp "inkforge/internal/mcp"
)

func main() {
	catalogFile := flag.String("catalog", "catalog.json", "path to catalog JSON dump")
	configFile := flag.String("config", "", "path to weight tuning YAML")
	flag.Parse()

	inkforgemcp.SetCatalogFile(*catalogFile)
	if *configFile != "" {
		cfg, err := deck.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		inkforgemcp.SetConfig(cfg)
	}

	s := server.NewMCPServer("inkforge", "1.0.0")
	inkforgemcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
