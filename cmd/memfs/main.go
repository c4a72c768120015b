package main

import (
	"flag"
	"fmt"
	"os"

	"memfs/fixture"
	"memfs/internal/logging"
)

var (
	logger = logging.GetLogger()
)

func main() {
	// Parse command line flags
	fixturePath := flag.String("fixture", "", "Fixture file to load (required)")
	listDir := flag.String("list", "", "List the children of this directory instead of printing the tree")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	// Configure logging based on flags
	if *verbose {
		logger.SetLevel(logging.LevelDebug)
	}

	if *fixturePath == "" {
		logger.Error("Fixture file path is required")
		os.Exit(1)
	}

	logger.Debug("Fixture file: %s", *fixturePath)
	store, err := fixture.Load(*fixturePath)
	if err != nil {
		logger.Error("Failed to load fixture: %v", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d entries from %s", store.Len(), *fixturePath)

	if *listDir != "" {
		for _, name := range store.ReadDir(*listDir) {
			fmt.Println(name)
		}
		return
	}

	fmt.Print(store)
}
