package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "elasticonf",
	Short: "Cache configuration tool",
	Long: `elasticonf reads an XML cache-manager configuration describing
memcached and ElastiCache caches, validates it, and can resolve cluster
ids to real node endpoints.

Common usage:
  elasticonf validate caches.xml   # Parse and validate a configuration
  elasticonf show caches.xml       # Print the cache descriptors
  elasticonf resolve caches.xml    # Resolve cluster entries via AWS`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
