package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"elasticonf/domain/config"
	"elasticonf/infrastructure/xmlconfig"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse and validate a cache configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := parseFile(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d cache entries\n", len(def.Entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// parseFile parses one configuration file into a manager definition
func parseFile(path string) (*config.ManagerDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parser := xmlconfig.NewParser(zap.NewNop())
	return parser.Parse(f)
}
