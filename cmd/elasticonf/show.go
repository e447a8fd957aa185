package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"elasticonf/domain/config"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the cache descriptors of a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := parseFile(args[0])
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Name", "Kind", "Target", "Expiration (s)", "Allow Clear"})

		for _, entry := range def.Entries {
			switch e := entry.(type) {
			case config.CacheReference:
				t.AppendRow(table.Row{e.Ref, "reference", "(registry lookup)", "-", "-"})
			case config.CacheDefinition:
				target := e.Address.String()
				kind := "cache"
				if e.Source == config.SourceCluster {
					target = e.Cluster.String()
					kind = "cluster"
				}
				t.AppendRow(table.Row{
					e.Name.String(),
					kind,
					target,
					fmt.Sprintf("%d", e.Expiration.Seconds()),
					e.AllowClear,
				})
			}
		}

		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
