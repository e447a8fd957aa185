package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"elasticonf/domain/config"
	appsettings "elasticonf/infrastructure/config"
	"elasticonf/infrastructure/di"
	"elasticonf/infrastructure/elasticache"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Resolve cluster entries of a configuration file via the AWS API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := parseFile(args[0])
		if err != nil {
			return err
		}

		settings, err := appsettings.LoadSettings()
		if err != nil {
			return err
		}

		container, err := di.InitializeContainer(cmd.Context(), settings)
		if err != nil {
			return err
		}
		defer func() { _ = container.Logger.Sync() }()

		for _, cacheDef := range def.Definitions() {
			if cacheDef.Source != config.SourceCluster {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (static)\n", cacheDef.Name, cacheDef.Address)
				continue
			}

			provider := elasticache.NewClusterAddressProvider(
				container.Resolver,
				cacheDef.Cluster,
				container.Logger,
				container.Tracer,
			)
			endpoints, err := provider.Addresses(cmd.Context())
			if err != nil {
				return err
			}

			for _, endpoint := range endpoints {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cacheDef.Name, endpoint)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
