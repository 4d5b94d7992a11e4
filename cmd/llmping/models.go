package main

import (
	"fmt"

	"github.com/metalagman/llmping/internal/openaiapi"
	"github.com/spf13/cobra"
)

func modelsCmd() *cobra.Command {
	var flags serverFlags
	cmd := &cobra.Command{
		Use:          "models",
		Short:        "List the models the server advertises",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Root().PersistentFlags().Changed("config"))
			if err != nil {
				return err
			}

			// The listing endpoint takes no model, the client
			// constructor still wants one.
			conf := clientConfig(cfg, flags)
			client, err := openaiapi.NewClient(conf, nil)
			if err != nil {
				return err
			}

			models, err := client.Models(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range models {
				fmt.Fprintln(cmd.OutOrStdout(), m.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.baseURL, "base-url", "", "server base URL (default http://localhost:8080/v1)")
	cmd.Flags().StringVar(&flags.apiKey, "api-key", "", "API key (local servers accept the built-in placeholder)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "request timeout (default 60s)")
	return cmd
}
