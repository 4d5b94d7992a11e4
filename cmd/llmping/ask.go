package main

import (
	"fmt"
	"strings"

	"github.com/metalagman/llmping/internal/openaiapi"
	"github.com/metalagman/llmping/internal/render"
	"github.com/metalagman/llmping/internal/runner"
	"github.com/spf13/cobra"
)

func askCmd() *cobra.Command {
	var flags serverFlags
	var instructions string
	var renderOut bool
	cmd := &cobra.Command{
		Use:   "ask [input]",
		Short: "Send a oneshot prompt and print the response",
		Long: "Send a single prompt to the server and print the output text. " +
			"The input comes from the argument, or from request.input in the config file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Root().PersistentFlags().Changed("config"))
			if err != nil {
				fatal(err)
				return err
			}

			input := cfg.Request.Input
			if len(args) == 1 {
				input = args[0]
			}
			if strings.TrimSpace(input) == "" {
				err := fmt.Errorf("input is required (pass it as an argument or set request.input)")
				fatal(err)
				return err
			}

			out := cmd.OutOrStdout()
			client, err := openaiapi.NewClient(clientConfig(cfg, flags), nil)
			if err != nil {
				// Construction and call failures share one reporting path.
				runner.Report(out, err)
				return err
			}

			opts := []runner.Option{runner.WithTarget(client.BaseURL())}
			if renderOut || cfg.Output.Render {
				opts = append(opts, runner.WithRenderer(render.Markdown))
			}

			return runner.New(client, out, opts...).Run(cmd.Context(), openaiapi.CompletionRequest{
				Instructions: firstNonEmpty(instructions, cfg.Request.Instructions),
				Input:        input,
			})
		},
	}
	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "model identifier (default "+defaultModel+")")
	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "system instructions for the model")
	cmd.Flags().StringVar(&flags.baseURL, "base-url", "", "server base URL (default http://localhost:8080/v1)")
	cmd.Flags().StringVar(&flags.apiKey, "api-key", "", "API key (local servers accept the built-in placeholder)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "request timeout (default 60s)")
	cmd.Flags().BoolVar(&renderOut, "render", false, "render the output text as terminal markdown")
	return cmd
}
