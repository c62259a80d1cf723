package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tb3/internal/config"
	"tb3/pkg/logger"
	"tb3/pkg/tb3"
	"tb3/pkg/tb3/tb3http"
)

// callCommand constructs the 'call' subcommand that invokes any named endpoint
// of the REST surface and prints the JSON response.
func callCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <operation> [params...]",
		Short: "Calls a backend operation and prints its JSON response",
		Long:  "Calls a backend operation by name. Operations: " + strings.Join(operationNames(), ", "),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			backend, _ := cmd.Flags().GetString("backend")
			token, _ := cmd.Flags().GetString("token")
			query, _ := cmd.Flags().GetStringToString("query")
			data, _ := cmd.Flags().GetString("data")

			client, err := tb3http.New(&http.Client{Timeout: cfg.Dashboard.RequestTimeout}, backend, token)
			if err != nil {
				return fmt.Errorf("could not create backend client: %w", err)
			}

			var body any
			if data != "" {
				var raw any
				if err := sonic.ConfigStd.UnmarshalFromString(data, &raw); err != nil {
					return fmt.Errorf("could not parse --data: %w", err)
				}
				body = raw
			}

			q := url.Values{}
			for k, v := range query {
				q.Set(k, v)
			}

			res, err := client.Call(ctx, args[0], args[1:], q, body)
			if err != nil {
				logger.Debug(ctx, "call failed", zap.String("operation", args[0]), zap.Error(err))

				return err
			}

			out, err := sonic.ConfigStd.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("could not format response: %w", err)
			}
			_, err = fmt.Fprintln(os.Stdout, string(out))

			return err
		},
	}

	cmd.Flags().String("backend", cfg.Dashboard.BackendURL, "Backend base URL")
	cmd.Flags().String("token", cfg.Dashboard.Token, "Bearer token sent with the request")
	cmd.Flags().StringToString("query", nil, "Query parameters, e.g. --query reason=spam")
	cmd.Flags().String("data", "", "JSON request body")

	return cmd
}

func operationNames() []string {
	eps := tb3.Endpoints()
	names := make([]string, 0, len(eps))
	for _, e := range eps {
		names = append(names, e.Name)
	}

	return names
}
