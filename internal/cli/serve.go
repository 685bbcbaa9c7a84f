package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbar/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, redisAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

POST a JSON chart definition to /v1/render?format=svg to receive the rendered
chart. Settings are read from SVGBAR_* environment variables (SVGBAR_ADDR,
SVGBAR_REDIS_ADDR, SVGBAR_CACHE_TTL, SVGBAR_RATE_LIMIT, ...); flags override
them. Without a Redis address, artifacts are cached in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := server.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("redis") {
				cfg.RedisAddr = redisAddr
			}

			store, err := server.NewCache(ctx, cfg)
			if err != nil {
				return err
			}
			runner := server.NewRunner(store, cfg, logger)
			defer runner.Close()

			stats := newStatsHooks(logger)
			stats.install()
			defer stats.logSummary()

			return server.New(cfg, runner, logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $SVGBAR_ADDR or :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the shared artifact cache")

	return cmd
}
