package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/config"
	"github.com/jmylchreest/luma/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 5 * time.Second

var serveListen string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the contrast checker as an HTTP API",
	Long: `Serve the contrast checker as a small HTTP JSON API.

Endpoints:
  GET /api/v1/contrast?fg=<colour>&bg=<colour>
  GET /api/v1/colour/{colour}
  GET /healthz

The listen address comes from --listen, the LUMA_LISTEN_ADDR environment
variable, or the default ` + config.DefaultListenAddr + `.

Examples:
  luma serve
  luma serve --listen 0.0.0.0:8080
  luma serve --colours-file brand.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (host:port)")
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewBuilder().
		WithEnvConfig().
		WithColoursFile(globalColoursFile).
		WithListenAddr(serveListen).
		Build()
	if err != nil {
		return err
	}

	norm, err := colour.NewNormalizer(cfg.CustomColours)
	if err != nil {
		return err
	}

	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "luma",
		Output: os.Stderr,
		Level:  level,
	})

	srv := server.New(cfg, norm, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
