package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"pet-store-api/internal/app"
	"pet-store-api/internal/client"
	"pet-store-api/internal/config"

	"github.com/urfave/cli/v3"
)

const (
	name       = "pet-store-api"
	defaultURL = "http://127.0.0.1:5000"
)

// Command arma la CLI. Sin subcomando se comporta como "serve".
func Command() *cli.Command {
	return &cli.Command{
		Name:   name,
		Usage:  "Pet store demo API",
		Flags:  serveFlags(true),
		Action: serveAction,
		Commands: []*cli.Command{
			serveCmd(),
			healthcheckCmd(),
			generateCmd(),
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP API",
		Flags:  serveFlags(false),
		Action: serveAction,
	}
}

// serveFlags se usa en la raíz (local, para no heredarse a healthcheck/generate) y en "serve".
func serveFlags(local bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Usage: "Configuration profile (development, testing, production); overrides APP_ENV",
			Local: local,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "Listen host; overrides HOST",
			Local: local,
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "Listen port; overrides PORT",
			Local: local,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug mode; overrides DEBUG",
			Local: local,
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Env file to load before reading the environment (default .env if present)",
			Local: local,
		},
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("env-file"), flagOverrides(cmd))
	if err != nil {
		return err
	}
	return serve(ctx, cfg)
}

// flagOverrides traduce los flags seteados a sus variables de entorno equivalentes.
func flagOverrides(cmd *cli.Command) map[string]string {
	out := map[string]string{}
	if cmd.IsSet("env") {
		out["APP_ENV"] = cmd.String("env")
	}
	if cmd.IsSet("host") {
		out["HOST"] = cmd.String("host")
	}
	if cmd.IsSet("port") {
		out["PORT"] = strconv.Itoa(cmd.Int("port"))
	}
	if cmd.IsSet("debug") {
		out["DEBUG"] = strconv.FormatBool(cmd.Bool("debug"))
	}
	return out
}

func serve(ctx context.Context, cfg config.Config) error {
	a := app.New(cfg)

	startCtx, cancel := context.WithTimeout(ctx, a.StartTimeout())
	defer cancel()
	if err := a.Start(startCtx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	// SIGINT/SIGTERM o un Shutdown() explícito
	<-a.Wait()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelStop()
	return a.Stop(stopCtx)
}

func clientFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "url",
			Value: defaultURL,
			Usage: "Base URL of a running pet store API",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: 5 * time.Second,
			Usage: "Request timeout",
		},
	}
}

func healthcheckCmd() *cli.Command {
	return &cli.Command{
		Name:  "healthcheck",
		Usage: "Exit 0 only if GET /health reports healthy (for container probes)",
		Flags: clientFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := client.New(cmd.String("url"), cmd.Duration("timeout"))
			if err != nil {
				return err
			}
			if err := c.Health(ctx); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, "healthy")
			return err
		},
	}
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Fetch random pets from a running API and print the JSON",
		Flags: append(clientFlags(), &cli.IntFlag{
			Name:  "count",
			Value: 1,
			Usage: "Number of pets to generate (1..100)",
		}),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := client.New(cmd.String("url"), cmd.Duration("timeout"))
			if err != nil {
				return err
			}
			res, err := c.GeneratePets(ctx, cmd.Int("count"))
			if err != nil {
				return err
			}
			return printJSON(cmd.Root().Writer, res.Raw)
		},
	}
}

// printJSON indenta sin decodificar, para respetar el orden de campos del servidor.
func printJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
