package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cimnine/enpass2onepassword/internal"
	"github.com/urfave/cli/v3"
)

// Build information set by GoReleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	defaults, err := internal.LoadConfig()
	if err != nil {
		defaults = &internal.Config{}
	}

	saName := defaults.ServiceAccountName
	if saName == "" {
		saName = "enpass2onepassword"
	}
	vault := defaults.Vault
	if vault == "" {
		vault = "Enpass"
	}
	hourly := defaults.HourlyLimit
	if hourly <= 0 {
		hourly = 900
	}
	daily := defaults.DailyLimit
	if daily <= 0 {
		daily = 5000
	}

	cmd := &cli.Command{
		Name:        "enpass2onepassword",
		Usage:       "Add items from an Enpass JSON export to a 1Password vault",
		Description: "Reads an Enpass JSON export and creates one 1Password entry per Enpass entry through the 1Password API, using a service account.",
		Version:     version,
		ArgsUsage:   "[enpass-json-export]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "op-sa-name",
				Aliases: []string{"n", "sa"},
				Usage:   "The 1Password service account name, chosen when creating the service account",
				Value:   saName,
				Sources: cli.EnvVars("OP_SERVICE_ACCOUNT_NAME"),
			},
			&cli.StringFlag{
				Name:     "op-sa-token",
				Aliases:  []string{"t", "token"},
				Usage:    "The 1Password service account token, created together with the service account",
				Required: true,
				Sources:  cli.EnvVars("OP_SERVICE_ACCOUNT_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "op-vault",
				Aliases: []string{"o", "vault"},
				Usage:   "The name of the 1Password vault. It must be empty and writable by the service account",
				Value:   vault,
				Sources: cli.EnvVars("OP_VAULT"),
			},
			&cli.BoolFlag{
				Name:  "ignore-non-empty-vault",
				Usage: "Continue even if the vault already contains items. Make a sound backup of the vault first",
			},
			&cli.BoolFlag{
				Name:  "no-confirm",
				Usage: "Import without asking for confirmation",
			},
			&cli.BoolFlag{
				Name:  "silent",
				Usage: "Do not print status information while importing",
			},
			&cli.IntFlag{
				Name:  "skip",
				Usage: "Skip the first number of items. This can be helpful to recover a failed import",
			},
			&cli.IntFlag{
				Name:  "hourly-limit",
				Usage: "Maximum number of entries created per hour",
				Value: hourly,
			},
			&cli.IntFlag{
				Name:  "daily-limit",
				Usage: "Maximum number of entries created per day",
				Value: daily,
			},
			&cli.BoolFlag{
				Name:  "no-keep-awake",
				Usage: "Do not prevent the machine from sleeping while importing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			exportPath := os.Getenv("ENPASS_FILE")
			if exportPath == "" {
				exportPath = "export.json"
			}
			if cmd.NArg() > 0 {
				exportPath = cmd.Args().Get(0)
			}

			opts := internal.Options{
				ServiceAccountName:  cmd.String("op-sa-name"),
				ServiceAccountToken: cmd.String("op-sa-token"),
				Vault:               cmd.String("op-vault"),
				IgnoreNonEmpty:      cmd.Bool("ignore-non-empty-vault"),
				NoConfirm:           cmd.Bool("no-confirm"),
				Silent:              cmd.Bool("silent"),
				Skip:                int(cmd.Int("skip")),
				HourlyLimit:         int(cmd.Int("hourly-limit")),
				DailyLimit:          int(cmd.Int("daily-limit")),
				NoKeepAwake:         cmd.Bool("no-keep-awake"),
			}

			if opts.Skip < 0 {
				return fmt.Errorf("--skip must not be negative")
			}
			if opts.HourlyLimit <= 0 || opts.DailyLimit <= 0 {
				return fmt.Errorf("--hourly-limit and --daily-limit must be positive")
			}

			if err := internal.ValidateCliInstalled(); err != nil {
				return err
			}

			export, err := os.Open(exportPath)
			if err != nil {
				return fmt.Errorf("failed to open the Enpass export '%s': %w", exportPath, err)
			}
			defer export.Close()

			app := internal.NewApp(opts)
			if err := app.Migrate(ctx, export); err != nil {
				return err
			}

			// Remember the choices for a possible resume run. Not critical.
			defaults.Vault = opts.Vault
			defaults.ServiceAccountName = opts.ServiceAccountName
			defaults.HourlyLimit = opts.HourlyLimit
			defaults.DailyLimit = opts.DailyLimit
			if err := defaults.Save(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save defaults: %v\n", err)
			}

			return nil
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
