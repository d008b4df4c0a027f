// Package internal wires the Enpass to 1Password migration together: it
// authenticates, resolves and safety-checks the target vault, maps the
// export, and drives the rate-limited upload loop.
package internal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cimnine/enpass2onepassword/internal/enpass"
	"github.com/cimnine/enpass2onepassword/internal/keepawake"
	"github.com/cimnine/enpass2onepassword/internal/mapping"
	"github.com/cimnine/enpass2onepassword/internal/onepassword"
	"github.com/cimnine/enpass2onepassword/internal/ratelimit"
)

// Options is the already-validated configuration handed over by the CLI.
type Options struct {
	ServiceAccountName  string
	ServiceAccountToken string
	Vault               string
	IgnoreNonEmpty      bool
	NoConfirm           bool
	Silent              bool
	Skip                int
	HourlyLimit         int
	DailyLimit          int
	NoKeepAwake         bool
}

// VaultClient is the slice of the 1Password client the migration needs.
type VaultClient interface {
	Authenticate(ctx context.Context) error
	ListVaults(ctx context.Context) ([]onepassword.Vault, error)
	ListItems(ctx context.Context, vaultID string) ([]onepassword.ItemOverview, error)
	ItemCreator
}

// App represents the migration with its dependencies.
type App struct {
	opts    Options
	client  VaultClient
	limiter Limiter
	confirm func() bool
	release func()
	out     io.Writer
	errOut  io.Writer
}

// NewApp creates a migration instance backed by the real 1Password client,
// an interactive confirmation prompt and the configured rate caps.
func NewApp(opts Options) *App {
	return &App{
		opts:    opts,
		client:  onepassword.NewClient(opts.ServiceAccountToken),
		limiter: ratelimit.New(opts.HourlyLimit, opts.DailyLimit),
		confirm: func() bool { return Confirm(os.Stdin, os.Stdout) },
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// Migrate runs the whole migration against the export read from r. Any fatal
// condition unwinds here; nothing is retried except the wait built into
// rate-limit token acquisition.
func (a *App) Migrate(ctx context.Context, r io.Reader) error {
	if err := a.client.Authenticate(ctx); err != nil {
		fmt.Fprintln(a.errOut, Red("Check the 1Password Service Account name and token, and try again."))
		return fmt.Errorf("setting up the connection to 1Password: %w", err)
	}

	vault, err := a.resolveVault(ctx)
	if err != nil {
		return err
	}

	existing, err := a.client.ListItems(ctx, vault.ID)
	if err != nil {
		return fmt.Errorf("checking the vault '%s': %w", a.opts.Vault, err)
	}
	if len(existing) > 0 && !a.opts.IgnoreNonEmpty {
		return fmt.Errorf("the vault '%s' already contains items", a.opts.Vault)
	}

	export, err := enpass.Load(r)
	if err != nil {
		return err
	}

	if a.opts.Skip >= len(export.Items)-1 {
		a.printf("Nothing to do: %d of %d entries skipped.\n", a.opts.Skip, len(export.Items))
		return nil
	}

	entries, err := mapping.MapItems(export, vault.ID, a.opts.Skip)
	if err != nil {
		return err
	}

	a.printf("%s Enpass entries have been analyzed.\n", Green(fmt.Sprint(len(export.Items))))
	a.printf("%s 1Password entries will be created.\n", Green(fmt.Sprint(len(entries))))

	if !a.opts.NoConfirm && !a.confirm() {
		return fmt.Errorf("aborted")
	}

	if err := a.upload(ctx, entries); err != nil {
		return err
	}

	a.printf("%s Migrated %d entries.\n", Green("Done."), len(entries))
	if a.opts.Skip > 0 {
		a.printf("Skipped the first %d entries.\n", a.opts.Skip)
	}

	return nil
}

func (a *App) resolveVault(ctx context.Context) (*onepassword.Vault, error) {
	vaults, err := a.client.ListVaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing vaults: %w", err)
	}
	if len(vaults) == 0 {
		return nil, fmt.Errorf("the 1Password Service Account '%s' does not have access to any vaults", a.opts.ServiceAccountName)
	}

	for i := range vaults {
		if vaults[i].Name == a.opts.Vault {
			return &vaults[i], nil
		}
	}

	return nil, fmt.Errorf("the vault '%s' does not exist or the 1Password Service Account '%s' does not have access",
		a.opts.Vault, a.opts.ServiceAccountName)
}

// upload drives the sequential upload loop, holding off machine sleep for
// its duration. The hold is released on every exit path.
func (a *App) upload(ctx context.Context, entries []mapping.Entry) error {
	release := a.release
	if release == nil && !a.opts.NoKeepAwake {
		hold := keepawake.Acquire()
		release = hold.Release
	}
	if release != nil {
		defer release()
	}

	uploader := &Uploader{
		Creator: a.client,
		Limiter: a.limiter,
		Progress: func(position, total int) {
			if position%10 == 0 {
				a.printf("Creating entry %d of %d …\n", position, total)
			}
		},
	}

	return uploader.Upload(ctx, entries)
}

func (a *App) printf(format string, args ...any) {
	if a.opts.Silent {
		return
	}
	fmt.Fprintf(a.out, format, args...)
}
