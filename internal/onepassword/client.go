// Package onepassword talks to 1Password through the `op` CLI, authenticated
// with a service account token. All calls shell out to `op` with JSON output
// and run one at a time.
package onepassword

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// runner executes one `op` invocation. Tests inject a fake to avoid the real
// binary.
type runner func(ctx context.Context, stdin []byte, args ...string) ([]byte, error)

// Client is a 1Password service-account client.
type Client struct {
	run runner
}

// NewClient returns a client that authenticates every `op` call with the
// given service account token.
func NewClient(token string) *Client {
	return &Client{run: execRunner(token)}
}

func execRunner(token string) runner {
	return func(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
		cmd := exec.CommandContext(ctx, "op", args...)
		cmd.Env = append(os.Environ(), "OP_SERVICE_ACCOUNT_TOKEN="+token)
		if stdin != nil {
			cmd.Stdin = bytes.NewReader(stdin)
		}

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return nil, fmt.Errorf("op %s: %s", args[0], msg)
			}
			return nil, fmt.Errorf("op %s: %w", args[0], err)
		}

		return stdout.Bytes(), nil
	}
}

// Authenticate verifies that the service account token grants a session.
func (c *Client) Authenticate(ctx context.Context) error {
	if _, err := c.run(ctx, nil, "whoami", "--format", "json"); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	return nil
}
