package onepassword

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListVaults returns all vaults the service account has access to.
func (c *Client) ListVaults(ctx context.Context) ([]Vault, error) {
	output, err := c.run(ctx, nil, "vault", "list", "--format", "json")
	if err != nil {
		return nil, fmt.Errorf("failed to list vaults: %w", err)
	}

	var vaults []Vault
	if err := json.Unmarshal(output, &vaults); err != nil {
		return nil, fmt.Errorf("failed to decode vault list: %w", err)
	}

	return vaults, nil
}
