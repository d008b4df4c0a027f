package onepassword

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListItems returns the items currently present in a vault.
func (c *Client) ListItems(ctx context.Context, vaultID string) ([]ItemOverview, error) {
	output, err := c.run(ctx, nil, "item", "list", "--vault", vaultID, "--format", "json")
	if err != nil {
		return nil, fmt.Errorf("failed to list items in vault '%s': %w", vaultID, err)
	}

	var items []ItemOverview
	if err := json.Unmarshal(output, &items); err != nil {
		return nil, fmt.Errorf("failed to decode item list: %w", err)
	}

	return items, nil
}

// CreateItem submits one item-creation record. The full item JSON is piped to
// `op item create` on stdin.
func (c *Client) CreateItem(ctx context.Context, params ItemCreateParams) (*ItemOverview, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item '%s': %w", params.Title, err)
	}

	output, err := c.run(ctx, payload, "item", "create", "--vault", params.VaultID, "--format", "json", "-")
	if err != nil {
		return nil, fmt.Errorf("failed to create item '%s': %w", params.Title, err)
	}

	var created ItemOverview
	if err := json.Unmarshal(output, &created); err != nil {
		return nil, fmt.Errorf("failed to decode created item: %w", err)
	}

	return &created, nil
}
