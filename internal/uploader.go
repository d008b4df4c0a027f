package internal

import (
	"context"
	"fmt"

	"github.com/cimnine/enpass2onepassword/internal/mapping"
	"github.com/cimnine/enpass2onepassword/internal/onepassword"
)

// ItemCreator submits one item-creation record to the destination vault.
type ItemCreator interface {
	CreateItem(ctx context.Context, params onepassword.ItemCreateParams) (*onepassword.ItemOverview, error)
}

// Limiter admits one submission at a time, blocking until capacity exists.
type Limiter interface {
	Acquire(ctx context.Context) error
}

// Uploader submits mapped entries strictly sequentially, one in flight at a
// time, in source order. The destination API is throttled per account, so
// parallel submission would only trigger more throttling, not more
// throughput.
type Uploader struct {
	Creator ItemCreator
	Limiter Limiter

	// Progress, when set, is called with the zero-based batch position before
	// each submission.
	Progress func(position, total int)
}

// Upload submits all entries. On the first failure it reports the failing
// entry's source index and stops; already-created items stay in the vault,
// and the suggested skip resumes one past the failure. Excluded source items
// leave gaps in the batch, so the source index carried on each entry is used
// rather than the batch position, which would undercount what skip must
// cover and make a resume re-create items.
func (u *Uploader) Upload(ctx context.Context, entries []mapping.Entry) error {
	total := len(entries)

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		if u.Limiter != nil {
			if err := u.Limiter.Acquire(ctx); err != nil {
				return fmt.Errorf("waiting for upload capacity: %w", err)
			}
		}

		if u.Progress != nil {
			u.Progress(i, total)
		}

		if _, err := u.Creator.CreateItem(ctx, entry.Params); err != nil {
			return fmt.Errorf("failed to create entry %d ('%s'): %w. Rerun with --skip %d to resume after it",
				entry.SourceIndex, entry.Params.Title, err, entry.SourceIndex+1)
		}
	}

	return nil
}
