package mapping

import (
	"github.com/google/uuid"

	"github.com/cimnine/enpass2onepassword/internal/enpass"
	"github.com/cimnine/enpass2onepassword/internal/onepassword"
)

// Entry pairs an item-creation record with the index of its source entry in
// the export. Excluded entries leave gaps, so a position in the mapped batch
// does not line up with the source index that skip counts.
type Entry struct {
	SourceIndex int
	Params      onepassword.ItemCreateParams
}

// MapItems maps all eligible items of an export into item-creation records
// for the given vault. The first skip items are passed over (resume support);
// trashed and archived items are excluded entirely. The produced order is the
// source order.
func MapItems(export *enpass.Export, vaultID string, skip int) ([]Entry, error) {
	folders := export.FolderTitles()

	items := export.Items
	if skip >= len(items) {
		return nil, nil
	}
	if skip > 0 {
		items = items[skip:]
	}

	var result []Entry
	for i, item := range items {
		if item.Trashed != 0 || item.Archived != 0 {
			continue
		}

		params, err := MapItem(item, folders, vaultID)
		if err != nil {
			return nil, err
		}
		result = append(result, Entry{SourceIndex: skip + i, Params: *params})
	}

	return result, nil
}

// MapItem builds the item-creation record for one eligible item. Nothing is
// submitted here; mapping completes in full before any upload starts.
func MapItem(item enpass.Item, folders map[uuid.UUID]string, vaultID string) (*onepassword.ItemCreateParams, error) {
	category, err := MapCategory(item)
	if err != nil {
		return nil, err
	}

	autofill := onepassword.AutofillBehaviorNever
	if item.AutoSubmit != 0 {
		autofill = onepassword.AutofillBehaviorAnywhereOnWebsite
	}

	var websites []onepassword.Website
	if category == onepassword.ItemCategoryPassword || category == onepassword.ItemCategoryLogin {
		websites = mapWebsites(item.Fields, autofill)
	}

	fields, err := MapFields(item)
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, folderUUID := range item.Folders {
		if title, ok := folders[folderUUID]; ok {
			tags = append(tags, title)
		}
	}

	return &onepassword.ItemCreateParams{
		Title:    item.Title,
		VaultID:  vaultID,
		Tags:     tags,
		Category: category,
		Sections: MapSections(item.Fields),
		Websites: websites,
		Fields:   fields,
		Notes:    item.Note,
	}, nil
}

// mapWebsites collects website entries for Login and Password items:
// url-typed fields with the item's autofill behavior, then Android-app
// markers, which always autofill since they point at mobile apps.
func mapWebsites(fields []enpass.Field, autofill onepassword.AutofillBehavior) []onepassword.Website {
	var websites []onepassword.Website

	for _, field := range fields {
		if field.Type == TypeURL {
			websites = append(websites, onepassword.Website{
				URL:              field.Value,
				Label:            field.Label,
				AutofillBehavior: autofill,
			})
		}
	}
	for _, field := range fields {
		if field.Type == TypeAndroidApp {
			websites = append(websites, onepassword.Website{
				URL:              field.Value,
				Label:            field.Label,
				AutofillBehavior: onepassword.AutofillBehaviorAnywhereOnWebsite,
			})
		}
	}

	return websites
}
