// Package mapping translates Enpass records into 1Password item-creation
// records. All mappers are pure: they read the export and produce destination
// values, with typed errors for anything the fixed tables do not cover.
package mapping

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cimnine/enpass2onepassword/internal/enpass"
	"github.com/cimnine/enpass2onepassword/internal/onepassword"
)

// categoryTable is the fixed Enpass category to 1Password category mapping.
// An Enpass category missing here is a hard stop: guessing a category risks
// silently mis-classifying entries in a vault.
var categoryTable = map[string]onepassword.ItemCategory{
	"computer":      onepassword.ItemCategoryRouter,
	"creditcard":    onepassword.ItemCategoryCreditCard,
	"finance":       onepassword.ItemCategoryBankAccount,
	"identity":      onepassword.ItemCategoryIdentity,
	"license":       onepassword.ItemCategorySoftwareLicense,
	"login":         onepassword.ItemCategoryLogin,
	"misc":          onepassword.ItemCategorySecureNote,
	"note":          onepassword.ItemCategorySecureNote,
	"password":      onepassword.ItemCategoryPassword,
	"travel":        onepassword.ItemCategoryPassport,
	"uncategorized": onepassword.ItemCategorySecureNote,
}

// UnmappedCategoryError reports an Enpass category with no table entry.
type UnmappedCategoryError struct {
	Category  string
	ItemTitle string
	ItemUUID  uuid.UUID
}

func (e *UnmappedCategoryError) Error() string {
	return fmt.Sprintf("unexpected category '%s' on item '%s' (%s)", e.Category, e.ItemTitle, e.ItemUUID)
}

// MapCategory translates an item's Enpass category tag.
func MapCategory(item enpass.Item) (onepassword.ItemCategory, error) {
	category, ok := categoryTable[item.Category]
	if !ok {
		return "", &UnmappedCategoryError{Category: item.Category, ItemTitle: item.Title, ItemUUID: item.UUID}
	}
	return category, nil
}
