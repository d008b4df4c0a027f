package mapping

import (
	"strconv"

	"github.com/cimnine/enpass2onepassword/internal/enpass"
	"github.com/cimnine/enpass2onepassword/internal/onepassword"
)

// MapSections derives an item's section list from its fields: the implicit
// default section first, then one section per `section` pseudo-field in
// source order, keyed by the stringified field uid.
func MapSections(fields []enpass.Field) []onepassword.ItemSection {
	sections := []onepassword.ItemSection{{ID: "", Title: ""}}

	for _, field := range fields {
		if field.Type != TypeSection {
			continue
		}
		sections = append(sections, onepassword.ItemSection{
			ID:    strconv.FormatInt(field.UID, 10),
			Title: field.Label,
		})
	}

	return sections
}
