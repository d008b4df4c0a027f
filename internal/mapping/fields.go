package mapping

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cimnine/enpass2onepassword/internal/enpass"
	"github.com/cimnine/enpass2onepassword/internal/onepassword"
)

// fieldPass is the accumulator threaded through one field-mapping pass.
// currentSection tracks the most recent `section` pseudo-field; the taken
// flags enforce first-match-wins on the reserved slots.
type fieldPass struct {
	currentSection string
	usernameTaken  bool
	passwordTaken  bool
	emailTaken     bool
	firstEmail     string
}

// MapFields transforms an item's fields into 1Password fields. Fields are
// processed in ascending source order (stable for ties); deleted and
// empty-valued fields are dropped, `section` fields only move the section
// context, and Android-app markers are consumed elsewhere for websites.
func MapFields(item enpass.Item) ([]onepassword.ItemField, error) {
	ordered := slices.Clone(item.Fields)
	slices.SortStableFunc(ordered, func(a, b enpass.Field) int {
		return a.Order - b.Order
	})

	var result []onepassword.ItemField
	var pass fieldPass

	for _, field := range ordered {
		if field.Deleted != 0 {
			continue
		}
		if field.Value == "" {
			continue
		}
		if field.Type == TypeSection {
			pass.currentSection = strconv.FormatInt(field.UID, 10)
			continue
		}
		if field.Type == TypeAndroidApp {
			continue
		}

		id, sectionID := pass.slot(field)

		fieldType, err := MapFieldType(item, field)
		if err != nil {
			return nil, err
		}
		if field.Sensitive != 0 {
			fieldType = onepassword.FieldTypeConcealed
		}

		result = append(result, onepassword.ItemField{
			ID:        id,
			Title:     strings.ToLower(field.Label),
			FieldType: fieldType,
			Value:     field.Value,
			SectionID: sectionID,
		})
	}

	// An email-as-login item still gets a username slot, backed by the first
	// email's value, so the login form can be filled.
	if !pass.usernameTaken && pass.emailTaken {
		result = append(result, onepassword.ItemField{
			ID:        onepassword.FieldIDUsername,
			Title:     "Username",
			FieldType: onepassword.FieldTypeText,
			Value:     pass.firstEmail,
		})
	}

	return result, nil
}

// slot decides a field's destination ID and section reference. The first
// username-, password- and email-typed fields claim their reserved slot with
// the section reference cleared; everything else keeps the stringified uid
// and the current section.
func (p *fieldPass) slot(field enpass.Field) (string, *string) {
	switch {
	case field.Type == TypeUsername && !p.usernameTaken:
		p.usernameTaken = true
		return onepassword.FieldIDUsername, nil
	case field.Type == TypePassword && !p.passwordTaken:
		p.passwordTaken = true
		return onepassword.FieldIDPassword, nil
	case field.Type == TypeEmail && !p.emailTaken:
		p.emailTaken = true
		p.firstEmail = field.Value
		return onepassword.FieldIDEmail, nil
	}

	section := p.currentSection
	return strconv.FormatInt(field.UID, 10), &section
}
