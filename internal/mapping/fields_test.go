package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cimnine/enpass2onepassword/internal/enpass"
	"github.com/cimnine/enpass2onepassword/internal/onepassword"
)

func TestMapFieldsOrdersBySourceOrder(t *testing.T) {
	item := enpass.Item{Fields: []enpass.Field{
		{UID: 3, Label: "Third", Type: "text", Value: "c", Order: 30},
		{UID: 1, Label: "First", Type: "text", Value: "a", Order: 10},
		{UID: 2, Label: "Second", Type: "text", Value: "b", Order: 20},
	}}

	fields, err := MapFields(item)
	require.NoError(t, err)

	require.Len(t, fields, 3)
	assert.Equal(t, "a", fields[0].Value)
	assert.Equal(t, "b", fields[1].Value)
	assert.Equal(t, "c", fields[2].Value)
}

func TestMapFieldsSkipsDeletedAndEmpty(t *testing.T) {
	item := enpass.Item{Fields: []enpass.Field{
		{UID: 1, Label: "Gone", Type: "text", Value: "x", Order: 1, Deleted: 1},
		{UID: 2, Label: "Blank", Type: "text", Value: "", Order: 2},
		{UID: 3, Label: "Kept", Type: "text", Value: "y", Order: 3},
	}}

	fields, err := MapFields(item)
	require.NoError(t, err)

	require.Len(t, fields, 1)
	assert.Equal(t, "3", fields[0].ID)
}

func TestMapFieldsSectionContext(t *testing.T) {
	item := enpass.Item{Fields: []enpass.Field{
		{UID: 1, Label: "Host", Type: "text", Value: "example.com", Order: 1},
		{UID: 2, Label: "Servers", Type: "section", Value: "Servers", Order: 2},
		{UID: 3, Label: "Port", Type: "numeric", Value: "22", Order: 3},
		{UID: 4, Label: "User", Type: "text", Value: "root", Order: 4},
	}}

	fields, err := MapFields(item)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	require.NotNil(t, fields[0].SectionID)
	assert.Equal(t, "", *fields[0].SectionID, "field before any section stays in the default section")

	require.NotNil(t, fields[1].SectionID)
	assert.Equal(t, "2", *fields[1].SectionID)
	require.NotNil(t, fields[2].SectionID)
	assert.Equal(t, "2", *fields[2].SectionID)

	// Round trip: every non-reserved, non-empty section reference resolves in
	// the item's section list.
	sections := MapSections(item.Fields)
	ids := make(map[string]bool, len(sections))
	for _, section := range sections {
		ids[section.ID] = true
	}
	for _, field := range fields {
		if field.SectionID != nil && *field.SectionID != "" {
			assert.True(t, ids[*field.SectionID], "section reference %q must resolve", *field.SectionID)
		}
	}
}

func TestMapFieldsReservedSlots(t *testing.T) {
	item := enpass.Item{Fields: []enpass.Field{
		{UID: 1, Label: "Username", Type: "username", Value: "octocat", Order: 1},
		{UID: 2, Label: "Password", Type: "password", Value: "hunter2", Order: 2, Sensitive: 1},
		{UID: 3, Label: "Old login", Type: "username", Value: "oldcat", Order: 3},
	}}

	fields, err := MapFields(item)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, onepassword.FieldIDUsername, fields[0].ID)
	assert.Nil(t, fields[0].SectionID)

	assert.Equal(t, onepassword.FieldIDPassword, fields[1].ID)
	assert.Nil(t, fields[1].SectionID)
	assert.Equal(t, onepassword.FieldTypeConcealed, fields[1].FieldType)

	// Only the first username-typed field claims the reserved slot.
	assert.Equal(t, "3", fields[2].ID)
	require.NotNil(t, fields[2].SectionID)
}

func TestMapFieldsEmailBackfillsUsername(t *testing.T) {
	item := enpass.Item{Fields: []enpass.Field{
		{UID: 1, Label: "E-Mail", Type: "email", Value: "a@example.com", Order: 1},
		{UID: 2, Label: "Alt", Type: "email", Value: "b@example.com", Order: 2},
		{UID: 3, Label: "Password", Type: "password", Value: "hunter2", Order: 3},
	}}

	fields, err := MapFields(item)
	require.NoError(t, err)
	require.Len(t, fields, 4)

	assert.Equal(t, onepassword.FieldIDEmail, fields[0].ID)
	assert.Nil(t, fields[0].SectionID)

	// Second email stays section-scoped under its own uid.
	assert.Equal(t, "2", fields[1].ID)

	synthetic := fields[3]
	assert.Equal(t, onepassword.FieldIDUsername, synthetic.ID)
	assert.Equal(t, "Username", synthetic.Title)
	assert.Equal(t, onepassword.FieldTypeText, synthetic.FieldType)
	assert.Equal(t, "a@example.com", synthetic.Value, "backfill uses the first email's value")
	assert.Nil(t, synthetic.SectionID)
}

func TestMapFieldsNoBackfillWhenUsernamePresent(t *testing.T) {
	item := enpass.Item{Fields: []enpass.Field{
		{UID: 1, Label: "Username", Type: "username", Value: "octocat", Order: 1},
		{UID: 2, Label: "E-Mail", Type: "email", Value: "a@example.com", Order: 2},
	}}

	fields, err := MapFields(item)
	require.NoError(t, err)

	require.Len(t, fields, 2)
	assert.Equal(t, onepassword.FieldIDUsername, fields[0].ID)
	assert.Equal(t, onepassword.FieldIDEmail, fields[1].ID)
}

func TestMapFieldsSensitiveAlwaysConcealed(t *testing.T) {
	item := enpass.Item{Fields: []enpass.Field{
		{UID: 1, Label: "Recovery code", Type: "text", Value: "1234", Order: 1, Sensitive: 1},
	}}

	fields, err := MapFields(item)
	require.NoError(t, err)

	require.Len(t, fields, 1)
	assert.Equal(t, onepassword.FieldTypeConcealed, fields[0].FieldType)
}

func TestMapFieldsLowercasesTitles(t *testing.T) {
	item := enpass.Item{Fields: []enpass.Field{
		{UID: 1, Label: "Access PIN", Type: "pin", Value: "0000", Order: 1},
	}}

	fields, err := MapFields(item)
	require.NoError(t, err)

	require.Len(t, fields, 1)
	assert.Equal(t, "access pin", fields[0].Title)
}

func TestMapFieldsUnknownTypeFails(t *testing.T) {
	item := enpass.Item{Title: "T", Fields: []enpass.Field{
		{UID: 1, Label: "Odd", Type: "hologram", Value: "x", Order: 1},
	}}

	_, err := MapFields(item)

	var unmapped *UnmappedFieldTypeError
	require.ErrorAs(t, err, &unmapped)
}
