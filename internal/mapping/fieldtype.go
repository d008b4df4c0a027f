package mapping

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cimnine/enpass2onepassword/internal/enpass"
	"github.com/cimnine/enpass2onepassword/internal/onepassword"
)

// TypeSection is the Enpass pseudo-field type that opens a new section.
// TypeAndroidApp marks a mobile-app autofill target; it is consumed for
// website generation and never materializes as a field.
const (
	TypeSection    = "section"
	TypeAndroidApp = ".Android#"
	TypeUsername   = "username"
	TypePassword   = "password"
	TypeEmail      = "email"
	TypeURL        = "url"
)

// fieldTypeTable is the fixed Enpass field-type to 1Password field-type
// mapping. Android-app markers never reach this table.
var fieldTypeTable = map[string]onepassword.ItemFieldType{
	"ccBankname":    onepassword.FieldTypeText,
	"ccCvc":         onepassword.FieldTypeConcealed,
	"ccExpiry":      onepassword.FieldTypeText,
	"ccName":        onepassword.FieldTypeText,
	"ccNumber":      onepassword.FieldTypeCreditCardNumber,
	"ccPin":         onepassword.FieldTypeConcealed,
	"ccTxnpassword": onepassword.FieldTypeConcealed,
	"ccType":        onepassword.FieldTypeCreditCardType,
	"ccValidfrom":   onepassword.FieldTypeText,
	"date":          onepassword.FieldTypeText,
	"email":         onepassword.FieldTypeText,
	"multiline":     onepassword.FieldTypeText,
	"numeric":       onepassword.FieldTypeText,
	"password":      onepassword.FieldTypeConcealed,
	"phone":         onepassword.FieldTypePhone,
	"pin":           onepassword.FieldTypeConcealed,
	"section":       onepassword.FieldTypeUnsupported,
	"text":          onepassword.FieldTypeText,
	"totp":          onepassword.FieldTypeTOTP,
	"url":           onepassword.FieldTypeURL,
	"username":      onepassword.FieldTypeText,
}

// UnmappedFieldTypeError reports an Enpass field type with no table entry.
// An unrecognized type might carry sensitive data that would otherwise be
// rendered as plain text, so the whole run stops.
type UnmappedFieldTypeError struct {
	FieldType  string
	FieldLabel string
	FieldUID   int64
	ItemTitle  string
	ItemUUID   uuid.UUID
}

func (e *UnmappedFieldTypeError) Error() string {
	return fmt.Sprintf("unexpected field type '%s' on field '%s' (%d) on item '%s' (%s)",
		e.FieldType, e.FieldLabel, e.FieldUID, e.ItemTitle, e.ItemUUID)
}

// MapFieldType translates a field's Enpass type tag. The item is only used
// for error reporting.
func MapFieldType(item enpass.Item, field enpass.Field) (onepassword.ItemFieldType, error) {
	fieldType, ok := fieldTypeTable[field.Type]
	if !ok {
		return "", &UnmappedFieldTypeError{
			FieldType:  field.Type,
			FieldLabel: field.Label,
			FieldUID:   field.UID,
			ItemTitle:  item.Title,
			ItemUUID:   item.UUID,
		}
	}
	return fieldType, nil
}
