package onepassword

// ItemCategory is the 1Password item category.
type ItemCategory string

const (
	ItemCategoryLogin           ItemCategory = "Login"
	ItemCategoryPassword        ItemCategory = "Password"
	ItemCategorySecureNote      ItemCategory = "SecureNote"
	ItemCategoryCreditCard      ItemCategory = "CreditCard"
	ItemCategoryBankAccount     ItemCategory = "BankAccount"
	ItemCategoryIdentity        ItemCategory = "Identity"
	ItemCategorySoftwareLicense ItemCategory = "SoftwareLicense"
	ItemCategoryRouter          ItemCategory = "Router"
	ItemCategoryPassport        ItemCategory = "Passport"
)

// ItemFieldType is the 1Password field type.
type ItemFieldType string

const (
	FieldTypeText             ItemFieldType = "Text"
	FieldTypeConcealed        ItemFieldType = "Concealed"
	FieldTypeCreditCardNumber ItemFieldType = "CreditCardNumber"
	FieldTypeCreditCardType   ItemFieldType = "CreditCardType"
	FieldTypePhone            ItemFieldType = "Phone"
	FieldTypeTOTP             ItemFieldType = "Totp"
	FieldTypeURL              ItemFieldType = "Url"
	FieldTypeEmail            ItemFieldType = "Email"
	FieldTypeUnsupported      ItemFieldType = "Unsupported"
)

// AutofillBehavior controls whether 1Password offers to fill a website entry.
type AutofillBehavior string

const (
	AutofillBehaviorAnywhereOnWebsite AutofillBehavior = "AnywhereOnWebsite"
	AutofillBehaviorNever             AutofillBehavior = "Never"
)

// Reserved field IDs. A field carrying one of these bypasses section scoping
// and may appear at most once per item.
const (
	FieldIDUsername = "username"
	FieldIDPassword = "password"
	FieldIDEmail    = "email"
)

// ItemSection groups fields within an item. The section with the empty ID is
// the implicit default section every item has.
type ItemSection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ItemField is a single field of an item to create. A nil SectionID marks a
// reserved-slot field that is not scoped to any section.
type ItemField struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	FieldType ItemFieldType `json:"field_type"`
	Value     string        `json:"value"`
	SectionID *string       `json:"section_id,omitempty"`
}

// Website is a URL attached to Login and Password items.
type Website struct {
	URL              string           `json:"url"`
	Label            string           `json:"label,omitempty"`
	AutofillBehavior AutofillBehavior `json:"autofill_behavior"`
}

// ItemCreateParams is the full record submitted to create one item. It is
// built once per source entry and never mutated afterwards.
type ItemCreateParams struct {
	Title    string        `json:"title"`
	VaultID  string        `json:"vault_id"`
	Tags     []string      `json:"tags,omitempty"`
	Category ItemCategory  `json:"category"`
	Sections []ItemSection `json:"sections,omitempty"`
	Websites []Website     `json:"websites,omitempty"`
	Fields   []ItemField   `json:"fields,omitempty"`
	Notes    string        `json:"notes,omitempty"`
}

// Vault is the subset of vault metadata the migration needs.
type Vault struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemOverview is the summary record returned when listing or creating items.
type ItemOverview struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
