package storefront

import (
	"encoding/json"
	"strconv"

	"modularcloset_server/structs"
)

// MetaobjectField is one key/value entry of a metaobject's field list.
// Value is a pointer because the platform returns explicit nulls for
// fields that exist in the definition but were never filled in.
type MetaobjectField struct {
	Key        string          `json:"key"`
	Value      *string         `json:"value"`
	Reference  *FieldReference `json:"reference,omitempty"`
	References *ReferenceList  `json:"references,omitempty"`
}

// FieldReference is the union of reference shapes this codebase asks for:
// MediaImage, Video and GenericFile, plus nested metaobjects. Only the
// members matching the referenced type are populated.
type FieldReference struct {
	Typename     string            `json:"__typename,omitempty"`
	Image        *ReferencedImage  `json:"image,omitempty"`
	Sources      []VideoSource     `json:"sources,omitempty"`
	PreviewImage *ReferencedImage  `json:"previewImage,omitempty"`
	URL          string            `json:"url,omitempty"`
	Fields       []MetaobjectField `json:"fields,omitempty"`
}

type ReferencedImage struct {
	URL     string `json:"url"`
	Small   string `json:"small,omitempty"` // transformed variant, gallery only
	Full    string `json:"full,omitempty"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type VideoSource struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
}

type ReferenceList struct {
	Nodes []ReferenceNode `json:"nodes"`
}

// ReferenceNode covers the node shapes appearing in reference lists:
// nested metaobjects and product variants (closet add-ons).
type ReferenceNode struct {
	Fields           []MetaobjectField        `json:"fields,omitempty"`
	ID               string                   `json:"id,omitempty"`
	Title            string                   `json:"title,omitempty"`
	AvailableForSale bool                     `json:"availableForSale,omitempty"`
	Price            *structs.Money           `json:"price,omitempty"`
	Image            *structs.Image           `json:"image,omitempty"`
	Product          structs.ProductReference `json:"product,omitempty"`
}

// Metaobject is a generic structured-content record.
type Metaobject struct {
	ID     string            `json:"id"`
	Handle string            `json:"handle,omitempty"`
	Fields []MetaobjectField `json:"fields"`
}

// FieldMap gives typed, optional access to a metaobject's fields. A key
// that is missing or whose value is null reports absent; there is no
// empty-string fallback that could be mistaken for a real value.
type FieldMap map[string]MetaobjectField

func NewFieldMap(fields []MetaobjectField) FieldMap {
	fm := make(FieldMap, len(fields))
	for _, field := range fields {
		fm[field.Key] = field
	}
	return fm
}

// Get returns the field's string value and whether it is present.
func (fm FieldMap) Get(key string) (string, bool) {
	field, ok := fm[key]
	if !ok || field.Value == nil {
		return "", false
	}
	return *field.Value, true
}

// GetOr returns the field's value or fallback when absent.
func (fm FieldMap) GetOr(key, fallback string) string {
	if value, ok := fm.Get(key); ok {
		return value
	}
	return fallback
}

// Int parses the field as an integer, returning fallback when the field
// is absent or not numeric.
func (fm FieldMap) Int(key string, fallback int) int {
	value, ok := fm.Get(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// StringList parses the field as a JSON string array. Absent or malformed
// values yield an empty list.
func (fm FieldMap) StringList(key string) []string {
	value, ok := fm.Get(key)
	if !ok {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return []string{}
	}
	return items
}

// Reference returns the field's reference, or nil when absent.
func (fm FieldMap) Reference(key string) *FieldReference {
	field, ok := fm[key]
	if !ok {
		return nil
	}
	return field.Reference
}

// ImageURL returns the URL of a MediaImage reference held by the field.
func (fm FieldMap) ImageURL(key string) (string, bool) {
	ref := fm.Reference(key)
	if ref == nil || ref.Image == nil || ref.Image.URL == "" {
		return "", false
	}
	return ref.Image.URL, true
}
