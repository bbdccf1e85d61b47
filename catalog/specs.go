package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"modularcloset_server/structs"
)

// SpecRow is one rendered specification line.
type SpecRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SpecSection groups rows; the material section renders untitled.
type SpecSection struct {
	Title string    `json:"title,omitempty"`
	Rows  []SpecRow `json:"rows"`
}

type specKey struct {
	label string
	field func(*structs.Variant) *structs.MetafieldValue
}

var materialKeys = []specKey{
	{"Material", func(v *structs.Variant) *structs.MetafieldValue { return v.Material }},
	{"Color", func(v *structs.Variant) *structs.MetafieldValue { return v.VariantColor }},
	{"Finish", func(v *structs.Variant) *structs.MetafieldValue { return v.Finish }},
}

var dimensionKeys = []specKey{
	{"Height", func(v *structs.Variant) *structs.MetafieldValue { return v.Height }},
	{"Width", func(v *structs.Variant) *structs.MetafieldValue { return v.Width }},
	{"Depth", func(v *structs.Variant) *structs.MetafieldValue { return v.Depth }},
	{"Internal Height", func(v *structs.Variant) *structs.MetafieldValue { return v.InternalHeight }},
	{"Internal Width", func(v *structs.Variant) *structs.MetafieldValue { return v.InternalWidth }},
	{"Hanging Space", func(v *structs.Variant) *structs.MetafieldValue { return v.HangingSpace }},
	{"Shelf Space", func(v *structs.Variant) *structs.MetafieldValue { return v.ShelfSpace }},
}

var detailKeys = []specKey{
	{"Mount Type", func(v *structs.Variant) *structs.MetafieldValue { return v.MountType }},
	{"Number of Rods", func(v *structs.Variant) *structs.MetafieldValue { return v.NumberOfRods }},
	{"Number of Fixed Shelves", func(v *structs.Variant) *structs.MetafieldValue { return v.NumberOfFixedShelves }},
	{"Number of Adjustable Shelves", func(v *structs.Variant) *structs.MetafieldValue { return v.NumberOfAdjustableShelves }},
	{"Number of Drawers", func(v *structs.Variant) *structs.MetafieldValue { return v.NumberOfDrawers }},
	{"Total Weight Capacity Lbs.", func(v *structs.Variant) *structs.MetafieldValue { return v.TotalWeightCapacity }},
	{"Hardware Included", func(v *structs.Variant) *structs.MetafieldValue { return v.HardwareIncluded }},
}

// BuildSpecSections renders the variant's specification metafields into
// the three fixed sections. Sections with no present values are omitted
// entirely.
func BuildSpecSections(variant *structs.Variant) []SpecSection {
	if variant == nil {
		return nil
	}

	var sections []SpecSection
	for _, group := range []struct {
		title string
		keys  []specKey
	}{
		{"", materialKeys},
		{"Dimensions", dimensionKeys},
		{"Item Details", detailKeys},
	} {
		rows := buildRows(variant, group.keys)
		if len(rows) > 0 {
			sections = append(sections, SpecSection{Title: group.title, Rows: rows})
		}
	}
	return sections
}

func buildRows(variant *structs.Variant, keys []specKey) []SpecRow {
	var rows []SpecRow
	for _, key := range keys {
		metafield := key.field(variant)
		if metafield == nil {
			continue
		}
		if value, ok := CleanValue(metafield.Value); ok {
			rows = append(rows, SpecRow{Label: key.label, Value: value})
		}
	}
	return rows
}

// dimensionValue is the JSON shape content editors store for measured
// fields, e.g. {"value":14.0,"unit":"INCHES"}.
type dimensionValue struct {
	Value *json.Number `json:"value"`
	Unit  string       `json:"unit"`
}

// CleanValue normalizes a raw metafield string. Surrounding quotes are
// stripped; literal "null", empty and "0" count as absent; a
// value+unit JSON object renders as "{value} {unit}" with INCHES
// shortened to "in". Malformed JSON falls back to the cleaned string.
func CleanValue(raw string) (string, bool) {
	cleaned := strings.Trim(raw, `"'`)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "null" || cleaned == "" || cleaned == "0" {
		return "", false
	}

	var dim dimensionValue
	if err := json.Unmarshal([]byte(cleaned), &dim); err == nil && dim.Value != nil {
		if dim.Unit != "" {
			unit := strings.ToLower(dim.Unit)
			if dim.Unit == "INCHES" {
				unit = "in"
			}
			return fmt.Sprintf("%s %s", dim.Value.String(), unit), true
		}
		return dim.Value.String(), true
	}

	return cleaned, true
}
