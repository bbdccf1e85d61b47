// Package catalog holds the pure selection logic for product detail
// rendering: variant resolution over the option matrix, per-option
// availability, gallery image selection and the specification table.
// Everything here is synchronous and stateless over already-fetched data.
package catalog

import (
	"strings"

	"modularcloset_server/structs"
)

const variantGIDPrefix = "gid://shopify/ProductVariant/"

// SelectedOptions maps option name to the currently chosen value. It is
// transient UI state, never persisted.
type SelectedOptions map[string]string

// OptionsOf reconstructs the selected-options map from a variant's own
// option pairs.
func OptionsOf(variant *structs.Variant) SelectedOptions {
	if variant == nil {
		return SelectedOptions{}
	}
	selected := make(SelectedOptions, len(variant.SelectedOptions))
	for _, opt := range variant.SelectedOptions {
		selected[opt.Name] = opt.Value
	}
	return selected
}

// ResolveVariant returns the variant whose selected options all agree
// with the map, or nil when none matches. Option combinations are unique
// per variant by construction of the source schema; should the platform
// data ever violate that, the first match in list order wins.
func ResolveVariant(variants []structs.Variant, selected SelectedOptions) *structs.Variant {
	for i := range variants {
		if variantMatches(&variants[i], selected) {
			return &variants[i]
		}
	}
	return nil
}

func variantMatches(variant *structs.Variant, selected SelectedOptions) bool {
	for _, opt := range variant.SelectedOptions {
		if selected[opt.Name] != opt.Value {
			return false
		}
	}
	return len(variant.SelectedOptions) > 0
}

// InitialVariant picks the variant for first render: an explicitly
// requested id (raw or fully-qualified gid) wins, then the first
// available-for-sale variant, then the first variant regardless of
// availability. Nil when the product defines no variants.
func InitialVariant(variants []structs.Variant, requestedID string) *structs.Variant {
	if len(variants) == 0 {
		return nil
	}

	if requestedID != "" {
		for i := range variants {
			if variants[i].ID == requestedID || variants[i].ID == variantGIDPrefix+requestedID {
				return &variants[i]
			}
		}
	}

	for i := range variants {
		if variants[i].AvailableForSale {
			return &variants[i]
		}
	}

	return &variants[0]
}

// OptionAvailable reports whether choosing value for the named option,
// keeping every other current selection, leads to at least one
// available-for-sale variant. Recomputed per call; O(variants × options)
// is fine at catalog scale.
func OptionAvailable(variants []structs.Variant, selected SelectedOptions, name, value string) bool {
	test := make(SelectedOptions, len(selected)+1)
	for k, v := range selected {
		test[k] = v
	}
	test[name] = value

	for i := range variants {
		if variants[i].AvailableForSale && variantMatches(&variants[i], test) {
			return true
		}
	}
	return false
}

// AvailabilityMatrix computes option value availability for every option
// of the product against the current selection. Used by the product detail
// payload so the UI can grey out dead combinations.
func AvailabilityMatrix(options []structs.ProductOption, variants []structs.Variant, selected SelectedOptions) map[string]map[string]bool {
	matrix := make(map[string]map[string]bool, len(options))
	for _, option := range options {
		values := make(map[string]bool, len(option.Values))
		for _, value := range option.Values {
			values[value] = OptionAvailable(variants, selected, option.Name, value)
		}
		matrix[option.Name] = values
	}
	return matrix
}

// NormalizeVariantID strips the gid prefix so ids can round-trip through
// query parameters.
func NormalizeVariantID(id string) string {
	return strings.TrimPrefix(id, variantGIDPrefix)
}
