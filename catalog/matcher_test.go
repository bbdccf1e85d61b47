package catalog

import (
	"testing"

	"modularcloset_server/structs"
)

func makeVariant(id string, available bool, options ...structs.SelectedOption) structs.Variant {
	return structs.Variant{
		ID:               id,
		AvailableForSale: available,
		SelectedOptions:  options,
	}
}

func opt(name, value string) structs.SelectedOption {
	return structs.SelectedOption{Name: name, Value: value}
}

var testVariants = []structs.Variant{
	makeVariant("gid://shopify/ProductVariant/1", true, opt("Color", "White"), opt("Size", "Small")),
	makeVariant("gid://shopify/ProductVariant/2", false, opt("Color", "White"), opt("Size", "Large")),
	makeVariant("gid://shopify/ProductVariant/3", true, opt("Color", "Black"), opt("Size", "Small")),
	makeVariant("gid://shopify/ProductVariant/4", true, opt("Color", "Black"), opt("Size", "Large")),
}

func TestResolveVariantRoundTrip(t *testing.T) {
	for i := range testVariants {
		selected := OptionsOf(&testVariants[i])
		resolved := ResolveVariant(testVariants, selected)
		if resolved == nil {
			t.Fatalf("variant %s did not resolve from its own options", testVariants[i].ID)
		}
		if resolved.ID != testVariants[i].ID {
			t.Errorf("resolved %s, want %s", resolved.ID, testVariants[i].ID)
		}
	}
}

func TestResolveVariantNoMatch(t *testing.T) {
	selected := SelectedOptions{"Color": "Red", "Size": "Small"}
	if v := ResolveVariant(testVariants, selected); v != nil {
		t.Errorf("expected nil for unknown combination, got %s", v.ID)
	}
}

func TestResolveVariantEmptyList(t *testing.T) {
	if v := ResolveVariant(nil, SelectedOptions{"Color": "White"}); v != nil {
		t.Errorf("expected nil for empty variant list, got %s", v.ID)
	}
}

func TestInitialVariantRequestedID(t *testing.T) {
	// Full gid wins.
	v := InitialVariant(testVariants, "gid://shopify/ProductVariant/4")
	if v == nil || v.ID != "gid://shopify/ProductVariant/4" {
		t.Fatalf("full gid request not honored: %+v", v)
	}

	// Raw numeric id matches the gid-prefixed variant.
	v = InitialVariant(testVariants, "2")
	if v == nil || v.ID != "gid://shopify/ProductVariant/2" {
		t.Fatalf("raw id request not honored: %+v", v)
	}
}

func TestInitialVariantFallsBackToFirstAvailable(t *testing.T) {
	variants := []structs.Variant{
		makeVariant("gid://shopify/ProductVariant/10", false, opt("Size", "S")),
		makeVariant("gid://shopify/ProductVariant/11", true, opt("Size", "M")),
	}

	v := InitialVariant(variants, "")
	if v == nil || v.ID != "gid://shopify/ProductVariant/11" {
		t.Fatalf("expected first available variant, got %+v", v)
	}

	// Unknown requested id also falls through to first available.
	v = InitialVariant(variants, "999")
	if v == nil || v.ID != "gid://shopify/ProductVariant/11" {
		t.Fatalf("unknown id should fall back to first available, got %+v", v)
	}
}

func TestInitialVariantAllUnavailable(t *testing.T) {
	variants := []structs.Variant{
		makeVariant("gid://shopify/ProductVariant/20", false, opt("Size", "S")),
		makeVariant("gid://shopify/ProductVariant/21", false, opt("Size", "M")),
	}

	v := InitialVariant(variants, "")
	if v == nil || v.ID != "gid://shopify/ProductVariant/20" {
		t.Fatalf("expected first variant when none available, got %+v", v)
	}
}

func TestInitialVariantEmpty(t *testing.T) {
	if v := InitialVariant(nil, ""); v != nil {
		t.Errorf("expected nil for no variants, got %+v", v)
	}
}

func TestOptionAvailableSubstitutesOneOption(t *testing.T) {
	// Current selection White/Small. White+Large exists but is sold out;
	// Black+Small is available.
	selected := SelectedOptions{"Color": "White", "Size": "Small"}

	if OptionAvailable(testVariants, selected, "Size", "Large") {
		t.Error("White/Large is sold out, should be unavailable")
	}
	if !OptionAvailable(testVariants, selected, "Color", "Black") {
		t.Error("Black/Small is in stock, should be available")
	}
	if !OptionAvailable(testVariants, selected, "Size", "Small") {
		t.Error("re-selecting the current value should stay available")
	}
}

func TestAvailabilityMatrix(t *testing.T) {
	options := []structs.ProductOption{
		{Name: "Color", Values: []string{"White", "Black"}},
		{Name: "Size", Values: []string{"Small", "Large"}},
	}
	selected := SelectedOptions{"Color": "Black", "Size": "Large"}

	matrix := AvailabilityMatrix(options, testVariants, selected)

	if !matrix["Color"]["Black"] {
		t.Error("Black/Large is available")
	}
	if matrix["Color"]["White"] {
		t.Error("White/Large is sold out")
	}
	if !matrix["Size"]["Small"] || !matrix["Size"]["Large"] {
		t.Error("both sizes reachable from Black")
	}
}

func TestNormalizeVariantID(t *testing.T) {
	if got := NormalizeVariantID("gid://shopify/ProductVariant/42"); got != "42" {
		t.Errorf("got %q, want 42", got)
	}
	if got := NormalizeVariantID("42"); got != "42" {
		t.Errorf("already-raw id changed: %q", got)
	}
}
