package storefront

import (
	"reflect"
	"testing"
)

func stringPtr(s string) *string { return &s }

func testFieldMap() FieldMap {
	return NewFieldMap([]MetaobjectField{
		{Key: "question", Value: stringPtr("How long is shipping?")},
		{Key: "nullish", Value: nil},
		{Key: "stars", Value: stringPtr("4")},
		{Key: "bad_number", Value: stringPtr("four")},
		{Key: "categories", Value: stringPtr(`["Homepage","Shipping"]`)},
		{Key: "broken_list", Value: stringPtr("not json")},
		{Key: "image", Reference: &FieldReference{Image: &ReferencedImage{URL: "https://cdn.example.com/a.jpg"}}},
	})
}

func TestFieldMapGet(t *testing.T) {
	fm := testFieldMap()

	if v, ok := fm.Get("question"); !ok || v != "How long is shipping?" {
		t.Errorf("present key failed: %q %v", v, ok)
	}

	// A key present in the definition but with a null value is absent,
	// same as a key that never existed.
	if _, ok := fm.Get("nullish"); ok {
		t.Error("null value should report absent")
	}
	if _, ok := fm.Get("missing"); ok {
		t.Error("missing key should report absent")
	}
}

func TestFieldMapGetOr(t *testing.T) {
	fm := testFieldMap()

	if v := fm.GetOr("question", "fallback"); v != "How long is shipping?" {
		t.Errorf("got %q", v)
	}
	if v := fm.GetOr("missing", "fallback"); v != "fallback" {
		t.Errorf("got %q", v)
	}
}

func TestFieldMapInt(t *testing.T) {
	fm := testFieldMap()

	if v := fm.Int("stars", 0); v != 4 {
		t.Errorf("got %d", v)
	}
	if v := fm.Int("bad_number", 5); v != 5 {
		t.Errorf("non-numeric should fall back, got %d", v)
	}
	if v := fm.Int("missing", 7); v != 7 {
		t.Errorf("missing should fall back, got %d", v)
	}
}

func TestFieldMapStringList(t *testing.T) {
	fm := testFieldMap()

	if got := fm.StringList("categories"); !reflect.DeepEqual(got, []string{"Homepage", "Shipping"}) {
		t.Errorf("got %v", got)
	}
	if got := fm.StringList("broken_list"); len(got) != 0 {
		t.Errorf("malformed list should be empty, got %v", got)
	}
	if got := fm.StringList("missing"); len(got) != 0 {
		t.Errorf("missing list should be empty, got %v", got)
	}
}

func TestFieldMapImageURL(t *testing.T) {
	fm := testFieldMap()

	if url, ok := fm.ImageURL("image"); !ok || url != "https://cdn.example.com/a.jpg" {
		t.Errorf("got %q %v", url, ok)
	}
	if _, ok := fm.ImageURL("question"); ok {
		t.Error("non-reference field should report absent")
	}
}
