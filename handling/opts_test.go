package handling

import (
	"net/http/httptest"
	"testing"
)

func TestParseSearchOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/search?q=closet", nil)

	opts := ParseSearchOptions(r)
	if opts.Query != "closet" {
		t.Errorf("query = %q", opts.Query)
	}
	if opts.Limit != 4 {
		t.Errorf("default limit = %d, want 4", opts.Limit)
	}
}

func TestParseSearchOptionsLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/search?q=closet&limit=8", nil)
	if opts := ParseSearchOptions(r); opts.Limit != 8 {
		t.Errorf("limit = %d, want 8", opts.Limit)
	}

	// Invalid limits keep the default instead of erroring.
	r = httptest.NewRequest("GET", "/api/search?q=closet&limit=abc", nil)
	if opts := ParseSearchOptions(r); opts.Limit != 4 {
		t.Errorf("limit = %d, want 4", opts.Limit)
	}
}

func TestParseCollectionOptions(t *testing.T) {
	r := httptest.NewRequest("GET", "/collections/vista?first=12&after=abc&sort=price-desc", nil)

	opts, err := ParseCollectionOptions(r)
	if err != nil {
		t.Fatal(err)
	}
	if opts.First != 12 || opts.After != "abc" || opts.SortKey != "price-desc" {
		t.Errorf("got %+v", opts)
	}
}

func TestParseCollectionOptionsInvalidFirst(t *testing.T) {
	r := httptest.NewRequest("GET", "/collections/vista?first=notanumber", nil)
	if _, err := ParseCollectionOptions(r); err == nil {
		t.Error("expected error for non-numeric first")
	}
}
