package services

import (
	"context"
	"testing"
)

func TestFAQsFilterSortAndAnchor(t *testing.T) {
	doer := &fakeDoer{payload: `{
		"metaobjects": {"nodes": [
			{
				"id": "gid://shopify/Metaobject/2",
				"fields": [
					{"key": "question", "value": "What tools do I need?"},
					{"key": "categories", "value": "[\"Homepage\", \"Assembly\"]"}
				]
			},
			{
				"id": "gid://shopify/Metaobject/1",
				"fields": [
					{"key": "question", "value": "How long does shipping take?"},
					{"key": "categories", "value": "[\"Homepage\"]"}
				]
			},
			{
				"id": "gid://shopify/Metaobject/3",
				"fields": [
					{"key": "question", "value": "Do you offer trade pricing?"},
					{"key": "categories", "value": "[\"Contractors\"]"}
				]
			},
			{
				"id": "gid://shopify/Metaobject/4",
				"fields": [{"key": "categories", "value": "[\"Homepage\"]"}]
			}
		]}
	}`}
	svc := NewFAQService(doer, nopContentStore{}, testLogger())

	items, err := svc.FAQs(context.Background(), "homepage")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// Ascending by question text, and questionless nodes dropped.
	if items[0].Question != "How long does shipping take?" {
		t.Errorf("sort order: first = %q", items[0].Question)
	}
	if items[0].Anchor != "how-long-does-shipping-take" {
		t.Errorf("anchor = %q", items[0].Anchor)
	}
	if items[1].Anchor != "what-tools-do-i-need" {
		t.Errorf("anchor = %q", items[1].Anchor)
	}
}

func TestFAQsNoFilterReturnsAll(t *testing.T) {
	doer := &fakeDoer{payload: `{
		"metaobjects": {"nodes": [
			{"id": "1", "fields": [{"key": "question", "value": "A?"}]},
			{"id": "2", "fields": [{"key": "question", "value": "B?"}]}
		]}
	}`}
	svc := NewFAQService(doer, nopContentStore{}, testLogger())

	items, err := svc.FAQs(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
}
