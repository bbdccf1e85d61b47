package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"modularcloset_server/storefront"
	"modularcloset_server/structs"
)

// scriptedDoer replays queued responses in order, one per call. An entry
// with a non-nil error fails that call; otherwise its payload is decoded
// into out.
type scriptedDoer struct {
	payloads []string
	errs     []error

	calls int
	vars  []map[string]any
}

func (f *scriptedDoer) Do(ctx context.Context, query string, vars map[string]any, out any) error {
	i := f.calls
	f.calls++
	f.vars = append(f.vars, vars)
	if i < len(f.errs) && f.errs[i] != nil {
		return f.errs[i]
	}
	if i >= len(f.payloads) {
		return fmt.Errorf("unscripted call %d", i)
	}
	return json.Unmarshal([]byte(f.payloads[i]), out)
}

// memCartStore is an in-memory cartStore.
type memCartStore struct {
	snapshots map[string]*structs.CartSnapshot
	setCalls  int
}

func (m *memCartStore) GetCartSnapshot(token string) (*structs.CartSnapshot, error) {
	return m.snapshots[token], nil
}

func (m *memCartStore) SetCartSnapshot(token string, snapshot *structs.CartSnapshot) error {
	if m.snapshots == nil {
		m.snapshots = map[string]*structs.CartSnapshot{}
	}
	m.setCalls++
	m.snapshots[token] = snapshot
	return nil
}

func cartPayloadJSON(mutation string, quantity int) string {
	return fmt.Sprintf(`{
		%q: {
			"cart": {
				"id": "gid://shopify/Cart/1",
				"checkoutUrl": "https://checkout.example/1",
				"totalQuantity": %d,
				"lines": {"edges": [{"node": {
					"id": "gid://shopify/CartLine/1",
					"quantity": %d,
					"merchandise": {
						"id": "gid://shopify/ProductVariant/11",
						"title": "White / 24in",
						"price": {"amount": "129.00", "currencyCode": "USD"},
						"product": {"id": "gid://shopify/Product/5", "title": "Vista Tower", "handle": "vista-tower"}
					}
				}}]}
			},
			"userErrors": []
		}
	}`, mutation, quantity, quantity)
}

func seededCartStore(token string) *memCartStore {
	return &memCartStore{snapshots: map[string]*structs.CartSnapshot{
		token: {
			CartID: "gid://shopify/Cart/1",
			Items: []structs.CartItem{{
				LineID:    "gid://shopify/CartLine/1",
				VariantID: "gid://shopify/ProductVariant/11",
				Quantity:  2,
				Price:     129,
			}},
		},
	}}
}

func TestAddItemMergesRepeatedVariant(t *testing.T) {
	doer := &scriptedDoer{payloads: []string{
		cartPayloadJSON("cartCreate", 2),
		cartPayloadJSON("cartLinesAdd", 5),
	}}
	store := &memCartStore{}
	svc := NewCartService(doer, store, testLogger())

	first, err := svc.AddItem(context.Background(), "tok", "gid://shopify/ProductVariant/11", 2)
	if err != nil {
		t.Fatal(err)
	}
	if first.CartID == "" || len(first.Items) != 1 || first.Items[0].Quantity != 2 {
		t.Fatalf("after first add: %+v", first)
	}

	second, err := svc.AddItem(context.Background(), "tok", "gid://shopify/ProductVariant/11", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Items) != 1 {
		t.Fatalf("repeated variant must stay one line, got %d", len(second.Items))
	}
	if second.Items[0].Quantity != 5 || second.TotalItems() != 5 {
		t.Errorf("merged quantity = %d, total = %d, want 5", second.Items[0].Quantity, second.TotalItems())
	}

	if doer.calls != 2 {
		t.Fatalf("made %d upstream calls, want 2", doer.calls)
	}
	if got := doer.vars[1]["cartId"]; got != "gid://shopify/Cart/1" {
		t.Errorf("second add must target the existing cart, sent cartId %v", got)
	}
}

func TestAddItemRemoteFailureKeepsSnapshot(t *testing.T) {
	doer := &scriptedDoer{errs: []error{errors.New("upstream down")}}
	store := seededCartStore("tok")
	svc := NewCartService(doer, store, testLogger())

	if _, err := svc.AddItem(context.Background(), "tok", "gid://shopify/ProductVariant/11", 1); err == nil {
		t.Fatal("expected error")
	}

	if store.setCalls != 0 {
		t.Errorf("snapshot was written %d times during a failed mutation", store.setCalls)
	}
	kept := store.snapshots["tok"]
	if len(kept.Items) != 1 || kept.Items[0].Quantity != 2 {
		t.Errorf("snapshot changed after failure: %+v", kept)
	}
}

func TestAddItemUserErrorsFailWholeOperation(t *testing.T) {
	doer := &scriptedDoer{payloads: []string{`{
		"cartCreate": {
			"cart": null,
			"userErrors": [{"field": ["lines"], "message": "Variant is sold out"}]
		}
	}`}}
	store := &memCartStore{}
	svc := NewCartService(doer, store, testLogger())

	_, err := svc.AddItem(context.Background(), "tok", "gid://shopify/ProductVariant/11", 1)
	var userErrs *storefront.UserErrorsError
	if !errors.As(err, &userErrs) {
		t.Fatalf("err = %v, want UserErrorsError", err)
	}
	if store.setCalls != 0 {
		t.Error("user errors must not persist a snapshot")
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	doer := &scriptedDoer{payloads: []string{`{
		"cartLinesRemove": {
			"cart": {"id": "gid://shopify/Cart/1", "checkoutUrl": "", "totalQuantity": 0, "lines": {"edges": []}},
			"userErrors": []
		}
	}`}}
	store := seededCartStore("tok")
	svc := NewCartService(doer, store, testLogger())

	snapshot, err := svc.UpdateQuantity(context.Background(), "tok", "gid://shopify/ProductVariant/11", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(snapshot.Items) != 0 {
		t.Errorf("zero quantity should remove the line, got %+v", snapshot.Items)
	}
}

func TestRemoveItemUnknownVariant(t *testing.T) {
	doer := &scriptedDoer{}
	svc := NewCartService(doer, seededCartStore("tok"), testLogger())

	_, err := svc.RemoveItem(context.Background(), "tok", "gid://shopify/ProductVariant/404")
	if !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("err = %v, want ErrLineNotFound", err)
	}
	if doer.calls != 0 {
		t.Error("unknown variant must not hit upstream")
	}
}

func TestUpdateQuantityWithoutCart(t *testing.T) {
	svc := NewCartService(&scriptedDoer{}, &memCartStore{}, testLogger())

	_, err := svc.UpdateQuantity(context.Background(), "tok", "gid://shopify/ProductVariant/11", 2)
	if !errors.Is(err, ErrNoCart) {
		t.Fatalf("err = %v, want ErrNoCart", err)
	}
}

func TestClearDropsCartID(t *testing.T) {
	doer := &scriptedDoer{payloads: []string{`{
		"cartLinesRemove": {
			"cart": {"id": "gid://shopify/Cart/1", "checkoutUrl": "", "totalQuantity": 0, "lines": {"edges": []}},
			"userErrors": []
		}
	}`}}
	store := seededCartStore("tok")
	svc := NewCartService(doer, store, testLogger())

	snapshot, err := svc.Clear(context.Background(), "tok")
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.CartID != "" || len(snapshot.Items) != 0 {
		t.Errorf("cleared cart = %+v, want empty with no cart id", snapshot)
	}
	if stored := store.snapshots["tok"]; stored.CartID != "" {
		t.Error("stored snapshot kept the old cart id")
	}
}

func TestGetUnknownTokenIsEmpty(t *testing.T) {
	svc := NewCartService(&scriptedDoer{}, &memCartStore{}, testLogger())

	snapshot, err := svc.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.Items == nil || len(snapshot.Items) != 0 || snapshot.CartID != "" {
		t.Errorf("unknown token = %+v, want empty snapshot", snapshot)
	}
}
