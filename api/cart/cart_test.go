package cart

import (
	"testing"

	"modularcloset_server/structs"
)

func TestCartPayloadTotals(t *testing.T) {
	snapshot := &structs.CartSnapshot{
		CartID: "gid://shopify/Cart/1",
		Items: []structs.CartItem{
			{VariantID: "v1", Quantity: 2, Price: 649.5},
			{VariantID: "v2", Quantity: 1, Price: 129},
		},
	}

	payload := cartPayload(snapshot)

	if got := payload["totalItems"]; got != 3 {
		t.Errorf("totalItems = %v, want 3", got)
	}
	if got := payload["totalPrice"]; got != 1428.0 {
		t.Errorf("totalPrice = %v, want 1428", got)
	}
	if got := payload["totalPriceFormatted"]; got != "$1,428.00" {
		t.Errorf("totalPriceFormatted = %v, want $1,428.00", got)
	}
}

func TestCartPayloadEmpty(t *testing.T) {
	payload := cartPayload(&structs.CartSnapshot{Items: []structs.CartItem{}})

	if got := payload["totalPriceFormatted"]; got != "$0.00" {
		t.Errorf("totalPriceFormatted = %v, want $0.00", got)
	}
}
