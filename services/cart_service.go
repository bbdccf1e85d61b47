package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

// ErrNoCart marks a mutation against a token that has no remote cart yet.
var ErrNoCart = errors.New("no active cart")

// ErrLineNotFound marks an update or removal for a variant that is not in
// the cart.
var ErrLineNotFound = errors.New("cart line not found")

// CartService keeps a per-token cart mirrored against the remote cart
// API. Every mutation goes remote first; the cached snapshot is rebuilt
// from the returned cart state only after the mutation fully succeeds,
// so user errors leave the snapshot untouched.
type CartService struct {
	client storefront.Doer
	cache  cartStore
	logger *gecho.Logger
}

func NewCartService(client storefront.Doer, cache cartStore, logger *gecho.Logger) *CartService {
	return &CartService{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// ============================================================================
// Wire shapes
// ============================================================================

type cartLineMerchandise struct {
	ID              string                   `json:"id"`
	Title           string                   `json:"title"`
	SKU             string                   `json:"sku"`
	Image           *structs.Image           `json:"image"`
	Price           structs.Money            `json:"price"`
	Product         structs.ProductReference `json:"product"`
	SelectedOptions []structs.SelectedOption `json:"selectedOptions"`
}

type cartWire struct {
	ID            string `json:"id"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalQuantity int    `json:"totalQuantity"`
	Lines         struct {
		Edges []struct {
			Node struct {
				ID          string              `json:"id"`
				Quantity    int                 `json:"quantity"`
				Merchandise cartLineMerchandise `json:"merchandise"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"lines"`
}

type cartMutationPayload struct {
	Cart       *cartWire           `json:"cart"`
	UserErrors []structs.UserError `json:"userErrors"`
}

// ============================================================================
// Reads
// ============================================================================

// Get returns the snapshot for a cart token. Tokens without a stored cart
// get an empty snapshot, never an error.
func (s *CartService) Get(ctx context.Context, token string) (*structs.CartSnapshot, error) {
	snapshot, err := s.cache.GetCartSnapshot(token)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return emptySnapshot(), nil
	}
	if snapshot.Items == nil {
		snapshot.Items = []structs.CartItem{}
	}
	return snapshot, nil
}

// Refresh re-reads the remote cart and rebuilds the snapshot from it.
// A remote cart that has expired or been completed resets to empty.
func (s *CartService) Refresh(ctx context.Context, token string) (*structs.CartSnapshot, error) {
	snapshot, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if snapshot.CartID == "" {
		return snapshot, nil
	}

	var resp struct {
		Cart *cartWire `json:"cart"`
	}
	if err := s.client.Do(ctx, storefront.QueryCart, map[string]any{"cartId": snapshot.CartID}, &resp); err != nil {
		return nil, err
	}

	if resp.Cart == nil {
		s.logger.Info("Remote cart gone, resetting snapshot", gecho.Field("cart_id", snapshot.CartID))
		fresh := emptySnapshot()
		if err := s.cache.SetCartSnapshot(token, fresh); err != nil {
			s.logger.Warn("Failed to persist cart snapshot", gecho.Field("error", err))
		}
		return fresh, nil
	}

	return s.persist(token, resp.Cart)
}

// ============================================================================
// Mutations
// ============================================================================

// AddItem adds quantity of a variant. The first add for a token creates
// the remote cart; later adds for the same variant merge into one line
// on the remote side. Any user error fails the whole operation and the
// snapshot keeps its previous state.
func (s *CartService) AddItem(ctx context.Context, token, variantID string, quantity int) (*structs.CartSnapshot, error) {
	if quantity <= 0 {
		quantity = 1
	}

	snapshot, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	line := map[string]any{
		"merchandiseId": variantID,
		"quantity":      quantity,
	}

	if snapshot.CartID == "" {
		var resp struct {
			CartCreate cartMutationPayload `json:"cartCreate"`
		}
		vars := map[string]any{
			"input": map[string]any{"lines": []map[string]any{line}},
		}
		if err := s.client.Do(ctx, storefront.MutationCartCreate, vars, &resp); err != nil {
			return nil, err
		}
		if err := storefront.NewUserErrorsError("cartCreate", resp.CartCreate.UserErrors); err != nil {
			return nil, err
		}
		if resp.CartCreate.Cart == nil {
			return nil, fmt.Errorf("cartCreate returned no cart: %w", storefront.ErrUpstream)
		}
		return s.persist(token, resp.CartCreate.Cart)
	}

	var resp struct {
		CartLinesAdd cartMutationPayload `json:"cartLinesAdd"`
	}
	vars := map[string]any{
		"cartId": snapshot.CartID,
		"lines":  []map[string]any{line},
	}
	if err := s.client.Do(ctx, storefront.MutationCartLinesAdd, vars, &resp); err != nil {
		return nil, err
	}
	if err := storefront.NewUserErrorsError("cartLinesAdd", resp.CartLinesAdd.UserErrors); err != nil {
		return nil, err
	}
	if resp.CartLinesAdd.Cart == nil {
		return nil, fmt.Errorf("cartLinesAdd returned no cart: %w", storefront.ErrUpstream)
	}
	return s.persist(token, resp.CartLinesAdd.Cart)
}

// UpdateQuantity sets the quantity of the variant's line. Zero or
// negative removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, token, variantID string, quantity int) (*structs.CartSnapshot, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, token, variantID)
	}

	snapshot, lineID, err := s.findLine(ctx, token, variantID)
	if err != nil {
		return nil, err
	}

	var resp struct {
		CartLinesUpdate cartMutationPayload `json:"cartLinesUpdate"`
	}
	vars := map[string]any{
		"cartId": snapshot.CartID,
		"lines": []map[string]any{
			{"id": lineID, "quantity": quantity},
		},
	}
	if err := s.client.Do(ctx, storefront.MutationCartLinesUpdate, vars, &resp); err != nil {
		return nil, err
	}
	if err := storefront.NewUserErrorsError("cartLinesUpdate", resp.CartLinesUpdate.UserErrors); err != nil {
		return nil, err
	}
	if resp.CartLinesUpdate.Cart == nil {
		return nil, fmt.Errorf("cartLinesUpdate returned no cart: %w", storefront.ErrUpstream)
	}
	return s.persist(token, resp.CartLinesUpdate.Cart)
}

// RemoveItem removes the variant's line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, token, variantID string) (*structs.CartSnapshot, error) {
	snapshot, lineID, err := s.findLine(ctx, token, variantID)
	if err != nil {
		return nil, err
	}

	return s.removeLines(ctx, token, snapshot.CartID, []string{lineID})
}

// Clear empties the cart remotely and drops the tracked cart id, so the
// next add starts a fresh remote cart.
func (s *CartService) Clear(ctx context.Context, token string) (*structs.CartSnapshot, error) {
	snapshot, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if snapshot.CartID != "" {
		lineIDs := make([]string, 0, len(snapshot.Items))
		for _, item := range snapshot.Items {
			if item.LineID != "" {
				lineIDs = append(lineIDs, item.LineID)
			}
		}
		if len(lineIDs) > 0 {
			if _, err := s.removeLines(ctx, token, snapshot.CartID, lineIDs); err != nil {
				return nil, err
			}
		}
	}

	fresh := emptySnapshot()
	if err := s.cache.SetCartSnapshot(token, fresh); err != nil {
		s.logger.Warn("Failed to persist cart snapshot", gecho.Field("error", err))
	}
	return fresh, nil
}

func (s *CartService) removeLines(ctx context.Context, token, cartID string, lineIDs []string) (*structs.CartSnapshot, error) {
	var resp struct {
		CartLinesRemove cartMutationPayload `json:"cartLinesRemove"`
	}
	vars := map[string]any{
		"cartId":  cartID,
		"lineIds": lineIDs,
	}
	if err := s.client.Do(ctx, storefront.MutationCartLinesRemove, vars, &resp); err != nil {
		return nil, err
	}
	if err := storefront.NewUserErrorsError("cartLinesRemove", resp.CartLinesRemove.UserErrors); err != nil {
		return nil, err
	}
	if resp.CartLinesRemove.Cart == nil {
		return nil, fmt.Errorf("cartLinesRemove returned no cart: %w", storefront.ErrUpstream)
	}
	return s.persist(token, resp.CartLinesRemove.Cart)
}

// findLine locates the remote line id for a variant in the snapshot.
func (s *CartService) findLine(ctx context.Context, token, variantID string) (*structs.CartSnapshot, string, error) {
	snapshot, err := s.Get(ctx, token)
	if err != nil {
		return nil, "", err
	}
	if snapshot.CartID == "" {
		return nil, "", ErrNoCart
	}

	for _, item := range snapshot.Items {
		if item.VariantID == variantID && item.LineID != "" {
			return snapshot, item.LineID, nil
		}
	}
	return nil, "", fmt.Errorf("variant %s: %w", variantID, ErrLineNotFound)
}

// persist rebuilds the snapshot from the remote cart state and stores it.
func (s *CartService) persist(token string, cart *cartWire) (*structs.CartSnapshot, error) {
	snapshot := &structs.CartSnapshot{
		Items:       make([]structs.CartItem, 0, len(cart.Lines.Edges)),
		CartID:      cart.ID,
		CheckoutURL: cart.CheckoutURL,
	}

	for _, edge := range cart.Lines.Edges {
		node := edge.Node
		price, err := strconv.ParseFloat(node.Merchandise.Price.Amount, 64)
		if err != nil {
			price = 0
		}

		item := structs.CartItem{
			LineID:       node.ID,
			VariantID:    node.Merchandise.ID,
			ProductID:    node.Merchandise.Product.ID,
			Title:        node.Merchandise.Product.Title,
			VariantTitle: node.Merchandise.Title,
			Quantity:     node.Quantity,
			Price:        price,
			Handle:       node.Merchandise.Product.Handle,
		}
		if node.Merchandise.Image != nil {
			item.Image = node.Merchandise.Image.URL
		}
		snapshot.Items = append(snapshot.Items, item)
	}

	if err := s.cache.SetCartSnapshot(token, snapshot); err != nil {
		s.logger.Warn("Failed to persist cart snapshot", gecho.Field("error", err))
	}

	return snapshot, nil
}

func emptySnapshot() *structs.CartSnapshot {
	return &structs.CartSnapshot{Items: []structs.CartItem{}}
}
