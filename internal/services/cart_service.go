package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/AkumaMonarch/NekoEats/external/webhook"
	"github.com/AkumaMonarch/NekoEats/external/whatsapp"
	"github.com/AkumaMonarch/NekoEats/internal/cart"
	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/pricing"
	"github.com/AkumaMonarch/NekoEats/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderCodeAttempts = 3

// OrderPlacer is the slice of the order repository checkout depends on.
type OrderPlacer interface {
	Create(ctx context.Context, o *model.Order, inTx func(pgx.Tx) error) error
	CodeInUse(ctx context.Context, code string) (bool, error)
}

type CartService struct {
	Repo         *repository.CartRepository
	MenuRepo     *repository.MenuRepository
	OrderRepo    OrderPlacer
	SettingsRepo *repository.SettingsRepository
	Webhook      *webhook.Client
}

func NewCartService(r *repository.CartRepository, mr *repository.MenuRepository,
	or OrderPlacer, sr *repository.SettingsRepository, wh *webhook.Client) *CartService {
	return &CartService{
		Repo:         r,
		MenuRepo:     mr,
		OrderRepo:    or,
		SettingsRepo: sr,
		Webhook:      wh,
	}
}

type AddLineRequest struct {
	MenuItemID   string   `json:"menu_item_id"`
	Quantity     int      `json:"quantity"`
	VariantID    string   `json:"variant_id,omitempty"`
	AddonIDs     []string `json:"addon_ids,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// AddLine resolves the selection against the live catalog, snapshots the
// effective price and appends a new line. Identical selections are never
// merged; each add is its own line.
func (s *CartService) AddLine(ctx context.Context, sessionID string, req AddLineRequest) (string, error) {
	item, err := s.MenuRepo.GetByID(ctx, req.MenuItemID)
	if err != nil {
		return "", err
	}
	if !item.InStock {
		return "", errors.New("item is out of stock")
	}

	var variant *model.Variant
	if req.VariantID != "" {
		for i := range item.Variants {
			if item.Variants[i].ID == req.VariantID {
				variant = &item.Variants[i]
				break
			}
		}
		if variant == nil {
			return "", errors.New("variant not found for this item")
		}
	}

	// addon selection is a set: unknown ids rejected, duplicates collapsed
	var addons []model.Addon
	seen := map[string]bool{}
	for _, id := range req.AddonIDs {
		if seen[id] {
			continue
		}
		found := false
		for _, a := range item.Addons {
			if a.ID == id {
				addons = append(addons, a)
				found = true
				break
			}
		}
		if !found {
			return "", errors.New("addon not found for this item")
		}
		seen[id] = true
	}

	line := cart.NewLine(*item, req.Quantity, variant, addons, req.Instructions)
	if err := s.Repo.InsertLine(ctx, sessionID, line); err != nil {
		return "", err
	}
	return line.LineID, nil
}

// SetQuantity updates a line in place; zero or negative removes it.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) error {
	if quantity <= 0 {
		return s.Repo.RemoveLine(ctx, sessionID, lineID)
	}
	return s.Repo.SetQuantity(ctx, sessionID, lineID, quantity)
}

// Remove deletes a line. Removing an absent line is a no-op.
func (s *CartService) Remove(ctx context.Context, sessionID, lineID string) error {
	return s.Repo.RemoveLine(ctx, sessionID, lineID)
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.Repo.Clear(ctx, sessionID)
}

// Get returns the cart with totals. VAT comes from the current settings
// snapshot; the delivery fee is applied at checkout when the service option
// is known.
func (s *CartService) Get(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	lines, err := s.Repo.GetLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c := cart.Restore(lines)

	settings, err := s.SettingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	subtotal := c.Subtotal()
	vat := pricing.VATAmount(subtotal, *settings)
	return &model.CartResponse{
		Lines:    c.Lines,
		Subtotal: subtotal,
		VAT:      vat,
		Total:    subtotal + vat,
	}, nil
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	PaymentMethod   string `json:"payment_method"`
	ServiceOption   string `json:"service_option"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type CheckoutResponse struct {
	Order       *model.Order `json:"order"`
	WhatsAppURL string       `json:"whatsapp_url,omitempty"`
}

// Checkout validates the request, snapshots the cart into a new order inside
// one transaction (order + items + cart clear), fires the configured webhook
// best-effort and returns the order together with the wa.me handoff link.
// On any failure before commit the cart is left untouched.
func (s *CartService) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*CheckoutResponse, error) {
	if req.CustomerName == "" {
		return nil, errors.New("customer name is required")
	}
	if req.CustomerPhone == "" {
		return nil, errors.New("customer phone is required")
	}
	if req.ServiceOption == "" {
		req.ServiceOption = model.ServiceDelivery
	}
	if req.ServiceOption != model.ServiceDelivery && req.ServiceOption != model.ServicePickup {
		return nil, errors.New("unknown service option")
	}
	if req.ServiceOption == model.ServiceDelivery && req.DeliveryAddress == "" {
		return nil, errors.New("delivery address is required for delivery orders")
	}

	settings, err := s.SettingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.IsOpen {
		return nil, errors.New("the restaurant is currently closed")
	}
	if req.ServiceOption == model.ServiceDelivery && !settings.IsDeliveryEnabled {
		return nil, errors.New("delivery is not available right now")
	}
	if req.ServiceOption == model.ServicePickup && !settings.IsPickupEnabled {
		return nil, errors.New("pickup is not available right now")
	}

	lines, err := s.Repo.GetLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("cart is empty")
	}

	subtotal := pricing.CartSubtotal(lines)
	vat := pricing.VATAmount(subtotal, *settings)
	total := subtotal + vat + pricing.DeliveryFee(req.ServiceOption)

	code, err := s.generateOrderCode(ctx)
	if err != nil {
		return nil, err
	}

	initialStatus := model.StatusPending
	if settings.WebhookURL != "" {
		initialStatus = model.StatusAwaitingConfirmation
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		OrderCode:       code,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Items:           itemsFromLines(lines),
		Total:           total,
		VATAmount:       vat,
		Status:          initialStatus,
		PaymentMethod:   req.PaymentMethod,
		ServiceOption:   req.ServiceOption,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}

	err = s.OrderRepo.Create(ctx, order, func(tx pgx.Tx) error {
		return s.Repo.ClearTx(ctx, tx, sessionID)
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if settings.WebhookURL != "" {
		// best-effort: a dead webhook must not fail the placed order
		go s.Webhook.NotifyOrderCreated(settings.WebhookURL, order)
	}

	resp := &CheckoutResponse{Order: order}
	if settings.BusinessPhone != "" {
		resp.WhatsAppURL = whatsapp.OrderLink(settings.BusinessPhone, order)
	}
	return resp, nil
}

// itemsFromLines snapshots the cart into order items. Positions follow the
// cart's display order so the order renders its lines the way the customer
// built them.
func itemsFromLines(lines []model.CartLine) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(lines))
	for i, line := range lines {
		items = append(items, model.OrderItem{
			MenuItemID:   line.MenuItemID,
			Position:     i + 1,
			Name:         line.Name,
			Quantity:     line.Quantity,
			Price:        line.UnitPrice + pricing.AddonsTotal(line.Addons),
			Variant:      line.Variant,
			Addons:       line.Addons,
			Instructions: line.Instructions,
		})
	}
	return items
}

// generateOrderCode produces a short human-readable code ('#' + 3 digits) and
// retries a few times when an active order already carries it. Collisions with
// finished orders are acceptable.
func (s *CartService) generateOrderCode(ctx context.Context) (string, error) {
	for i := 0; i < orderCodeAttempts; i++ {
		code := fmt.Sprintf("#%d", 100+rand.Intn(900))
		inUse, err := s.OrderRepo.CodeInUse(ctx, code)
		if err != nil {
			return "", err
		}
		if !inUse {
			return code, nil
		}
	}
	// fall back to a longer code rather than reusing an active one
	return fmt.Sprintf("#%d", 10000+rand.Intn(90000)), nil
}
