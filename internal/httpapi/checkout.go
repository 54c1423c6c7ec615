package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type checkoutRequest struct {
	Email           string                 `json:"email"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	UserID          string                 `json:"userId"`

	// Items and Total are optional; without Items the session cart is used.
	// Item titles and prices are always taken from the catalog.
	Items []domain.CartLine `json:"items"`
	Total *decimal.Decimal  `json:"total"`
}

type checkoutResponse struct {
	OrderID   uuid.UUID       `json:"orderId"`
	Total     decimal.Decimal `json:"total"`
	PublicKey string          `json:"publicKey"`
}

type orderItemResponse struct {
	ProductID       uuid.UUID       `json:"productId"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}

type orderResponse struct {
	ID              uuid.UUID              `json:"id"`
	Status          string                 `json:"status"`
	Total           decimal.Decimal        `json:"total"`
	Currency        string                 `json:"currency"`
	ContactEmail    string                 `json:"contactEmail"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	UserID          string                 `json:"userId,omitempty"`
	Items           []orderItemResponse    `json:"items"`
	CreatedAt       time.Time              `json:"createdAt"`
}

func (h *handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	creq := checkout.Request{
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
		UserID:          strings.TrimSpace(req.UserID),
		Total:           req.Total,
	}

	var (
		res checkout.Result
		err error
	)
	if len(req.Items) > 0 {
		lines, lerr := h.catalogLines(r.Context(), req.Items)
		if lerr != nil {
			if errors.Is(lerr, domain.ErrNotFound) || errors.Is(lerr, errInvalidItem) {
				h.writeError(w, r, http.StatusBadRequest, lerr.Error())
				return
			}
			h.fail(w, r, lerr, "Failed to fetch product")
			return
		}
		res, err = h.checkout.PlaceOrder(r.Context(), domain.CartSnapshot{Lines: lines}, creq)
	} else {
		res, err = h.checkout.Checkout(r.Context(), sessionFrom(r.Context()).Cart, creq)
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrInvalidEmail),
		errors.Is(err, checkout.ErrInvalidItem),
		errors.Is(err, checkout.ErrTotalMismatch):
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.fail(w, r, err, "Failed to create order")
		return
	}

	h.writeJSON(w, r, http.StatusCreated, checkoutResponse{
		OrderID:   res.OrderID,
		Total:     res.Total,
		PublicKey: res.PublicKey,
	})
}

var errInvalidItem = errors.New("invalid item")

// catalogLines rebuilds request items from the catalog. Only the id and
// quantity of an item are taken from the caller.
func (h *handler) catalogLines(ctx context.Context, items []domain.CartLine) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(items))

	for _, item := range items {
		id, err := uuid.Parse(strings.TrimSpace(item.ID))
		if err != nil {
			return nil, fmt.Errorf("%w: id %q", errInvalidItem, item.ID)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity %d", errInvalidItem, item.Quantity)
		}

		p, err := h.products.GetProduct(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown product %s: %w", id, domain.ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("products.GetProduct: %w", err)
		}

		cp := p.CartProduct()
		image := ""
		if len(cp.Images) > 0 {
			image = cp.Images[0]
		}

		lines = append(lines, domain.CartLine{
			ID:       cp.ID,
			Title:    cp.Title,
			Price:    cp.Price,
			Image:    image,
			Quantity: item.Quantity,
		})
	}

	return lines, nil
}

func (h *handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Failed to fetch order")
		return
	}

	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
		})
	}

	h.writeJSON(w, r, http.StatusOK, orderResponse{
		ID:              o.ID,
		Status:          o.Status,
		Total:           o.Total.Amount,
		Currency:        o.Total.Currency.String(),
		ContactEmail:    o.ContactEmail,
		ShippingAddress: o.ShippingAddress,
		UserID:          o.UserID,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	})
}
