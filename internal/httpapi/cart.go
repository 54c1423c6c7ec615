package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/currency"
	"github.com/nikolayk812/storefront/internal/session"
	"github.com/shopspring/decimal"
)

type cartLineResponse struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Price            decimal.Decimal `json:"price"`
	DisplayPrice     string          `json:"displayPrice"`
	Image            string          `json:"image"`
	Quantity         int             `json:"quantity"`
	LineTotal        decimal.Decimal `json:"lineTotal"`
	DisplayLineTotal string          `json:"displayLineTotal"`
}

type cartResponse struct {
	Items           []cartLineResponse `json:"items"`
	TotalItems      int                `json:"totalItems"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DisplaySubtotal string             `json:"displaySubtotal"`
	IsOpen          bool               `json:"isOpen"`
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

type cartOpenRequest struct {
	Open bool `json:"open"`
}

type currencyResponse struct {
	CountryCode  string `json:"countryCode"`
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Loading      bool   `json:"loading"`
}

type countryResponse struct {
	CountryCode  string `json:"countryCode"`
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

type setCurrencyRequest struct {
	CountryCode string `json:"countryCode"`
}

type locationResponse struct {
	CountryCode string `json:"countryCode"`
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
}

func (h *handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, toCartResponse(sessionFrom(r.Context())))
}

// addCartItem adds one unit of a catalog product. Title and price come from
// the catalog, not from the caller.
func (h *handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(req.ProductID))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid productId")
		return
	}

	p, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Failed to fetch product")
		return
	}

	s := sessionFrom(r.Context())
	s.Cart.AddItem(r.Context(), p.CartProduct())

	h.writeJSON(w, r, http.StatusOK, toCartResponse(s))
}

func (h *handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == nil {
		h.writeError(w, r, http.StatusBadRequest, "quantity is required")
		return
	}

	s := sessionFrom(r.Context())
	s.Cart.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), *req.Quantity)

	h.writeJSON(w, r, http.StatusOK, toCartResponse(s))
}

func (h *handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	s.Cart.RemoveItem(r.Context(), chi.URLParam(r, "id"))

	h.writeJSON(w, r, http.StatusOK, toCartResponse(s))
}

func (h *handler) clearCart(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	s.Cart.ClearCart(r.Context())

	h.writeJSON(w, r, http.StatusOK, toCartResponse(s))
}

func (h *handler) setCartOpen(w http.ResponseWriter, r *http.Request) {
	var req cartOpenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s := sessionFrom(r.Context())
	s.Cart.SetOpen(req.Open)

	h.writeJSON(w, r, http.StatusOK, toCartResponse(s))
}

func (h *handler) getCurrency(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, toCurrencyResponse(sessionFrom(r.Context()).Currency.Selection()))
}

func (h *handler) setCurrency(w http.ResponseWriter, r *http.Request) {
	var req setCurrencyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	code := strings.TrimSpace(req.CountryCode)
	if code == "" {
		h.writeError(w, r, http.StatusBadRequest, "countryCode is required")
		return
	}

	s := sessionFrom(r.Context())
	s.Currency.SetCountryCode(r.Context(), code)

	h.writeJSON(w, r, http.StatusOK, toCurrencyResponse(s.Currency.Selection()))
}

func (h *handler) listCountries(w http.ResponseWriter, r *http.Request) {
	countries := currency.Countries()

	resp := make([]countryResponse, 0, len(countries))
	for _, c := range countries {
		resp = append(resp, countryResponse{
			CountryCode:  c.Code,
			CurrencyCode: c.Currency.Code(),
			Symbol:       c.Currency.Symbol,
			Name:         c.Currency.Name,
		})
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

// locate reports the caller's country. Lookup failures still answer 200
// with the default country.
func (h *handler) locate(w http.ResponseWriter, r *http.Request) {
	code, err := h.geo.LookupCountry(r.Context(), clientIP(r))
	if err != nil {
		h.logger.Sugar().Infow("geolocation failed", "error", err)
		h.writeJSON(w, r, http.StatusOK, locationResponse{
			CountryCode: currency.DefaultCountry,
			Success:     false,
			Message:     "Failed to detect location, using default",
		})
		return
	}

	h.writeJSON(w, r, http.StatusOK, locationResponse{
		CountryCode: code,
		Success:     true,
	})
}

// toCartResponse renders one snapshot of the bag with one currency
// selection, so items, totals and display prices agree.
func toCartResponse(s *session.Session) cartResponse {
	snapshot := s.Cart.Snapshot()
	info := s.Currency.Selection().Currency

	display := func(priceInUSD decimal.Decimal) string {
		return currency.Format(currency.Convert(priceInUSD, info.Code()), info)
	}

	items := make([]cartLineResponse, 0, len(snapshot.Lines))
	for _, l := range snapshot.Lines {
		total := l.Total()
		items = append(items, cartLineResponse{
			ID:               l.ID,
			Title:            l.Title,
			Price:            l.Price,
			DisplayPrice:     display(l.Price),
			Image:            l.Image,
			Quantity:         l.Quantity,
			LineTotal:        total,
			DisplayLineTotal: display(total),
		})
	}

	return cartResponse{
		Items:           items,
		TotalItems:      snapshot.TotalItems,
		Subtotal:        snapshot.Subtotal,
		DisplaySubtotal: display(snapshot.Subtotal),
		IsOpen:          snapshot.Open,
	}
}

func toCurrencyResponse(sel currency.Selection) currencyResponse {
	return currencyResponse{
		CountryCode:  sel.CountryCode,
		CurrencyCode: sel.Currency.Code(),
		Symbol:       sel.Currency.Symbol,
		Name:         sel.Currency.Name,
		Loading:      sel.Loading,
	}
}
