package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/session"
	"github.com/shopspring/decimal"
)

type productResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription"`
	Price           decimal.Decimal `json:"price"`
	DisplayPrice    string          `json:"displayPrice,omitempty"`
	Category        string          `json:"category"`
	Images          []string        `json:"images"`
	InStock         bool            `json:"inStock"`
	LikesCount      int64           `json:"likesCount"`
	CommentsCount   int64           `json:"commentsCount"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type productRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Images          []string        `json:"images"`
	InStock         *bool           `json:"inStock"`
}

func (req productRequest) toDomain(id uuid.UUID) domain.Product {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	return domain.Product{
		ID:              id,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Price:           req.Price,
		Category:        strings.TrimSpace(req.Category),
		Images:          req.Images,
		InStock:         inStock,
	}
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	Rating    *int32    `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type commentRequest struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Content   string `json:"content"`
	Rating    *int32 `json:"rating"`
}

type likeRequest struct {
	UserID string `json:"userId"`
}

type likeResponse struct {
	Liked bool `json:"liked"`
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.fail(w, r, err, "Failed to fetch products")
		return
	}

	s := sessionFrom(r.Context())
	filter := productFilterFrom(r)

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		if !filter.matches(p) {
			continue
		}
		resp = append(resp, toProductResponse(p, s))
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

// productFilter narrows the product list by ?category= (exact, "all" keeps
// everything) and ?q= (substring of title, description or category). Both
// ignore case.
type productFilter struct {
	category string
	query    string
}

func productFilterFrom(r *http.Request) productFilter {
	q := r.URL.Query()

	category := strings.TrimSpace(q.Get("category"))
	if strings.EqualFold(category, "all") {
		category = ""
	}

	return productFilter{
		category: category,
		query:    strings.ToLower(strings.TrimSpace(q.Get("q"))),
	}
}

func (f productFilter) matches(p domain.Product) bool {
	if f.category != "" && !strings.EqualFold(p.Category, f.category) {
		return false
	}
	if f.query == "" {
		return true
	}

	for _, field := range []string{p.Title, p.Description, p.Category} {
		if strings.Contains(strings.ToLower(field), f.query) {
			return true
		}
	}
	return false
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Failed to fetch product")
		return
	}

	h.writeJSON(w, r, http.StatusOK, toProductResponse(p, sessionFrom(r.Context())))
}

func (h *handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req likeRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = sessionFrom(r.Context()).ClientID
	}

	liked, err := h.products.ToggleLike(r.Context(), id, userID)
	if err != nil {
		h.fail(w, r, err, "Failed to toggle like")
		return
	}

	h.writeJSON(w, r, http.StatusOK, likeResponse{Liked: liked})
}

func (h *handler) listComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	comments, err := h.products.ListComments(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Failed to fetch comments")
		return
	}

	resp := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *handler) addComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		h.writeError(w, r, http.StatusBadRequest, "content is required")
		return
	}
	if req.Rating != nil && (*req.Rating < domain.MinCommentRating || *req.Rating > domain.MaxCommentRating) {
		h.writeError(w, r, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = sessionFrom(r.Context()).ClientID
	}

	c, err := h.products.AddComment(r.Context(), domain.Comment{
		ProductID: id,
		UserID:    userID,
		UserName:  strings.TrimSpace(req.UserName),
		UserEmail: strings.TrimSpace(req.UserEmail),
		Content:   content,
		Rating:    req.Rating,
	})
	if err != nil {
		h.fail(w, r, err, "Failed to add comment")
		return
	}

	h.writeJSON(w, r, http.StatusCreated, toCommentResponse(c))
}

func (h *handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if msg, ok := validateProduct(req); !ok {
		h.writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	p, err := h.products.CreateProduct(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		h.fail(w, r, err, "Failed to create product")
		return
	}

	h.writeJSON(w, r, http.StatusCreated, toProductResponse(p, nil))
}

func (h *handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if msg, ok := validateProduct(req); !ok {
		h.writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	p, err := h.products.UpdateProduct(r.Context(), req.toDomain(id))
	if err != nil {
		h.fail(w, r, err, "Failed to update product")
		return
	}

	h.writeJSON(w, r, http.StatusOK, toProductResponse(p, nil))
}

func (h *handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.products.DeleteProduct(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Failed to delete product")
		return
	}
	if !deleted {
		h.writeError(w, r, http.StatusNotFound, "Not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateProduct(req productRequest) (string, bool) {
	switch {
	case req.Price.IsNegative():
		return "price must not be negative", false
	case len(req.Images) > domain.MaxProductImages:
		return "too many images", false
	}
	return "", true
}

// toProductResponse adds the session's display price when s is not nil.
func toProductResponse(p domain.Product, s *session.Session) productResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	resp := productResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Price:           p.Price,
		Category:        p.Category,
		Images:          images,
		InStock:         p.InStock,
		LikesCount:      p.LikesCount,
		CommentsCount:   p.CommentsCount,
		CreatedAt:       p.CreatedAt,
	}

	if s != nil {
		resp.DisplayPrice = s.Currency.DisplayPrice(p.Price)
	}

	return resp
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		ProductID: c.ProductID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Content:   c.Content,
		Rating:    c.Rating,
		CreatedAt: c.CreatedAt,
	}
}
