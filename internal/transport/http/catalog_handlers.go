package http

import (
	"net/http"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/browse_catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_reviews"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/suggest"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/submit_review"
)

func (h *Handler) browseCategory(w http.ResponseWriter, r *http.Request) {
	req, err := browseRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	req.CategoryID = r.PathValue("categoryID")
	h.browse(w, r, req)
}

func (h *Handler) browseBlackFriday(w http.ResponseWriter, r *http.Request) {
	req, err := browseRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	req.BlackFridayOnly = true
	h.browse(w, r, req)
}

func (h *Handler) browse(w http.ResponseWriter, r *http.Request, req *browse_catalog.Request) {
	resp, err := h.queries.BrowseCatalog.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, catalogToJSON(resp))
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseSuggestionKind(r.URL.Query().Get("type"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	suggestions, err := h.queries.Suggest.Execute(r.Context(), &suggest.Request{
		Query: r.URL.Query().Get("q"),
		Kind:  kind,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": mapSlice(suggestions, suggestionToJSON),
	})
}

func (h *Handler) listBreeds(w http.ResponseWriter, r *http.Request) {
	breeds, err := h.queries.ListBreeds.Execute(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"breeds": mapSlice(breeds, breedToJSON)})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.queries.ListCategories.Execute(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": mapSlice(categories, categoryToJSON)})
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.queries.ListReviews.Execute(r.Context(), &list_reviews.Request{
		ProductID: r.PathValue("productID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": mapSlice(reviews, reviewToJSON)})
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	var body reviewRequest
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	review, err := h.commands.SubmitReview.Execute(r.Context(), &submit_review.Request{
		ProductID: r.PathValue("productID"),
		UserID:    userID(r),
		UserName:  body.UserName,
		Rating:    body.Rating,
		Title:     body.Title,
		Comment:   body.Comment,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reviewToJSON(review))
}
