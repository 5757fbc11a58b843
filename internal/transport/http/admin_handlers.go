package http

import (
	"net/http"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_admin_products"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_category"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_product"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/delete_product"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/update_product"
)

func (h *Handler) listAdminProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.queries.ListAdminProducts.Execute(r.Context(), &list_admin_products.Request{
		Search:     r.URL.Query().Get("q"),
		CategoryID: r.URL.Query().Get("category"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": productsToJSON(products)})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body productRequest
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.commands.CreateProduct.Execute(r.Context(), &create_product.Request{
		ProductID: body.ID,
		Input:     body.toInput(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, productToJSON(product))
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var body productJSON
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.commands.UpdateProduct.Execute(r.Context(), &update_product.Request{
		ProductID: r.PathValue("productID"),
		Input:     body.toInput(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productToJSON(product))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	err := h.commands.DeleteProduct.Execute(r.Context(), &delete_product.Request{
		ProductID: r.PathValue("productID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	category, err := h.commands.CreateCategory.Execute(r.Context(), &create_category.Request{
		ID:          body.ID,
		Name:        body.Name,
		Description: body.Description,
		Icon:        body.Icon,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, categoryToJSON(category))
}
