package http

import (
	"net/http"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_dogs"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/recommend_for_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/add_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/remove_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/update_dog"
)

func (h *Handler) listDogs(w http.ResponseWriter, r *http.Request) {
	dogs, err := h.queries.ListDogs.Execute(r.Context(), &list_dogs.Request{UserID: userID(r)})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dogs": mapSlice(dogs, dogToJSON)})
}

func (h *Handler) addDog(w http.ResponseWriter, r *http.Request) {
	var body dogRequest
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	input, err := body.toInput()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dog, err := h.commands.AddDog.Execute(r.Context(), &add_dog.Request{
		UserID: userID(r),
		Input:  input,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dogToJSON(dog))
}

func (h *Handler) updateDog(w http.ResponseWriter, r *http.Request) {
	var body dogRequest
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	input, err := body.toInput()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dog, err := h.commands.UpdateDog.Execute(r.Context(), &update_dog.Request{
		UserID: userID(r),
		DogID:  r.PathValue("dogID"),
		Input:  input,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dogToJSON(dog))
}

func (h *Handler) removeDog(w http.ResponseWriter, r *http.Request) {
	err := h.commands.RemoveDog.Execute(r.Context(), &remove_dog.Request{
		UserID: userID(r),
		DogID:  r.PathValue("dogID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recommendForDog(w http.ResponseWriter, r *http.Request) {
	resp, err := h.queries.RecommendForDog.Execute(r.Context(), &recommend_for_dog.Request{
		UserID: userID(r),
		DogID:  r.PathValue("dogID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendationsResponse{
		Dog:      dogToJSON(resp.Dog),
		Products: productsToJSON(resp.Products),
	})
}
