package rest

import (
	"errors"
	"net/http"

	"resto-admin-be/internal/menu"
	"resto-admin-be/internal/money"

	"github.com/gorilla/mux"
)

// MenuHandler serves the menu CRUD endpoints.
type MenuHandler struct {
	svc menu.Service
}

func NewMenuHandler(svc menu.Service) *MenuHandler {
	return &MenuHandler{svc: svc}
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error retrieving menu items")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]

	item, err := h.svc.GetItem(r.Context(), itemID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input menu.ItemInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.CreateItem(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]

	var input menu.ItemInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), itemID, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]

	if err := h.svc.DeleteItem(r.Context(), itemID); err != nil {
		h.writeError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *MenuHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, menu.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "menu item not found")
	case errors.Is(err, menu.ErrMissingName), errors.Is(err, menu.ErrNegativePrice):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, money.ErrInvalidAmount):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
