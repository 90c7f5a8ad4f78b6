package rest

import (
	"net/http"

	"glowdesk-be/internal/category"
	"glowdesk-be/internal/transport"
	"glowdesk-be/internal/utils"
)

type categoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	filter := category.ListFilter{
		Search:     transport.QueryString(r, "search"),
		ActiveOnly: !utils.IsAdmin(r.Context()) || transport.QueryBool(r, "activeOnly"),
		Limit:      transport.QueryInt(r, "limit", 0),
		Page:       transport.QueryInt(r, "page", 1),
	}

	list, total, err := h.Categories.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, category.ToListResponse(list, total))
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	c, err := h.Categories.Create(r.Context(), category.CreateCategoryInput{
		Name:        utils.PtrString(req.Name),
		Description: utils.PtrString(req.Description),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, category.ToResponse(c))
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req categoryRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	c, err := h.Categories.Update(r.Context(), id, category.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, category.ToResponse(c))
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Categories.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Category deleted"})
}
