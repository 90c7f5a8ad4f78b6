package rest

import (
	"bytes"
	"encoding/json"
	"net/http"

	"glowdesk-be/internal/address"
	"glowdesk-be/internal/transport"
	"glowdesk-be/internal/utils"
)

type addressRequest struct {
	Label        *string  `json:"label"`
	AddressLine1 *string  `json:"addressLine1"`
	AddressLine2 *string  `json:"addressLine2"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Pincode      *string  `json:"pincode"`
	IsDefault    *bool    `json:"isDefault"`
	Geo          geoField `json:"geo"`
}

// geoField tells an absent "geo" apart from an explicit null.
type geoField struct {
	Set   bool
	Value *address.GeoJSON
}

func (g *geoField) UnmarshalJSON(b []byte) error {
	g.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		g.Value = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	g.Value = new(address.GeoJSON)
	return dec.Decode(g.Value)
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	geo, err := req.Geo.Value.ToGeoPoint()
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.Addresses.Create(r.Context(), address.CreateAddressInput{
		Label:        utils.PtrString(req.Label),
		AddressLine1: utils.PtrString(req.AddressLine1),
		AddressLine2: utils.PtrString(req.AddressLine2),
		City:         utils.PtrString(req.City),
		State:        utils.PtrString(req.State),
		Pincode:      utils.PtrString(req.Pincode),
		IsDefault:    req.IsDefault,
		Geo:          geo,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, address.ToResponse(a))
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	list, err := h.Addresses.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, address.ToResponses(list))
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req addressRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	geo, err := req.Geo.Value.ToGeoPoint()
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.Addresses.Update(r.Context(), id, address.UpdateAddressInput{
		Label:        req.Label,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		IsDefault:    req.IsDefault,
		Geo:          geo,
		ClearGeo:     req.Geo.Set && req.Geo.Value == nil,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, address.ToResponse(a))
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Addresses.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Address deleted"})
}

func (h *Handler) setDefaultAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.Addresses.SetDefault(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, address.ToResponse(a))
}
