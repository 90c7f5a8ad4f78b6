package rest

import (
	"net/http"
	"time"

	"glowdesk-be/internal/transport"
	"glowdesk-be/internal/user"
	"glowdesk-be/internal/utils"
)

const (
	accessTokenCookie = "access_token"
	accessTokenTTL    = 24 * time.Hour
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  user.Response `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	token, u, err := h.Users.Register(r.Context(), user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setAccessToken(w, token, accessTokenTTL)
	utils.WriteJSON(w, http.StatusCreated, authResponse{Token: token, User: user.ToResponse(u)})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	token, u, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setAccessToken(w, token, accessTokenTTL)
	utils.WriteJSON(w, http.StatusOK, authResponse{Token: token, User: user.ToResponse(u)})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.setAccessToken(w, "", -1)
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Logged out"})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.Users.Me(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user.ToResponse(u))
}

// setAccessToken writes the cookie read by auth.ExtractAccessToken. A
// negative ttl clears it.
func (h *Handler) setAccessToken(w http.ResponseWriter, token string, ttl time.Duration) {
	c := &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		c.MaxAge = -1
	} else {
		c.MaxAge = int(ttl.Seconds())
	}
	http.SetCookie(w, c)
}
