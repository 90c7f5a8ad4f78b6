package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"glowdesk-be/internal/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts h and, when userID is non-zero, authenticates every
// request as that user.
func newTestRouter(h *Handler, userID uint, role string) http.Handler {
	r := mux.NewRouter()
	h.Register(r)
	if userID == 0 {
		return r
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := utils.SetUserContext(req.Context(), userID, "u@test.dev", role)
		r.ServeHTTP(w, req.WithContext(ctx))
	})
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}
