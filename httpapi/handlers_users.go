package httpapi

import (
	"encoding/json"
	"net/http"

	enrollauth "github.com/registrarhq/enrollauth"
	"github.com/registrarhq/enrollauth/middleware"
)

type handlers struct {
	engine *enrollauth.Engine
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse keeps token, role, and studentId at the top level of the
// envelope rather than nested under data.
type loginResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Token     string          `json:"token"`
	Role      enrollauth.Role `json:"role"`
	StudentID string          `json:"studentId,omitempty"`
}

// accountFromContext resolves the authenticated caller's account record
// from the claims the authentication gate attached.
func (h *handlers) accountFromContext(r *http.Request) (*enrollauth.Account, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return nil, enrollauth.ErrUserNotFound
	}
	return h.engine.AccountOf(claims.Username)
}

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "Users list", h.engine.Accounts())
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validationFailure(w, "Request body is invalid")
		return
	}

	result, err := h.engine.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     result.Token,
		Role:      result.Role,
		StudentID: result.StudentID,
	})
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	raw, okTok := middleware.RawTokenFromContext(r.Context())
	if !ok || !okTok || claims.Username == "" {
		writeFailure(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	if err := h.engine.Logout(r.Context(), claims, raw); err != nil {
		writeEngineError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Logout successful", nil)
}

func (h *handlers) resetUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ResetAccounts(r.Context()); err != nil {
		writeEngineError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "User database has been reset", nil)
}
