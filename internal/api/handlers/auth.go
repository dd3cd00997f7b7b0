package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rohandas-dev/cabinet/internal/api/middleware"
	"github.com/rohandas-dev/cabinet/internal/auth"
	"github.com/rohandas-dev/cabinet/internal/repositories"
	"github.com/rohandas-dev/cabinet/internal/utils"
)

// Connect godoc
// @Summary Open a session
// @Description Exchanges Basic credentials for a session token.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /connect [get]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), email)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err != nil {
		log.Println("Error looking up user:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token := auth.NewToken()
	if err := h.Sessions.Create(r.Context(), token, user.ID.Hex(), repositories.SessionTTL); err != nil {
		log.Println("Error storing session:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]string{"token": token})
}

// Disconnect godoc
// @Summary Close a session
// @Description Deletes the session behind the x-token header.
// @Tags Auth
// @Param x-token header string true "Session token"
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /disconnect [get]
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.TokenHeader)
	if token == "" {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, err := h.Sessions.Get(r.Context(), token); err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.Sessions.Delete(r.Context(), token); err != nil {
		log.Println("Error deleting session:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
