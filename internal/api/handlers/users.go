package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rohandas-dev/cabinet/internal/api/middleware"
	"github.com/rohandas-dev/cabinet/internal/auth"
	"github.com/rohandas-dev/cabinet/internal/models"
	"github.com/rohandas-dev/cabinet/internal/repositories"
	"github.com/rohandas-dev/cabinet/internal/utils"
)

// RegisterUser godoc
// @Summary Register a new user
// @Description Creates an account from an email and password pair.
// @Tags Users
// @Accept json
// @Produce json
// @Success 201 {object} models.PublicUser
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	// A malformed body leaves the fields empty and falls through to the
	// specific missing-field errors below.
	_ = json.NewDecoder(r.Body).Decode(&input)

	if input.Email == "" {
		utils.JSONError(w, http.StatusBadRequest, "Missing email")
		return
	}
	if input.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "Missing password")
		return
	}

	if _, err := h.Users.FindByEmail(r.Context(), input.Email); err == nil {
		utils.JSONError(w, http.StatusBadRequest, "Already exist")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Println("Error checking existing user:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		log.Println("Error hashing password:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	user, err := h.Users.Create(r.Context(), &models.User{
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		// The unique index closes the window between the check above and
		// this insert.
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			utils.JSONError(w, http.StatusBadRequest, "Already exist")
			return
		}
		log.Println("Error creating user:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONResponse(w, http.StatusCreated, user.Public())
}

// GetMe godoc
// @Summary Current user
// @Description Returns the identity behind the x-token session.
// @Tags Users
// @Produce json
// @Param x-token header string true "Session token"
// @Success 200 {object} models.PublicUser
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.Users.FindByID(r.Context(), oid)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err != nil {
		log.Println("Error fetching current user:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, user.Public())
}
