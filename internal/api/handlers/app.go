package handlers

import (
	"log"
	"net/http"

	"github.com/rohandas-dev/cabinet/internal/utils"
)

// GetStatus godoc
// @Summary Backing store health
// @Tags App
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /status [get]
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	utils.JSONResponse(w, http.StatusOK, map[string]bool{
		"redis": h.CacheAlive(),
		"db":    h.DBAlive(),
	})
}

// GetStats godoc
// @Summary Record counts
// @Tags App
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.Count(r.Context())
	if err != nil {
		log.Println("Error counting users:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	files, err := h.Files.Count(r.Context())
	if err != nil {
		log.Println("Error counting files:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]int64{
		"users": users,
		"files": files,
	})
}
