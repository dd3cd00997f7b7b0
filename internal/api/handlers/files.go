package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rohandas-dev/cabinet/internal/api/middleware"
	"github.com/rohandas-dev/cabinet/internal/models"
	"github.com/rohandas-dev/cabinet/internal/repositories"
	"github.com/rohandas-dev/cabinet/internal/utils"
)

// CreateFile godoc
// @Summary Upload a file or create a folder
// @Description Folders are metadata only; files and images carry base64 data written to blob storage. Image uploads queue a thumbnail job.
// @Tags Files
// @Accept json
// @Produce json
// @Param x-token header string true "Session token"
// @Success 201 {object} models.FileResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /files [post]
func (h *Handler) CreateFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var input struct {
		Name     string          `json:"name"`
		Type     models.FileType `json:"type"`
		ParentID any             `json:"parentId"`
		IsPublic bool            `json:"isPublic"`
		Data     string          `json:"data"`
	}
	_ = json.NewDecoder(r.Body).Decode(&input)

	// Clients send the parent as either a hex string or the numeric root
	// sentinel.
	parentRaw := ""
	switch v := input.ParentID.(type) {
	case string:
		parentRaw = v
	case float64:
		parentRaw = strconv.FormatFloat(v, 'f', -1, 64)
	}

	if input.Name == "" {
		utils.JSONError(w, http.StatusBadRequest, "Missing name")
		return
	}
	if !models.ValidFileType(input.Type) {
		utils.JSONError(w, http.StatusBadRequest, "Missing or invalid type")
		return
	}
	if input.Type != models.TypeFolder && input.Data == "" {
		utils.JSONError(w, http.StatusBadRequest, "Missing data")
		return
	}

	var parentID *primitive.ObjectID
	if parentRaw != "" && parentRaw != models.RootParent {
		oid, err := primitive.ObjectIDFromHex(parentRaw)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, "Parent not found")
			return
		}

		parent, err := h.Files.FindByID(r.Context(), oid)
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSONError(w, http.StatusBadRequest, "Parent not found")
			return
		}
		if err != nil {
			log.Println("Error fetching parent:", err)
			utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if parent.Type != models.TypeFolder {
			utils.JSONError(w, http.StatusBadRequest, "Parent is not a folder")
			return
		}
		parentID = &oid
	}

	file := &models.File{
		UserID:   userID,
		Name:     input.Name,
		Type:     input.Type,
		IsPublic: input.IsPublic,
		ParentID: parentID,
	}

	if input.Type == models.TypeFolder {
		created, err := h.Files.Create(r.Context(), file)
		if err != nil {
			log.Println("Error inserting folder:", err)
			utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		utils.JSONResponse(w, http.StatusCreated, created.Response())
		return
	}

	data, err := base64.StdEncoding.DecodeString(input.Data)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	key := uuid.NewString()
	if err := h.Blobs.Save(r.Context(), key, data); err != nil {
		log.Println("Error writing blob:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	file.LocalPath = key

	created, err := h.Files.Create(r.Context(), file)
	if err != nil {
		// The blob was written but the metadata insert failed; delete the
		// blob so it is not orphaned. A crash between the two steps can
		// still leave one behind.
		if delErr := h.Blobs.Delete(r.Context(), key); delErr != nil {
			log.Println("Error removing orphaned blob:", delErr)
		}
		log.Println("Error inserting file:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if created.Type == models.TypeImage {
		job := models.ThumbnailJob{UserID: userID.Hex(), FileID: created.ID.Hex()}
		if err := h.Queue.Enqueue(r.Context(), job); err != nil {
			log.Println("Error queueing thumbnail job:", err)
		}
	}

	utils.JSONResponse(w, http.StatusCreated, created.Response())
}

// GetFile godoc
// @Summary Fetch a file record
// @Tags Files
// @Produce json
// @Param x-token header string true "Session token"
// @Param id path string true "File id"
// @Success 200 {object} models.FileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /files/{id} [get]
func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	fileID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "Not found")
		return
	}

	file, err := h.Files.FindByIDAndUser(r.Context(), fileID, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		log.Println("Error fetching file:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, file.Response())
}

// ListFiles godoc
// @Summary List files under a parent
// @Description Pages of 20 records, filtered by parentId ("0" or absent means root).
// @Tags Files
// @Produce json
// @Param x-token header string true "Session token"
// @Param parentId query string false "Parent folder id"
// @Param page query int false "Zero-based page"
// @Success 200 {array} models.FileResponse
// @Failure 401 {object} map[string]string
// @Router /files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var parentID *primitive.ObjectID
	if raw := r.URL.Query().Get("parentId"); raw != "" && raw != models.RootParent {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			// An unparseable parent matches nothing.
			utils.JSONResponse(w, http.StatusOK, []models.FileResponse{})
			return
		}
		parentID = &oid
	}

	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 0 {
		page = 0
	}

	files, err := h.Files.ListByParent(r.Context(), userID, parentID, page)
	if err != nil {
		log.Println("Error listing files:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	out := make([]models.FileResponse, 0, len(files))
	for i := range files {
		out = append(out, files[i].Response())
	}
	utils.JSONResponse(w, http.StatusOK, out)
}

// PublishFile godoc
// @Summary Make a file public
// @Tags Files
// @Produce json
// @Param x-token header string true "Session token"
// @Param id path string true "File id"
// @Success 200 {object} models.FileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /files/{id}/publish [put]
func (h *Handler) PublishFile(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, true)
}

// UnpublishFile godoc
// @Summary Make a file private
// @Tags Files
// @Produce json
// @Param x-token header string true "Session token"
// @Param id path string true "File id"
// @Success 200 {object} models.FileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /files/{id}/unpublish [put]
func (h *Handler) UnpublishFile(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, false)
}

func (h *Handler) setPublic(w http.ResponseWriter, r *http.Request, public bool) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	fileID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "Not found")
		return
	}

	file, err := h.Files.SetPublic(r.Context(), fileID, userID, public)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		log.Println("Error updating file visibility:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, file.Response())
}

// GetFileContent godoc
// @Summary Download file content
// @Description Serves the blob with a MIME type resolved from the file name. Private files are only served to their owner; anything else looks like a missing file.
// @Tags Files
// @Param x-token header string false "Session token"
// @Param id path string true "File id"
// @Success 200 {string} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /files/{id}/data [get]
func (h *Handler) GetFileContent(w http.ResponseWriter, r *http.Request) {
	fileID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "Not found")
		return
	}

	file, err := h.Files.FindByID(r.Context(), fileID)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		log.Println("Error fetching file:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if file.Type == models.TypeFolder {
		utils.JSONError(w, http.StatusBadRequest, "A folder doesn't have content")
		return
	}

	if !file.IsPublic && !h.isOwner(r, file) {
		// Deliberately the same shape as a missing file so existence is
		// never leaked to non-owners.
		utils.JSONError(w, http.StatusNotFound, "Not found")
		return
	}

	if file.LocalPath == "" {
		utils.JSONError(w, http.StatusNotFound, "Not found")
		return
	}
	exists, err := h.Blobs.Exists(r.Context(), file.LocalPath)
	if err != nil {
		log.Println("Error checking blob:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !exists {
		utils.JSONError(w, http.StatusNotFound, "Not found")
		return
	}

	data, err := h.Blobs.Get(r.Context(), file.LocalPath)
	if err != nil {
		log.Println("Error reading blob:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	mimeType := mime.TypeByExtension(filepath.Ext(file.Name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// isOwner resolves an optional x-token and reports whether it belongs to
// the file's owner.
func (h *Handler) isOwner(r *http.Request, file *models.File) bool {
	token := r.Header.Get(middleware.TokenHeader)
	if token == "" {
		return false
	}
	userID, err := h.Sessions.Get(r.Context(), token)
	if err != nil {
		return false
	}
	return userID == file.UserID.Hex()
}

// requireUser parses the user id placed by the auth middleware. A failure
// here means the middleware was bypassed or the session held garbage.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(middleware.UserIDFrom(r.Context()))
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return primitive.NilObjectID, false
	}
	return oid, true
}
