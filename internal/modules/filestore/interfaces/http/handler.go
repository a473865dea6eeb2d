package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/application"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/domain"
	"github.com/paperledger/invoice-backend/internal/shared/utils"
	"github.com/redis/go-redis/v9"
)

// multipart form parsing buffer; anything above this spills to temp files
const maxFormMemory = 32 << 20

const cacheTTL = 10 * time.Minute

type FileHandler struct {
	uploads     *application.UploadService
	lookups     *application.LookupService
	redisClient *redis.Client
}

func NewFileHandler(uploads *application.UploadService, lookups *application.LookupService, redisClient *redis.Client) *FileHandler {
	return &FileHandler{
		uploads:     uploads,
		lookups:     lookups,
		redisClient: redisClient,
	}
}

// Upload handles POST /upload (multipart, field "file")
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Limit the whole request a little above the payload cap so the service
	// can distinguish "too large" from a truncated read
	r.Body = http.MaxBytesReader(w, r.Body, application.MaxUploadSize+maxFormMemory)

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.WriteError(w, http.StatusRequestEntityTooLarge, domain.ErrFileTooLarge.Error())
			return
		}
		log.Printf("[FileHandler.Upload] ParseMultipartForm error: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[FileHandler.Upload] read error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	result, err := h.uploads.Upload(r.Context(), data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("[FileHandler.Upload] upload failed for %q: %v", header.Filename, err)
		utils.WriteError(w, statusForError(err), err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusCreated, result)
}

// Get handles GET /files/{id}
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if _, err := uuid.Parse(idStr); err != nil {
		utils.WriteError(w, http.StatusBadRequest, domain.ErrInvalidFileID.Error())
		return
	}

	// Records are immutable, so a cached copy can never go stale. Presigned
	// URLs expire, so caching is skipped entirely when lookups presign.
	cacheable := !h.lookups.Presigns()
	cacheKey := "file:" + idStr
	if cacheable {
		if val, err := h.redisClient.Get(r.Context(), cacheKey).Result(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write([]byte(val))
			return
		}
	}

	meta, err := h.lookups.GetByID(r.Context(), idStr)
	if err != nil {
		if !errors.Is(err, domain.ErrFileNotFound) {
			log.Printf("[FileHandler.Get] lookup failed for %s: %v", idStr, err)
		}
		utils.WriteError(w, statusForError(err), err.Error())
		return
	}

	if cacheable {
		go func() {
			jsonBytes, _ := json.Marshal(meta)
			h.redisClient.Set(context.Background(), cacheKey, jsonBytes, cacheTTL)
		}()
	}

	w.Header().Set("X-Cache", "MISS")
	utils.WriteJSON(w, http.StatusOK, meta)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidFile), errors.Is(err, domain.ErrInvalidFileID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrFileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
