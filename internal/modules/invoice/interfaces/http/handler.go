package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	filestoredomain "github.com/paperledger/invoice-backend/internal/modules/filestore/domain"
	"github.com/paperledger/invoice-backend/internal/modules/invoice/application"
	"github.com/paperledger/invoice-backend/internal/modules/invoice/domain"
	"github.com/paperledger/invoice-backend/internal/shared/utils"
)

type InvoiceHandler struct {
	service *application.InvoiceService
}

func NewInvoiceHandler(service *application.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

type extractRequest struct {
	FileID string `json:"fileId"`
}

// Extract handles POST /extract
func (h *InvoiceHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FileID == "" {
		utils.WriteError(w, http.StatusBadRequest, "fileId is required")
		return
	}

	result, err := h.service.Extract(r.Context(), req.FileID)
	if err != nil {
		utils.WriteError(w, statusForError(err), err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

type createInvoiceRequest struct {
	FileID   string         `json:"fileId"`
	FileName string         `json:"fileName"`
	Vendor   domain.Vendor  `json:"vendor"`
	Details  domain.Details `json:"invoice"`
}

// Create handles POST /invoices
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fileID, err := uuid.Parse(req.FileID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, filestoredomain.ErrInvalidFileID.Error())
		return
	}

	inv := &domain.Invoice{
		FileID:   fileID,
		FileName: req.FileName,
		Vendor:   req.Vendor,
		Details:  req.Details,
	}

	saved, err := h.service.Save(r.Context(), inv)
	if err != nil {
		log.Printf("[InvoiceHandler.Create] save failed: %v", err)
		utils.WriteError(w, statusForError(err), err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]string{"invoiceId": saved.ID.String()})
}

// Get handles GET /invoices/{id}
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, statusForError(err), err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, inv)
}

// List handles GET /invoices
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	invoices, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Printf("[InvoiceHandler.List] list failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch invoices")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": invoices})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInvoice),
		errors.Is(err, domain.ErrInvalidInvoiceID),
		errors.Is(err, filestoredomain.ErrInvalidFileID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, filestoredomain.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrExtractionFailed),
		errors.Is(err, domain.ErrExtractorDisabled):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
