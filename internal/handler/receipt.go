package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/pricecart/pricecart/internal/archive"
	"github.com/pricecart/pricecart/internal/auth"
	"github.com/pricecart/pricecart/internal/model"
	"github.com/pricecart/pricecart/internal/store"
	"github.com/pricecart/pricecart/internal/websocket"
)

// maxReceiptBytes caps uploads at 10 MB.
const maxReceiptBytes = 10 << 20

var allowedReceiptTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

type ReceiptHandler struct {
	receiptStore *store.ReceiptStore
	archiver     *archive.Archiver
	hub          *websocket.Hub
	logger       *slog.Logger
}

func NewReceiptHandler(rs *store.ReceiptStore, a *archive.Archiver, hub *websocket.Hub, logger *slog.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptStore: rs,
		archiver:     a,
		hub:          hub,
		logger:       logger,
	}
}

// receiptView decorates a receipt with display fields for the UI.
type receiptView struct {
	*model.Receipt
	DisplayName string `json:"display_name"`
	SizeLabel   string `json:"size_label"`
}

func viewOf(r *model.Receipt) receiptView {
	return receiptView{
		Receipt:     r,
		DisplayName: fmt.Sprintf("Receipt %s", r.UploadedAt.Format("January 2, 2006")),
		SizeLabel:   humanize.Bytes(uint64(r.FileSize)),
	}
}

// Upload accepts a multipart form with a "receipt" file field. The blob is
// stored in SQLite; when the archive is configured a copy goes to S3 too.
func (h *ReceiptHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptBytes)
	if err := r.ParseMultipartForm(maxReceiptBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file too large or malformed upload"})
		return
	}

	file, header, err := r.FormFile("receipt")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "receipt file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("read upload", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read upload"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !allowedReceiptTypes[contentType] {
		writeJSON(w, http.StatusUnsupportedMediaType, map[string]string{"error": "only images and PDFs are accepted"})
		return
	}

	userID := auth.UserID(r.Context())

	archiveKey, err := h.archiver.Put(r.Context(), userID, header.Filename, contentType, data)
	if err != nil {
		// Archive failures are not fatal; the database copy still lands.
		h.logger.Warn("archive receipt", "error", err)
		archiveKey = ""
	}

	receipt, err := h.receiptStore.Create(userID, header.Filename, contentType, data, archiveKey)
	if err != nil {
		h.logger.Error("create receipt", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save receipt"})
		return
	}

	h.hub.NotifyUser(userID, websocket.NewMessage("receipt", "created", receipt.ID, nil))
	writeJSON(w, http.StatusCreated, viewOf(receipt))
}

func (h *ReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.receiptStore.ListByUser(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list receipts", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load receipts"})
		return
	}

	views := make([]receiptView, 0, len(receipts))
	for _, rec := range receipts {
		views = append(views, viewOf(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{"receipts": views})
}

func (h *ReceiptHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid receipt id"})
		return
	}

	receipt, err := h.receiptStore.GetData(auth.UserID(r.Context()), id)
	if err != nil {
		h.logger.Error("get receipt data", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load receipt"})
		return
	}
	if receipt == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "receipt not found"})
		return
	}

	w.Header().Set("Content-Type", receipt.FileType)
	w.Header().Set("Content-Length", strconv.FormatInt(receipt.FileSize, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.FileName))
	w.Write(receipt.FileData)
}

func (h *ReceiptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid receipt id"})
		return
	}

	userID := auth.UserID(r.Context())
	receipt, err := h.receiptStore.GetByID(id)
	if err != nil {
		h.logger.Error("get receipt", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete receipt"})
		return
	}
	if receipt == nil || receipt.UserID != userID {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "receipt not found"})
		return
	}

	if err := h.receiptStore.Delete(userID, id); err != nil {
		h.logger.Error("delete receipt", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete receipt"})
		return
	}
	if err := h.archiver.Delete(r.Context(), receipt.ArchiveKey); err != nil {
		h.logger.Warn("delete archived receipt", "error", err)
	}

	h.hub.NotifyUser(userID, websocket.NewMessage("receipt", "deleted", id, nil))
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
