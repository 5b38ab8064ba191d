package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	clientdomain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/httperr"
	"github.com/itzlabs/clientdesk/internal/storage"
)

const maxPhotoBytes = 8 << 20

type PhotoHandler struct {
	clients clientdomain.Repository
	photos  storage.PhotoStore
	log     *slog.Logger
}

func NewPhotoHandler(
	clients clientdomain.Repository,
	photos storage.PhotoStore,
	log *slog.Logger,
) *PhotoHandler {
	return &PhotoHandler{clients: clients, photos: photos, log: log}
}

// Upload processes a client photo (downscale + webp) and stores the
// resulting URL on the client record.
func (h *PhotoHandler) Upload(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if _, err := h.clients.GetByID(c.Request.Context(), id); err != nil {
		httperr.From(c, h.log, err)
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Upload an image in the 'photo' field.")
		return
	}
	defer file.Close()

	if header.Size > maxPhotoBytes {
		httperr.BadRequest(c, "file_too_large", "Image too large. Max 8MB.")
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Could not read the uploaded file.")
		return
	}

	processed, err := storage.ProcessPhoto(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The uploaded file is not a supported image.")
		return
	}

	key := "clients/" + uuid.NewString() + ".webp"
	url, err := h.photos.Put(c.Request.Context(), key, processed, "image/webp")
	if err != nil {
		h.log.Error("photo upload failed", "client_id", id, "err", err)
		httperr.Internal(c, "storage_error", "Something went wrong. Please try again.")
		return
	}

	payload := clientdomain.UpdatePayload{
		PhotoURL: clientdomain.Some(url),
	}
	updated, err := h.clients.Update(c.Request.Context(), id, payload, nil)
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": updated.PhotoURL})
}
