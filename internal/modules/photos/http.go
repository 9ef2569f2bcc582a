package photos

import (
	"net/http"

	"github.com/hrgovic/wedding-site/internal/modules/core"
	"github.com/hrgovic/wedding-site/internal/modules/rsvp"
	"github.com/hrgovic/wedding-site/internal/modules/session"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

type photosPageData struct {
	PhotosURL string
}

// HTTPHandler serves the photo-album page behind the same gate as the
// RSVP form. The page shows a QR code pointing at the externally hosted
// album.
type HTTPHandler struct {
	gate      *rsvp.Gate
	sessions  *session.Store
	renderer  *core.Renderer
	photosURL string
	logger    *zap.Logger
}

func NewHTTPHandler(
	gate *rsvp.Gate,
	sessions *session.Store,
	renderer *core.Renderer,
	photosURL string,
	logger *zap.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		gate:      gate,
		sessions:  sessions,
		renderer:  renderer,
		photosURL: photosURL,
		logger:    logger,
	}
}

func (h *HTTPHandler) HandleGetPhotos(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if !sess.Authorized {
		h.renderer.Render(w, "code-form.html", rsvp.CodeFormData{Action: "/photos"})
		return
	}

	h.renderer.Render(w, "photos.html", photosPageData{PhotosURL: h.photosURL})
}

func (h *HTTPHandler) HandlePostPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		h.renderer.RenderStatus(w, http.StatusBadRequest, "code-form.html", rsvp.CodeFormData{Action: "/photos"})
		return
	}

	result, err := h.gate.Authorize(ctx, sess, r.PostForm.Get("code"))
	if err != nil {
		h.logger.Error("photos gate check failed", zap.Error(err))
		h.renderer.RenderStatus(w, http.StatusInternalServerError, "rsvp-error.html", nil)
		return
	}

	switch result.Status {
	case rsvp.AuthStatusAuthorized:
		if err := session.Commit(ctx, w, h.sessions, sess); err != nil {
			h.logger.Error("failed to commit session", zap.Error(err))
			h.renderer.RenderStatus(w, http.StatusInternalServerError, "rsvp-error.html", nil)
			return
		}

		h.renderer.Render(w, "photos.html", photosPageData{PhotosURL: h.photosURL})
	case rsvp.AuthStatusInvalidCode:
		h.renderer.Render(w, "code-form.html", rsvp.CodeFormData{Action: "/photos", InvalidCode: true})
	default:
		h.renderer.Render(w, "code-form.html", rsvp.CodeFormData{Action: "/photos"})
	}
}

// HandleQRImage renders the album link as a PNG QR code. Gated like the
// page that embeds it.
func (h *HTTPHandler) HandleQRImage(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if !sess.Authorized {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(h.photosURL, qrcode.Medium, 512)
	if err != nil {
		h.logger.Error("failed to encode qr code", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		h.logger.Error("failed to write qr code response", zap.Error(err))
	}
}
