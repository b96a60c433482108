package unit

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

const attachmentsField = "conditionImages"

type Handler struct {
	service     *Service
	validator   *validator.Validate
	maxFileSize int64
}

func NewHandler(service *Service, maxFileSize int64) *Handler {
	return &Handler{
		service:     service,
		validator:   validator.New(validator.WithRequiredStructEnabled()),
		maxFileSize: maxFileSize,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/units", func(r chi.Router) {
		r.Use(authenticator)
		r.Post("/create", h.Create)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		core.BadRequest(w, "invalid multipart form")
		return
	}

	req := CreateUnitRequest{
		UnitID:   r.FormValue("unitId"),
		UnitName: r.FormValue("unitName"),
		UnitSize: r.FormValue("unitSize"),
	}

	rentAmount, err := strconv.ParseFloat(r.FormValue("rentAmount"), 64)
	if err != nil || rentAmount < 0 {
		core.BadRequest(w, "rentAmount must be a non-negative number")
		return
	}
	req.RentAmount = rentAmount

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	files, err := h.readAttachments(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	u, err := h.service.Create(r.Context(), req, files)
	if err != nil {
		h.respondError(w, err)
		return
	}

	core.OK(w, ToUnitResponse(u))
}

func (h *Handler) readAttachments(r *http.Request) ([]Attachment, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	headers := r.MultipartForm.File[attachmentsField]
	files := make([]Attachment, 0, len(headers))

	for _, header := range headers {
		if header.Size > h.maxFileSize {
			return nil, core.ValidationError(fmt.Sprintf(
				"%s exceeds the %d byte file size limit",
				header.Filename,
				h.maxFileSize,
			))
		}

		f, err := header.Open()
		if err != nil {
			return nil, core.ValidationError("unreadable attachment")
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, core.ValidationError("unreadable attachment")
		}

		files = append(files, Attachment{Name: header.Filename, Data: data})
	}

	return files, nil
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrTooManyAttachments):
		core.JSONError(w, core.TooManyAttachmentsError(h.service.maxFiles))
	case errors.Is(err, core.ErrStorageUnavailable):
		core.JSONError(w, core.StorageUnavailableError())
	case errors.Is(err, core.ErrUnavailable):
		core.JSONError(w, core.UnavailableError())
	default:
		core.InternalServerError(w, err)
	}
}
