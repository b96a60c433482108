package rent

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Post("/rent/collect", h.Collect)
		r.Get("/notifications", h.Notifications)
	})
}

func (h *Handler) Collect(w http.ResponseWriter, r *http.Request) {
	var req CollectRentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rn, err := h.service.Collect(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "rent dates must be valid calendar dates")
		case errors.Is(err, core.ErrUnavailable):
			core.JSONError(w, core.UnavailableError())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToRentResponse(rn))
}

func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	rents, err := h.service.ListOverdue(r.Context(), time.Now().UTC())
	if err != nil {
		if errors.Is(err, core.ErrUnavailable) {
			core.JSONError(w, core.UnavailableError())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToRentResponses(rents))
}
