package createuser

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"signup/internal/core/domain/account"
	c "signup/internal/core/domain/common"
	ratelimiter "signup/internal/core/domain/rate_limiter"
	"signup/internal/core/domain/registration"
	"signup/internal/core/services"
	registeraccount "signup/internal/core/services/register_account"
	"signup/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[registeraccount.Input, registeraccount.Result]
}

func New(service services.Service[registeraccount.Input, registeraccount.Result]) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.RuneLength(0, 256)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(
			&i.Password,
			validation.Required,
			validation.RuneLength(registration.MinPasswordLength, 256),
		),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		registeraccount.Input{
			Name:     input.Name,
			Email:    c.NewEmail(input.Email),
			ClientIP: clientIP(r),
		},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderError(rw, "too many requests", http.StatusTooManyRequests)
		return
	}
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, struct{}{}, http.StatusCreated)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
