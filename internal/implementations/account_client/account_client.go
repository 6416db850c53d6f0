package accountclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"signup/internal/core/domain/account"
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/logging"
	"signup/internal/core/domain/registration"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const USERS_PATH = "users"

// maxErrorBodySize bounds how much of a failed response is read.
const maxErrorBodySize = 4096

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type HTTPAccountCreator struct {
	log        logging.Logger
	tracer     trace.Tracer
	httpClient http.Client
	baseURL    url.URL
}

func New(
	log logging.Logger,
	tracer trace.Tracer,
	baseURL url.URL,
	timeout time.Duration,
) *HTTPAccountCreator {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tracer == nil {
		panic(e.NewNilArgumentError("tracer"))
	}
	return &HTTPAccountCreator{
		log:        log,
		tracer:     tracer,
		baseURL:    baseURL,
		httpClient: http.Client{Timeout: timeout},
	}
}

func (c *HTTPAccountCreator) CreateAccount(ctx context.Context, input registration.Input) (err error) {
	url := c.baseURL.JoinPath(USERS_PATH)
	ctx, span := c.tracer.Start(
		ctx,
		"account.create",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodPost),
			attribute.String("url.full", url.String()),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var body bytes.Buffer
	err = json.NewEncoder(&body).Encode(createUserRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(input.Password),
	})
	if err != nil {
		return &account.RemoteFailure{Cause: err}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url.String(), &body)
	if err != nil {
		return &account.RemoteFailure{Cause: err}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if errors.Is(err, context.Canceled) {
		return &account.RemoteFailure{Cause: err}
	}
	if err != nil {
		c.log.Error(
			ctx,
			"Could not reach account endpoint.",
			logging.Entry("url", url.String()),
			logging.Entry("err", err),
		)
		return &account.RemoteFailure{Cause: err}
	}
	defer response.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", response.StatusCode))

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, response.Body)
		c.log.Info(
			ctx,
			"Account endpoint accepted the registration.",
			logging.Entry("status", response.StatusCode),
		)
		return nil
	}

	failure := &account.RemoteFailure{StatusCode: response.StatusCode}
	errResp := errorResponse{}
	if decodeErr := json.NewDecoder(io.LimitReader(response.Body, maxErrorBodySize)).Decode(&errResp); decodeErr == nil {
		failure.Message = errResp.Error
	}
	c.log.Error(
		ctx,
		"Account endpoint rejected the registration.",
		logging.Entry("status", response.StatusCode),
		logging.Entry("message", failure.Message),
	)
	return failure
}
