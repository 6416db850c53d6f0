package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderError(t *testing.T) {
	assert := require.New(t)
	rw := httptest.NewRecorder()

	RenderError(rw, "email already exists", http.StatusUnprocessableEntity)

	assert.Equal(http.StatusUnprocessableEntity, rw.Code)
	assert.Equal("application/json", rw.Header().Get("Content-Type"))
	assert.JSONEq(`{"error":"email already exists"}`, rw.Body.String())
}

func TestRenderUnsupportedValue(t *testing.T) {
	rw := httptest.NewRecorder()

	Render(rw, make(chan int), http.StatusOK)

	require.Equal(t, http.StatusInternalServerError, rw.Code)
}
