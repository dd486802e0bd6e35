package middlewares_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"askboard/internal/middlewares"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		handlerBody   string
	}{
		{name: "OK response", handlerStatus: http.StatusOK, handlerBody: "hello"},
		{name: "server error", handlerStatus: http.StatusInternalServerError, handlerBody: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := middlewares.LoggingMiddleware(zap.NewNop().Sugar())(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			body, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(body))
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}
