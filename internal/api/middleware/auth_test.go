package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playden/GPR-BookingService/internal/domain"
)

func TestAuth_MissingUserID(t *testing.T) {
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidUserID(t *testing.T) {
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	for _, raw := range []string{"abc", "-5", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
		req.Header.Set(HeaderUserID, raw)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "user id %q", raw)
	}
}

func TestAuth_ActorInContext(t *testing.T) {
	var got domain.Actor
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		got = actor
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	req.Header.Set(HeaderUserID, "42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Actor{UserID: 42, IsAdmin: false}, got)
}

func TestAuth_AdminRole(t *testing.T) {
	var got domain.Actor
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ActorFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	req.Header.Set(HeaderUserID, "7")
	req.Header.Set(HeaderUserRole, "admin")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, got.IsAdmin)
}

func TestRequestID_Generated(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFromContext(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestRequestID_Propagated(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-123", RequestIDFromContext(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
}
