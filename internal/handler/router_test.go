//go:build unit

package handler_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/httptest"
	usecasemock "hotel-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*gin.Engine, *usecasemock.MockBookingService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	booking := usecasemock.NewMockBookingService(gomock.NewController(t))
	engine := gin.New()
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log),
		api.NewRoomHandler(booking), api.NewReservationHandler(booking))
	return engine, booking
}

func TestRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		router, _ := newRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("every response carries a request id", func(t *testing.T) {
		router, booking := newRouter(t)
		booking.EXPECT().ListRooms(gomock.Any()).Return([]*queries.RoomView{}, nil)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/rooms", nil)
		require.Equal(t, http.StatusOK, w.Code)
		_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})

	t.Run("caller supplied request id is echoed", func(t *testing.T) {
		router, _ := newRouter(t)
		id := uuid.NewString()

		req := nethttptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", id)
		w := nethttptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, id, w.Header().Get("X-Request-ID"))
	})

	t.Run("engine failures render as JSON errors", func(t *testing.T) {
		router, booking := newRouter(t)
		booking.EXPECT().ListRooms(gomock.Any()).Return(nil, errors.New("boom"))

		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/rooms", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "")
	})

	t.Run("panics are recovered", func(t *testing.T) {
		router, booking := newRouter(t)
		booking.EXPECT().ListRooms(gomock.Any()).DoAndReturn(func(any) ([]*queries.RoomView, error) {
			panic("boom")
		})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/rooms", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "")
	})

	t.Run("unknown route", func(t *testing.T) {
		router, _ := newRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/unknown", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
