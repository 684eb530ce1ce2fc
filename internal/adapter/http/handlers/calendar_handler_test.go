package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"control_plagas/internal/adapter/http/handlers/mocks"
	"control_plagas/internal/usecase"
	"control_plagas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCalendarHandler_CreateEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarSyncUseCase(ctrl)
		h := NewCalendarHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar/events", h.CreateEvent)

		req := httptest.NewRequest(http.MethodPost, "/v1/calendar/events", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing order id fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarSyncUseCase(ctrl)
		h := NewCalendarHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar/events", h.CreateEvent)

		req := httptest.NewRequest(http.MethodPost, "/v1/calendar/events", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unconfigured maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarSyncUseCase(ctrl)
		h := NewCalendarHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar/events", h.CreateEvent)

		uc.EXPECT().CreateEvent(gomock.Any(), "o-1").Return(interfaces.CalendarEventRef{}, usecase.ErrCalendarNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/calendar/events", bytes.NewBufferString(`{"order_id":"o-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("unscheduled order maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarSyncUseCase(ctrl)
		h := NewCalendarHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar/events", h.CreateEvent)

		uc.EXPECT().CreateEvent(gomock.Any(), "o-1").Return(interfaces.CalendarEventRef{}, usecase.ErrOrderNotSchedulable)

		req := httptest.NewRequest(http.MethodPost, "/v1/calendar/events", bytes.NewBufferString(`{"order_id":"o-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarSyncUseCase(ctrl)
		h := NewCalendarHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar/events", h.CreateEvent)

		uc.EXPECT().CreateEvent(gomock.Any(), "o-1").Return(interfaces.CalendarEventRef{EventID: "ev-1", HTMLLink: "https://calendar.test/ev-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/calendar/events", bytes.NewBufferString(`{"order_id":"o-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["event_id"] != "ev-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCalendarHandler_UpdateEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("event vanished at provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarSyncUseCase(ctrl)
		h := NewCalendarHandler(uc)

		r := gin.New()
		r.PUT("/v1/calendar/events/:event_id", h.UpdateEvent)

		uc.EXPECT().UpdateEvent(gomock.Any(), "ev-1", "o-1").Return(interfaces.CalendarEventRef{}, usecase.ErrCalendarEventNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/calendar/events/ev-1", bytes.NewBufferString(`{"order_id":"o-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarSyncUseCase(ctrl)
		h := NewCalendarHandler(uc)

		r := gin.New()
		r.PUT("/v1/calendar/events/:event_id", h.UpdateEvent)

		uc.EXPECT().UpdateEvent(gomock.Any(), "ev-1", "o-1").Return(interfaces.CalendarEventRef{EventID: "ev-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/calendar/events/ev-1", bytes.NewBufferString(`{"order_id":"o-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCalendarHandler_RemoveEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("upstream outage maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarSyncUseCase(ctrl)
		h := NewCalendarHandler(uc)

		r := gin.New()
		r.DELETE("/v1/calendar/events/:event_id", h.RemoveEvent)

		uc.EXPECT().RemoveEvent(gomock.Any(), "ev-1").Return(usecase.ErrCalendarUpstream)

		req := httptest.NewRequest(http.MethodDelete, "/v1/calendar/events/ev-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success even when already absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarSyncUseCase(ctrl)
		h := NewCalendarHandler(uc)

		r := gin.New()
		r.DELETE("/v1/calendar/events/:event_id", h.RemoveEvent)

		uc.EXPECT().RemoveEvent(gomock.Any(), "ev-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/calendar/events/ev-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCalendarHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICalendarSyncUseCase(ctrl)
	h := NewCalendarHandler(uc)

	r := gin.New()
	r.GET("/v1/calendar/health", h.Health)

	uc.EXPECT().Health().Return(usecase.CalendarHealth{Configured: true})

	req := httptest.NewRequest(http.MethodGet, "/v1/calendar/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["configured"] != true {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapCalendarError(t *testing.T) {
	if got := mapCalendarError(usecase.ErrInvalidEventID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCalendarError(usecase.ErrInvalidWorkOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCalendarError(usecase.ErrOrderNotSchedulable); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapCalendarError(usecase.ErrWorkOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCalendarError(usecase.ErrNeighborNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCalendarError(usecase.ErrCalendarEventNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCalendarError(usecase.ErrCalendarNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapCalendarError(usecase.ErrCalendarUpstream); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapCalendarError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
