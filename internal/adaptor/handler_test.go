package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"retreat-booking/internal/data/entity"
	"retreat-booking/internal/dto/request"
	"retreat-booking/internal/dto/response"
	"retreat-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"retreat not found", fmt.Errorf("retreat x: %w", entity.ErrRetreatNotFound), http.StatusNotFound},
		{"reservation not found", fmt.Errorf("reservation x: %w", entity.ErrReservationNotFound), http.StatusNotFound},
		{"guest not found", entity.ErrGuestNotFound, http.StatusNotFound},
		{"ledger entry not found", entity.ErrLedgerEntryNotFound, http.StatusNotFound},
		{"capacity exceeded", fmt.Errorf("admission: %w", entity.ErrCapacityExceeded), http.StatusConflict},
		{"already checked in", entity.ErrAlreadyCheckedIn, http.StatusConflict},
		{"has ledger entries", entity.ErrHasLedgerEntries, http.StatusConflict},
		{"reservation closed", entity.ErrReservationClosed, http.StatusConflict},
		{"email taken", entity.ErrGuestEmailTaken, http.StatusConflict},
		{"outside retreat dates", entity.ErrActivityOutsideRetreat, http.StatusBadRequest},
		{"validation failure", errors.New("validation failed: PartySize: Minimum length is 1"), http.StatusBadRequest},
		{"invalid id", errors.New("invalid reservation ID format nope"), http.StatusBadRequest},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondServiceError(rec, zap.NewNop(), tt.err, "test operation")

			assert.Equal(t, tt.expected, rec.Code)

			var body utils.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Status)
		})
	}
}

// stubRetreatService returns canned values so handler plumbing can be
// exercised without repositories.
type stubRetreatService struct {
	retreat      *response.RetreatResponse
	availability *response.AvailabilityResponse
	err          error
}

func (s *stubRetreatService) CreateRetreat(_ context.Context, _ *request.CreateRetreatRequest) (*response.RetreatResponse, error) {
	return s.retreat, s.err
}

func (s *stubRetreatService) GetRetreatByID(_ context.Context, _ string) (*response.RetreatResponse, error) {
	return s.retreat, s.err
}

func (s *stubRetreatService) UpdateRetreat(_ context.Context, _ string, _ *request.UpdateRetreatRequest) (*response.RetreatResponse, error) {
	return s.retreat, s.err
}

func (s *stubRetreatService) ListRetreats(_ context.Context, _ *request.PaginatedRequest) (*response.PaginatedResponse[response.RetreatResponse], error) {
	return nil, s.err
}

func (s *stubRetreatService) GetAvailability(_ context.Context, _, _, _ string) (*response.AvailabilityResponse, error) {
	return s.availability, s.err
}

func newRetreatRouter(service *stubRetreatService) *chi.Mux {
	handler := NewRetreatHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/retreats", handler.CreateRetreat)
	r.Get("/api/retreats/{id}", handler.GetRetreatByID)
	r.Get("/api/retreats/{id}/availability", handler.GetAvailability)
	return r
}

func TestRetreatHandler(t *testing.T) {
	t.Run("create returns 201 with envelope", func(t *testing.T) {
		router := newRetreatRouter(&stubRetreatService{
			retreat: &response.RetreatResponse{Name: "Mountain Silence", Capacity: 10},
		})

		body := `{"name":"Mountain Silence","capacity":10,"start_date":"2026-06-01","end_date":"2026-06-30","instructor":"Maya","location":"Highlands","price_per_guest":100}`
		req := httptest.NewRequest(http.MethodPost, "/api/retreats", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp utils.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Status)
	})

	t.Run("create with invalid payload returns 400 before the service", func(t *testing.T) {
		router := newRetreatRouter(&stubRetreatService{})

		body := `{"name":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/api/retreats", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get missing retreat returns 404", func(t *testing.T) {
		router := newRetreatRouter(&stubRetreatService{err: entity.ErrRetreatNotFound})

		req := httptest.NewRequest(http.MethodGet, "/api/retreats/some-id", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("availability requires both window bounds", func(t *testing.T) {
		router := newRetreatRouter(&stubRetreatService{})

		req := httptest.NewRequest(http.MethodGet, "/api/retreats/some-id/availability?check_in=2026-06-01", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("availability returns the committed window", func(t *testing.T) {
		router := newRetreatRouter(&stubRetreatService{
			availability: &response.AvailabilityResponse{Capacity: 10, Committed: 6, Remaining: 4},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/retreats/some-id/availability?check_in=2026-06-01&check_out=2026-06-05", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
