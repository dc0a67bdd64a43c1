package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestProjectorEventsHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing projector name returns 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/projectors//events", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.projectorEventsHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok, "expected echo.HTTPError") {
				assert.Equal(t, http.StatusBadRequest, he.Code)
				assert.Contains(t, he.Message, "projector name")
			}
		}
	})
}

func TestProjectorSnapshotHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing world_id returns 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/projectors//snapshot", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.projectorSnapshotHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusBadRequest, he.Code)
			}
		}
	})
}

func TestRebuildProjectorHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing world_id returns 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/admin/projectors//rebuild",
			strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.rebuildProjectorHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusBadRequest, he.Code)
			}
		}
	})

	t.Run("from_global_seq with a clearing rebuild returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/projectors/relational/rebuild",
			strings.NewReader(`{"world_id":"11111111-2222-3333-4444-555555555555","from_global_seq":10}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "clear_existing")
	})
}

func TestRequeueDeadLetterHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name string
		seq  string
	}{
		{"empty", ""},
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost,
				"/admin/dead-letters/"+tt.seq+"/requeue", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.requeueDeadLetterHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok) {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, "global_seq")
				}
			}
		})
	}
}
