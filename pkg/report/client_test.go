package report_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/travelmail/pkg/report"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("base url required", func(t *testing.T) {
		t.Parallel()

		_, err := report.NewClient(report.Config{})
		require.ErrorIs(t, err, report.ErrRenderFailed)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		c, err := report.NewClient(report.Config{BaseURL: "http://reports.local"})
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestClientLoad(t *testing.T) {
	t.Parallel()

	t.Run("posts the path and parameters", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/reports/load", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "reporter", user)
			assert.Equal(t, "secret", pass)

			var body struct {
				Path       string            `json:"path"`
				Parameters map[string]string `json:"parameters"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "/Itinerary/Itinerary", body.Path)
			assert.Equal(t, map[string]string{"BookingID": "42"}, body.Parameters)

			json.NewEncoder(w).Encode(map[string]string{"execution_id": "exec-9"})
		}))
		defer srv.Close()

		c, err := report.NewClient(report.Config{BaseURL: srv.URL, Username: "reporter", Password: "secret"})
		require.NoError(t, err)

		exec, err := c.Load(context.Background(), "/Itinerary/Itinerary", map[string]string{"BookingID": "42"})
		require.NoError(t, err)
		assert.Equal(t, "exec-9", exec.ID)
	})

	t.Run("missing execution id", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer srv.Close()

		c, err := report.NewClient(report.Config{BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.Load(context.Background(), "/Itinerary/Itinerary", nil)
		require.ErrorIs(t, err, report.ErrRenderFailed)
	})

	t.Run("non-200 status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c, err := report.NewClient(report.Config{BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.Load(context.Background(), "/Itinerary/Itinerary", nil)
		require.ErrorIs(t, err, report.ErrRenderFailed)
	})
}

func TestClientRender(t *testing.T) {
	t.Parallel()

	t.Run("returns the document bytes", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/reports/exec-9/render", r.URL.Path)
			assert.Equal(t, "PDF", r.URL.Query().Get("format"))
			w.Write([]byte("%PDF-1.7"))
		}))
		defer srv.Close()

		c, err := report.NewClient(report.Config{BaseURL: srv.URL})
		require.NoError(t, err)

		pdf, err := c.Render(context.Background(), report.Execution{ID: "exec-9"}, report.FormatPDF)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.7"), pdf)
	})

	t.Run("non-200 status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		c, err := report.NewClient(report.Config{BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.Render(context.Background(), report.Execution{ID: "gone"}, report.FormatPDF)
		require.ErrorIs(t, err, report.ErrRenderFailed)
	})
}
