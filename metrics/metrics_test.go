package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSync(t *testing.T) {
	before := testutil.ToFloat64(applicationSyncs.WithLabelValues(OutcomeSkipped))
	RecordSync(OutcomeSkipped)
	RecordSync(OutcomeSkipped)
	assert.Equal(t, before+2, testutil.ToFloat64(applicationSyncs.WithLabelValues(OutcomeSkipped)))
}

func TestRecordDeletionDefaultsEvent(t *testing.T) {
	before := testutil.ToFloat64(applicationDeletions.WithLabelValues("unknown"))
	RecordDeletion("")
	assert.Equal(t, before+1, testutil.ToFloat64(applicationDeletions.WithLabelValues("unknown")))
}

func TestInstrumentHandlerUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/applications/{id}/image", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/applications/{id}/image", "418"))
	req := httptest.NewRequest(http.MethodGet, "/applications/abc/image", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/applications/{id}/image", "418")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordModuleRemoval(true)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "apicportal_modules_removals_total")
}
