package management

import (
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

func (m *ManagementRessource) listApplications(w http.ResponseWriter, r *http.Request) {
	page := r.Context().Value(pageKey).(int)
	pageSize := r.Context().Value(pageSizeKey).(int)
	query := r.Context().Value(queryKey).(string)
	sort := r.Context().Value(sortKey).(string)

	apps, err := m.appService.List(r.Context(), page, pageSize, query, sort)
	if err != nil {
		m.log.Error("error listing applications", zap.Error(err))
		respondError(w, r, "invalid query", http.StatusBadRequest)
		return
	}
	render.Respond(w, r, apps)
}
