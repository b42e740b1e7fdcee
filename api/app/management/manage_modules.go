package management

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eisenwinter/apicportal/identity"
	"github.com/eisenwinter/apicportal/modules"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

func (m *ManagementRessource) installedModules(w http.ResponseWriter, r *http.Request) {
	installed, err := m.remover.Installed()
	if err != nil {
		m.log.Error("unable to list custom modules", zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	err = render.Render(w, r, &modulesResponse{Installed: installed})
	if err != nil {
		m.log.Error("unable to render response", zap.Error(err))
	}
}

func (m *ManagementRessource) stageModules(w http.ResponseWriter, r *http.Request) {
	var req *stageModulesRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req == nil {
		m.log.Info("invalid payload data", zap.Error(err))
		respondError(w, r, "invalid payload", http.StatusBadRequest)
		return
	}
	p := identity.FromContext(r.Context())
	err = m.remover.Stage(r.Context(), p.UserID, req.Modules)
	if err != nil {
		if errors.Is(err, modules.ErrNothingStaged) || errors.Is(err, modules.ErrInvalidModuleName) {
			respondError(w, r, err.Error(), http.StatusBadRequest)
			return
		}
		m.log.Error("unable to stage custom modules", zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	render.Status(r, http.StatusAccepted)
	err = render.Render(w, r, &modulesResponse{Staged: req.Modules})
	if err != nil {
		m.log.Error("unable to render response", zap.Error(err))
	}
}

func (m *ManagementRessource) stagedModules(w http.ResponseWriter, r *http.Request) {
	p := identity.FromContext(r.Context())
	staged, err := m.remover.Staged(r.Context(), p.UserID)
	if err != nil {
		if errors.Is(err, modules.ErrNothingStaged) {
			respondError(w, r, err.Error(), http.StatusNotFound)
			return
		}
		m.log.Error("unable to load staged custom modules", zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	err = render.Render(w, r, &modulesResponse{Staged: staged})
	if err != nil {
		m.log.Error("unable to render response", zap.Error(err))
	}
}

func (m *ManagementRessource) confirmModules(w http.ResponseWriter, r *http.Request) {
	p := identity.FromContext(r.Context())
	ok, err := m.remover.Confirm(r.Context(), p.UserID)
	if err != nil {
		if errors.Is(err, modules.ErrNothingStaged) {
			respondError(w, r, err.Error(), http.StatusNotFound)
			return
		}
		m.log.Error("unable to delete custom modules", zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		respondError(w, r, "custom modules could not be deleted, nothing was removed", http.StatusConflict)
		return
	}
	err = render.Render(w, r, &genericSuccessResponse{
		Success: true,
		Message: "Successfully deleted custom modules",
	})
	if err != nil {
		m.log.Error("unable to render response", zap.Error(err))
	}
}
