package management

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eisenwinter/apicportal/manage"
	"github.com/eisenwinter/apicportal/sanitize"
	"github.com/eisenwinter/apicportal/user"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

func (m *ManagementRessource) listUsers(w http.ResponseWriter, r *http.Request) {
	page := r.Context().Value(pageKey).(int)
	pageSize := r.Context().Value(pageSizeKey).(int)
	query := r.Context().Value(queryKey).(string)
	sort := r.Context().Value(sortKey).(string)

	users, err := m.userService.List(r.Context(), page, pageSize, query, sort)
	if err != nil {
		m.log.Error("error listing users", zap.Error(err))
		respondError(w, r, "invalid query", http.StatusBadRequest)
		return
	}
	render.Respond(w, r, users)
}

func (m *ManagementRessource) userByID(w http.ResponseWriter, r *http.Request) {
	u := r.URL.Query().Get("id")
	id, err := strconv.Atoi(u)
	if err != nil {
		m.log.Info("invalid query data for user by id", zap.Error(err))
		respondError(w, r, "invalid query data", http.StatusBadRequest)
		return
	}
	user, err := m.userService.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, manage.ErrUserNotFound) {
			respondError(w, r, "user not found", http.StatusNotFound)
			return
		}
		m.log.Error("error getting user by id", zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	err = render.Render(w, r, user)
	if err != nil {
		m.log.Error("unable to render response", zap.Error(err))
	}
}

func (m *ManagementRessource) issueResetLink(w http.ResponseWriter, r *http.Request) {
	var req resetLinkRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Username == "" {
		respondError(w, r, "invalid request body", http.StatusBadRequest)
		return
	}
	link, err := m.resetLinks.Issue(r.Context(), req.Username, req.Notify)
	if err != nil {
		if errors.Is(err, user.ErrEntityDoesNotExist) {
			respondError(w, r, "user not found", http.StatusNotFound)
			return
		}
		m.log.Error("unable to issue reset link", sanitize.UserInputString("username", req.Username), zap.Error(err))
		if link == nil {
			respondError(w, r, "internal server error", http.StatusInternalServerError)
			return
		}
	}
	render.Status(r, http.StatusCreated)
	err = render.Render(w, r, &resetLinkResponse{ResetLink: link})
	if err != nil {
		m.log.Error("unable to render response", zap.Error(err))
	}
}
