package management

import (
	"net/http"

	"github.com/eisenwinter/apicportal/user"
	"github.com/go-chi/render"
)

type genericSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (g *genericSuccessResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func createError(err string, status int) *genericErrorResponse {
	return &genericErrorResponse{
		Error:      err,
		StatusCode: status,
	}
}

type genericErrorResponse struct {
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"-"`
}

func (e *genericErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// respondError writes the error body with its status code, Render sets the status
func respondError(w http.ResponseWriter, r *http.Request, err string, status int) {
	_ = render.Render(w, r, createError(err, status))
}

type stageModulesRequest struct {
	Modules []string `json:"modules"`
}

type modulesResponse struct {
	Installed []string `json:"installed,omitempty"`
	Staged    []string `json:"staged,omitempty"`
}

func (m *modulesResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type resetLinkRequest struct {
	Username string `json:"username"`
	Notify   bool   `json:"notify"`
}

type resetLinkResponse struct {
	*user.ResetLink
}

func (r *resetLinkResponse) Render(w http.ResponseWriter, req *http.Request) error {
	return nil
}
