package applications

import (
	"net/http"

	"github.com/go-chi/render"
)

type genericSuccessResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	ID      *string `json:"id,omitempty"`
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

// applicationHeader are the fields every inbound application document needs
type applicationHeader struct {
	ID  string `json:"id"  validate:"required"`
	URL string `json:"url" validate:"required"`
}

type upsertResponse struct {
	Created bool `json:"created"`
}

func (*upsertResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type listResponse struct {
	Applications []string `json:"applications"`
}

func (*listResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type imageResponse struct {
	Image string `json:"image"`
}

func (*imageResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type setImageRequest struct {
	Image *string `json:"image"`
}
