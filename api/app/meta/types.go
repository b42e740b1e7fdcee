package meta

import "net/http"

// portalMetaData describes the public surface of the portal to frontends
type portalMetaData struct {
	Site                  string   `json:"site"`
	ChangePasswordURL     string   `json:"change_password_url"`
	Modules               []string `json:"modules"`
	ShowPlaceholderImages bool     `json:"show_placeholder_images"`
	ApplicationImagePath  string   `json:"application_image_path"`
	ProductImagePath      string   `json:"product_image_path"`
}

func (*portalMetaData) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

type policyRequest struct {
	Password string `json:"password"`
}
