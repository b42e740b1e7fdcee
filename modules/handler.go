// Package modules knows which optional portal modules are enabled and removes custom module directories
package modules

import (
	"github.com/eisenwinter/apicportal/config"
)

// optional modules
const (
	PasswordPolicy = "password_policy"
	Rules          = "rules"
	Serialization  = "serialization"
	Product        = "product"
)

// Known lists every optional module the portal understands
var Known = []string{PasswordPolicy, Rules, Serialization, Product}

// Handler answers module enablement queries
type Handler struct {
	enabled map[string]struct{}
}

// NewHandler returns a handler for the configured modules
func NewHandler(cfg *config.ModulesConfiguration) *Handler {
	h := &Handler{enabled: make(map[string]struct{})}
	if cfg == nil {
		return h
	}
	for _, m := range cfg.Enabled {
		h.enabled[m] = struct{}{}
	}
	return h
}

// Exists reports whether the module is enabled
func (h *Handler) Exists(name string) bool {
	_, ok := h.enabled[name]
	return ok
}

// Enabled lists the enabled known modules
func (h *Handler) Enabled() []string {
	res := make([]string, 0, len(h.enabled))
	for _, m := range Known {
		if h.Exists(m) {
			res = append(res, m)
		}
	}
	return res
}
