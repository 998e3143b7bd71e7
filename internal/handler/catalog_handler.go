package handler

import (
	"net/http"

	"github.com/gocybercheck/cybercheck/internal/catalog"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Catalog serves the full question catalog in presentation order.
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories":    catalog.Categories(),
		"questionCount": catalog.QuestionCount(),
	})
}
