package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := models.FromDomainServices(h.catalog.ListServices())

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, ServicesResponse{Services: services})
}
