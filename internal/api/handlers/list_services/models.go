package list_services

import "github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []models.ServiceResponse `json:"services"`
}
