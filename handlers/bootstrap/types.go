package bootstrap

import (
	"api/models"
	"api/repository"
)

// Handler holds the injected store for the initialization endpoints
type Handler struct {
	store repository.Store
}

// AdminInitResponse is the admin view: full category and contestant lists,
// no per-judge score filter
type AdminInitResponse struct {
	Categories  []models.Category   `json:"categories"`
	Contestants []models.Contestant `json:"contestants"`
}
