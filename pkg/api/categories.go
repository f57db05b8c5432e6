package api

import "github.com/jay4webdev/Bill-Tracker/internal/models"

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

type CreateCategoryRequest struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories,omitempty"`
}

type CreateCategoryResponse struct {
	Category models.Category `json:"category"`
}

type DeleteCategoryRequest struct {
	ID string `json:"id"`
}

type DeleteCategoryResponse struct{}

type AddSubcategoryRequest struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}

type AddSubcategoryResponse struct {
	Category models.Category `json:"category"`
}

type RemoveSubcategoryRequest struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}

type RemoveSubcategoryResponse struct {
	Category models.Category `json:"category"`
}
