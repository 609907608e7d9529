package dto

import (
	md "github.com/ichewm/MedicalBible-sub005/internal/models"
)

type PaginatedFamilyResponse struct {
	Data        []*md.TokenFamily `json:"data"`
	Count       int64             `json:"count"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	HasNextPage bool              `json:"hasNextPage"`
}
