package category

import "github.com/samber/lo"

// CategoryRequest - POST /v1/categories, PUT /v1/categories/:id
// A client-supplied id is accepted and then ignored by the service.
type CategoryRequest struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name"`
}

// CategoryResponse - category as returned by the API
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToEntity converts the request to a Category candidate
func (req *CategoryRequest) ToEntity() *Category {
	return &Category{
		ID:   lo.FromPtr(req.ID),
		Name: req.Name,
	}
}

// ToResponse converts Category entity to CategoryResponse DTO
func (cat Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:   cat.ID,
		Name: cat.Name,
	}
}

// ToResponseList converts a slice of categories
func ToResponseList(categories []Category) []CategoryResponse {
	return lo.Map(categories, func(cat Category, _ int) CategoryResponse {
		return cat.ToResponse()
	})
}
