package author

import "github.com/samber/lo"

// AuthorRequest - POST /v1/authors, PUT /v1/authors/:id
// A client-supplied id is accepted and then ignored by the service.
type AuthorRequest struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name"`
}

// AuthorResponse - author as returned by the API
type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToEntity converts the request to an Author candidate
func (req *AuthorRequest) ToEntity() *Author {
	return &Author{
		ID:   lo.FromPtr(req.ID),
		Name: req.Name,
	}
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:   a.ID,
		Name: a.Name,
	}
}

// ToResponseList converts a slice of authors
func ToResponseList(authors []Author) []AuthorResponse {
	return lo.Map(authors, func(a Author, _ int) AuthorResponse {
		return a.ToResponse()
	})
}
