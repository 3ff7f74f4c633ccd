package dto

// PageResponse metadatos de página en respuestas (páginas 1-based).
type PageResponse struct {
	CurrentPage     int  `json:"current_page" graphql:"currentPage"`
	PageSize        int  `json:"page_size" graphql:"pageSize"`
	TotalItems      int  `json:"total_items" graphql:"totalItems"`
	TotalPages      int  `json:"total_pages" graphql:"totalPages"`
	StartIndex      int  `json:"start_index" graphql:"startIndex"`
	EndIndex        int  `json:"end_index" graphql:"endIndex"`
	HasNextPage     bool `json:"has_next_page" graphql:"hasNextPage"`
	HasPreviousPage bool `json:"has_previous_page" graphql:"hasPreviousPage"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
