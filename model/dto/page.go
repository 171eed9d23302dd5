package dto

// PageResponse is the pagination envelope for list endpoints.
type PageResponse struct {
	Content       interface{} `json:"content"`
	PageNo        int         `json:"pageNo"`
	PageSize      int         `json:"pageSize"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Last          bool        `json:"last"`
}

// NewPageResponse builds the envelope. pageNo is zero-based; totalPages is
// ceil(total/pageSize) and last is true on (or past) the final page.
func NewPageResponse(content interface{}, pageNo, pageSize int, total int64) PageResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PageResponse{
		Content:       content,
		PageNo:        pageNo,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          pageNo+1 >= totalPages,
	}
}
