package dto

// Response status values.
const (
	StatusSucceeded = "Succeeded"
	StatusFailed    = "Failed"
)

// Standard response messages.
const (
	MessageAddSuccess         = "Record created successfully"
	MessageUpdateSuccess      = "Record updated successfully"
	MessageDeleteSuccess      = "Record deleted successfully"
	MessageDeleteError        = "Failed to delete record"
	MessageNotFound           = "Record not found"
	MessageSomethingWentWrong = "Something went wrong"
)

// Response is the uniform envelope returned by every API endpoint.
type Response struct {
	Status     string          `json:"status"`
	IsSuccess  bool            `json:"isSuccess"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message,omitempty"`
	Data       any             `json:"data,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

// PaginationMeta carries pagination metadata for list responses.
type PaginationMeta struct {
	PageIndex       int   `json:"pageIndex"`
	PageSize        int   `json:"pageSize"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

func NewPaginationMeta(pageIndex, pageSize int, totalCount int64) *PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return &PaginationMeta{
		PageIndex:       pageIndex,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     pageIndex < totalPages,
		HasPreviousPage: pageIndex > 1,
	}
}

// PaginatedList is the service-level result of a filtered list query.
// TotalCount is the size of the filtered set before pagination.
type PaginatedList[T any] struct {
	Items      []T
	TotalCount int64
	PageIndex  int
	PageSize   int
}
