package types

// PageMeta accompanies paginated list responses.
type PageMeta struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}

// Page is one page of a list endpoint.
type Page[T any] struct {
	Items []T
	Meta  PageMeta
}

// ListOptions controls pagination and sorting of list endpoints.
type ListOptions struct {
	Page      int
	Limit     int
	Sort      string
	SortOrder string
}
