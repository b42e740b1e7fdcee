package db

// ListOptions are the paging, sorting and FIQL filter options of list queries
type ListOptions struct {
	PageSize int
	Page     int
	Sort     string
	Query    string
}
