package dto

// TotalPages derives the page count for a result set: ceil(total/limit).
// Pages past the last one are legal requests that simply come back empty.
func TotalPages(total int64, limit int) int {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return totalPages
}
