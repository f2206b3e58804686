package postgresql

import "fmt"

// paginate appends LIMIT/OFFSET placeholders for page-based listing.
// Page defaults to 1 and limit to 10 when unset.
func paginate(query string, args []interface{}, argPos, page, limit int) (string, []interface{}) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)
	return query, args
}
