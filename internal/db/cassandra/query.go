package cassandra

import "strings"

// pageSize is how many rows each round trip fetches when draining a
// partition. Setting an explicit page state on a query disables the
// driver's automatic paging, so reads loop over pages manually.
const pageSize = 500

// withVisibility appends the tri-state visibility filter to a SELECT.
// A nil filter leaves the statement untouched and returns every row.
// The visible column is not part of any primary key, so a set filter
// needs ALLOW FILTERING.
func withVisibility(stmt string, visible *bool, args []interface{}) (string, []interface{}) {
	if visible == nil {
		return stmt, args
	}

	keyword := " WHERE "
	if strings.Contains(stmt, "WHERE") {
		keyword = " AND "
	}
	return stmt + keyword + "visible = ? ALLOW FILTERING", append(args, *visible)
}

// drainPages calls fetch once per page until the continuation token runs
// out. fetch receives the previous page's state and returns the next one;
// an empty state means the result set is exhausted.
func drainPages(fetch func(pageState []byte) ([]byte, error)) error {
	var pageState []byte
	for {
		next, err := fetch(pageState)
		if err != nil {
			return err
		}
		if len(next) == 0 {
			return nil
		}
		pageState = next
	}
}
