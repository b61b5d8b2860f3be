package pagination

// CursorResult is one page of items. NextCursor is set only when HasMore is.
type CursorResult[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
	HasMore    bool    `json:"has_more"`
}

// NewCursorResult builds a page from up to size+1 fetched items. The extra
// item only signals that more exist; it is dropped and the cursor is taken
// from the last item kept.
func NewCursorResult[T any](items []T, size int, cursorFn func(T) (string, error)) (*CursorResult[T], error) {
	hasMore := len(items) > size
	if hasMore {
		items = items[:size]
	}

	result := &CursorResult[T]{
		Items:   items,
		HasMore: hasMore,
	}

	if hasMore && len(items) > 0 {
		cursor, err := cursorFn(items[len(items)-1])
		if err != nil {
			return nil, err
		}
		result.NextCursor = &cursor
	}

	return result, nil
}
