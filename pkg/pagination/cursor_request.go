package pagination

// CursorRequest represents a cursor-based pagination request
type CursorRequest struct {
	Cursor string `query:"cursor"`
	Size   int    `query:"size"`
}

// Normalize clamps Size into [1, PageMaxSize], using PageDefaultSize when
// it is unset.
func (r *CursorRequest) Normalize() {
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
}
