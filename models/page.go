package models

// Pagination limits of list endpoints.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

// Page is a skip/limit window over a list.
type Page struct {
	Skip  uint64
	Limit uint64
}

// Normalize applies the default limit and caps it.
func (p Page) Normalize() Page {
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
