package domain

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Page is a limit/offset window over a listing.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the limit into [1, MaxPageLimit] (0 means default) and
// floors the offset at zero.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
