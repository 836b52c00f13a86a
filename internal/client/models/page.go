package models

// PageLinks are the backend's pagination links; nil means "no such page".
type PageLinks struct {
	First *string `json:"first"`
	Last  *string `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PageMeta describes the position of a page inside the whole collection.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	From        int `json:"from"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	To          int `json:"to"`
	Total       int `json:"total"`
}

// Page is one page of a paginated collection. Page numbers are 1-based.
type Page[T any] struct {
	Items []T       `json:"data"`
	Links PageLinks `json:"links"`
	Meta  PageMeta  `json:"meta"`
}

// Valid checks the collection invariants: no more items than per_page and
// current_page inside [1, last_page]. An empty collection may report
// last_page 0.
func (p Page[T]) Valid() bool {
	if p.Meta.PerPage > 0 && len(p.Items) > p.Meta.PerPage {
		return false
	}
	if p.Meta.LastPage == 0 {
		return len(p.Items) == 0
	}
	return p.Meta.CurrentPage >= 1 && p.Meta.CurrentPage <= p.Meta.LastPage
}

func (p Page[T]) HasNext() bool { return p.Links.Next != nil }

func (p Page[T]) HasPrev() bool { return p.Links.Prev != nil }
