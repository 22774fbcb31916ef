// Package pagination turns page/per_page query values into LIMIT/OFFSET
// pairs and describes the resulting page.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 31
	MaxPerPage     = 366
)

type Params struct {
	Page    int
	PerPage int
}

// NewParams clamps page and perPage to usable values.
func NewParams(page, perPage int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

type Info struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

func NewInfo(p Params, totalItems int) *Info {
	totalPages := (totalItems + p.PerPage - 1) / p.PerPage
	if totalPages == 0 {
		totalPages = 1
	}

	return &Info{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
