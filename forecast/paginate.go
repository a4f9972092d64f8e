package forecast

import "weatherdash.app/models"

// DefaultHoursPerPage matches the dashboard's default page-size choice.
const DefaultHoursPerPage = 5

// PageSizes are the page sizes the dashboard offers.
var PageSizes = []int{5, 10, 15}

// Paginator windows a sorted hour-label sequence into fixed-size pages.
// The current page always stays inside [0, totalPages-1]; moving past a
// boundary is a no-op, not an error.
type Paginator struct {
	hours   []string
	perPage int
	page    int
}

// NewPaginator builds a paginator over hours reset to page 0. A
// non-positive perPage falls back to DefaultHoursPerPage.
func NewPaginator(hours []string, perPage int) *Paginator {
	if perPage <= 0 {
		perPage = DefaultHoursPerPage
	}
	return &Paginator{hours: hours, perPage: perPage}
}

// TotalPages is ceil(len(hours) / perPage).
func (p *Paginator) TotalPages() int {
	return (len(p.hours) + p.perPage - 1) / p.perPage
}

// Page returns the current page index.
func (p *Paginator) Page() int {
	return p.page
}

// Next advances one page, clamped at the last page.
func (p *Paginator) Next() {
	if p.page < p.TotalPages()-1 {
		p.page++
	}
}

// Previous retreats one page, clamped at page 0.
func (p *Paginator) Previous() {
	if p.page > 0 {
		p.page--
	}
}

// Seek jumps to the requested page, clamped into the valid range.
func (p *Paginator) Seek(page int) {
	total := p.TotalPages()
	switch {
	case total == 0 || page < 0:
		p.page = 0
	case page >= total:
		p.page = total - 1
	default:
		p.page = page
	}
}

// Window returns the hour labels of the current page.
func (p *Paginator) Window() []string {
	start := p.page * p.perPage
	if start >= len(p.hours) {
		return []string{}
	}
	end := start + p.perPage
	if end > len(p.hours) {
		end = len(p.hours)
	}
	return p.hours[start:end]
}

// State snapshots the pagination for rendering.
func (p *Paginator) State() models.PageState {
	return models.PageState{
		HoursPerPage:   p.perPage,
		CurrentPage:    p.page,
		TotalPages:     p.TotalPages(),
		PaginatedHours: p.Window(),
	}
}
