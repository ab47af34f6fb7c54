package pagination

type Pager struct {
	Page  int   `json:"page" query:"page"`
	Limit int   `json:"limit" query:"limit"`
	Total int64 `json:"total" query:"-"`
}

func NewPager(page int, limit int) *Pager {
	p := Pager{Page: page, Limit: limit}
	p.normalize()

	return &p
}

func (p *Pager) normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}

	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 10
	}
}

func (p *Pager) SetTotal(total int64) {
	p.Total = total
}

// Do returns the offset and limit for the current page.
func (p *Pager) Do() (int, int) {
	p.normalize()

	return (p.Page - 1) * p.Limit, p.Limit
}
