package models

import (
	"strconv"
	"time"
)

// Offer is a job posting aggregated from an external source.
// Offers are immutable once fetched; the search engine owns the
// accumulated list for the lifetime of the current query.
type Offer struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	SalaryMin    *int      `json:"salary_min"`
	SalaryMax    *int      `json:"salary_max"`
	ContractType *string   `json:"contract_type"`
	Remote       bool      `json:"remote"`
	URL          string    `json:"url"`
	PostedAt     time.Time `json:"posted_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Techs        []Tech    `json:"techs"`
}

// Key identifies an offer for display purposes. Aggregating several job
// boards can legitimately return the same (id, title) twice, so callers
// that need unique keys must disambiguate positionally (see
// services.OfferSearch.Keys).
func (o Offer) Key() string {
	return strconv.Itoa(o.ID) + "-" + o.Title
}
