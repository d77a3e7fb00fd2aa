package models

// Tech is a technology extracted from offer descriptions.
type Tech struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// TechWithStats extends Tech with the number of offers mentioning it.
type TechWithStats struct {
	Tech
	OfferCount int `json:"offer_count"`
}

// TechTrend is a server-computed projection for the top-N view.
// Percentage is the share of total offers; the server's ordering is
// authoritative and must not be re-sorted client-side.
type TechTrend struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}
