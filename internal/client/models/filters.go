package models

import (
	"net/url"
	"strconv"
)

// Offer sources accepted by the API.
const (
	SourceAll        = "all"
	SourceAdzuna     = "adzuna"
	SourcePoleEmploi = "pole-emploi"
)

// Sort orders accepted by the API.
const (
	SortByDate      = "date"
	SortByRelevance = "relevance"
)

// OfferFilters describes one offer query. Page is managed by the search
// engine: any change to the other fields starts a new search at page 0.
type OfferFilters struct {
	Keywords     string
	Location     string
	ContractType string
	Remote       *bool
	Sources      string
	Limit        int
	SortBy       string
	Page         int
	TechOnly     bool
}

// DefaultOfferFilters mirrors the initial query the UI issues.
func DefaultOfferFilters() OfferFilters {
	return OfferFilters{
		Sources: SourceAll,
		Limit:   50,
		SortBy:  SortByDate,
	}
}

// Values encodes the filters as query parameters for /external-offers/.
// Empty optional fields are omitted.
func (f OfferFilters) Values() url.Values {
	v := url.Values{}
	if f.Keywords != "" {
		v.Set("keywords", f.Keywords)
	}
	if f.Location != "" {
		v.Set("location", f.Location)
	}
	if f.ContractType != "" {
		v.Set("contract_type", f.ContractType)
	}
	if f.Remote != nil {
		v.Set("remote", strconv.FormatBool(*f.Remote))
	}
	if f.Sources != "" {
		v.Set("sources", f.Sources)
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.SortBy != "" {
		v.Set("sort_by", f.SortBy)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	return v
}

// SameQuery reports whether two filter sets describe the same search,
// comparing every field except Page.
func (f OfferFilters) SameQuery(other OfferFilters) bool {
	sameRemote := (f.Remote == nil) == (other.Remote == nil) &&
		(f.Remote == nil || *f.Remote == *other.Remote)
	return f.Keywords == other.Keywords &&
		f.Location == other.Location &&
		f.ContractType == other.ContractType &&
		sameRemote &&
		f.Sources == other.Sources &&
		f.Limit == other.Limit &&
		f.SortBy == other.SortBy &&
		f.TechOnly == other.TechOnly
}
