package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/jobtechradar/radar/internal/client/client"
	"github.com/jobtechradar/radar/internal/client/models"
	"github.com/jobtechradar/radar/internal/logging"
)

// ErrNoMoreResults is returned by LoadMore when the previous page
// already looked like the last one.
var ErrNoMoreResults = errors.New("no more results")

// OfferSearch owns the search filter state, issues paged queries and
// accumulates results across "load more" calls. A new Search replaces
// everything; LoadMore appends.
//
// Responses are tagged with a sequence number taken when the request is
// issued; a response whose tag no longer matches the current sequence
// belongs to a superseded query and is discarded.
type OfferSearch struct {
	mu      sync.Mutex
	api     client.Client
	log     logging.Logger
	filters models.OfferFilters
	offers  []models.Offer
	hasMore bool
	errMsg  string
	seq     uint64
}

func NewOfferSearch(api client.Client, log logging.Logger) *OfferSearch {
	return &OfferSearch{api: api, log: log, filters: models.DefaultOfferFilters()}
}

// Search replaces the active filter set, forces page 0, clears the
// accumulated list, and fetches the first page. Any change to keywords,
// location, contract type, remote flag, source, sort or tech-only flag
// goes through here.
func (s *OfferSearch) Search(ctx context.Context, f models.OfferFilters) error {
	s.mu.Lock()
	f.Page = 0
	s.filters = f
	s.offers = nil
	s.hasMore = false
	s.errMsg = ""
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	return s.fetch(ctx, seq, f)
}

// LoadMore fetches the next page with the same filters and appends its
// results. Valid only while HasMore() is true.
func (s *OfferSearch) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.hasMore {
		s.mu.Unlock()
		return ErrNoMoreResults
	}
	s.filters.Page++
	s.errMsg = ""
	s.seq++
	seq := s.seq
	snapshot := s.filters
	s.mu.Unlock()

	return s.fetch(ctx, seq, snapshot)
}

func (s *OfferSearch) fetch(ctx context.Context, seq uint64, f models.OfferFilters) error {
	page, err := s.api.SearchOffers(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		// A newer Search superseded this request while it was in
		// flight; its results must not overwrite the current ones.
		s.log.Debug(ctx, "discarding stale search response", "seq", seq, "current", s.seq)
		return nil
	}

	if err != nil {
		// Accumulated results from earlier pages stay visible, and the
		// page counter rolls back so a retry re-requests the page that
		// failed instead of skipping past it. Safe here: seq matched,
		// so no newer Search has replaced the filters.
		if f.Page > 0 {
			s.filters.Page = f.Page - 1
		}
		s.errMsg = err.Error()
		s.log.Error(ctx, "offer fetch failed", "page", f.Page, "error", err)
		return err
	}

	// The heuristic compares the raw page size against the requested
	// limit; a full page may still be the last one, in which case the
	// next LoadMore just comes back empty.
	fetched := len(page)

	if f.TechOnly {
		page = FilterTechOffers(page)
	}

	if f.Page == 0 {
		s.offers = page
	} else {
		s.offers = append(s.offers, page...)
	}
	s.hasMore = f.Limit > 0 && fetched >= f.Limit

	s.log.Info(ctx, "offers fetched", "page", f.Page, "count", fetched, "accumulated", len(s.offers))
	return nil
}

// Offers returns a copy of the accumulated result list, in server order.
func (s *OfferSearch) Offers() []models.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Offer, len(s.offers))
	copy(out, s.offers)
	return out
}

// Keys returns one display key per accumulated offer. Duplicate
// (id, title) pairs are tolerated: repeats get a positional "#n" suffix
// so the keys stay unique without dropping rows.
func (s *OfferSearch) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]int, len(s.offers))
	keys := make([]string, len(s.offers))
	for i, o := range s.offers {
		k := o.Key()
		seen[k]++
		if n := seen[k]; n > 1 {
			k += "#" + strconv.Itoa(n)
		}
		keys[i] = k
	}
	return keys
}

// HasMore reports whether the last fetched page looked like a full one.
func (s *OfferSearch) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// Filters returns the active filter set, including the current page.
func (s *OfferSearch) Filters() models.OfferFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Err returns the message from the last failed fetch, empty otherwise.
func (s *OfferSearch) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Keyword lists (from the web UI) for the client-side tech-only filter.
var (
	techKeywords = []string{
		"développeur", "developer", "software", "web", "frontend", "backend", "fullstack",
		"python", "javascript", "java", "c#", "c++", "php", "ruby", "go", "rust",
		"react", "angular", "vue", "node", "django", "flask", "spring",
		"data scientist", "machine learning", "devops", "cloud", "aws", "azure",
		"mobile", "android", "ios", "database", "sql", "nosql", "mongodb",
		"cybersecurity", "security", "réseau", "network", "système",
		"ingénieur", "engineer", "architect", "architecte", "tech", "informatique",
		"data", "analytics", "intelligence artificielle", "ia", "ai",
	}

	nonTechJobs = []string{
		"receptionniste", "paysagiste", "jardinier", "agricole", "fleuriste", "boulanger",
		"chef", "serveur", "barman", "hôtesse", "ménage", "nettoyage", "plombier",
		"chauffeur", "livreur", "vendeur", "vente", "magasin", "boutique", "caissier",
	}
)

// FilterTechOffers keeps only offers that look tech-related: a non-tech
// job word in the title excludes the offer; otherwise a tech keyword in
// the title or description includes it; everything else is dropped.
func FilterTechOffers(offers []models.Offer) []models.Offer {
	out := make([]models.Offer, 0, len(offers))
outer:
	for _, o := range offers {
		title := strings.ToLower(o.Title)
		description := strings.ToLower(o.Description)

		for _, job := range nonTechJobs {
			if strings.Contains(title, job) {
				continue outer
			}
		}
		for _, kw := range techKeywords {
			if strings.Contains(title, kw) || strings.Contains(description, kw) {
				out = append(out, o)
				continue outer
			}
		}
	}
	return out
}
