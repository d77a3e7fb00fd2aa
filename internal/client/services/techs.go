package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jobtechradar/radar/internal/client/client"
	"github.com/jobtechradar/radar/internal/client/models"
	"github.com/jobtechradar/radar/internal/logging"
)

// TechStats caches technology statistics and trends fetched from the
// API, and triggers the server-side recomputation. A successful sync
// invalidates both caches so the next read refetches.
type TechStats struct {
	mu           sync.Mutex
	api          client.Client
	log          logging.Logger
	stats        []models.TechWithStats
	statsLoaded  bool
	trends       []models.TechTrend
	trendsLimit  int
	trendsLoaded bool
	syncing      bool
}

func NewTechStats(api client.Client, log logging.Logger) *TechStats {
	return &TechStats{api: api, log: log}
}

// Stats returns the technology statistics, fetching them on first use
// and after an invalidation.
func (t *TechStats) Stats(ctx context.Context) ([]models.TechWithStats, error) {
	t.mu.Lock()
	if t.statsLoaded {
		out := make([]models.TechWithStats, len(t.stats))
		copy(out, t.stats)
		t.mu.Unlock()
		return out, nil
	}
	t.mu.Unlock()

	stats, err := t.api.TechStats(ctx)
	if err != nil {
		t.log.Error(ctx, "tech stats fetch failed", "error", err)
		return nil, err
	}

	t.mu.Lock()
	t.stats = stats
	t.statsLoaded = true
	t.mu.Unlock()

	out := make([]models.TechWithStats, len(stats))
	copy(out, stats)
	return out, nil
}

// RankedTrend is a trend with its 1-based position in the server's
// ordering. The server decides the order; the client only numbers it.
type RankedTrend struct {
	Rank int
	models.TechTrend
}

// Trends returns the top-limit trends ranked 1..N in server order.
// Results are cached per limit until invalidated.
func (t *TechStats) Trends(ctx context.Context, limit int) ([]RankedTrend, error) {
	t.mu.Lock()
	if t.trendsLoaded && t.trendsLimit == limit {
		ranked := rankTrends(t.trends)
		t.mu.Unlock()
		return ranked, nil
	}
	t.mu.Unlock()

	trends, err := t.api.TechTrends(ctx, limit)
	if err != nil {
		t.log.Error(ctx, "tech trends fetch failed", "error", err)
		return nil, err
	}

	t.mu.Lock()
	t.trends = trends
	t.trendsLimit = limit
	t.trendsLoaded = true
	t.mu.Unlock()

	return rankTrends(trends), nil
}

func rankTrends(trends []models.TechTrend) []RankedTrend {
	ranked := make([]RankedTrend, len(trends))
	for i, tr := range trends {
		ranked[i] = RankedTrend{Rank: i + 1, TechTrend: tr}
	}
	return ranked
}

// SyncAll asks the server to recompute technology statistics from all
// offers, then invalidates the local caches. Syncing() is the only
// observable intermediate state.
func (t *TechStats) SyncAll(ctx context.Context) error {
	t.mu.Lock()
	if t.syncing {
		t.mu.Unlock()
		return ErrBusy
	}
	t.syncing = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.syncing = false
		t.mu.Unlock()
	}()

	if err := t.api.SyncAllOffers(ctx); err != nil {
		t.log.Error(ctx, "tech sync failed", "error", err)
		return err
	}

	t.Invalidate()
	t.log.Info(ctx, "tech sync triggered, caches invalidated")
	return nil
}

// Invalidate drops the cached stats and trends.
func (t *TechStats) Invalidate() {
	t.mu.Lock()
	t.stats = nil
	t.statsLoaded = false
	t.trends = nil
	t.trendsLoaded = false
	t.mu.Unlock()
}

func (t *TechStats) Syncing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.syncing
}

// Tech table sort columns.
type SortColumn string

const (
	SortByName       SortColumn = "name"
	SortByCategory   SortColumn = "category"
	SortByOfferCount SortColumn = "offer_count"
)

// TechTable is the client-side filter/sort view over a fetched list of
// technology statistics. Selecting the active column again flips the
// direction; selecting a new column starts descending. The default view
// is offer count, descending.
type TechTable struct {
	techs  []models.TechWithStats
	search string
	sortBy SortColumn
	desc   bool
	coll   *collate.Collator
}

func NewTechTable() *TechTable {
	return &TechTable{
		sortBy: SortByOfferCount,
		desc:   true,
		coll:   collate.New(language.French),
	}
}

// SetTechs replaces the underlying data, keeping filter and sort state.
func (t *TechTable) SetTechs(techs []models.TechWithStats) {
	t.techs = techs
}

// SetSearch sets the case-insensitive substring filter applied to both
// name and category.
func (t *TechTable) SetSearch(term string) {
	t.search = strings.ToLower(term)
}

// Sort selects the column to order by. Reselecting the active column
// toggles the direction; a new column resets to descending.
func (t *TechTable) Sort(column SortColumn) {
	if t.sortBy == column {
		t.desc = !t.desc
		return
	}
	t.sortBy = column
	t.desc = true
}

// SortState exposes the active column and direction for display.
func (t *TechTable) SortState() (SortColumn, bool) {
	return t.sortBy, t.desc
}

// Rows returns the filtered, sorted view. Strings compare with French
// collation; counts compare numerically.
func (t *TechTable) Rows() []models.TechWithStats {
	rows := make([]models.TechWithStats, 0, len(t.techs))
	for _, tech := range t.techs {
		if t.search == "" ||
			strings.Contains(strings.ToLower(tech.Name), t.search) ||
			strings.Contains(strings.ToLower(tech.Category), t.search) {
			rows = append(rows, tech)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		c := t.compare(rows[i], rows[j])
		if t.desc {
			return c > 0
		}
		return c < 0
	})
	return rows
}

func (t *TechTable) compare(a, b models.TechWithStats) int {
	switch t.sortBy {
	case SortByName:
		return t.coll.CompareString(a.Name, b.Name)
	case SortByCategory:
		return t.coll.CompareString(a.Category, b.Category)
	default:
		return a.OfferCount - b.OfferCount
	}
}
