package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jobtechradar/radar/internal/client/services"
)

// Stats fetches (or reuses cached) technology statistics and prints the
// filtered, sorted table. Extra arguments form the search term.
func (a *App) Stats(ctx context.Context, args []string) error {
	stats, err := a.techs.Stats(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	a.table.SetTechs(stats)
	a.table.SetSearch(strings.Join(args, " "))
	a.printTable()
	return nil
}

// SortStats changes the sort column of the statistics table and reprints
// it. Selecting the current column again flips the direction.
func (a *App) SortStats(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: sort name|category|count")
		return nil
	}

	var column services.SortColumn
	switch strings.ToLower(args[0]) {
	case "name", "nom":
		column = services.SortByName
	case "category", "catégorie", "categorie":
		column = services.SortByCategory
	case "count", "offres", "offer_count":
		column = services.SortByOfferCount
	default:
		fmt.Println("Colonne inconnue:", args[0])
		return nil
	}

	a.table.Sort(column)

	stats, err := a.techs.Stats(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	a.table.SetTechs(stats)
	a.printTable()
	return nil
}

func (a *App) printTable() {
	rows := a.table.Rows()
	if len(rows) == 0 {
		fmt.Println("Aucune technologie trouvée")
		return
	}

	column, desc := a.table.SortState()
	direction := "croissant"
	if desc {
		direction = "décroissant"
	}
	fmt.Printf("%-24s %-16s %s   (tri: %s, %s)\n", "Technologie", "Catégorie", "Offres", column, direction)
	for _, r := range rows {
		fmt.Printf("%-24s %-16s %d\n", r.Name, r.Category, r.OfferCount)
	}
}

// Trends prints the server-ranked top technologies.
func (a *App) Trends(ctx context.Context) error {
	trends, err := a.techs.Trends(ctx, a.config.TrendsLimit)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(trends) == 0 {
		fmt.Println("Aucune technologie trouvée")
		return nil
	}

	for _, t := range trends {
		fmt.Printf("%2d. %-24s %-16s %4d offres (%.1f%%)\n", t.Rank, t.Name, t.Category, t.Count, t.Percentage)
	}
	return nil
}

// Sync asks the server to recompute the statistics from all offers.
func (a *App) Sync(ctx context.Context) error {
	fmt.Println("Synchronisation en cours...")
	if err := a.techs.SyncAll(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Synchronisation terminée, statistiques mises à jour.")
	return nil
}
