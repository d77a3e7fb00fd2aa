package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jobtechradar/radar/internal/client/models"
)

// Search prompts for a filter set and runs a fresh query. Every answer
// may be left empty to keep the default.
func (a *App) Search(ctx context.Context) error {
	f := models.DefaultOfferFilters()

	keywords, err := getSimpleText(a.reader, "Mots-clés (vide = tous)", os.Stdout)
	if err != nil {
		return err
	}
	f.Keywords = keywords

	location, err := getSimpleText(a.reader, "Lieu (vide = partout)", os.Stdout)
	if err != nil {
		return err
	}
	f.Location = location

	contract, err := getSimpleText(a.reader, "Type de contrat (CDI/CDD/..., vide = tous)", os.Stdout)
	if err != nil {
		return err
	}
	f.ContractType = contract

	remote, err := GetOptionalBool(a.reader, "Télétravail ?", os.Stdout)
	if err != nil {
		return err
	}
	f.Remote = remote

	source, err := GetChoice(a.reader, "Source", models.SourceAll,
		[]string{models.SourceAll, models.SourceAdzuna, models.SourcePoleEmploi}, os.Stdout)
	if err != nil {
		return err
	}
	f.Sources = source

	sortBy, err := GetChoice(a.reader, "Tri", models.SortByDate,
		[]string{models.SortByDate, models.SortByRelevance}, os.Stdout)
	if err != nil {
		return err
	}
	f.SortBy = sortBy

	techOnly, err := GetOptionalBool(a.reader, "Offres tech uniquement ?", os.Stdout)
	if err != nil {
		return err
	}
	f.TechOnly = techOnly != nil && *techOnly

	if err := a.search.Search(ctx, f); err != nil {
		log.Println(a.search.Err())
		return err
	}

	a.printOffers()
	return nil
}

// More fetches the next page of the current search.
func (a *App) More(ctx context.Context) error {
	if err := a.search.LoadMore(ctx); err != nil {
		if msg := a.search.Err(); msg != "" {
			log.Println(msg)
		} else {
			log.Println(err.Error())
		}
		return err
	}
	a.printOffers()
	return nil
}

func (a *App) printOffers() {
	offers := a.search.Offers()
	keys := a.search.Keys()

	if len(offers) == 0 {
		fmt.Println("Aucune offre trouvée.")
		return
	}

	for i, o := range offers {
		fmt.Printf("[%s] %s\n", keys[i], o.Title)
		fmt.Printf("    %s — %s\n", o.Company, o.Location)
		fmt.Printf("    %s | %s", models.FormatContractType(o.ContractType), models.FormatSalary(o.SalaryMin, o.SalaryMax))
		if o.Remote {
			fmt.Print(" | Télétravail")
		}
		fmt.Println()
		if len(o.Techs) > 0 {
			names := make([]string, len(o.Techs))
			for j, t := range o.Techs {
				names[j] = t.Name
			}
			fmt.Printf("    Technologies: %s\n", strings.Join(names, ", "))
		}
		if o.URL != "" {
			fmt.Printf("    %s\n", o.URL)
		}
	}

	fmt.Printf("%d offre(s) affichée(s).\n", len(offers))
	if a.search.HasMore() {
		fmt.Println("D'autres résultats sont disponibles: tapez 'more'.")
	}
}
