package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/jobtechradar/radar/internal/buildinfo"
)

// Root prints the welcome banner and runs the command loop on stdin.
func (a *App) Root(ctx context.Context) {
	log.Println(buildinfo.Banner())
	log.Println("Bienvenue sur JobTech Radar (tapez 'help' pour les commandes)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
