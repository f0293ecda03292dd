package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/juneparke/civsim/internal/log"
	"github.com/juneparke/civsim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		runScenario(os.Args[2:])
	case "cards":
		listCards(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  civsim run [--scenario FILE] [--max-turns N]")
	fmt.Println("  civsim cards [--category player|faction]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run     Execute a scenario file and print the event log")
	fmt.Println("  cards   List the card catalog")
}

func runScenario(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	scenarioFile := fs.String("scenario", "scenario.yaml", "path to scenario file")
	maxTurns := fs.Int("max-turns", 0, "stop after this many turns (0 = full script)")
	fs.Parse(args)

	sc, err := sim.ParseScenarioFile(*scenarioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess := sim.NewSession(sim.SessionConfig{
		Scenario: sc,
		Logger:   log.NewTextLogger(os.Stdout),
		MaxTurns: *maxTurns,
	})

	if err := sess.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listCards(args []string) {
	fs := flag.NewFlagSet("cards", flag.ExitOnError)
	category := fs.String("category", "", "filter: player or faction")
	fs.Parse(args)

	for _, name := range sim.CardNames() {
		card := sim.MustCard(name)
		switch *category {
		case "":
		case "player":
			if card.Category != sim.PlayerPower {
				continue
			}
		case "faction":
			if card.Category != sim.FactionAction {
				continue
			}
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", *category)
			os.Exit(1)
		}

		fmt.Printf("%-20s %-13s %s\n", card.Name, card.Category, describeModifiers(card))
	}
}

func describeModifiers(card *sim.Card) string {
	if card.IsNoOp() {
		return "(no effect)"
	}
	desc := ""
	for i, m := range card.Modifiers {
		if i > 0 {
			desc += ", "
		}
		desc += m.String()
	}
	return desc
}
