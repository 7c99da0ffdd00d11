package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"tilescape/internal/scene"
	"tilescape/internal/terrain"
	rng "tilescape/pkg/core"

	"gopkg.in/yaml.v3"
)

func main() {
	layoutName := flag.String("layout", "castle", "layout to generate ("+strings.Join(terrain.Names(), ", ")+")")
	seed := flag.Int64("seed", 1, "generation seed")
	asYAML := flag.Bool("yaml", false, "print a YAML summary instead of the map")
	flag.Parse()

	layout, err := terrain.Lookup(*layoutName)
	if err != nil {
		log.Fatalf("scenegen: %v", err)
	}
	m := terrain.Generate(layout, rng.NewRNG(*seed), scene.NewGraph())
	summary := m.Summarize(*seed)

	if *asYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			log.Fatalf("scenegen: encode summary: %v", err)
		}
		if err := enc.Close(); err != nil {
			log.Fatalf("scenegen: %v", err)
		}
		return
	}

	fmt.Print(m.ASCII())
	fmt.Printf("\n%s seed %d: %d tiles\n", summary.Layout, summary.Seed, summary.Tiles)
	printCounts("tiles", summary.Kinds)
	printCounts("decorations", summary.Decorations)
}

func printCounts(title string, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("%s:", title)
	for _, name := range names {
		fmt.Printf(" %s=%d", name, counts[name])
	}
	fmt.Println()
}
