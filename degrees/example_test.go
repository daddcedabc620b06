package degrees_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sixdegrees/builder"
	"github.com/katalvlaran/sixdegrees/dataset"
	"github.com/katalvlaran/sixdegrees/degrees"
)

// ExampleEngine_Query scores a few actors against Kevin Bacon.
func ExampleEngine_Query() {
	const data = `Movie: Footloose
Kevin Bacon
Lori Singer
Movie: The Falcon and the Snowman
Lori Singer
Sean Penn
Movie: Mystic River
Sean Penn
Tim Robbins
Movie: Heat
Al Pacino
Robert De Niro
`
	g, _, err := builder.Build(dataset.Records(strings.NewReader(data)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	eng, err := degrees.New(g, degrees.WithPaths(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, name := range []string{"Kevin Bacon", "Tim Robbins", "Al Pacino", "Meryl Streep"} {
		res := eng.Query(name)
		switch res.Status {
		case degrees.StatusReachable:
			fmt.Printf("%s: %d %v\n", name, res.Distance, res.Path)
		default:
			fmt.Printf("%s: %s\n", name, res.Status)
		}
	}
	// Output:
	// Kevin Bacon: 0 [Kevin Bacon]
	// Tim Robbins: 3 [Kevin Bacon Lori Singer Sean Penn Tim Robbins]
	// Al Pacino: unreachable
	// Meryl Streep: unknown
}
