package core

import (
	"bufio"
	"fmt"
	"io"
)

// Describe writes a human-readable dump of g to w, one block per actor in
// registration order:
//
//	Actor: Kevin Bacon
//		In Movie: Footloose
//
// With withCast set, each movie line is followed by the movie's full cast.
func (g *Graph) Describe(w io.Writer, withCast bool) error {
	bw := bufio.NewWriter(w)
	for a := range g.actors.All() {
		fmt.Fprintf(bw, "Actor: %s\n", a.Name)
		for m := range g.MoviesOf(a) {
			fmt.Fprintf(bw, "\tIn Movie: %s\n", m.Title)
			if !withCast {
				continue
			}
			for co := range g.CastOf(m) {
				fmt.Fprintf(bw, "\t\t%s\n", co.Name)
			}
		}
	}
	return bw.Flush()
}
