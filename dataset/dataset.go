// Package dataset reads the line-oriented movie dataset format into
// builder records.
//
// Grammar:
//
//	Movie: <title>     starts a new record
//	<name>             one cast member of the current record
//	(blank)            ignored
//
// A trailing "\n" (and "\r\n") is stripped before a line is used as an
// identity key. Lines before the first "Movie: " line have no movie context
// and are ignored. A title repeated later yields a second record with the same
// Title; the builder merges them.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/katalvlaran/sixdegrees/builder"
)

// MoviePrefix marks a line that opens a new movie context.
const MoviePrefix = "Movie: "

// maxLineBytes bounds a single dataset line.
const maxLineBytes = 1 << 20

// ErrDatasetAccess wraps failures to open or read the dataset. It is fatal:
// no partial graph should be queried.
var ErrDatasetAccess = errors.New("dataset: cannot read dataset")

// Records parses r and yields one record per movie listing. A read error is
// yielded once, wrapped in ErrDatasetAccess, and ends the sequence.
//
// A "Movie: " line with an empty title still opens a record; the builder
// skips it, or rejects it in strict mode.
func Records(r io.Reader) iter.Seq2[builder.Record, error] {
	return func(yield func(builder.Record, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		var (
			cur  builder.Record
			open bool
		)
		for sc.Scan() {
			line := sc.Text()
			if title, ok := strings.CutPrefix(line, MoviePrefix); ok {
				if open && !yield(cur, nil) {
					return
				}
				cur, open = builder.Record{Title: title}, true
				continue
			}
			if line == "" || !open {
				continue
			}
			cur.Cast = append(cur.Cast, line)
		}
		if err := sc.Err(); err != nil {
			yield(builder.Record{}, fmt.Errorf("%w: %v", ErrDatasetAccess, err))
			return
		}
		if open {
			yield(cur, nil)
		}
	}
}

// Load opens path and ingests every record into b.
func Load(path string, b *builder.Builder) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatasetAccess, err)
	}
	defer f.Close()

	return b.IngestAll(Records(f))
}
