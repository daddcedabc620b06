package dataset_test

import (
	"errors"
	"iter"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sixdegrees/builder"
	"github.com/katalvlaran/sixdegrees/core"
	"github.com/katalvlaran/sixdegrees/dataset"
)

func collect(t *testing.T, records iter.Seq2[builder.Record, error]) []builder.Record {
	t.Helper()
	var out []builder.Record
	for rec, err := range records {
		require.NoError(t, err)
		out = append(out, rec)
	}
	return out
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []builder.Record
	}{
		{
			name:  "scenario",
			input: "Movie: A\nKevin Bacon\nActor1\nMovie: B\nActor1\nActor2",
			want: []builder.Record{
				{Title: "A", Cast: []string{"Kevin Bacon", "Actor1"}},
				{Title: "B", Cast: []string{"Actor1", "Actor2"}},
			},
		},
		{
			name:  "lines before first movie are ignored",
			input: "Stray\n\nMovie: A\nX\n",
			want:  []builder.Record{{Title: "A", Cast: []string{"X"}}},
		},
		{
			name:  "blank lines separate nothing",
			input: "Movie: A\n\nX\n\n\nY\n",
			want:  []builder.Record{{Title: "A", Cast: []string{"X", "Y"}}},
		},
		{
			name:  "crlf endings",
			input: "Movie: A\r\nX\r\n",
			want:  []builder.Record{{Title: "A", Cast: []string{"X"}}},
		},
		{
			name:  "repeated title yields two records",
			input: "Movie: A\nX\nMovie: B\nY\nMovie: A\nZ\n",
			want: []builder.Record{
				{Title: "A", Cast: []string{"X"}},
				{Title: "B", Cast: []string{"Y"}},
				{Title: "A", Cast: []string{"Z"}},
			},
		},
		{
			name:  "movie without cast",
			input: "Movie: Empty\nMovie: A\nX",
			want: []builder.Record{
				{Title: "Empty"},
				{Title: "A", Cast: []string{"X"}},
			},
		},
		{
			name:  "prefix must match exactly",
			input: "Movie: A\nMovie:B\nmovie: C\n",
			want:  []builder.Record{{Title: "A", Cast: []string{"Movie:B", "movie: C"}}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, dataset.Records(strings.NewReader(tt.input)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecords_EarlyStop(t *testing.T) {
	n := 0
	for range dataset.Records(strings.NewReader("Movie: A\nX\nMovie: B\nY\n")) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestRecords_ReadError(t *testing.T) {
	boom := errors.New("boom")
	var errs []error
	for _, err := range dataset.Records(iotest.ErrReader(boom)) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], dataset.ErrDatasetAccess)
	assert.ErrorContains(t, errs[0], "boom")
}

func TestLoad(t *testing.T) {
	b := builder.New(core.NewGraph())
	require.NoError(t, dataset.Load(filepath.Join("testdata", "scenario.txt"), b))
	assert.Equal(t, builder.Report{Records: 2, Links: 4}, b.Report())
	assert.Equal(t, 3, b.Graph().Actors().Len())
}

func TestLoad_Missing(t *testing.T) {
	b := builder.New(core.NewGraph())
	err := dataset.Load(filepath.Join(t.TempDir(), "nope.txt"), b)
	require.ErrorIs(t, err, dataset.ErrDatasetAccess)
	assert.Zero(t, b.Graph().Actors().Len())
}
