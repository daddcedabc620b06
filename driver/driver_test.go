package driver_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/sixdegrees/builder"
	"github.com/katalvlaran/sixdegrees/dataset"
	"github.com/katalvlaran/sixdegrees/degrees"
	"github.com/katalvlaran/sixdegrees/driver"
)

const scenario = "Movie: A\nKevin Bacon\nActor1\nMovie: B\nActor1\nActor2\nMovie: C\nLoner\n"

func newEngine(t *testing.T, opts ...degrees.Option) *degrees.Engine {
	t.Helper()
	g, _, err := builder.Build(dataset.Records(strings.NewReader(scenario)))
	require.NoError(t, err)
	eng, err := degrees.New(g, opts...)
	require.NoError(t, err)
	return eng
}

type recorder struct{ results []degrees.Result }

func (r *recorder) RecordQuery(res degrees.Result) { r.results = append(r.results, res) }

func TestRun_Serial(t *testing.T) {
	eng := newEngine(t)
	var out, errOut bytes.Buffer
	rec := &recorder{}

	sum, err := driver.Run(context.Background(), eng,
		strings.NewReader("Actor2\nKevin Bacon\nNobody\nLoner\nActor1\n"),
		&out, &errOut, driver.WithRecorder(rec))
	require.NoError(t, err)

	assert.Equal(t, "Score: 2\nScore: 0\nScore: No Bacon!\nScore: 1\n", out.String())
	assert.Equal(t, "No actor named Nobody\n", errOut.String())
	assert.Equal(t, driver.Summary{Queries: 5, Reachable: 3, Unreachable: 1, Unknown: 1}, sum)
	assert.True(t, sum.Failed())
	assert.Len(t, rec.results, 5)
}

func TestRun_Paths(t *testing.T) {
	eng := newEngine(t, degrees.WithPaths(true))
	var out, errOut bytes.Buffer

	sum, err := driver.Run(context.Background(), eng,
		strings.NewReader("Actor2\nLoner\n"), &out, &errOut, driver.WithPaths(true))
	require.NoError(t, err)
	assert.False(t, sum.Failed())
	assert.Equal(t,
		"Score: 2\nPath: Kevin Bacon -> Actor1 -> Actor2\nScore: No Bacon!\n",
		out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_NoReference(t *testing.T) {
	eng := newEngine(t, degrees.WithReference("Tom Hanks"))
	var out, errOut bytes.Buffer

	sum, err := driver.Run(context.Background(), eng,
		strings.NewReader("Actor1\nTom Hanks\n"), &out, &errOut)
	require.NoError(t, err)
	assert.Equal(t, "Score: No Bacon!\n", out.String())
	assert.Equal(t, "No actor named Tom Hanks\n", errOut.String())
	assert.Equal(t, 1, sum.Unreachable)
	assert.True(t, sum.Failed())
}

func TestRun_EmptyInput(t *testing.T) {
	var out, errOut bytes.Buffer
	sum, err := driver.Run(context.Background(), newEngine(t), strings.NewReader(""), &out, &errOut)
	require.NoError(t, err)
	assert.Zero(t, sum)
	assert.Empty(t, out.String())
}

func TestRun_WorkersPreserveOrder(t *testing.T) {
	var names []string
	var want strings.Builder
	for i := 0; i < 50; i++ {
		switch i % 4 {
		case 0:
			names = append(names, "Actor2")
			want.WriteString("Score: 2\n")
		case 1:
			names = append(names, "Kevin Bacon")
			want.WriteString("Score: 0\n")
		case 2:
			names = append(names, "Loner")
			want.WriteString("Score: No Bacon!\n")
		default:
			names = append(names, "Actor1")
			want.WriteString("Score: 1\n")
		}
	}

	var out, errOut bytes.Buffer
	sum, err := driver.Run(context.Background(), newEngine(t),
		strings.NewReader(strings.Join(names, "\n")+"\n"), &out, &errOut, driver.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, want.String(), out.String())
	assert.Equal(t, 50, sum.Queries)
	assert.False(t, sum.Failed())
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer

	_, err := driver.Run(context.Background(), nil, strings.NewReader(""), &out, &errOut)
	assert.ErrorIs(t, err, driver.ErrNilEngine)

	_, err = driver.Run(context.Background(), newEngine(t),
		iotest.ErrReader(assert.AnError), &out, &errOut)
	assert.ErrorIs(t, err, driver.ErrReadQueries)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = driver.Run(ctx, newEngine(t), strings.NewReader("Actor1\n"), &out, &errOut)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsSummary(t *testing.T) {
	observed, logs := observer.New(zap.InfoLevel)
	var out, errOut bytes.Buffer

	_, err := driver.Run(context.Background(), newEngine(t), strings.NewReader("Actor1\n"),
		&out, &errOut, driver.WithLogger(zap.New(observed)))
	require.NoError(t, err)

	entries := logs.FilterMessage("queries answered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["reachable"])
}

func TestRun_LongLineDoesNotStopQueries(t *testing.T) {
	long := strings.Repeat("z", 2<<20)
	input := long + "\nActor2\nActor1"

	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			var out, errOut bytes.Buffer
			sum, err := driver.Run(context.Background(), newEngine(t),
				strings.NewReader(input), &out, &errOut, driver.WithWorkers(workers))
			require.NoError(t, err)

			assert.Equal(t, "Score: 2\nScore: 1\n", out.String(),
				"names after an oversized line are still scored, and a final line without newline counts")
			assert.Equal(t, "No actor named "+long+"\n", errOut.String())
			assert.Equal(t, driver.Summary{Queries: 3, Reachable: 2, Unknown: 1}, sum)
		})
	}
}

func TestRun_CRLFQueries(t *testing.T) {
	var out, errOut bytes.Buffer
	_, err := driver.Run(context.Background(), newEngine(t),
		strings.NewReader("Actor1\r\nKevin Bacon\r\n"), &out, &errOut)
	require.NoError(t, err)
	assert.Equal(t, "Score: 1\nScore: 0\n", out.String())
	assert.Empty(t, errOut.String())
}
