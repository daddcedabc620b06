package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sixdegrees/core"
)

type RegistrySuite struct {
	suite.Suite
	g *core.Graph
}

func (s *RegistrySuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *RegistrySuite) TestFindMissing() {
	require := require.New(s.T())
	a, ok := s.g.Actors().Find("Kevin Bacon")
	require.False(ok, "empty registry should not find anything")
	require.Nil(a)
}

func (s *RegistrySuite) TestGetOrCreateIsIdempotent() {
	require := require.New(s.T())
	first, err := s.g.Actors().GetOrCreate("Kevin Bacon")
	require.NoError(err)
	second, err := s.g.Actors().GetOrCreate("Kevin Bacon")
	require.NoError(err)

	require.Same(first, second, "re-adding a name must return the canonical actor")
	require.Equal(1, s.g.Actors().Len())

	found, ok := s.g.Actors().Find("Kevin Bacon")
	require.True(ok)
	require.Same(first, found)
}

func (s *RegistrySuite) TestNamesAreCaseSensitive() {
	require := require.New(s.T())
	lower, err := s.g.Actors().GetOrCreate("kevin bacon")
	require.NoError(err)
	upper, err := s.g.Actors().GetOrCreate("Kevin Bacon")
	require.NoError(err)

	require.NotSame(lower, upper)
	require.Equal(2, s.g.Actors().Len())
}

func (s *RegistrySuite) TestEmptyName() {
	require := require.New(s.T())
	_, err := s.g.Actors().GetOrCreate("")
	require.ErrorIs(err, core.ErrEmptyName)
	_, err = s.g.Movies().GetOrCreate("")
	require.ErrorIs(err, core.ErrEmptyName)
}

func (s *RegistrySuite) TestMovieTitlesDeduplicate() {
	require := require.New(s.T())
	m1, created, err := s.g.Movies().GetOrCreateReport("Footloose")
	require.NoError(err)
	require.True(created)
	m2, created, err := s.g.Movies().GetOrCreateReport("Footloose")
	require.NoError(err)
	require.False(created)
	require.Same(m1, m2)
	require.Equal(1, s.g.Movies().Len())
}

func (s *RegistrySuite) TestIndicesAreDense() {
	require := require.New(s.T())
	names := []string{"A", "B", "C", "B", "A", "D"}
	for _, n := range names {
		_, err := s.g.Actors().GetOrCreate(n)
		require.NoError(err)
	}
	require.Equal(4, s.g.Actors().Len())

	var got []string
	for a := range s.g.Actors().All() {
		at, ok := s.g.Actors().At(a.Index())
		require.True(ok)
		require.Same(a, at)
		got = append(got, a.Name)
	}
	require.Equal([]string{"A", "B", "C", "D"}, got)

	_, ok := s.g.Actors().At(4)
	require.False(ok)
	_, ok = s.g.Actors().At(-1)
	require.False(ok)
}

func (s *RegistrySuite) TestSealedRejectsNewEntities() {
	require := require.New(s.T())
	a, err := s.g.Actors().GetOrCreate("Kevin Bacon")
	require.NoError(err)
	s.g.Seal()

	// Existing names still resolve.
	again, err := s.g.Actors().GetOrCreate("Kevin Bacon")
	require.NoError(err)
	require.Same(a, again)

	_, err = s.g.Actors().GetOrCreate("Newcomer")
	require.ErrorIs(err, core.ErrSealed)
	_, err = s.g.Movies().GetOrCreate("Sequel")
	require.ErrorIs(err, core.ErrSealed)
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}
