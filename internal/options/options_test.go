package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type settings struct {
	level  int
	urlRaw bool
	calls  []string
}

func withLevel(level int) Option[*settings] {
	return New(func(s *settings) error {
		if level < 0 {
			return errors.New("level cannot be negative")
		}
		s.level = level
		s.calls = append(s.calls, "level")

		return nil
	})
}

func withURL() Option[*settings] {
	return NoError(func(s *settings) {
		s.urlRaw = true
		s.calls = append(s.calls, "url")
	})
}

func TestApply_InOrder(t *testing.T) {
	s := &settings{}

	err := Apply(s, withURL(), withLevel(3))
	require.NoError(t, err)
	require.Equal(t, 3, s.level)
	require.True(t, s.urlRaw)
	require.Equal(t, []string{"url", "level"}, s.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	s := &settings{}

	err := Apply(s, withLevel(-1), withURL())
	require.Error(t, err)
	require.False(t, s.urlRaw, "options after a failing one must not run")
	require.Empty(t, s.calls)
}

func TestApply_NoOptions(t *testing.T) {
	s := &settings{level: 7}

	require.NoError(t, Apply[*settings](s))
	require.Equal(t, 7, s.level)
}
