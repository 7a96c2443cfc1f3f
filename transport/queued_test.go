package transport_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tlog/logger"
	"github.com/xy-planning-network/tlog/transport"
)

// recorder collects the args of each Record it writes.
type recorder struct {
	args [][]any
}

func (r *recorder) write(rec logger.Record) { r.args = append(r.args, rec.Args) }

func TestQueued(t *testing.T) {
	t.Run("Flushes-In-Order", func(t *testing.T) {
		// Arrange
		q := transport.NewQueued(nil)
		l := newTestLogger(logger.WithTransports(q))
		l.Log(1)
		l.Log(2)
		require.Equal(t, 2, q.Len())
		r := new(recorder)

		// Act
		q.SetWriter(r.write)
		l.Log(3)

		// Assert
		require.Equal(t, [][]any{{1}, {2}, {3}}, r.args)
		require.Zero(t, q.Len())
	})

	t.Run("Passes-Through", func(t *testing.T) {
		// Arrange
		r := new(recorder)
		q := transport.NewQueued(r.write)
		l := newTestLogger(logger.WithTransports(q))

		// Act
		l.Log("a")

		// Assert
		require.Equal(t, [][]any{{"a"}}, r.args)
	})

	t.Run("Nil-Writer-Queues-Again", func(t *testing.T) {
		// Arrange
		first := new(recorder)
		q := transport.NewQueued(first.write)
		l := newTestLogger(logger.WithTransports(q))
		l.Log("a")

		// Act
		q.SetWriter(nil)
		l.Log("b")
		second := new(recorder)
		q.SetWriter(second.write)

		// Assert
		require.Equal(t, [][]any{{"a"}}, first.args)
		require.Equal(t, [][]any{{"b"}}, second.args)
	})

	t.Run("Panicking-Writer-Empties-Queue", func(t *testing.T) {
		// Arrange
		q := transport.NewQueued(nil)
		l := newTestLogger(logger.WithTransports(q))
		l.Log("a")
		l.Log("b")

		// Act
		require.Panics(t, func() {
			q.SetWriter(func(logger.Record) { panic("boom") })
		})

		// Assert
		require.Zero(t, q.Len())
	})
}
