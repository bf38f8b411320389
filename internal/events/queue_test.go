package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/nightcaste/internal/events"
)

func TestQueue_EnqueueIncreasesLen(t *testing.T) {
	q := events.NewQueue()
	before := q.Len()

	q.Enqueue(events.NewEvent(events.WorldEnter, nil))

	assert.Equal(t, before+1, q.Len())
}

func TestQueue_DrainIsFIFOSnapshot(t *testing.T) {
	q := events.NewQueue()
	q.Enqueue(events.NewMoveAction(1, 1, 0))
	q.Enqueue(events.NewMoveAction(2, 0, 1))
	q.Enqueue(events.NewMoveAction(3, -1, 0))

	batch := q.Drain()
	require.Len(t, batch, 3)
	for i, ev := range batch {
		id, _ := ev.GetInt64(events.FieldEntity)
		assert.Equal(t, int64(i+1), id)
	}
	assert.Equal(t, 0, q.Len())

	// Enqueueing after the drain does not touch the snapshot
	q.Enqueue(events.NewMoveAction(4, 0, 0))
	assert.Len(t, batch, 3)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_DrainEmpty(t *testing.T) {
	q := events.NewQueue()
	assert.Empty(t, q.Drain())
}

func TestQueue_RequeueGoesToHead(t *testing.T) {
	q := events.NewQueue()
	q.Enqueue(events.NewMoveAction(1, 0, 0))
	q.Enqueue(events.NewMoveAction(2, 0, 0))
	batch := q.Drain()

	q.Enqueue(events.NewMoveAction(3, 0, 0))
	q.Requeue(batch)
	q.Requeue(nil)

	var order []int64
	for _, ev := range q.Drain() {
		id, _ := ev.GetInt64(events.FieldEntity)
		order = append(order, id)
	}
	assert.Equal(t, []int64{1, 2, 3}, order)
}

func TestQueue_Unbounded(t *testing.T) {
	q := events.NewQueue()
	const n = 100000
	for i := 0; i < n; i++ {
		q.Enqueue(events.NewMoveAction(int64(i), 1, 0))
	}

	assert.Equal(t, n, q.Len())
	assert.Len(t, q.Drain(), n)
}
