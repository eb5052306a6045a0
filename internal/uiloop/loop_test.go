package uiloop_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loginflow/internal/uiloop"
)

func TestLoop_RunsInPostingOrder(t *testing.T) {
	l := uiloop.New()
	defer l.Close()

	var got []int
	for i := 0; i < 50; i++ {
		i := i // per-iteration copy; go.mod targets go1.21 loop semantics
		require.NoError(t, l.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, l.Do(context.Background(), func() {}))

	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLoop_PostFromLoopDoesNotBlock(t *testing.T) {
	l := uiloop.New()
	defer l.Close()

	ran := make(chan struct{})
	require.NoError(t, l.Post(func() {
		_ = l.Post(func() { close(ran) })
	}))

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("nested post never ran")
	}
}

func TestLoop_SerialisesConcurrentPosters(t *testing.T) {
	l := uiloop.New()
	defer l.Close()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Do(context.Background(), func() { counter++ })
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, counter)
}

func TestLoop_CloseDrainsAndRejects(t *testing.T) {
	l := uiloop.New()

	done := false
	require.NoError(t, l.Post(func() { done = true }))
	l.Close()
	l.Close()

	assert.True(t, done)
	assert.ErrorIs(t, l.Post(func() {}), uiloop.ErrClosed)
	assert.ErrorIs(t, l.Do(context.Background(), func() {}), uiloop.ErrClosed)
}

func TestLoop_DoHonoursContext(t *testing.T) {
	l := uiloop.New()
	defer l.Close()

	block := make(chan struct{})
	require.NoError(t, l.Post(func() { <-block }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.Do(ctx, func() {}), context.DeadlineExceeded)
	close(block)
}
