package bridge

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isDone(l *Lifecycle) bool {
	select {
	case <-l.Done():
		return true
	default:
		return false
	}
}

func TestLifecycle_CloseWithoutDispatch(t *testing.T) {
	l := NewLifecycle()
	assert.False(t, isDone(l))
	l.CloseInput()
	assert.True(t, isDone(l))
	l.CloseInput()
	assert.True(t, l.InputClosed())
}

func TestLifecycle_DrainsPending(t *testing.T) {
	l := NewLifecycle()
	l.Begin()
	l.Begin()
	assert.Equal(t, 2, l.Pending())
	l.CloseInput()
	assert.False(t, isDone(l))
	l.Complete()
	assert.False(t, isDone(l))
	l.Complete()
	assert.True(t, isDone(l))
	assert.Equal(t, 0, l.Pending())
}

func TestLifecycle_CompleteBeforeClose(t *testing.T) {
	l := NewLifecycle()
	l.Begin()
	l.Complete()
	assert.False(t, isDone(l), "input still open")
	l.CloseInput()
	assert.True(t, isDone(l))
}

func TestLifecycle_PendingNeverNegative(t *testing.T) {
	l := NewLifecycle()
	l.Complete()
	assert.Equal(t, 0, l.Pending())
	assert.False(t, isDone(l))
}

func TestLifecycle_Concurrent(t *testing.T) {
	l := NewLifecycle()
	const count = 100
	for i := 0; i < count; i++ {
		l.Begin()
	}
	wg := sync.WaitGroup{}
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Complete()
		}()
	}
	l.CloseInput()
	wg.Wait()
	assert.True(t, isDone(l))
	assert.Equal(t, 0, l.Pending())
}

func TestSession_TokenPersists(t *testing.T) {
	s := &Session{}
	assert.Equal(t, "", s.Token())
	s.SetToken("S1")
	s.SetToken("")
	assert.Equal(t, "S1", s.Token())
	s.SetToken("S2")
	assert.Equal(t, "S2", s.Token())
}
