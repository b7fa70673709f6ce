package watcher

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignal_WaitTimesOutWhenNotSet(t *testing.T) {
	sig := newSignal()

	fired := sig.Wait(10 * time.Millisecond)

	assert.False(t, fired)
	assert.False(t, sig.IsSet())
}

func TestSignal_WaitReturnsWhenSet(t *testing.T) {
	sig := newSignal()

	go func() {
		time.Sleep(5 * time.Millisecond)
		sig.Set()
	}()

	fired := sig.Wait(5 * time.Second)

	assert.True(t, fired)
	assert.True(t, sig.IsSet())
}

func TestSignal_SetIsIdempotent(t *testing.T) {
	sig := newSignal()

	sig.Set()
	sig.Set()
	sig.Set()

	assert.True(t, sig.IsSet())
	assert.True(t, sig.Wait(time.Millisecond))
}

func TestSignal_ConcurrentSetAndWait(t *testing.T) {
	sig := newSignal()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sig.Set()
		}()
		go func() {
			defer wg.Done()
			sig.Wait(time.Second)
		}()
	}
	wg.Wait()

	assert.True(t, sig.IsSet())
}

func TestSignal_WaitAfterSetReturnsImmediately(t *testing.T) {
	sig := newSignal()
	sig.Set()

	start := time.Now()
	fired := sig.Wait(5 * time.Second)

	assert.True(t, fired)
	assert.Less(t, time.Since(start), time.Second)
}
