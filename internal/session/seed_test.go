package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedStartsAtInitial(t *testing.T) {
	s := New()
	assert.Equal(t, int64(InitialSeed), s.Current())
}

func TestAdvanceIncrementsByOne(t *testing.T) {
	s := New()
	assert.Equal(t, int64(InitialSeed+1), s.Advance())
	assert.Equal(t, int64(InitialSeed+1), s.Current())
	s.Advance()
	assert.Equal(t, int64(InitialSeed+2), s.Current())
}

func TestAdvanceIsRaceFree(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Advance()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(InitialSeed+100), s.Current())
}
