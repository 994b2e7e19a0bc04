//nolint:testpackage // Testing internal engine pieces requires same package access
package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchDeduper(t *testing.T) {
	d := NewBatchDeduper()

	assert.False(t, d.Seen("https://example.com/a"))
	assert.True(t, d.Seen("https://example.com/a"))
	assert.False(t, d.Seen("https://example.com/b"))
	assert.Equal(t, 2, d.Len())
}

func TestBatchDeduper_EmptyURLNeverDeduped(t *testing.T) {
	d := NewBatchDeduper()

	assert.False(t, d.Seen(""))
	assert.False(t, d.Seen(""))
	assert.Equal(t, 0, d.Len())
}

func TestBatchDeduper_Concurrent(t *testing.T) {
	d := NewBatchDeduper()

	var wg sync.WaitGroup
	var mu sync.Mutex
	kept := 0

	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !d.Seen("https://example.com/shared") {
				mu.Lock()
				kept++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Exactly one goroutine may claim a shared URL regardless of schedule.
	assert.Equal(t, 1, kept)
	assert.Equal(t, 1, d.Len())
}
