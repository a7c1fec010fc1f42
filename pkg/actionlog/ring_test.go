package actionlog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingPushPop(t *testing.T) {
	r := newRing(3)

	_, ok := r.pop()
	assert.False(t, ok, "pop on empty ring should report false")

	assert.False(t, r.push(Entry{ToolName: "a"}))
	assert.False(t, r.push(Entry{ToolName: "b"}))
	assert.False(t, r.push(Entry{ToolName: "c"}))
	assert.Equal(t, 3, r.len())

	e, ok := r.pop()
	assert.True(t, ok)
	assert.Equal(t, "a", e.ToolName, "pop should return oldest first")
	assert.Equal(t, 2, r.len())
}

func TestRingEvictsOldestWhenFull(t *testing.T) {
	r := newRing(3)
	r.push(Entry{ToolName: "a"})
	r.push(Entry{ToolName: "b"})
	r.push(Entry{ToolName: "c"})

	evicted := r.push(Entry{ToolName: "d"})
	assert.True(t, evicted, "push into full ring should evict")
	assert.Equal(t, 3, r.len())

	var order []string
	for {
		e, ok := r.pop()
		if !ok {
			break
		}
		order = append(order, e.ToolName)
	}
	assert.Equal(t, []string{"b", "c", "d"}, order)
}

func TestRingWrapsAround(t *testing.T) {
	r := newRing(4)
	for i := 0; i < 10; i++ {
		r.push(Entry{ToolName: fmt.Sprintf("tool.%d", i)})
	}
	assert.Equal(t, 4, r.len())

	var order []string
	for {
		e, ok := r.pop()
		if !ok {
			break
		}
		order = append(order, e.ToolName)
	}
	assert.Equal(t, []string{"tool.6", "tool.7", "tool.8", "tool.9"}, order)
}
