package roster

import (
	"fmt"
	"sync/atomic"
)

// IDSource hands out player ids.
type IDSource interface {
	NextID() int
}

// Sequence is the process-wide player id allocator. Ids start at 1 and are
// never reused. Safe for concurrent use.
type Sequence struct {
	last atomic.Int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) NextID() int {
	return int(s.last.Add(1))
}

// Reserve claims n consecutive ids and returns them as a Block.
func (s *Sequence) Reserve(n int) *Block {
	end := int(s.last.Add(int64(n)))
	return &Block{next: end - n + 1, end: end}
}

// Reset restarts the sequence at 1. Only meant for tests.
func (s *Sequence) Reset() {
	s.last.Store(0)
}

// Block is a contiguous range of reserved ids. It is not safe for concurrent
// use; give each goroutine its own Block.
type Block struct {
	next int
	end  int
}

func (b *Block) NextID() int {
	if b.next > b.end {
		panic(fmt.Sprintf("roster: id block exhausted at %d", b.end))
	}
	id := b.next
	b.next++
	return id
}

func (b *Block) Remaining() int {
	return b.end - b.next + 1
}
