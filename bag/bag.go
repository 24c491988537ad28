// Package bag implements the 7-bag piece randomizer: every run of seven
// draws, aligned to the start of the sequence, contains each kind once.
package bag

import (
	"math/rand/v2"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetromino"
)

// Source is the shuffle primitive the bag draws from. *rand.Rand satisfies
// it; its Shuffle is a Fisher-Yates shuffle.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// Bag is a queue of upcoming piece kinds, refilled one shuffled bag at a
// time so that it never runs dry.
type Bag struct {
	src   Source
	queue []tetromino.Kind
	drawn *intmap.Map[tetromino.Kind, int]
	total int
}

// New returns a bag seeded with one shuffled permutation drawn from src.
func New(src Source) *Bag {
	b := &Bag{
		src:   src,
		queue: make([]tetromino.Kind, 0, 2*tetromino.KindCount),
		drawn: intmap.New[tetromino.Kind, int](tetromino.KindCount),
	}
	b.refill()
	return b
}

// NewSeeded returns a bag driven by a PCG generator, so equal seeds give
// equal sequences.
func NewSeeded(seed uint64) *Bag {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (b *Bag) refill() {
	perm := tetromino.Kinds
	b.src.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	b.queue = append(b.queue, perm[:]...)
}

// Next removes and returns the head of the queue. A fresh bag is appended
// first whenever one kind or fewer remains, so Peek is always valid after.
func (b *Bag) Next() tetromino.Kind {
	if len(b.queue) <= 1 {
		b.refill()
	}
	kind := b.queue[0]
	b.queue = b.queue[1:]

	n, _ := b.drawn.Get(kind)
	b.drawn.Put(kind, n+1)
	b.total++
	return kind
}

// Peek returns the head of the queue without removing it.
func (b *Bag) Peek() tetromino.Kind {
	return b.queue[0]
}

// Len returns how many kinds are queued.
func (b *Bag) Len() int {
	return len(b.queue)
}

// Drawn returns how many times Next has returned kind.
func (b *Bag) Drawn(kind tetromino.Kind) int {
	n, _ := b.drawn.Get(kind)
	return n
}

// Total returns how many kinds have been drawn overall.
func (b *Bag) Total() int {
	return b.total
}
