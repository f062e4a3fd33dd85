// Package sequence builds practice letter orderings.
package sequence

import (
	"math/rand"
	"time"
)

// Sequencer produces randomized practice orderings.
type Sequencer struct {
	rnd *rand.Rand
}

// New returns a Sequencer seeded with the current time.
func New() *Sequencer {
	return &Sequencer{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Order returns the practice order for the given letters, shuffled
// when requested.
func (s *Sequencer) Order(letters []rune, shuffle bool) []rune {
	out := make([]rune, len(letters))
	copy(out, letters)
	if shuffle {
		s.rnd.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	return out
}

// OrderWeighted draws count letters with a bias toward weak letters.
// Each weak letter's weight is multiplied by 1+factor; non-weak
// letters keep weight 1.
func (s *Sequencer) OrderWeighted(letters []rune, count int, weakSet map[rune]struct{}, factor float64) []rune {
	if len(letters) == 0 || count <= 0 {
		return nil
	}
	weights := make([]float64, len(letters))
	total := 0.0
	for i, letter := range letters {
		w := 1.0
		if _, ok := weakSet[letter]; ok {
			w += factor
		}
		weights[i] = w
		total += w
	}

	out := make([]rune, 0, count)
	for i := 0; i < count; i++ {
		r := s.rnd.Float64() * total
		acc := 0.0
		pick := letters[len(letters)-1]
		for j, w := range weights {
			acc += w
			if r < acc {
				pick = letters[j]
				break
			}
		}
		out = append(out, pick)
	}
	return out
}
