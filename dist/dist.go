// Package dist implements ordered weighted distributions. Entries are
// an explicit sequence, not a map, so iteration order, tie-breaks and
// the first-entry fallback are part of the contract.
package dist

import "math/rand"

type Entry[T comparable] struct {
	Value  T
	Weight float64
}

// Distribution weights are relative; they need not sum to 1.
// Normalization happens at draw time.
type Distribution[T comparable] []Entry[T]

func (d Distribution[T]) Total() float64 {
	var total float64
	for _, e := range d {
		total += e.Weight
	}
	return total
}

// Pick draws by cumulative weight. Malformed weights (zero or negative
// total) fall back to the first entry rather than failing.
func (d Distribution[T]) Pick(rng *rand.Rand) T {
	var zero T
	if len(d) == 0 {
		return zero
	}
	total := d.Total()
	if total <= 0 {
		return d[0].Value
	}
	r := rng.Float64() * total
	for _, e := range d {
		r -= e.Weight
		if r <= 0 {
			return e.Value
		}
	}
	// floating point edge case
	return d[0].Value
}

// MostProbable returns the highest-weight entry, ties broken by
// first-seen order. Never mutates and never shapes.
func (d Distribution[T]) MostProbable() T {
	var zero T
	if len(d) == 0 {
		return zero
	}
	best := d[0]
	for _, e := range d[1:] {
		if e.Weight > best.Weight {
			best = e
		}
	}
	return best.Value
}

// Blend pulls the distribution toward uniform. At amount 0 the weights
// are untouched, at 1 they are exactly uniform over the entries that
// were present. Returns a copy.
func (d Distribution[T]) Blend(amount float64) Distribution[T] {
	res := make(Distribution[T], len(d))
	uniform := 0.0
	if len(d) > 0 {
		uniform = 1 / float64(len(d))
	}
	for i, e := range d {
		res[i] = Entry[T]{
			Value:  e.Value,
			Weight: e.Weight*(1-amount) + uniform*amount,
		}
	}
	return res
}

// PenalizeRepeats dampens entries that recur in the recent window: a
// value seen 3+ times keeps 0.3x its weight, exactly twice keeps 0.7x.
// Windows shorter than 3 leave the distribution alone. Returns a copy.
func (d Distribution[T]) PenalizeRepeats(recent []T) Distribution[T] {
	res := make(Distribution[T], len(d))
	copy(res, d)
	if len(recent) < 3 {
		return res
	}
	counts := make(map[T]int)
	for _, v := range recent {
		counts[v]++
	}
	for i, e := range res {
		switch n := counts[e.Value]; {
		case n >= 3:
			res[i].Weight = e.Weight * 0.3
		case n == 2:
			res[i].Weight = e.Weight * 0.7
		}
	}
	return res
}
