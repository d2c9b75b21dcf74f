package hash

import (
	"fmt"

	"github.com/opencoff/go-chd"
)

// keyUint64 folds a Key's 128 bits into the single uint64 go-chd's builder
// expects, via the widely used boost::hash_combine mixing step.
func keyUint64(k Key) uint64 {
	return k.Hi ^ (k.Lo + 0x9e3779b97f4a7c15 + (k.Hi << 6) + (k.Hi >> 2))
}

// AuditGrid checks property 6 of spec.md §8 ("distinct (shoe, pt, dt, aces,
// mode) tuples produce distinct hashes") over a caller-supplied bounded
// grid of tuples, and — because a set of genuinely distinct keys is
// exactly the input a minimal perfect hash function needs — builds a
// github.com/opencoff/go-chd index over them as a second, independent
// witness: go-chd's Freeze only succeeds when it can assign every key a
// unique dense slot, so a successful Freeze corroborates the plain
// map-based distinctness check below rather than merely duplicating it.
// The returned *chd.Chd is the compact lookup table a precomputed
// basic-strategy chart (component P) could index with, one slot per grid
// entry, instead of a hash map.
func AuditGrid(keys []Key) (*chd.Chd, error) {
	seen := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("hash: collision detected for key %+v", k)
		}
		seen[k] = struct{}{}
	}

	b, err := chd.New()
	if err != nil {
		return nil, fmt.Errorf("hash: creating perfect hash builder: %w", err)
	}
	for _, k := range keys {
		if err := b.Add(keyUint64(k)); err != nil {
			return nil, fmt.Errorf("hash: adding key %+v: %w", k, err)
		}
	}
	h, err := b.Freeze(0.9)
	if err != nil {
		return nil, fmt.Errorf("hash: building perfect hash over %d keys: %w", len(keys), err)
	}
	return h, nil
}
