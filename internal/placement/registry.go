// Package placement implements the six consistent-hashing placement
// algorithms and the striping helper that rides on top of them. Each
// algorithm is built once, by name, at initialization, and resolved
// through a small interface rather than a function-pointer table.
package placement

import "math/rand"

// Algorithm is the capability set every placement algorithm exposes:
// find the closest servers to an object id, and emit a striping plan for
// a file. Built once per Instance at initialize time.
type Algorithm interface {
	// FindClosest returns exactly replication distinct server indices
	// for obj, ordered primary-first.
	FindClosest(obj uint64, replication uint32) []uint32

	// CreateStriped partitions fileSize into a striping plan and
	// assigns each stripe member an object id. rng supplies any
	// randomness the algorithm's object-id selection needs; algorithms
	// whose selection is ring-aware (multiring) may also consult the
	// instance's own table and ignore parts of rng's output.
	CreateStriped(fileSize uint64, replication, maxStripeWidth uint32, stripSize uint64, rng *rand.Rand) (oids []uint64, sizes []uint64)
}

// Constructor builds an Algorithm's private state (its virtual-node
// table) for a given cluster shape.
type Constructor func(nSvrs, virtFactor uint32) Algorithm

// registry maps algorithm names accepted by initialize to their
// constructors. An unrecognized name must yield no instance.
var registry = map[string]Constructor{
	"static_modulo": newStaticModulo,
	"xor":           newXOR,
	"hash_lookup3":  newHashLookup3,
	"hash_spooky":   newHashSpooky,
	"ring":          newRing,
	"multiring":     newMultiring,
}

// Lookup resolves name against the registry. The second return value is
// false for an unrecognized name.
func Lookup(name string) (Constructor, bool) {
	ctor, ok := registry[name]
	return ctor, ok
}
