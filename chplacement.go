// Package chplacement is the placement brain for a replicated object
// store: given an opaque 64-bit object id, a replication factor, and a
// cluster of N server slots, it deterministically answers which r
// distinct servers should hold that object's replicas.
//
// It is not a data store, a transport, or a membership service — it is
// a pure function of (object id, cluster description, algorithm
// choice). Six algorithms are available: "static_modulo" (a
// non-consistent baseline), "xor" and "hash_lookup3"/"hash_spooky"
// (closest-by-distance over a virtual-node table), and "ring"/
// "multiring" (ordered consistent hashing with and without ring
// partitioning).
//
// Typical use:
//
//	inst, err := chplacement.Initialize("ring", 64, 16)
//	if err != nil {
//	    // unknown algorithm name, or n_svrs/virt_factor is zero
//	}
//	defer inst.Finalize()
//
//	servers, err := inst.FindClosest(objID, 3)
package chplacement

import (
	"fmt"
	"math/rand"

	"ch-placement/internal/placement"
)

// MaxReplication is the hard ceiling on the replication factor accepted
// by FindClosest and CreateStriped.
const MaxReplication = 5

// Instance holds an algorithm selection, a cluster shape, and that
// algorithm's private virtual-node table. It is immutable after
// Initialize returns: any number of goroutines may call FindClosest
// concurrently with no synchronization. Initialize's parameters are the
// entire configuration surface — there is no other place state enters
// this package.
type Instance struct {
	name       string
	nSvrs      uint32
	virtFactor uint32
	algo       placement.Algorithm
	finalized  bool
}

// Initialize resolves name against the algorithm registry and builds its
// virtual-node table for a cluster of n_svrs servers with virt_factor
// virtual nodes each. It fails if name is unrecognized or either count
// is zero.
func Initialize(name string, nSvrs, virtFactor uint32) (*Instance, error) {
	if nSvrs == 0 {
		return nil, ErrInvalidServerCount
	}
	if virtFactor == 0 {
		return nil, ErrInvalidVirtFactor
	}
	ctor, ok := placement.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return &Instance{
		name:       name,
		nSvrs:      nSvrs,
		virtFactor: virtFactor,
		algo:       ctor(nSvrs, virtFactor),
	}, nil
}

// Name reports the algorithm this instance was initialized with.
func (inst *Instance) Name() string { return inst.name }

// NumServers reports the cluster size this instance was initialized
// with.
func (inst *Instance) NumServers() uint32 { return inst.nSvrs }

// VirtFactor reports the virtual-node factor this instance was
// initialized with.
func (inst *Instance) VirtFactor() uint32 { return inst.virtFactor }

// precondition enforces the two checks the spec treats as programmer
// errors rather than ordinary usage errors: calling through a finalized
// instance (the Go analogue of a freed/dangling C instance pointer),
// and a replication factor above the hard MaxReplication ceiling. Both
// indicate a caller bug, not bad input a well-behaved caller could hit
// in the ordinary course of business, so they panic instead of
// returning an error.
func (inst *Instance) precondition(replication uint32) {
	if inst.finalized {
		panic(ErrFinalized)
	}
	if replication > MaxReplication {
		panic(fmt.Errorf("%w: replication=%d exceeds MaxReplication=%d", ErrReplicationOutOfRange, replication, MaxReplication))
	}
}

// FindClosest returns exactly replication distinct server indices for
// obj, ordered primary-first. replication must satisfy
// 1 <= replication <= min(NumServers(), MaxReplication).
func (inst *Instance) FindClosest(obj uint64, replication uint32) ([]uint32, error) {
	inst.precondition(replication)
	if replication < 1 || replication > inst.nSvrs {
		return nil, fmt.Errorf("%w: replication=%d (1 <= r <= n_svrs=%d)", ErrReplicationOutOfRange, replication, inst.nSvrs)
	}
	return inst.algo.FindClosest(obj, replication), nil
}

// StripePlan is the ordered set of (object id, byte size) pairs a file
// is split into; the byte sizes sum to the original file size.
type StripePlan struct {
	ObjectIDs []uint64
	Sizes     []uint64
}

// CreateStriped partitions fileSize into a striping plan sized by
// stripSize and maxStripeWidth, and assigns each stripe member an object
// id. On every algorithm except "multiring" the ids are independent
// PRNG draws with no placement guarantee; on "multiring" the ids are
// chosen so consecutive stripe members have disjoint primaries and each
// one places deterministically on its intended server when fed back
// through FindClosest. rng supplies all randomness this call consumes;
// it is not safe for concurrent use by multiple goroutines sharing the
// same *rand.Rand.
func (inst *Instance) CreateStriped(fileSize uint64, replication, maxStripeWidth uint32, stripSize uint64, rng *rand.Rand) (*StripePlan, error) {
	inst.precondition(replication)
	if replication < 1 || replication > inst.nSvrs {
		return nil, fmt.Errorf("%w: replication=%d (1 <= r <= n_svrs=%d)", ErrReplicationOutOfRange, replication, inst.nSvrs)
	}
	if stripSize == 0 {
		return nil, ErrInvalidStripSize
	}
	if maxStripeWidth < 1 {
		return nil, ErrInvalidStripeWidth
	}
	oids, sizes := inst.algo.CreateStriped(fileSize, replication, maxStripeWidth, stripSize, rng)
	return &StripePlan{ObjectIDs: oids, Sizes: sizes}, nil
}

// Finalize releases the instance. Any later call to FindClosest or
// CreateStriped on it panics, the same way a C caller using a freed
// instance would corrupt memory instead of failing quietly.
func (inst *Instance) Finalize() {
	inst.finalized = true
	inst.algo = nil
}

// RandomU64 returns 64 bits built by concatenating eight independent
// 8-bit samples drawn from rng. It is a utility for test harnesses and
// for the non-multiring striping path; it is not part of any
// placement algorithm's own determinism contract.
func RandomU64(rng *rand.Rand) uint64 {
	return placement.RandomU64(rng)
}
