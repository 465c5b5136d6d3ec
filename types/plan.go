package types

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Plan assigns the deduplicated reach set to a fixed pool of worker ranks.
//
// Index i of Assignments holds the ordered reach identifiers for rank i.
// A Plan is computed once by rank 0, broadcast to every rank, and never
// mutated afterwards.
//
// Invariants (enforced by plan.Build, relied upon everywhere else):
//   - Every reach appears in exactly one rank's slice, exactly once.
//   - Per-rank counts differ by at most one; ranks holding the extra reach
//     are chosen round-robin starting at rank 0.
type Plan struct {
	// Assignments maps rank (slice index) to its ordered reach identifiers.
	Assignments [][]string `json:"assignments"`
}

// Size returns the number of worker ranks the plan was built for.
func (p *Plan) Size() int {
	return len(p.Assignments)
}

// Total returns the total number of reaches across all ranks.
func (p *Plan) Total() int {
	total := 0
	for _, reaches := range p.Assignments {
		total += len(reaches)
	}

	return total
}

// Slice returns the reach identifiers assigned to the given rank.
//
// Returns:
//   - []string: The rank's ordered assignment (nil when rank is out of range)
func (p *Plan) Slice(rank int) []string {
	if rank < 0 || rank >= len(p.Assignments) {
		return nil
	}

	return p.Assignments[rank]
}

// Checksum returns a stable xxh3 digest of the full assignment.
//
// The digest covers rank boundaries as well as reach content, so two plans
// with the same reaches split differently hash differently. Transports embed
// the checksum in the broadcast payload so a receiver can reject a plan that
// was corrupted or diverged in transit.
func (p *Plan) Checksum() uint64 {
	h := xxh3.New()
	var n [8]byte
	for _, reaches := range p.Assignments {
		binary.LittleEndian.PutUint64(n[:], uint64(len(reaches)))
		_, _ = h.Write(n[:])
		for _, id := range reaches {
			_, _ = h.Write([]byte(id))
			_, _ = h.Write([]byte{0})
		}
	}

	return h.Sum64()
}
