// Package tt implements a fixed-size, clustered transposition table.
// Each cluster is probed linearly; replacement prefers an existing entry
// for the same key, then an empty slot, then the shallowest entry in the
// cluster — matching the teacher's "always prefer depth-or-empty" policy.
package tt

import (
	"unsafe"

	"corvus/board"
)

type Flag int8

const (
	Alpha Flag = iota
	Beta
	Exact
)

// SizeMB is the default table size; NewWithSize overrides it.
const SizeMB = 64

const clusterSize = 4

// mateThreshold marks the boundary past which stored scores are treated as
// mate scores needing ply adjustment on store/probe, mirroring search's
// MATE sentinel minus a safety margin for the deepest realistic search.
const mateThreshold = 29000

type Entry struct {
	Hash  uint64
	Depth int8
	Move  board.Move
	Score int16
	Flag  Flag
}

// Table is a fixed-size transposition table, safe for use by a single
// search at a time (no internal locking — callers doing concurrent perft
// or analysis should use one Table per goroutine).
type Table struct {
	entries      []Entry
	clusterCount uint64
}

// New allocates a Table sized to SizeMB megabytes.
func New() *Table { return NewWithSize(SizeMB) }

// NewWithSize allocates a Table sized to sizeMB megabytes.
func NewWithSize(sizeMB int) *Table {
	entrySize := uint64(unsafe.Sizeof(Entry{}))
	if entrySize == 0 {
		entrySize = 1
	}
	totalBytes := uint64(sizeMB) * 1024 * 1024
	clusterBytes := entrySize * clusterSize
	clusterCount := totalBytes / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &Table{
		entries:      make([]Entry, clusterCount*clusterSize),
		clusterCount: clusterCount,
	}
}

// Clear resets every entry, used between games (ucinewgame).
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Probe looks up hash and reports whether an entry for it exists, applying
// the mate-score ply adjustment on the way out.
func (t *Table) Probe(hash uint64, ply int) (Entry, bool) {
	cluster := hash % t.clusterCount
	base := cluster * clusterSize
	for i := uint64(0); i < clusterSize; i++ {
		e := t.entries[base+i]
		if e.Hash == hash {
			e.Score = adjustScoreOut(e.Score, ply)
			return e, true
		}
	}
	return Entry{}, false
}

// Store records an entry for hash, adjusting a mate score in by ply before
// it is persisted. Replacement order: same key, then empty slot, then
// shallowest entry in the cluster.
func (t *Table) Store(hash uint64, depth int, ply int, move board.Move, score int, flag Flag) {
	cluster := hash % t.clusterCount
	base := cluster * clusterSize

	storedScore := adjustScoreIn(int16(score), ply)

	target := int64(-1)
	for i := uint64(0); i < clusterSize; i++ {
		idx := base + i
		if t.entries[idx].Hash == hash {
			target = int64(idx)
			break
		}
	}
	if target == -1 {
		for i := uint64(0); i < clusterSize; i++ {
			idx := base + i
			if t.entries[idx].Hash == 0 {
				target = int64(idx)
				break
			}
		}
	}
	if target == -1 {
		target = int64(base)
		minDepth := t.entries[base].Depth
		for i := uint64(1); i < clusterSize; i++ {
			idx := base + i
			if t.entries[idx].Depth < minDepth {
				minDepth = t.entries[idx].Depth
				target = int64(idx)
			}
		}
	}

	e := &t.entries[target]
	e.Hash = hash
	e.Depth = int8(depth)
	e.Move = move
	e.Flag = flag
	e.Score = storedScore
}

func adjustScoreIn(score int16, ply int) int16 {
	if int(score) > mateThreshold {
		return score + int16(ply)
	}
	if int(score) < -mateThreshold {
		return score - int16(ply)
	}
	return score
}

func adjustScoreOut(score int16, ply int) int16 {
	if int(score) > mateThreshold {
		return score - int16(ply)
	}
	if int(score) < -mateThreshold {
		return score + int16(ply)
	}
	return score
}
