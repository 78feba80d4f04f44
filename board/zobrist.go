package board

import "math/rand"

var zobristPiece [16][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// computeZobrist recomputes the hash from scratch; used by ParseFEN and to
// cross-check the incrementally maintained key in tests.
func (b *Board) computeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.mailbox[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.side == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castle]
	if b.ep != NoSquare {
		key ^= zobristEnPassant[b.ep.File()]
	}
	return key
}
