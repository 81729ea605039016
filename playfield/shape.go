// Package playfield holds the static tetromino table, positioned pieces and the
// fixed-size grid they fall into. Nothing here knows about time or input.
package playfield

import "image/color"

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// Kinds lists every shape, in table order.
var Kinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// Offset is a block position relative to a piece anchor, in cells.
type Offset struct {
	DX, DY int
}

// rotations holds every rotation state of every kind. All offsets are non-negative
// and every state has exactly four blocks.
var rotations = [len(Kinds)][][4]Offset{
	KindI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	KindO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
}

var palette = [len(Kinds)]color.RGBA{
	KindI: {0, 255, 255, 255},
	KindJ: {0, 0, 255, 255},
	KindL: {255, 165, 0, 255},
	KindO: {255, 255, 0, 255},
	KindS: {0, 255, 0, 255},
	KindT: {128, 0, 128, 255},
	KindZ: {255, 0, 0, 255},
}

// RotationCount returns how many distinct rotation states the kind has.
func RotationCount(kind Kind) int {
	return len(rotations[kind])
}

// Offsets returns the four block offsets of a rotation state. The rotation must
// already be in [0, RotationCount(kind)); Piece owns the wraparound.
func Offsets(kind Kind, rotation int) [4]Offset {
	return rotations[kind][rotation]
}

// Color returns the fill colour used for the kind.
func (k Kind) Color() color.RGBA {
	return palette[k]
}
