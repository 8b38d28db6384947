//go:build corecheck

package board

import "fmt"

// snapshotBoard and assertUnchanged implement the development-build self-check described in
// spec.md/SPEC_FULL.md: after GenerateLegal's make/test/unmake pass over every pseudo-legal
// candidate, the board must be bit-identical to how it started. Board has no pointers into
// shared state, so a plain value copy and == comparison suffice. This check only runs when
// built with -tags corecheck; see debug_off.go for the default no-op.
func snapshotBoard(b *Board) Board {
	return *b
}

func assertUnchanged(b *Board, snapshot Board) {
	if *b != snapshot {
		panic(fmt.Sprintf("board: GenerateLegal left the board mutated: before=%+v after=%+v", snapshot, *b))
	}
}
