//go:build !corecheck

package board

// snapshotBoard and assertUnchanged are no-ops in default builds; see debug.go for the
// -tags corecheck development-build self-check they normally perform.
func snapshotBoard(b *Board) Board {
	return Board{}
}

func assertUnchanged(b *Board, snapshot Board) {
}
