// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path error logging helper (alloc-light)
//
// Purpose:
//   - Logs infrequent error paths without pulling fmt into them.
//   - Used only in cold paths: demo routine failures, store open errors.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint.
//   - Messages go straight to stderr via utils.PrintWarning.
//
// ⚠️ Never invoke in hot loops — use only in failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "main/utils"

// DropError logs an error under a fixed prefix. With a nil error only the
// prefix is printed, which keeps it usable for tagged one-off warnings.
//
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs a two-part diagnostic message on cold paths.
//
//go:inline
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}

// DropCount logs a labelled counter without strconv or fmt.
//
//go:inline
func DropCount(prefix string, n uint64) {
	var buf [20]byte
	utils.PrintWarning(prefix + ": " + string(utils.U64ToASCII(n, buf[:])) + "\n")
}
