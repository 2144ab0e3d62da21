package utils

import (
	"os"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
// Used for human-readable print paths and for hashing byte keys as strings.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

///////////////////////////////////////////////////////////////////////////////
// Decimal Formatting — No strconv on Diagnostic Paths
///////////////////////////////////////////////////////////////////////////////

// U64ToASCII renders v in decimal into buf and returns the used suffix.
// buf must hold at least 20 bytes (max uint64 digits).
//
//go:nosplit
//go:inline
func U64ToASCII(v uint64, buf []byte) []byte {
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			return buf[i:]
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// Diagnostic Output — Direct Stderr Writes
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg straight to stderr. No fmt, no buffering; used
// only on cold failure paths.
func PrintWarning(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}
