//go:build arm64

package streamvbyte

import "golang.org/x/sys/cpu"

// arm64 always has ASIMD (NEON); prefer the table-driven group codec
// there too, for the same reasons as dispatch_fastpath_amd64.go.
func init() {
	if cpu.ARM64.HasASIMD {
		groupEncode8 = tableGroupEncode8
		groupDecode8 = tableGroupDecode8
	}
}
