//go:build amd64

package streamvbyte

import "golang.org/x/sys/cpu"

// On amd64, prefer the table-driven group codec when the host exposes the
// baseline vector feature set a real byte-shuffle kernel would need
// (SSE4.1, which is what a PSHUFB-based encoder/decoder would target).
// This is the same feature-gated function-variable swap the teacher
// performs in simdpack.go's initSIMDSelection, retargeted from FastPFOR's
// bit-packing kernels to this package's StreamVByte group-of-8 codec. Both
// the scalar default (dispatch_generic.go) and the table-driven override
// here are portable Go -- there is no assembly to fail to link -- so this
// dispatch only changes which loop shape runs, never the wire format it
// produces.
func init() {
	if cpu.X86.HasSSE41 {
		groupEncode8 = tableGroupEncode8
		groupDecode8 = tableGroupDecode8
	}
}
