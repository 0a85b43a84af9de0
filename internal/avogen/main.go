//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var component = flag.String("component", "all", "component to generate")

// main emits the zigzag and delta kernels. It is never part of a normal
// build; run it with `go run -tags avogen .` and pipe through asmfmt to
// produce a .s file for the kernels. No such file ships in the module; the
// portable Go filters are what runs (see dispatch_fastpath_amd64.go:
// the table-driven path is selected at runtime whether or not real asm
// kernels exist, so this generator documents the road not taken rather
// than gating anything).
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/aqrit-go/streamvbyte-go")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "zigzag" || comp == "all" {
		genZigzagEncodeKernel()
		genZigzagDecodeKernel()
	}

	if comp == "delta" || comp == "all" {
		genDeltaEncodeKernel()
		genDeltaDecodeKernel()
	}

	Generate()
}
