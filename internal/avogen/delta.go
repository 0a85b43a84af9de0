//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// SSE2 kernels for the delta filter (filters.go's deltaEncode32 /
// deltaDecode32, vectorized here four lanes at a time). Decode is
// a parallel prefix sum within each 4-lane vector (Kogge-Stone: shift by
// 1 lane and add, then shift by 2 lanes and add) followed by broadcasting
// the carried-in previous value across all 4 lanes.

func genDeltaEncodeKernel() {
	TEXT("deltaEncodeSIMDAsm", NOSPLIT, "func(dst *uint32, src *uint32, prev uint32, n int)")
	Doc("deltaEncodeSIMDAsm delta-encodes n uint32 lanes, seeded by prev.")

	dstParam := Load(Param("dst"), GP64())
	dstBase := dstParam.(reg.GPVirtual)
	srcParam := Load(Param("src"), GP64())
	srcBase := srcParam.(reg.GPVirtual)
	prevScalar := Load(Param("prev"), GP32())
	n := Load(Param("n"), GP64())

	vecLimit := GP64()
	MOVQ(n, vecLimit)
	ANDQ(op.Imm(0xfffffffc), vecLimit)

	index := GP64()
	XORQ(index, index)

	prevVec := XMM()
	MOVD(prevScalar, prevVec)

	curr := XMM()
	shifted := XMM()
	prevAligned := XMM()
	diff := XMM()

	vecLoop := "delta_encode_vec_loop"
	vecDone := "delta_encode_vec_done"

	Label(vecLoop)
	CMPQ(index, vecLimit)
	JAE(op.LabelRef(vecDone))

	blockSrc := op.Mem{Base: srcBase, Index: index, Scale: 4}
	blockDst := op.Mem{Base: dstBase, Index: index, Scale: 4}

	MOVO(blockSrc, curr)

	MOVO(curr, shifted)
	PSLLDQ(op.Imm(4), shifted)
	MOVO(shifted, prevAligned)
	POR(prevVec, prevAligned)

	MOVO(curr, diff)
	PSUBL(prevAligned, diff)
	MOVO(diff, blockDst)

	lastSrc := op.Mem{Base: srcBase, Index: index, Scale: 4, Disp: 12}
	MOVD(lastSrc, prevVec)

	ADDQ(op.Imm(4), index)
	JMP(op.LabelRef(vecLoop))

	Label(vecDone)

	tailLoop := "delta_encode_tail_loop"
	tailDone := "delta_encode_tail_done"

	MOVD(prevVec, prevScalar)
	tailCurr := GP32()
	tailDiff := GP32()

	Label(tailLoop)
	CMPQ(index, n)
	JAE(op.LabelRef(tailDone))

	elemSrc := op.Mem{Base: srcBase, Index: index, Scale: 4}
	elemDst := op.Mem{Base: dstBase, Index: index, Scale: 4}

	MOVL(elemSrc, tailCurr)
	MOVL(tailCurr, tailDiff)
	SUBL(prevScalar, tailDiff)
	MOVL(tailDiff, elemDst)
	MOVL(tailCurr, prevScalar)

	ADDQ(op.Imm(1), index)
	JMP(op.LabelRef(tailLoop))

	Label(tailDone)
	RET()
}

func genDeltaDecodeKernel() {
	TEXT("deltaDecodeSIMDAsm", NOSPLIT, "func(dst *uint32, src *uint32, prev uint32, n int)")
	Doc("deltaDecodeSIMDAsm inverts deltaEncodeSIMDAsm, seeded by prev.")

	dstParam := Load(Param("dst"), GP64())
	dstBase := dstParam.(reg.GPVirtual)
	srcParam := Load(Param("src"), GP64())
	srcBase := srcParam.(reg.GPVirtual)
	prevScalar := Load(Param("prev"), GP32())
	n := Load(Param("n"), GP64())

	vecLimit := GP64()
	MOVQ(n, vecLimit)
	ANDQ(op.Imm(0xfffffffc), vecLimit)

	index := GP64()
	XORQ(index, index)

	prevVec := XMM()
	MOVD(prevScalar, prevVec)
	PSHUFL(op.Imm(0x00), prevVec, prevVec)

	valVec := XMM()
	scanVec := XMM()
	tmpVec := XMM()

	vecLoop := "delta_decode_vec_loop"
	vecDone := "delta_decode_vec_done"

	Label(vecLoop)
	CMPQ(index, vecLimit)
	JAE(op.LabelRef(vecDone))

	blockSrc := op.Mem{Base: srcBase, Index: index, Scale: 4}
	blockDst := op.Mem{Base: dstBase, Index: index, Scale: 4}

	MOVO(blockSrc, valVec)
	MOVO(valVec, scanVec)

	MOVO(scanVec, tmpVec)
	PSLLDQ(op.Imm(4), tmpVec)
	PADDL(tmpVec, scanVec)

	MOVO(scanVec, tmpVec)
	PSLLDQ(op.Imm(8), tmpVec)
	PADDL(tmpVec, scanVec)

	PADDL(prevVec, scanVec)
	MOVO(scanVec, blockDst)

	MOVO(scanVec, prevVec)
	PSHUFL(op.Imm(0xFF), prevVec, prevVec)

	ADDQ(op.Imm(4), index)
	JMP(op.LabelRef(vecLoop))

	Label(vecDone)

	MOVD(prevVec, prevScalar)
	tailLoop := "delta_decode_tail_loop"
	tailDone := "delta_decode_tail_done"
	tailDelta := GP32()

	Label(tailLoop)
	CMPQ(index, n)
	JAE(op.LabelRef(tailDone))

	elemSrc := op.Mem{Base: srcBase, Index: index, Scale: 4}
	elemDst := op.Mem{Base: dstBase, Index: index, Scale: 4}

	MOVL(elemSrc, tailDelta)
	ADDL(tailDelta, prevScalar)
	MOVL(prevScalar, elemDst)

	ADDQ(op.Imm(1), index)
	JMP(op.LabelRef(tailLoop))

	Label(tailDone)
	RET()
}
