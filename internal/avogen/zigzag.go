//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// SSE2 kernels for the zigzag filter (filters.go's zigzagEncode32 /
// zigzagDecode32, applied element-wise and so trivially vectorizable):
//
//	encode(v) = (v << 1) ^ (v >> 31)   (arithmetic shift)
//	decode(v) = (v >> 1) ^ -(v & 1)
//
// mirrors the SSE2 formulation in
// https://lemire.me/blog/2022/11/25/making-all-your-integers-positive-with-zigzag-encoding/

func genZigzagEncodeKernel() {
	TEXT("zigzagEncodeSIMDAsm", NOSPLIT, "func(buf *uint32, n int)")
	Doc("zigzagEncodeSIMDAsm zigzag-encodes n uint32 lanes in place.")

	bufParam := Load(Param("buf"), GP64())
	bufPtr := bufParam.(reg.GPVirtual)
	n := Load(Param("n"), GP64())

	vecCount := GP64()
	MOVQ(n, vecCount)
	ANDQ(op.Imm(0xfffffffc), vecCount)

	tailCount := GP64()
	MOVQ(n, tailCount)
	ANDQ(op.Imm(3), tailCount)

	remaining := GP64()
	MOVQ(vecCount, remaining)

	vecLoop := "zigzag_encode_vec_loop"
	vecDone := "zigzag_encode_vec_done"

	val := XMM()
	sign := XMM()
	shifted := XMM()

	Label(vecLoop)
	CMPQ(remaining, op.Imm(0))
	JE(op.LabelRef(vecDone))

	MOVO(op.Mem{Base: bufPtr}, val)

	MOVO(val, sign)
	PSRAL(op.Imm(31), sign)

	MOVO(val, shifted)
	PSLLL(op.Imm(1), shifted)
	PXOR(sign, shifted)

	MOVO(shifted, op.Mem{Base: bufPtr})

	ADDQ(op.Imm(16), bufPtr)
	SUBQ(op.Imm(4), remaining)
	JMP(op.LabelRef(vecLoop))

	Label(vecDone)

	tailLoop := "zigzag_encode_tail_loop"
	tailDone := "zigzag_encode_tail_done"

	tailVal := GP32()
	tailSign := GP32()

	Label(tailLoop)
	CMPQ(tailCount, op.Imm(0))
	JE(op.LabelRef(tailDone))

	MOVL(op.Mem{Base: bufPtr}, tailVal)
	MOVL(tailVal, tailSign)
	SARL(op.Imm(31), tailSign)
	SHLL(op.Imm(1), tailVal)
	XORL(tailSign, tailVal)
	MOVL(tailVal, op.Mem{Base: bufPtr})

	ADDQ(op.Imm(4), bufPtr)
	DECQ(tailCount)
	JMP(op.LabelRef(tailLoop))

	Label(tailDone)
	RET()
}

func genZigzagDecodeKernel() {
	TEXT("zigzagDecodeSIMDAsm", NOSPLIT, "func(buf *uint32, n int)")
	Doc("zigzagDecodeSIMDAsm inverts zigzagEncodeSIMDAsm in place.")

	bufParam := Load(Param("buf"), GP64())
	bufPtr := bufParam.(reg.GPVirtual)
	n := Load(Param("n"), GP64())

	vecCount := GP64()
	MOVQ(n, vecCount)
	ANDQ(op.Imm(0xfffffffc), vecCount)

	tailCount := GP64()
	MOVQ(n, tailCount)
	ANDQ(op.Imm(3), tailCount)

	remaining := GP64()
	MOVQ(vecCount, remaining)

	vecLoop := "zigzag_decode_vec_loop"
	vecDone := "zigzag_decode_vec_done"

	val := XMM()
	lsb := XMM()
	shifted := XMM()

	Label(vecLoop)
	CMPQ(remaining, op.Imm(0))
	JE(op.LabelRef(vecDone))

	MOVO(op.Mem{Base: bufPtr}, val)

	// lsb = -(val & 1), built via (val << 31) >> 31 (arithmetic)
	MOVO(val, lsb)
	PSLLL(op.Imm(31), lsb)
	PSRAL(op.Imm(31), lsb)

	MOVO(val, shifted)
	PSRLL(op.Imm(1), shifted)
	PXOR(lsb, shifted)

	MOVO(shifted, op.Mem{Base: bufPtr})

	ADDQ(op.Imm(16), bufPtr)
	SUBQ(op.Imm(4), remaining)
	JMP(op.LabelRef(vecLoop))

	Label(vecDone)

	tailLoop := "zigzag_decode_tail_loop"
	tailDone := "zigzag_decode_tail_done"

	tailVal := GP32()
	tailShift := GP32()
	tailMask := GP32()

	Label(tailLoop)
	CMPQ(tailCount, op.Imm(0))
	JE(op.LabelRef(tailDone))

	MOVL(op.Mem{Base: bufPtr}, tailVal)
	MOVL(tailVal, tailMask)
	ANDL(op.Imm(1), tailMask)
	NEGL(tailMask)

	MOVL(tailVal, tailShift)
	SHRL(op.Imm(1), tailShift)
	XORL(tailMask, tailShift)
	MOVL(tailShift, op.Mem{Base: bufPtr})

	ADDQ(op.Imm(4), bufPtr)
	DECQ(tailCount)
	JMP(op.LabelRef(tailLoop))

	Label(tailDone)
	RET()
}
