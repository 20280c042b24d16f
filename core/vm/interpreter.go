// Copyright 2015 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"github.com/probeum/go-probe-evm/crypto"
)

// opFn is a single opcode's effect on a frame. jumped reports whprobeer
// the opcode already advanced f.pc itself (PUSHn, JUMP, taken JUMPI); if
// false the run loop advances pc by one.
type opFn func(f *Frame, evm *EVM) (jumped bool, err error)

// jumpTable is a dense, byte-indexed dispatch table — preferred here over
// chained conditionals, per a flat opcode space with no overlapping cases.
var jumpTable = newJumpTable()

func newJumpTable() [256]opFn {
	var t [256]opFn

	t[STOP] = opStop
	t[ADD] = opAdd
	t[MUL] = opMul
	t[SUB] = opSub
	t[DIV] = opDiv
	t[SDIV] = opSdiv
	t[MOD] = opMod
	t[SMOD] = opSmod
	t[ADDMOD] = opAddmod
	t[MULMOD] = opMulmod
	t[EXP] = opExp
	t[SIGNEXTEND] = opSignExtend

	t[LT] = opLt
	t[GT] = opGt
	t[SLT] = opSlt
	t[SGT] = opSgt
	t[EQ] = opEq
	t[ISZERO] = opIszero
	t[AND] = opAnd
	t[OR] = opOr
	t[XOR] = opXor
	t[NOT] = opNot
	t[BYTE] = opByte
	t[SHL] = opShl
	t[SHR] = opShr
	t[SAR] = opSar

	t[SHA3] = opSha3

	t[ADDRESS] = opAddress
	t[BALANCE] = opBalance
	t[ORIGIN] = opOrigin
	t[CALLER] = opCaller
	t[CALLVALUE] = opCallValue
	t[CALLDATALOAD] = opCallDataLoad
	t[CALLDATASIZE] = opCallDataSize
	t[CALLDATACOPY] = opCallDataCopy
	t[CODESIZE] = opCodeSize
	t[CODECOPY] = opCodeCopy
	t[GASPRICE] = opGasprice
	t[EXTCODESIZE] = opExtCodeSize
	t[EXTCODECOPY] = opExtCodeCopy
	t[RETURNDATASIZE] = opReturnDataSize
	t[RETURNDATACOPY] = opReturnDataCopy
	t[EXTCODEHASH] = opExtCodeHash

	t[BLOCKHASH] = opBlockhash
	t[COINBASE] = opCoinbase
	t[TIMESTAMP] = opTimestamp
	t[NUMBER] = opNumber
	t[DIFFICULTY] = opDifficulty
	t[GASLIMIT] = opGasLimit
	t[CHAINID] = opChainID
	t[SELFBALANCE] = opSelfBalance
	t[BASEFEE] = opBaseFee

	t[POP] = opPop
	t[MLOAD] = opMload
	t[MSTORE] = opMstore
	t[MSTORE8] = opMstore8
	t[SLOAD] = opSload
	t[SSTORE] = opSstore
	t[JUMP] = opJump
	t[JUMPI] = opJumpi
	t[PC] = opPc
	t[MSIZE] = opMsize
	t[GAS] = opGas
	t[JUMPDEST] = opJumpdest
	t[PUSH0] = opPush0

	for i := 1; i <= 32; i++ {
		t[PUSH1+OpCode(i-1)] = makePush(i)
	}
	for i := 1; i <= 16; i++ {
		t[DUP1+OpCode(i-1)] = makeDup(i)
	}
	for i := 1; i <= 16; i++ {
		t[SWAP1+OpCode(i-1)] = makeSwap(i)
	}
	for i := 0; i <= 4; i++ {
		t[LOG0+OpCode(i)] = makeLog(i)
	}

	t[CALL] = opCall
	t[RETURN] = opReturn
	t[REVERT] = opRevert

	return t
}

// run drives the dispatch loop over f until STOP, RETURN, REVERT, an
// invalid opcode, an invalid jump, a stack fault, or code exhaustion.
// The frame's success/returnData/logs are filled in by the time run
// returns; no error ever escapes to the caller.
func run(evm *EVM, f *Frame) {
	for {
		if f.pc >= uint64(f.code.Len()) {
			// Code exhaustion without an explicit halt is success with
			// empty return data.
			f.success = true
			f.returnData = nil
			return
		}
		op := f.code.At(f.pc)
		fn := jumpTable[op]
		if fn == nil {
			f.success = false
			evm.logger.Warn("invalid opcode", "op", byte(op), "pc", f.pc)
			return
		}
		jumped, err := fn(f, evm)
		if err == errHalted {
			return
		}
		if err != nil {
			f.success = false
			evm.logger.Warn("frame halted", "op", op.String(), "pc", f.pc, "err", err)
			return
		}
		if !jumped {
			f.pc++
		}
	}
}

// binOp takes two operands (a is popped from the top, b is the element
// below it) and leaves the result where b was, mirroring the
// vechain/geth convention of accumulating into the retained operand so
// only one push/pop pair touches the stack per binary opcode.
func binOp(f *Frame, apply func(a, b *Word)) (bool, error) {
	a, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	b, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	apply(a, b)
	return false, nil
}

func opAdd(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.Add(a, b) })
}
func opMul(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.Mul(a, b) })
}
func opSub(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.Sub(a, b) })
}
func opDiv(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.Div(a, b) })
}
func opSdiv(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.SDiv(a, b) })
}
func opMod(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.Mod(a, b) })
}
func opSmod(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.SMod(a, b) })
}
func opExp(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(base, exponent *Word) { exponent.Exp(base, exponent) })
}
func opSignExtend(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(back, num *Word) { num.ExtendSign(num, back) })
}
func opLt(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { setBool(b, a.Lt(b)) })
}
func opGt(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { setBool(b, a.Gt(b)) })
}
func opSlt(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { setBool(b, a.Slt(b)) })
}
func opSgt(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { setBool(b, a.Sgt(b)) })
}
func opEq(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { setBool(b, a.Eq(b)) })
}
func opAnd(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.And(a, b) })
}
func opOr(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.Or(a, b) })
}
func opXor(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(a, b *Word) { b.Xor(a, b) })
}
func opByte(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(th, val *Word) { val.Byte(th) })
}

func opShl(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(shift, value *Word) {
		if shift.LtUint64(256) {
			value.Lsh(value, uint(shift.Uint64()))
		} else {
			value.Clear()
		}
	})
}
func opShr(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(shift, value *Word) {
		if shift.LtUint64(256) {
			value.Rsh(value, uint(shift.Uint64()))
		} else {
			value.Clear()
		}
	})
}
func opSar(f *Frame, evm *EVM) (bool, error) {
	return binOp(f, func(shift, value *Word) {
		if !shift.LtUint64(256) {
			if value.Sign() >= 0 {
				value.Clear()
			} else {
				value.SetAllOne()
			}
			return
		}
		value.SRsh(value, uint(shift.Uint64()))
	})
}

func opAddmod(f *Frame, evm *EVM) (bool, error) {
	a, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	b, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	n, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	if n.IsZero() {
		n.Clear()
	} else {
		n.AddMod(a, b, n)
	}
	return false, nil
}

func opMulmod(f *Frame, evm *EVM) (bool, error) {
	a, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	b, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	n, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	if n.IsZero() {
		n.Clear()
	} else {
		n.MulMod(a, b, n)
	}
	return false, nil
}

func opNot(f *Frame, evm *EVM) (bool, error) {
	x, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	x.Not(x)
	return false, nil
}

func opIszero(f *Frame, evm *EVM) (bool, error) {
	x, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	setBool(x, x.IsZero())
	return false, nil
}

func setBool(w *Word, v bool) {
	if v {
		w.SetOne()
	} else {
		w.Clear()
	}
}

func opSha3(f *Frame, evm *EVM) (bool, error) {
	offset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	size, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	data := f.memory.Get(offset.Uint64(), size.Uint64())
	size.SetBytes(crypto.Keccak256(data))
	return false, nil
}

func opPop(f *Frame, evm *EVM) (bool, error) {
	_, err := f.stack.pop()
	return false, err
}

func opMload(f *Frame, evm *EVM) (bool, error) {
	v, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	v.SetBytes(f.memory.Get(v.Uint64(), 32))
	return false, nil
}

func opMstore(f *Frame, evm *EVM) (bool, error) {
	offset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	val, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	f.memory.Set32(offset.Uint64(), val)
	return false, nil
}

func opMstore8(f *Frame, evm *EVM) (bool, error) {
	offset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	val, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	f.memory.SetByte(offset.Uint64(), byte(val.Uint64()))
	return false, nil
}

func opMsize(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(WordFromUint64(f.memory.Size()))
}

func opSload(f *Frame, evm *EVM) (bool, error) {
	k, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	v := f.sload(k)
	k.Set(v)
	return false, nil
}

func opSstore(f *Frame, evm *EVM) (bool, error) {
	key, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	val, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	f.sstore(key, val)
	return false, nil
}

func opJump(f *Frame, evm *EVM) (bool, error) {
	dest, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	pos := dest.Uint64()
	if !f.code.validJumpdest(pos) {
		return false, ErrInvalidJump
	}
	f.pc = pos
	return true, nil
}

func opJumpi(f *Frame, evm *EVM) (bool, error) {
	dest, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	cond, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	if cond.IsZero() {
		return false, nil
	}
	pos := dest.Uint64()
	if !f.code.validJumpdest(pos) {
		return false, ErrInvalidJump
	}
	f.pc = pos
	return true, nil
}

func opJumpdest(f *Frame, evm *EVM) (bool, error) { return false, nil }

func opPc(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(WordFromUint64(f.pc))
}

func opGas(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(MaxWord())
}

func opStop(f *Frame, evm *EVM) (bool, error) {
	f.success = true
	f.returnData = nil
	return false, errHalted
}

func opReturn(f *Frame, evm *EVM) (bool, error) {
	offset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	size, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	f.returnData = f.memory.Get(offset.Uint64(), size.Uint64())
	f.success = true
	return false, errHalted
}

func opRevert(f *Frame, evm *EVM) (bool, error) {
	offset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	size, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	f.returnData = f.memory.Get(offset.Uint64(), size.Uint64())
	f.success = false
	return false, errHalted
}

// opPush0 pushes the literal zero, the no-immediate PUSH introduced
// alongside the rest of this instruction set.
func opPush0(f *Frame, evm *EVM) (bool, error) {
	if err := f.stack.push(NewWord()); err != nil {
		return false, err
	}
	f.pc++
	return true, nil
}

// makePush returns the handler for PUSHn: read n big-endian immediate
// bytes starting at pc+1, right-zero-padded past the end of code.
func makePush(n int) opFn {
	return func(f *Frame, evm *EVM) (bool, error) {
		imm := f.code.GetImmediate(f.pc, n)
		if err := f.stack.push(WordFromBytes(imm)); err != nil {
			return false, err
		}
		f.pc += uint64(n) + 1
		return true, nil
	}
}

// makeDup returns the handler for DUPn.
func makeDup(n int) opFn {
	return func(f *Frame, evm *EVM) (bool, error) {
		return false, f.stack.dup(n)
	}
}

// makeSwap returns the handler for SWAPn.
func makeSwap(n int) opFn {
	return func(f *Frame, evm *EVM) (bool, error) {
		return false, f.stack.swap(n)
	}
}

// makeLog returns the handler for LOGn: pop offset, size, then n topics
// top-first, and append the resulting entry in FIFO order.
func makeLog(n int) opFn {
	return func(f *Frame, evm *EVM) (bool, error) {
		offset, err := f.stack.pop()
		if err != nil {
			return false, err
		}
		size, err := f.stack.pop()
		if err != nil {
			return false, err
		}
		topics := make([]*Word, n)
		for i := 0; i < n; i++ {
			t, err := f.stack.pop()
			if err != nil {
				return false, err
			}
			topics[i] = t
		}
		data := f.memory.Get(offset.Uint64(), size.Uint64())
		f.addLog(LogEntry{
			Address: f.tx.to(),
			Topics:  topics,
			Data:    data,
		})
		return false, nil
	}
}
