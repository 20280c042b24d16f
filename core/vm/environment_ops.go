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
	"github.com/probeum/go-probe-evm/common"
	"github.com/probeum/go-probe-evm/crypto"
)

func opAddress(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(WordFromAddress(f.tx.to()))
}

func opBalance(f *Frame, evm *EVM) (bool, error) {
	slot, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	acct := evm.state.lookup(WordToAddress(slot))
	slot.Set(acct.balance())
	return false, nil
}

func opOrigin(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(WordFromAddress(f.tx.origin()))
}

func opCaller(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(WordFromAddress(f.tx.from()))
}

func opCallValue(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(f.tx.value())
}

func opCallDataLoad(f *Frame, evm *EVM) (bool, error) {
	x, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	offset, overflow := x.Uint64WithOverflow()
	if overflow {
		x.Clear()
		return false, nil
	}
	x.SetBytes(getData(f.tx.data(), offset, 32))
	return false, nil
}

func opCallDataSize(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(WordFromUint64(uint64(len(f.tx.data()))))
}

func opCallDataCopy(f *Frame, evm *EVM) (bool, error) {
	memOffset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	dataOffset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	size, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	off, overflow := dataOffset.Uint64WithOverflow()
	if overflow {
		off = uint64(len(f.tx.data()))
	}
	f.memory.Set(memOffset.Uint64(), size.Uint64(), getData(f.tx.data(), off, size.Uint64()))
	return false, nil
}

func opCodeSize(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(WordFromUint64(uint64(f.code.Len())))
}

func opCodeCopy(f *Frame, evm *EVM) (bool, error) {
	memOffset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	codeOffset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	size, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	off, overflow := codeOffset.Uint64WithOverflow()
	if overflow {
		off = uint64(f.code.Len())
	}
	f.memory.Set(memOffset.Uint64(), size.Uint64(), getData(f.code.bytes, off, size.Uint64()))
	return false, nil
}

func opExtCodeSize(f *Frame, evm *EVM) (bool, error) {
	slot, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	acct := evm.state.lookup(WordToAddress(slot))
	slot.SetUint64(uint64(len(acct.code())))
	return false, nil
}

func opExtCodeCopy(f *Frame, evm *EVM) (bool, error) {
	addr, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	memOffset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	codeOffset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	size, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	off, overflow := codeOffset.Uint64WithOverflow()
	acct := evm.state.lookup(WordToAddress(addr))
	code := acct.code()
	if overflow {
		off = uint64(len(code))
	}
	f.memory.Set(memOffset.Uint64(), size.Uint64(), getData(code, off, size.Uint64()))
	return false, nil
}

func opReturnDataSize(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(WordFromUint64(uint64(len(f.returnData))))
}

func opReturnDataCopy(f *Frame, evm *EVM) (bool, error) {
	memOffset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	dataOffset, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	size, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	off, overflow := dataOffset.Uint64WithOverflow()
	if overflow {
		return false, common.ErrIndexOutOfBounds
	}
	end := off + size.Uint64()
	if end < off || end > uint64(len(f.returnData)) {
		return false, common.ErrIndexOutOfBounds
	}
	f.memory.Set(memOffset.Uint64(), size.Uint64(), f.returnData[off:end])
	return false, nil
}

func opExtCodeHash(f *Frame, evm *EVM) (bool, error) {
	slot, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	addr := WordToAddress(slot)
	acct := evm.state.lookup(addr)
	switch {
	case acct == nil:
		slot.Clear()
	case len(acct.code()) == 0:
		slot.SetBytes(crypto.EmptyCodeHash().Bytes())
	default:
		slot.SetBytes(crypto.Keccak256(acct.code()))
	}
	return false, nil
}

func opGasprice(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(f.tx.gasPrice())
}

func opBlockhash(f *Frame, evm *EVM) (bool, error) {
	x, err := f.stack.peek(0)
	if err != nil {
		return false, err
	}
	// No chain history is available to this core.
	x.Clear()
	return false, nil
}

func opCoinbase(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(WordFromAddress(evm.block.coinbase()))
}

func opTimestamp(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(evm.block.timestamp())
}

func opNumber(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(evm.block.number())
}

func opDifficulty(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(evm.block.difficulty())
}

func opGasLimit(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(evm.block.gasLimit())
}

func opChainID(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(evm.block.chainID())
}

func opBaseFee(f *Frame, evm *EVM) (bool, error) {
	return false, f.stack.push(evm.block.baseFee())
}

func opSelfBalance(f *Frame, evm *EVM) (bool, error) {
	acct := evm.state.lookup(f.tx.to())
	return false, f.stack.push(acct.balance())
}
