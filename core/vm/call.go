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

import "github.com/probeum/go-probe-evm/common/hexutil"

// opCall implements CALL(gas, to, value, argsOff, argsSize, retOff, retSize):
// it builds a child frame from the target account's code, recurses the
// interpreter on it, then splices the child's return data into the
// caller's memory and pushes the child's success flag.
func opCall(f *Frame, evm *EVM) (bool, error) {
	if _, err := f.stack.pop(); err != nil { // gas — unused, this core does not meter gas
		return false, err
	}
	to, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	value, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	argsOff, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	argsSize, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	retOff, err := f.stack.pop()
	if err != nil {
		return false, err
	}
	retSize, err := f.stack.pop()
	if err != nil {
		return false, err
	}

	toAddr := WordToAddress(to)
	args := f.memory.Get(argsOff.Uint64(), argsSize.Uint64())

	if f.depth+1 > evm.maxCallDepth {
		evm.logger.Warn("call depth exceeded", "depth", f.depth+1, "to", toAddr.Hex())
		return false, f.stack.push(NewWord())
	}

	childTx := &TxEnv{
		To:     toAddr.Hex(),
		From:   f.tx.To,
		Origin: f.tx.Origin,
		Value:  hexutil.Encode(value.Bytes()),
		Data:   hexEncodeNoPrefix(args),
	}
	child := newFrame(evm.state.lookup(toAddr).code(), childTx, f.depth+1)

	evm.logger.Info("call", "to", toAddr.Hex(), "argsSize", len(args), "depth", child.depth)
	run(evm, child)

	f.memory.Set(retOff.Uint64(), retSize.Uint64(), padRight(child.returnData, retSize.Uint64()))

	for _, entry := range child.logs {
		f.addLog(entry)
	}
	child.stack.returnToPool()

	if child.success {
		return false, f.stack.push(WordFromUint64(1))
	}
	return false, f.stack.push(NewWord())
}

// padRight returns b truncated or zero-extended to exactly n bytes.
func padRight(b []byte, n uint64) []byte {
	out := make([]byte, n)
	copy(out, b)
	return out
}

// hexEncodeNoPrefix renders b as a lowercase hex string with no 0x
// prefix, the encoding TxEnv.Data expects.
func hexEncodeNoPrefix(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hextable[c>>4]
		out[i*2+1] = hextable[c&0x0f]
	}
	return string(out)
}
