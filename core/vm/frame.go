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

import "github.com/probeum/go-probe-evm/common"

// LogEntry is one emitted LOGn record: an address, 0-4 topics in pop
// order, and a data payload.
type LogEntry struct {
	Address common.Address
	Topics  []*Word
	Data    []byte
}

// Frame is the complete per-invocation state of one interpreter
// activation: instruction pointer, stack, memory, storage, the log
// buffer, and the outcome fields filled in at halt.
type Frame struct {
	code   *Code
	tx     *TxEnv
	pc     uint64
	stack  *Stack
	memory *Memory

	// storage is keyed by the 32-byte big-endian encoding of the Word
	// key, since Word (uint256.Int) is not itself comparable/hashable.
	storage map[[32]byte]*Word

	logs []LogEntry

	returnData []byte
	success    bool

	depth int
}

// newFrame allocates a fresh frame executing code against tx, starting
// at depth.
func newFrame(code []byte, tx *TxEnv, depth int) *Frame {
	return &Frame{
		code:    newCode(code),
		tx:      tx,
		stack:   newStack(),
		memory:  newMemory(),
		storage: make(map[[32]byte]*Word),
		depth:   depth,
	}
}

func (f *Frame) sload(key *Word) *Word {
	if v, ok := f.storage[key.Bytes32()]; ok {
		return new(Word).Set(v)
	}
	return NewWord()
}

func (f *Frame) sstore(key, val *Word) {
	f.storage[key.Bytes32()] = new(Word).Set(val)
}

func (f *Frame) addLog(entry LogEntry) {
	f.logs = append(f.logs, entry)
}
