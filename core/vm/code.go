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
	lru "github.com/hashicorp/golang-lru"

	"github.com/probeum/go-probe-evm/crypto"
)

// jumpdestCacheSize bounds the number of distinct code bodies whose
// jumpdest analysis is kept around between Execute calls.
const jumpdestCacheSize = 256

// analysisCache memoizes jump-destination bitmaps by code hash so that a
// contract invoked repeatedly (directly, or as the target of many CALLs
// in one run) pays the O(len(code)) analysis cost once.
var analysisCache, _ = lru.New(jumpdestCacheSize)

// jumpdests is a bitmap, one bit per code byte, set when that byte is a
// valid JUMPDEST that does not fall inside a PUSH immediate.
type jumpdests []byte

func (d jumpdests) has(pos uint64) bool {
	if pos/8 >= uint64(len(d)) {
		return false
	}
	return d[pos/8]&(1<<(pos%8)) != 0
}

func (d jumpdests) set(pos uint64) {
	d[pos/8] |= 1 << (pos % 8)
}

// analyze scans code once and returns a bitmap of valid jump destinations,
// correctly skipping over bytes that lie inside a PUSH immediate.
func analyze(code []byte) jumpdests {
	dests := make(jumpdests, (len(code)+7)/8)
	for pc := uint64(0); pc < uint64(len(code)); {
		op := OpCode(code[pc])
		if op == JUMPDEST {
			dests.set(pc)
			pc++
			continue
		}
		if n := op.PushSize(); n > 0 {
			pc += uint64(n) + 1
			continue
		}
		pc++
	}
	return dests
}

// analyzeCached is analyze, memoized by the Keccak-256 hash of code.
func analyzeCached(code []byte) jumpdests {
	hash := crypto.Keccak256Hash(code)
	if cached, ok := analysisCache.Get(hash); ok {
		return cached.(jumpdests)
	}
	dests := analyze(code)
	analysisCache.Add(hash, dests)
	return dests
}

// Code wraps an immutable program body together with its jumpdest bitmap.
type Code struct {
	bytes []byte
	dests jumpdests
}

// newCode builds a Code view over b, running (or reusing a cached) jump
// destination analysis.
func newCode(b []byte) *Code {
	return &Code{bytes: b, dests: analyzeCached(b)}
}

// Len returns the number of bytes in the program.
func (c *Code) Len() int { return len(c.bytes) }

// At returns the opcode at pc, or STOP if pc is at or past the end —
// the code-exhaustion case is handled by the dispatcher, which checks
// bounds before reading.
func (c *Code) At(pc uint64) OpCode {
	if pc >= uint64(len(c.bytes)) {
		return STOP
	}
	return OpCode(c.bytes[pc])
}

// GetImmediate returns the n-byte PUSH immediate starting at pc+1,
// right-zero-padded if it runs past the end of code.
func (c *Code) GetImmediate(pc uint64, n int) []byte {
	start := pc + 1
	out := make([]byte, n)
	if start >= uint64(len(c.bytes)) {
		return out
	}
	end := start + uint64(n)
	if end > uint64(len(c.bytes)) {
		end = uint64(len(c.bytes))
	}
	copy(out, c.bytes[start:end])
	return out
}

// validJumpdest reports whprobeer pos is a legal jump target: in bounds,
// marked JUMPDEST by the analysis, and — redundantly, but cheaply — not
// inside a PUSH immediate (the analysis already excludes such bytes from
// the bitmap).
func (c *Code) validJumpdest(pos uint64) bool {
	if pos >= uint64(len(c.bytes)) {
		return false
	}
	return c.dests.has(pos)
}

// getData slices b like a Python slice that never raises: out-of-range
// reads return zero bytes. Used for CALLDATACOPY/CODECOPY/EXTCODECOPY
// style reads that must zero-fill past the end of their source.
func getData(b []byte, offset, size uint64) []byte {
	out := make([]byte, size)
	if offset > uint64(len(b)) {
		return out
	}
	end := offset + size
	if end > uint64(len(b)) {
		end = uint64(len(b))
	}
	copy(out, b[offset:end])
	return out
}
