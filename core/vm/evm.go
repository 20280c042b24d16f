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
	"github.com/google/uuid"

	"github.com/probeum/go-probe-evm/evmlog"
)

// defaultMaxCallDepth bounds CALL recursion. The corpus this core targets
// has no call cycles, but an implementation SHOULD still cap depth rather
// than trust that invariant.
const defaultMaxCallDepth = 1024

// EVM is the environment shared by a top-level invocation and every
// nested CALL sub-frame it spawns: the read-only block and state views,
// the call-depth ceiling, and a logger tagged with a per-execution trace
// id so log lines from nested frames can be correlated.
type EVM struct {
	block        *BlockEnv
	state        State
	maxCallDepth int
	logger       evmlog.Logger
}

// NewEVM builds the shared environment for one top-level Execute call.
func NewEVM(block *BlockEnv, state State) *EVM {
	traceID := uuid.New()
	return &EVM{
		block:        block,
		state:        state,
		maxCallDepth: defaultMaxCallDepth,
		logger:       evmlog.New("trace", traceID.String()),
	}
}

// Result is the outcome of one Execute invocation: the reported stack is
// top-first, per the external interface.
type Result struct {
	Success bool
	Stack   []*Word
	Logs    []LogEntry
	Return  []byte
}

// Execute runs code against the given transaction, block and state views
// and reports the outcome. It never panics and never returns an error —
// every fault the interpreter can hit (stack over/underflow, invalid
// jump, invalid opcode, REVERT) is folded into Result.Success.
func Execute(code []byte, tx *TxEnv, block *BlockEnv, state State) Result {
	evm := NewEVM(block, state)
	evm.logger.Info("execute", "codeLen", len(code), "to", tx.To)

	f := newFrame(code, tx, 0)
	run(evm, f)
	result := Result{
		Success: f.success,
		Stack:   f.stack.items(),
		Logs:    f.logs,
		Return:  f.returnData,
	}
	f.stack.returnToPool()

	if !result.Success {
		evm.logger.Warn("execute halted with failure", "pc", f.pc)
	}
	return result
}
