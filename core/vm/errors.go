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

import "errors"

// Sentinel faults. None of these ever cross Execute's public boundary —
// the run loop catches them at the frame and folds them into the boolean
// success flag, per the single success/failure outcome this core reports.
var (
	ErrInvalidJump          = errors.New("invalid jump destination")
	ErrInvalidOpcode        = errors.New("invalid opcode")
	ErrExecutionReverted    = errors.New("execution reverted")
	ErrMaxCallDepthExceeded = errors.New("max call depth exceeded")
)

// errHalted signals that the opcode already finished the frame (STOP,
// RETURN, REVERT) and filled in success/returnData itself; the run loop
// should stop without applying its own fault handling.
var errHalted = errors.New("halted")
