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
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustDecode(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}

func stackStrings(words []*Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.String()
	}
	return out
}

// Seed scenarios straight from the bytecode corpus this core targets.
func TestExecuteSeedScenarios(t *testing.T) {
	tx := &TxEnv{}
	block := &BlockEnv{}

	t.Run("ADD sums two small operands", func(t *testing.T) {
		code := mustDecode(t, "6001600101") // PUSH1 1, PUSH1 1, ADD
		result := Execute(code, tx, block, nil)
		assert.True(t, result.Success)
		assert.Equal(t, []string{"2"}, stackStrings(result.Stack))
	})

	t.Run("NOT then SUB leaves MaxWord minus 0xff", func(t *testing.T) {
		// PUSH1 0xff, PUSH1 0, NOT, SUB, PUSH1 0.
		code := mustDecode(t, "60ff600019036000")
		result := Execute(code, tx, block, nil)
		assert.True(t, result.Success)
		want := new(Word).Sub(MaxWord(), WordFromUint64(0xff))
		assert.Equal(t, []string{"0", want.String()}, stackStrings(result.Stack))
	})

	t.Run("SSTORE then SLOAD round-trips", func(t *testing.T) {
		code := mustDecode(t, "6003600055600054") // PUSH1 3, PUSH1 0, SSTORE, PUSH1 0, SLOAD
		result := Execute(code, tx, block, nil)
		assert.True(t, result.Success)
		assert.Equal(t, []string{"3"}, stackStrings(result.Stack))
	})

	t.Run("JUMP skips the instruction it jumps over", func(t *testing.T) {
		// PUSH1 5, JUMP, (PUSH1 1 skipped), JUMPDEST, PUSH1 2.
		code := mustDecode(t, "60055660015b6002")
		result := Execute(code, tx, block, nil)
		assert.True(t, result.Success)
		assert.Equal(t, []string{"2"}, stackStrings(result.Stack))
	})

	t.Run("RETURN reports success with the written byte", func(t *testing.T) {
		// PUSH1 0xff, PUSH1 0, MSTORE8, PUSH1 1, PUSH1 0, RETURN.
		code := mustDecode(t, "60ff60005360016000f3")
		result := Execute(code, tx, block, nil)
		assert.True(t, result.Success)
		assert.Equal(t, "ff", hex.EncodeToString(result.Return))
	})

	t.Run("REVERT reports failure with the written byte", func(t *testing.T) {
		// PUSH1 0xff, PUSH1 0, MSTORE8, PUSH1 1, PUSH1 0, REVERT.
		code := mustDecode(t, "60ff60005360016000fd")
		result := Execute(code, tx, block, nil)
		assert.False(t, result.Success)
		assert.Equal(t, "ff", hex.EncodeToString(result.Return))
	})
}

func TestExecuteCodeExhaustionIsSuccess(t *testing.T) {
	code := mustDecode(t, "6001") // PUSH1 1 with no trailing STOP
	result := Execute(code, &TxEnv{}, &BlockEnv{}, nil)
	assert.True(t, result.Success)
	assert.Nil(t, result.Return)
	assert.Equal(t, []string{"1"}, stackStrings(result.Stack))
}

func TestExecuteInvalidJumpFails(t *testing.T) {
	// PUSH1 4, JUMP: pc 4 falls inside the next PUSH1's immediate, not
	// on the JUMPDEST at pc 5.
	code := mustDecode(t, "60045660015b6002")
	result := Execute(code, &TxEnv{}, &BlockEnv{}, nil)
	assert.False(t, result.Success)
}

func TestExecuteStackUnderflowFails(t *testing.T) {
	code := mustDecode(t, "01") // bare ADD with an empty stack
	result := Execute(code, &TxEnv{}, &BlockEnv{}, nil)
	assert.False(t, result.Success)
}

func TestExecuteInvalidOpcodeFails(t *testing.T) {
	code := mustDecode(t, "0c") // unassigned in the 0x0 range
	result := Execute(code, &TxEnv{}, &BlockEnv{}, nil)
	assert.False(t, result.Success)
}

func TestExecuteLogAccumulatesFIFO(t *testing.T) {
	// PUSH1 1, PUSH1 0, MSTORE8, PUSH1 1, PUSH1 0, LOG0,
	// PUSH1 2, PUSH1 0, MSTORE8, PUSH1 1, PUSH1 0, LOG0.
	code := mustDecode(t, "600160005360016000a0600260005360016000a0")
	result := Execute(code, &TxEnv{To: "0x0000000000000000000000000000000000002a"}, &BlockEnv{}, nil)
	assert.True(t, result.Success)
	if assert.Len(t, result.Logs, 2) {
		assert.Equal(t, "01", hex.EncodeToString(result.Logs[0].Data))
		assert.Equal(t, "02", hex.EncodeToString(result.Logs[1].Data))
	}
}

func TestExecuteDupDuplicatesNthFromTop(t *testing.T) {
	// PUSH1 1, PUSH1 2, DUP2, STOP.
	code := mustDecode(t, "600160028100")
	result := Execute(code, &TxEnv{}, &BlockEnv{}, nil)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"1", "2", "1"}, stackStrings(result.Stack))
}

func TestExecuteSwapExchangesTopAndSecond(t *testing.T) {
	// PUSH1 1, PUSH1 2, SWAP1, STOP: SWAP1 must exchange the top (2)
	// with the 2nd-from-top (1), leaving the stack [1, 2] top-first.
	code := mustDecode(t, "600160029000")
	result := Execute(code, &TxEnv{}, &BlockEnv{}, nil)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"1", "2"}, stackStrings(result.Stack))
}

func TestExecuteCallSplicesReturnDataIntoCallerMemory(t *testing.T) {
	// Callee: PUSH1 0xaa, PUSH1 0, MSTORE8, PUSH1 1, PUSH1 0, RETURN.
	calleeCode := "60aa60005360016000f3"
	calleeAddr := "0x0000000000000000000000000000000000001234"

	state := State{
		calleeAddr: {Code: &AccountCode{Bin: calleeCode}},
	}

	// Caller pushes CALL's seven arguments bottom-to-top (gas on top,
	// popped first): retSize=1, retOff=0, argsSize=0, argsOff=0,
	// value=0, to=<callee>, gas=0. Then MLOAD the spliced byte and STOP.
	code := mustDecode(t, "6001"+ // PUSH1 1  (retSize)
		"6000"+ // PUSH1 0  (retOff)
		"6000"+ // PUSH1 0  (argsSize)
		"6000"+ // PUSH1 0  (argsOff)
		"6000"+ // PUSH1 0  (value)
		"73"+"0000000000000000000000000000000000001234"+ // PUSH20 <to>
		"6000"+ // PUSH1 0  (gas)
		"f1"+ // CALL
		"6000"+ // PUSH1 0
		"51"+ // MLOAD
		"00") // STOP

	result := Execute(code, &TxEnv{}, &BlockEnv{}, state)
	assert.True(t, result.Success)
	if assert.Len(t, result.Stack, 2) {
		spliced := make([]byte, 32)
		spliced[0] = 0xaa
		assert.Equal(t, WordFromBytes(spliced).String(), result.Stack[0].String())
		assert.Equal(t, "1", result.Stack[1].String())
	}
}
