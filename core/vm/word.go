// Copyright 2014 The go-probeum Authors
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
	"math/big"

	"github.com/holiman/uint256"
	"github.com/probeum/go-probe-evm/common"
)

// Word is the universal 256-bit value type on the stack, in memory words
// and in storage. Signed interpretation is two's complement with the
// canonical threshold at 2^255 — uint256.Int's own Slt/Sgt/SDiv/SMod/
// ExtendSign already use that threshold, so no separate to_signed helper
// is needed here.
type Word = uint256.Int

// NewWord returns a zero-valued Word.
func NewWord() *Word { return new(uint256.Int) }

// WordFromUint64 returns a Word holding v.
func WordFromUint64(v uint64) *Word { return uint256.NewInt(v) }

// WordFromBig converts a big.Int to a Word, wrapping modulo 2^256.
func WordFromBig(v *big.Int) *Word {
	w, _ := uint256.FromBig(v)
	return w
}

// WordFromBytes interprets b as a big-endian unsigned integer.
func WordFromBytes(b []byte) *Word {
	return new(uint256.Int).SetBytes(b)
}

// WordFromAddress widens a 20-byte address into a 256-bit Word.
func WordFromAddress(a common.Address) *Word {
	return new(uint256.Int).SetBytes(a.Bytes())
}

// WordToAddress narrows a Word to its low 160 bits, the address-normalization
// rule used by BALANCE, EXTCODESIZE, EXTCODECOPY, EXTCODEHASH and CALL.
func WordToAddress(w *Word) common.Address {
	return common.Address(w.Bytes20())
}

// MaxWord returns 2^256-1, the value GAS reports: this core does not meter
// gas, so GAS always returns the saturated maximum.
func MaxWord() *Word {
	return new(uint256.Int).SetAllOne()
}
