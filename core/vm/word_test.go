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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/probeum/go-probe-evm/common"
)

func TestWordAddSubInverse(t *testing.T) {
	a := WordFromUint64(12345)
	b := WordFromUint64(987)

	sum := new(Word).Add(a, b)
	back := new(Word).Sub(sum, b)
	assert.Equal(t, a.String(), back.String())
}

func TestWordSubWrapsModularly(t *testing.T) {
	zero := NewWord()
	one := WordFromUint64(1)
	diff := new(Word).Sub(zero, one)
	assert.Equal(t, MaxWord().String(), diff.String())
}

func TestWordNotIsInvolution(t *testing.T) {
	w := WordFromUint64(0xdeadbeef)
	once := new(Word).Not(w)
	twice := new(Word).Not(once)
	assert.Equal(t, w.String(), twice.String())
}

func TestWordIsZeroIdempotent(t *testing.T) {
	assert.True(t, NewWord().IsZero())
	assert.False(t, WordFromUint64(1).IsZero())

	// ISZERO(ISZERO(a)) is 1 for any nonzero a and 0 for a = 0.
	for _, a := range []*Word{NewWord(), WordFromUint64(1), MaxWord()} {
		once, twice := NewWord(), NewWord()
		setBool(once, a.IsZero())
		setBool(twice, once.IsZero())
		assert.Equal(t, !a.IsZero(), twice.Eq(WordFromUint64(1)))
	}
}

func TestWordSignExtendFullWidthIsIdentity(t *testing.T) {
	// SIGNEXTEND with byte index 31 treats the value as already full
	// width: extending it must leave it unchanged.
	w := WordFromBig(new(big.Int).Lsh(big.NewInt(1), 255))
	extended := new(Word).ExtendSign(w, WordFromUint64(31))
	assert.Equal(t, w.String(), extended.String())
}

func TestWordSignExtendNegativeByte(t *testing.T) {
	// SIGNEXTEND(0, 0xff) sign-extends a single negative byte to -1.
	w := WordFromUint64(0xff)
	extended := new(Word).ExtendSign(w, NewWord())
	assert.Equal(t, MaxWord().String(), extended.String())
}

func TestWordFromAddressRoundTrip(t *testing.T) {
	addr := common.HexToAddress("0x000000000000000000000000000000000000ff")
	w := WordFromAddress(addr)
	back := WordToAddress(w)
	assert.Equal(t, addr, back)
}
