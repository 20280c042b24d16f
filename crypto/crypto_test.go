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

package crypto

import "testing"

func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	exp := "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"
	if got := Keccak256Hash(msg).Hex(); got != "0x"+exp {
		t.Errorf("Keccak256Hash(%q) = %s, want 0x%s", msg, got, exp)
	}
}

func TestKeccak256MatchesKeccak256Hash(t *testing.T) {
	msg := []byte("the quick brown fox")
	if got, want := Keccak256(msg), Keccak256Hash(msg).Bytes(); string(got) != string(want) {
		t.Errorf("Keccak256 and Keccak256Hash disagree: %x != %x", got, want)
	}
}

func TestKeccak256VariadicIsConcatenation(t *testing.T) {
	a, b := []byte("foo"), []byte("bar")
	if got, want := Keccak256(a, b), Keccak256(append(append([]byte{}, a...), b...)); string(got) != string(want) {
		t.Errorf("Keccak256(a, b) != Keccak256(a||b): %x != %x", got, want)
	}
}

func TestEmptyCodeHashIsKeccakOfEmpty(t *testing.T) {
	if EmptyCodeHash() != Keccak256Hash(nil) {
		t.Errorf("EmptyCodeHash() != Keccak256Hash(nil)")
	}
}
