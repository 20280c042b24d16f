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

package common

import (
	"bytes"
	"testing"
)

func TestBytesConversion(t *testing.T) {
	b := []byte{5}
	hash := BytesToHash(b)

	var exp Hash
	exp[31] = 5

	if hash != exp {
		t.Errorf("expected %x got %x", exp, hash)
	}
}

func TestHashHex(t *testing.T) {
	h := BytesToHash([]byte{0x2a})
	if h.Hex() != "0x000000000000000000000000000000000000000000000000000000000000002a" {
		t.Errorf("unexpected hex: %s", h.Hex())
	}
}

func TestAddressChecksum(t *testing.T) {
	addr := HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	// checksummed form must round-trip to the same 20 bytes.
	got := HexToAddress(addr.Hex())
	if !bytes.Equal(got.Bytes(), addr.Bytes()) {
		t.Errorf("checksum round trip mismatch: %x != %x", got, addr)
	}
}

func TestAddressFormat(t *testing.T) {
	addr := HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	if got := addr.String(); got != addr.Hex() {
		t.Errorf("String() = %s, want %s", got, addr.Hex())
	}
}
