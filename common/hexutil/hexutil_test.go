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

package hexutil

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []byte{0xde, 0xad, 0xbe, 0xef}
	enc := Encode(in)
	if enc != "0xdeadbeef" {
		t.Fatalf("Encode(%x) = %s, want 0xdeadbeef", in, enc)
	}
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode(%s) error: %v", enc, err)
	}
	if !bytes.Equal(dec, in) {
		t.Fatalf("Decode(%s) = %x, want %x", enc, dec, in)
	}
}

func TestDecodeRejectsMissingPrefix(t *testing.T) {
	if _, err := Decode("deadbeef"); err != ErrMissingPrefix {
		t.Fatalf("Decode(no prefix) error = %v, want %v", err, ErrMissingPrefix)
	}
}

func TestDecodeRejectsEmptyString(t *testing.T) {
	if _, err := Decode(""); err != ErrEmptyString {
		t.Fatalf("Decode(\"\") error = %v, want %v", err, ErrEmptyString)
	}
}

func TestDecodeRejectsOddLength(t *testing.T) {
	if _, err := Decode("0xabc"); err != ErrOddLength {
		t.Fatalf("Decode(0xabc) error = %v, want %v", err, ErrOddLength)
	}
}

func TestDecodeUint64(t *testing.T) {
	got, err := DecodeUint64("0x2a")
	if err != nil {
		t.Fatalf("DecodeUint64 error: %v", err)
	}
	if got != 42 {
		t.Fatalf("DecodeUint64(0x2a) = %d, want 42", got)
	}
}

func TestEncodeUint64RoundTrip(t *testing.T) {
	enc := EncodeUint64(42)
	got, err := DecodeUint64(enc)
	if err != nil {
		t.Fatalf("DecodeUint64(%s) error: %v", enc, err)
	}
	if got != 42 {
		t.Fatalf("round trip via %s = %d, want 42", enc, got)
	}
}

func TestEncodeUint64Zero(t *testing.T) {
	if got := EncodeUint64(0); got != "0x0" {
		t.Fatalf("EncodeUint64(0) = %s, want 0x0", got)
	}
}

func TestBytesMarshalUnmarshalJSON(t *testing.T) {
	b := Bytes{0x01, 0x02, 0x03}
	text, err := b.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if string(text) != "0x010203" {
		t.Fatalf("MarshalText = %s, want 0x010203", text)
	}

	var out Bytes
	if err := out.UnmarshalJSON([]byte(`"0x010203"`)); err != nil {
		t.Fatalf("UnmarshalJSON error: %v", err)
	}
	if !bytes.Equal(out, b) {
		t.Fatalf("UnmarshalJSON = %x, want %x", out, b)
	}
}
