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

// Package hexutil implements hex encoding with 0x prefixes for the
// environment record fields (tx/block/state) this interpreter consumes.
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	ErrEmptyString  = &decError{"empty hex string"}
	ErrMissingPrefix = &decError{"hex string without 0x prefix"}
	ErrOddLength    = &decError{"hex string of odd length"}
	ErrSyntax       = &decError{"invalid hex string"}

	errUint64Range = errors.New("hex number >= 2^64")
)

type decError struct{ msg string }

func (err decError) Error() string { return err.msg }

// Decode decodes a hex string with 0x prefix.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyString
	}
	if !has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	b, err := hex.DecodeString(input[2:])
	if err != nil {
		err = mapHexError(err)
	}
	return b, err
}

// MustDecode decodes a hex string with 0x prefix, panicking on error.
func MustDecode(input string) []byte {
	dec, err := Decode(input)
	if err != nil {
		panic(err)
	}
	return dec
}

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// DecodeUint64 decodes a hex string (with 0x prefix) as a uint64.
func DecodeUint64(input string) (uint64, error) {
	raw, err := checkNumber(input)
	if err != nil {
		return 0, err
	}
	dec, err := parseUint64(raw)
	if err != nil {
		return 0, mapHexError(err)
	}
	return dec, nil
}

// MustDecodeUint64 decodes a hex string as a uint64, panicking on error.
func MustDecodeUint64(input string) uint64 {
	dec, err := DecodeUint64(input)
	if err != nil {
		panic(err)
	}
	return dec
}

// EncodeUint64 encodes i as a hex string with 0x prefix.
func EncodeUint64(i uint64) string {
	enc := make([]byte, 2, 10)
	copy(enc, "0x")
	return string(appendUint64(enc, i))
}

// UnmarshalFixedText decodes the input as a hex string into out, which must
// have fixed length. The input must be 0x-prefixed.
func UnmarshalFixedText(typname string, input, out []byte) error {
	raw, err := checkText(input, true)
	if err != nil {
		return err
	}
	if len(raw)/2 != len(out) {
		return fmt.Errorf("hex string has length %d, want %d for %s", len(raw), len(out)*2, typname)
	}
	_, err = hex.Decode(out, raw)
	return mapHexError(err)
}

// UnmarshalFixedUnprefixedText decodes the input as a hex string into out,
// accepting the 0x prefix optionally.
func UnmarshalFixedUnprefixedText(typname string, input, out []byte) error {
	raw := input
	if has0xPrefix(string(input)) {
		raw = input[2:]
	}
	if len(raw)/2 != len(out) {
		return fmt.Errorf("hex string has length %d, want %d for %s", len(raw), len(out)*2, typname)
	}
	_, err := hex.Decode(out, raw)
	return mapHexError(err)
}

// UnmarshalFixedJSON is a helper used by types that implement UnmarshalJSON
// for fixed-length hex strings wrapped in a JSON string literal.
func UnmarshalFixedJSON(typ interface{}, input, out []byte) error {
	if !isString(input) {
		return fmt.Errorf("non-string %v", typ)
	}
	return UnmarshalFixedText(fmt.Sprintf("%v", typ), input[1:len(input)-1], out)
}

func isString(input []byte) bool {
	return len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"'
}

func checkText(input []byte, wantPrefix bool) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil // empty strings are allowed
	}
	if has0xPrefix(string(input)) {
		input = input[2:]
	} else if wantPrefix {
		return nil, ErrMissingPrefix
	}
	if len(input)%2 != 0 {
		return nil, ErrOddLength
	}
	return input, nil
}

func checkNumber(input string) (raw string, err error) {
	if len(input) == 0 {
		return "", ErrEmptyString
	}
	if !has0xPrefix(input) {
		return "", ErrMissingPrefix
	}
	input = input[2:]
	if len(input) == 0 {
		return "", ErrEmptyString
	}
	return input, nil
}

func parseUint64(s string) (uint64, error) {
	if len(s) > 16 {
		return 0, errUint64Range
	}
	var result uint64
	for _, b := range []byte(s) {
		nib, ok := decodeNibble(b)
		if !ok {
			return 0, ErrSyntax
		}
		result = result<<4 | nib
	}
	return result, nil
}

func decodeNibble(b byte) (uint64, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint64(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint64(b-'A') + 10, true
	default:
		return 0, false
	}
}

func appendUint64(enc []byte, i uint64) []byte {
	if i == 0 {
		return append(enc, '0')
	}
	start := len(enc)
	for ; i > 0; i /= 16 {
		enc = append(enc, "0123456789abcdef"[i%16])
	}
	for i, j := start, len(enc)-1; i < j; i, j = i+1, j-1 {
		enc[i], enc[j] = enc[j], enc[i]
	}
	return enc
}

func mapHexError(err error) error {
	switch {
	case err == nil:
		return nil
	case err == hex.ErrLength:
		return ErrOddLength
	default:
		if _, ok := err.(hex.InvalidByteError); ok {
			return ErrSyntax
		}
		return err
	}
}

func has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

// Bytes marshals/unmarshals as a JSON string with 0x prefix.
type Bytes []byte

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	result := make([]byte, len(b)*2+2)
	copy(result, `0x`)
	hex.Encode(result[2:], b)
	return result, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return errors.New("hexutil.Bytes: not a JSON string")
	}
	raw, err := Decode(string(input[1 : len(input)-1]))
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// String returns the hex encoding of b.
func (b Bytes) String() string {
	return Encode(b)
}
