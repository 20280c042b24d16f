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

// Memory is a byte-addressable, implicitly zero-extending buffer. Any
// touch of [offset, offset+size) grows the backing slice with zeros
// until it reaches that length; the buffer never shrinks.
type Memory struct {
	store []byte
}

func newMemory() *Memory {
	return &Memory{}
}

// Len returns the current length of the backing store.
func (m *Memory) Len() int { return len(m.store) }

// Size returns Len rounded up to the next multiple of 32, the value MSIZE
// reports.
func (m *Memory) Size() uint64 {
	return uint64((len(m.store) + 31) / 32 * 32)
}

// resize extends the backing store with zero bytes until it is at least
// size bytes long.
func (m *Memory) resize(size uint64) {
	if uint64(len(m.store)) < size {
		grown := make([]byte, size)
		copy(grown, m.store)
		m.store = grown
	}
}

// Set writes value into the memory at offset, zero-extending first.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	m.resize(offset + size)
	copy(m.store[offset:offset+size], value)
}

// Set32 writes a 32-byte big-endian word at offset.
func (m *Memory) Set32(offset uint64, w *Word) {
	m.resize(offset + 32)
	b := w.Bytes32()
	copy(m.store[offset:offset+32], b[:])
}

// SetByte writes a single byte at offset.
func (m *Memory) SetByte(offset uint64, b byte) {
	m.resize(offset + 1)
	m.store[offset] = b
}

// Get returns a freshly allocated copy of size bytes starting at offset,
// zero-extending the backing store first.
func (m *Memory) Get(offset, size uint64) []byte {
	if size == 0 {
		return []byte{}
	}
	m.resize(offset + size)
	cpy := make([]byte, size)
	copy(cpy, m.store[offset:offset+size])
	return cpy
}

// GetWord returns the 32-byte big-endian word at offset as a Word.
func (m *Memory) GetWord(offset uint64) *Word {
	return WordFromBytes(m.Get(offset, 32))
}
