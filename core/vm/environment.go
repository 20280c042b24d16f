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
	"strings"

	"github.com/probeum/go-probe-evm/common"
	"github.com/probeum/go-probe-evm/common/hexutil"
)

// TxEnv is the transaction-like portion of the execution context. Fields
// mirror the wire encoding: addresses and values are 0x-prefixed hex,
// Data is hex without a 0x prefix.
type TxEnv struct {
	To       string `json:"to"`
	From     string `json:"from"`
	Origin   string `json:"origin"`
	Value    string `json:"value"`
	GasPrice string `json:"gasprice"`
	Data     string `json:"data"`
}

func (t *TxEnv) to() common.Address     { return decodeAddress(t.To) }
func (t *TxEnv) from() common.Address   { return decodeAddress(t.From) }
func (t *TxEnv) origin() common.Address { return decodeAddress(t.Origin) }
func (t *TxEnv) value() *Word           { return decodeWord(t.Value) }
func (t *TxEnv) gasPrice() *Word        { return decodeWord(t.GasPrice) }

// data returns the call data as raw bytes, decoded from the unprefixed
// hex string.
func (t *TxEnv) data() []byte {
	b, err := hex.DecodeString(t.Data)
	if err != nil {
		return nil
	}
	return b
}

// BlockEnv is the block-like portion of the execution context. All
// scalar fields are 0x-prefixed hex.
type BlockEnv struct {
	Coinbase   string `json:"coinbase"`
	Timestamp  string `json:"timestamp"`
	Number     string `json:"number"`
	Difficulty string `json:"difficulty"`
	GasLimit   string `json:"gaslimit"`
	ChainID    string `json:"chainid"`
	BaseFee    string `json:"basefee"`
}

func (b *BlockEnv) coinbase() common.Address { return decodeAddress(b.Coinbase) }
func (b *BlockEnv) timestamp() *Word         { return decodeWord(b.Timestamp) }
func (b *BlockEnv) number() *Word            { return decodeWord(b.Number) }
func (b *BlockEnv) difficulty() *Word        { return decodeWord(b.Difficulty) }
func (b *BlockEnv) gasLimit() *Word          { return decodeWord(b.GasLimit) }
func (b *BlockEnv) chainID() *Word           { return decodeWord(b.ChainID) }
func (b *BlockEnv) baseFee() *Word           { return decodeWord(b.BaseFee) }

// AccountCode is the code body carried by an Account, hex without a 0x
// prefix — nested to mirror the `{bin: hex}` wire shape.
type AccountCode struct {
	Bin string `json:"bin"`
}

// Account is one entry of the world-state snapshot: a sparse record
// where absent fields default to zero / empty, per the read-only state
// model this core operates over.
type Account struct {
	Balance string       `json:"balance,omitempty"`
	Code    *AccountCode `json:"code,omitempty"`
}

func (a *Account) balance() *Word {
	if a == nil || a.Balance == "" {
		return NewWord()
	}
	return decodeWord(a.Balance)
}

func (a *Account) code() []byte {
	if a == nil || a.Code == nil {
		return nil
	}
	b, err := hex.DecodeString(a.Code.Bin)
	if err != nil {
		return nil
	}
	return b
}

// State is the read-only world-state map this core is invoked with, keyed
// by 0x-prefixed, 42-char, lowercase addresses.
type State map[string]*Account

// lookup returns the account at addr, or nil if the address is absent —
// callers apply the per-opcode absent-account defaults (zero balance,
// empty code, zero or emptyCodeHash for EXTCODEHASH).
func (s State) lookup(addr common.Address) *Account {
	if s == nil {
		return nil
	}
	return s[normalizeAddress(addr)]
}

// normalizeAddress renders addr the way state keys are encoded: 0x-prefixed,
// lowercase, 42 characters.
func normalizeAddress(addr common.Address) string {
	return strings.ToLower(hexutil.Encode(addr.Bytes()))
}

func decodeAddress(s string) common.Address {
	if s == "" {
		return common.Address{}
	}
	return common.HexToAddress(s)
}

func decodeWord(s string) *Word {
	if s == "" {
		return NewWord()
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return NewWord()
	}
	return WordFromBytes(b)
}
