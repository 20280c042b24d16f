// Copyright 2015 The go-probeum Authors
// This file is part of go-probeum.
//
// go-probeum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-probeum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-probeum. If not, see <http://www.gnu.org/licenses/>.

// Command evmrun drives a single bytecode execution against a JSON
// environment snapshot and prints the outcome. It is a hand-driving tool,
// not a corpus-comparison harness: point it at one fixture at a time.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/go-probe-evm/common/hexutil"
	"github.com/probeum/go-probe-evm/core/vm"
)

var (
	codeFlag = cli.StringFlag{
		Name:  "code",
		Usage: "contract bytecode, as a hex string (0x prefix optional)",
	}
	envFlag = cli.StringFlag{
		Name:  "env",
		Usage: "path to a JSON file holding {tx, block, state}",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "evmrun"
	app.Usage = "execute one bytecode body against an environment snapshot"
	app.Flags = []cli.Flag{codeFlag, envFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// snapshot is the on-disk shape of the --env file: the transaction and
// block records plus the world-state view Execute is invoked against.
type snapshot struct {
	Tx    vm.TxEnv    `json:"tx"`
	Block vm.BlockEnv `json:"block"`
	State vm.State    `json:"state"`
}

// output mirrors vm.Result in a JSON-friendly shape: Words render as
// 0x-prefixed hex and logs nest their topics the same way.
type output struct {
	Success bool     `json:"success"`
	Stack   []string `json:"stack"`
	Return  string   `json:"return"`
	Logs    []logOut `json:"logs"`
}

type logOut struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}

func run(ctx *cli.Context) error {
	codeHex := ctx.String(codeFlag.Name)
	if codeHex == "" {
		return fmt.Errorf("missing --code")
	}
	code, err := hex.DecodeString(trim0x(codeHex))
	if err != nil {
		return fmt.Errorf("invalid --code: %v", err)
	}

	envPath := ctx.String(envFlag.Name)
	var snap snapshot
	if envPath != "" {
		f, err := os.Open(envPath)
		if err != nil {
			return fmt.Errorf("opening --env: %v", err)
		}
		defer f.Close()
		if err := json.NewDecoder(f).Decode(&snap); err != nil {
			return fmt.Errorf("parsing --env: %v", err)
		}
	}

	result := vm.Execute(code, &snap.Tx, &snap.Block, snap.State)
	return json.NewEncoder(os.Stdout).Encode(toOutput(result))
}

func toOutput(result vm.Result) output {
	out := output{
		Success: result.Success,
		Stack:   make([]string, len(result.Stack)),
		Return:  "0x" + hex.EncodeToString(result.Return),
		Logs:    make([]logOut, len(result.Logs)),
	}
	for i, w := range result.Stack {
		out.Stack[i] = hexutil.Encode(w.Bytes())
	}
	for i, entry := range result.Logs {
		topics := make([]string, len(entry.Topics))
		for j, t := range entry.Topics {
			topics[j] = hexutil.Encode(t.Bytes())
		}
		out.Logs[i] = logOut{
			Address: entry.Address.Hex(),
			Topics:  topics,
			Data:    "0x" + hex.EncodeToString(entry.Data),
		}
	}
	return out
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
