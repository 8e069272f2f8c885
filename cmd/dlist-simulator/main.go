// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"

	"github.com/ava-labs/dlist/cmd/dlist-simulator/cmd"
	"github.com/ava-labs/dlist/utils"
)

func main() {
	if err := cmd.NewSimulator().Execute(); err != nil {
		utils.Outf("{{red}}error: {{/}}%+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
