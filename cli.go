//go:build cli
// +build cli

package main

import (
	_ "inventory.GO/custom"

	"inventory.GO/cmd"
	"inventory.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
