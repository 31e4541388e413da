//go:build cli
// +build cli

package main

import (
	"gudang.GO/cmd"
	"gudang.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
