package main

import (
	"github/chapool/solana-service/cmd"
)

func main() {
	cmd.Execute()
}
