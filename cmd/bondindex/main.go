package main

import (
	"github.com/hannawannana/simulated-bond-index-construction/internal/cli"
)

func main() {
	cli.Execute()
}
