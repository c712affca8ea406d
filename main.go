package main

import (
	"github.com/Maxwell1111/Lego-Interligence/cli"
)

func main() {
	cli.Launch()
}
