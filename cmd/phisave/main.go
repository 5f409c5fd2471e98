package main

import (
	"github.com/stewi1014/phisave/cmd/phisave/cmd"
)

func main() {
	cmd.Execute()
}
