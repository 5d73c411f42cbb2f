package main

import (
	"github.com/cubesql/cubesql/cmd"
)

func main() {
	cmd.Execute()
}
