package main

import (
	"github.com/dataops-works/snowload/cmd"
)

func main() {
	cmd.Execute()
}
