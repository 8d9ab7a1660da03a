package main

import (
	"github.com/openroom/partygames-go/internal/cli"
)

func main() {
	cli.Execute()
}
