package main

import (
	"github.com/hqlam/laptopshop/internal/cmd"
)

func main() {
	cmd.Execute()
}
