package main

import (
	"fmt"
	"os"

	"github.com/ferro-praxis/12week-training-program/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
