package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/letter-frequency/internal/count"
)

func main() {
	if err := count.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
