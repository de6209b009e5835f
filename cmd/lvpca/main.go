// SPDX-License-Identifier: MIT

// Command lvpca projects CSV datasets onto their principal components.
//
//	lvpca run -f data.csv -o scores.csv --solver gonum
//	lvpca generate --rows 500 --cols 8 --seed 7 -o data.csv
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "lvpca:", err)
		os.Exit(1)
	}
}
