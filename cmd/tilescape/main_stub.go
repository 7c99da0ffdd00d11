//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of tilescape requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/tilescape` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Use ./cmd/scenegen to inspect layouts without a window.")
	os.Exit(2)
}
