// Command doomhash prints the Doom 64 texture-name hash for each argument,
// mirroring the behaviour of the original hasher_cli tool: set CSV=1 for
// "name,uhash,hash" rows, or HASH_SIGNED=1 to print the hash reinterpreted
// as a signed 16-bit value.
package main

import (
	"fmt"
	"os"

	"github.com/doomkit/wad/texture"
)

func main() {
	_, csv := os.LookupEnv("CSV")
	_, signed := os.LookupEnv("HASH_SIGNED")
	unsigned := !csv && !signed

	if csv {
		fmt.Println("name,uhash,hash")
	}
	for _, name := range os.Args[1:] {
		uhash := texture.Hash(name)
		var hash string
		if unsigned {
			hash = fmt.Sprintf("%d", uhash)
		} else {
			hash = fmt.Sprintf("%d", int16(uhash))
		}
		if csv {
			fmt.Printf("%s,%d,%s\n", name, uhash, hash)
		} else {
			fmt.Println(hash)
		}
	}
}
