//go:build !wasm

package main

import "fmt"

// The contract only does real work as a wasm guest. Native builds exist for
// running the test suite.
func main() {
	fmt.Println("community_dao: build with a wasm target to produce the contract binary")
}
