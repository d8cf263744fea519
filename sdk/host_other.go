//go:build !wasm

package sdk

import "fmt"

// Native builds have no host. Log still works (handy while running tests),
// Abort panics like the wasm abort does, and everything touching host state
// panics loudly so a misconfigured test fails fast. The contract package talks
// to State/ENV/TokenLedger interfaces and swaps these for mocks.

// LogSink, when set, receives log lines instead of stdout. Tests install one
// to assert emitted event lines.
var LogSink func(string)

func Log(s string) {
	if LogSink != nil {
		LogSink(s)
		return
	}
	fmt.Println("sdk log:", s)
}

func Abort(msg string) {
	panic(msg)
}

func StateSetObject(key string, value string) {
	panic("sdk: state host not available outside wasm")
}

func StateGetObject(key string) *string {
	panic("sdk: state host not available outside wasm")
}

func GetEnv() Env {
	panic("sdk: env host not available outside wasm")
}

func ContractCall(contractId string, method string, payload string) {
	panic("sdk: contract calls not available outside wasm")
}
