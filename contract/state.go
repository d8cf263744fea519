package contract

import "community_dao/sdk"

// State is the kv storage port. The wasm build talks to the host db, tests
// swap in MockState. Values are JSON strings throughout. Keys are never
// removed: bounty allotments and vote receipts live inside their records, and
// delegation entries rest at zero rather than disappearing.
type State interface {
	Set(key string, value string)
	Get(key string) *string
}

// WasmState forwards straight to the host db imports.
type WasmState struct{}

func (WasmState) Set(key string, value string) {
	sdk.StateSetObject(key, value)
}

func (WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}
