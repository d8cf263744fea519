//go:build wasm

package sdk

import "encoding/json"

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello dao")
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain.
// The host reverts every state write of the current call.
// Example payload: sdk.Abort("forbidden")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	if err := json.Unmarshal([]byte(envStr), &env); err != nil {
		Abort("failed to parse host env: " + err.Error())
	}
	return env
}

// ContractCall performs an asynchronous call into another contract. The result
// is not awaited; failures surface only on the callee side.
// Example payload: sdk.ContractCall("token.community", "ft_transfer", "{}")
func ContractCall(contractId string, method string, payload string) {
	contractCall(&contractId, &method, &payload)
}
