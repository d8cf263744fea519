package contract

import "community_dao/sdk"

// ENVInterface exposes the per-call execution context. Amount-bearing fields
// come from the host as decimal strings and are parsed once per call.
type ENVInterface interface {
	Predecessor() sdk.Address
	BlockTimestamp() uint64
	AttachedDeposit() Balance
	AccountBalance() Balance
	StorageUsage() uint64
	StorageByteCost() Balance
}

// RealENV reads the host env blob lazily and caches it for the call.
type RealENV struct {
	env    *sdk.Env
	loaded bool
}

func (r *RealENV) get() *sdk.Env {
	if !r.loaded {
		e := sdk.GetEnv()
		r.env = &e
		r.loaded = true
	}
	return r.env
}

func (r *RealENV) Predecessor() sdk.Address {
	return sdk.Address(r.get().Predecessor)
}

func (r *RealENV) BlockTimestamp() uint64 {
	return r.get().BlockTimestamp
}

func (r *RealENV) AttachedDeposit() Balance {
	return mustHostBalance(r.get().AttachedDeposit)
}

func (r *RealENV) AccountBalance() Balance {
	return mustHostBalance(r.get().AccountBalance)
}

func (r *RealENV) StorageUsage() uint64 {
	return r.get().StorageUsage
}

func (r *RealENV) StorageByteCost() Balance {
	return mustHostBalance(r.get().StorageByteCost)
}

// mustHostBalance aborts on unparseable host-provided amounts. User input
// never flows through here.
func mustHostBalance(s string) Balance {
	b, err := BalanceFromDec(s)
	if err != nil {
		sdk.Abort("invalid host amount: " + s)
	}
	return b
}
