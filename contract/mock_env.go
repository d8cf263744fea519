package contract

import "community_dao/sdk"

// MockENV lets tests steer caller, clock, deposit and account economics per
// call.
type MockENV struct {
	caller      sdk.Address
	nanos       uint64
	deposit     Balance
	balance     Balance
	storage     uint64
	byteCost    Balance
	hasByteCost bool
}

func NewMockENV() *MockENV {
	return &MockENV{}
}

func (m *MockENV) SetCaller(a sdk.Address)   { m.caller = a }
func (m *MockENV) SetNanos(n uint64)         { m.nanos = n }
func (m *MockENV) SetDeposit(b Balance)      { m.deposit = b }
func (m *MockENV) SetBalance(b Balance)      { m.balance = b }
func (m *MockENV) SetStorageUsage(n uint64)  { m.storage = n }
func (m *MockENV) SetStorageByteCost(b Balance) {
	m.byteCost = b
	m.hasByteCost = true
}

func (m *MockENV) Predecessor() sdk.Address { return m.caller }
func (m *MockENV) BlockTimestamp() uint64   { return m.nanos }
func (m *MockENV) AttachedDeposit() Balance { return m.deposit }
func (m *MockENV) AccountBalance() Balance  { return m.balance }
func (m *MockENV) StorageUsage() uint64     { return m.storage }

func (m *MockENV) StorageByteCost() Balance {
	if m.hasByteCost {
		return m.byteCost
	}
	return NewBalance(10_000_000_000_000_000_000)
}
