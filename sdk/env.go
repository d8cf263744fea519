package sdk

// Env is the execution environment snapshot the host exposes to a call.
// Timestamps are nanoseconds since epoch; amounts are decimal strings since
// they can exceed 64 bits.
type Env struct {
	ContractID      Address `json:"contract.id"`
	Predecessor     Address `json:"msg.predecessor"`
	BlockHeight     uint64  `json:"block.height"`
	BlockTimestamp  uint64  `json:"block.timestamp"`
	AttachedDeposit string  `json:"msg.deposit"`
	AccountBalance  string  `json:"account.balance"`
	StorageUsage    uint64  `json:"account.storage_usage"`
	StorageByteCost string  `json:"protocol.storage_byte_cost"`
}
