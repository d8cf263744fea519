package contract

import (
	"encoding/json"

	"community_dao/sdk"
)

// TransferRequest is one outgoing fungible-token payout.
type TransferRequest struct {
	Receiver sdk.Address `json:"receiver_id"`
	Amount   Balance     `json:"amount"`
	Token    sdk.Address `json:"-"`
}

// TokenLedger sends tokens out of the contract account. Calls are
// fire-and-forget on chain; the mock records them for assertions.
type TokenLedger interface {
	Transfer(req TransferRequest)
}

// RealTokenLedger dispatches ft_transfer calls to the token contract.
type RealTokenLedger struct{}

func (RealTokenLedger) Transfer(req TransferRequest) {
	payload, err := json.Marshal(req)
	if err != nil {
		sdk.Abort("encode transfer: " + err.Error())
	}
	sdk.ContractCall(req.Token.String(), "ft_transfer", string(payload))
}

// MockTokenLedger collects transfers for test inspection.
type MockTokenLedger struct {
	Requests []TransferRequest
}

func NewMockTokenLedger() *MockTokenLedger {
	return &MockTokenLedger{}
}

func (m *MockTokenLedger) Transfer(req TransferRequest) {
	m.Requests = append(m.Requests, req)
}
