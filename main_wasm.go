//go:build wasm

package main

import (
	"encoding/json"

	"community_dao/contract"
	"community_dao/sdk"
)

// Every exported entry builds one Contract over the real host ports, decodes
// its JSON payload, runs the operation, flushes queued transfers, and returns
// a JSON result. Any error aborts the call so the host reverts the state
// writes.

func newContract() *contract.Contract {
	return contract.New(contract.WasmState{}, &contract.RealENV{}, contract.RealTokenLedger{})
}

func decodeArgs[T any](payload *string, v *T) {
	if payload == nil {
		sdk.Abort("missing payload")
	}
	if err := json.Unmarshal([]byte(*payload), v); err != nil {
		sdk.Abort("invalid payload: " + err.Error())
	}
}

func respond(v any) *string {
	data, err := json.Marshal(v)
	if err != nil {
		sdk.Abort("encode result: " + err.Error())
	}
	s := string(data)
	return &s
}

func check(err error) {
	if err != nil {
		sdk.Abort(err.Error())
	}
}

//go:wasmexport contract_init
func contractInit(payload *string) *string {
	var args struct {
		Metadata     contract.DaoMetadata `json:"metadata"`
		TokenAccount sdk.Address          `json:"token_account"`
	}
	decodeArgs(payload, &args)
	c := newContract()
	check(c.Init(args.Metadata, args.TokenAccount))
	return respond("ok")
}

//go:wasmexport register_delegation
func registerDelegation(payload *string) *string {
	var args struct {
		AccountID sdk.Address `json:"account_id"`
	}
	decodeArgs(payload, &args)
	c := newContract()
	check(c.RegisterDelegation(args.AccountID))
	return respond("ok")
}

//go:wasmexport withdraw_delegation
func withdrawDelegation(payload *string) *string {
	var args struct {
		Amount contract.Balance `json:"amount"`
	}
	decodeArgs(payload, &args)
	c := newContract()
	check(c.WithdrawDelegation(args.Amount))
	c.FlushTransfers()
	return respond("ok")
}

//go:wasmexport ft_on_transfer
func ftOnTransfer(payload *string) *string {
	var args struct {
		SenderID sdk.Address      `json:"sender_id"`
		Amount   contract.Balance `json:"amount"`
		Msg      string           `json:"msg"`
	}
	decodeArgs(payload, &args)
	c := newContract()
	unused, err := c.OnTokenTransfer(args.SenderID, args.Amount, args.Msg)
	check(err)
	return respond(unused)
}

//go:wasmexport create_proposal
func createProposal(payload *string) *string {
	var args struct {
		Proposal contract.ProposalInput `json:"proposal"`
	}
	decodeArgs(payload, &args)
	c := newContract()
	id, err := c.AddProposal(args.Proposal)
	check(err)
	return respond(id)
}

//go:wasmexport vote
func vote(payload *string) *string {
	var args struct {
		ID     uint64 `json:"id"`
		Option string `json:"option"`
	}
	decodeArgs(payload, &args)
	c := newContract()
	check(c.ActVote(args.ID, args.Option))
	return respond("ok")
}

//go:wasmexport finalize_proposal
func finalizeProposal(payload *string) *string {
	var args struct {
		ID uint64 `json:"id"`
	}
	decodeArgs(payload, &args)
	c := newContract()
	check(c.FinalizeProposal(args.ID))
	return respond("ok")
}

//go:wasmexport claim_bounty
func claimBounty(payload *string) *string {
	var args struct {
		ID uint64 `json:"id"`
	}
	decodeArgs(payload, &args)
	c := newContract()
	amount, err := c.ClaimBounty(args.ID)
	check(err)
	c.FlushTransfers()
	return respond(amount)
}

//go:wasmexport sweep_bounty_rest
func sweepBountyRest(payload *string) *string {
	var args struct {
		ID uint64 `json:"id"`
	}
	decodeArgs(payload, &args)
	c := newContract()
	check(c.SweepBountyRest(args.ID))
	c.FlushTransfers()
	return respond("ok")
}

//go:wasmexport get_metadata
func getMetadata(_ *string) *string {
	meta, err := newContract().GetMetadata()
	check(err)
	return respond(meta)
}

//go:wasmexport get_owner
func getOwner(_ *string) *string {
	owner, err := newContract().GetOwner()
	check(err)
	return respond(owner)
}

//go:wasmexport version
func version(_ *string) *string {
	return respond(newContract().Version())
}

//go:wasmexport get_donation_balance
func getDonationBalance(payload *string) *string {
	var args struct {
		AccountID sdk.Address `json:"account_id"`
	}
	decodeArgs(payload, &args)
	return respond(newContract().GetDonationBalance(args.AccountID))
}

//go:wasmexport delegation_balance_of
func delegationBalanceOf(payload *string) *string {
	var args struct {
		AccountID sdk.Address `json:"account_id"`
	}
	decodeArgs(payload, &args)
	return respond(newContract().DelegationBalanceOf(args.AccountID))
}

//go:wasmexport delegation_total_supply
func delegationTotalSupply(_ *string) *string {
	return respond(newContract().DelegationTotalSupply())
}

//go:wasmexport delegation_balance_ratio
func delegationBalanceRatio(payload *string) *string {
	var args struct {
		AccountID sdk.Address `json:"account_id"`
	}
	decodeArgs(payload, &args)
	balance, total := newContract().DelegationBalanceRatio(args.AccountID)
	return respond(struct {
		Balance contract.Balance `json:"balance"`
		Total   contract.Balance `json:"total"`
	}{balance, total})
}

//go:wasmexport get_last_proposal_id
func getLastProposalID(_ *string) *string {
	return respond(newContract().GetLastProposalId())
}

//go:wasmexport get_last_bounty_id
func getLastBountyID(_ *string) *string {
	return respond(newContract().GetLastBountyId())
}

//go:wasmexport get_proposal
func getProposal(payload *string) *string {
	var args struct {
		ID        uint64      `json:"id"`
		AccountID sdk.Address `json:"account_id"`
	}
	decodeArgs(payload, &args)
	out, err := newContract().GetProposal(args.ID, args.AccountID)
	check(err)
	return respond(out)
}

//go:wasmexport get_proposals
func getProposals(payload *string) *string {
	var args struct {
		From      uint64      `json:"from_index"`
		Limit     uint64      `json:"limit"`
		AccountID sdk.Address `json:"account_id"`
	}
	decodeArgs(payload, &args)
	out, err := newContract().GetProposals(args.From, args.Limit, args.AccountID)
	check(err)
	return respond(out)
}

//go:wasmexport get_proposal_donation
func getProposalDonation(payload *string) *string {
	var args struct {
		ID    uint64 `json:"id"`
		From  uint64 `json:"from_index"`
		Limit uint64 `json:"limit"`
	}
	decodeArgs(payload, &args)
	out, err := newContract().GetProposalDonation(args.ID, args.From, args.Limit)
	check(err)
	return respond(out)
}

//go:wasmexport get_bounty
func getBounty(payload *string) *string {
	var args struct {
		ID        uint64      `json:"id"`
		AccountID sdk.Address `json:"account_id"`
	}
	decodeArgs(payload, &args)
	out, err := newContract().GetBounty(args.ID, args.AccountID)
	check(err)
	return respond(out)
}

//go:wasmexport get_bounties
func getBounties(payload *string) *string {
	var args struct {
		From      uint64      `json:"from_index"`
		Limit     uint64      `json:"limit"`
		AccountID sdk.Address `json:"account_id"`
	}
	decodeArgs(payload, &args)
	out, err := newContract().GetBounties(args.From, args.Limit, args.AccountID)
	check(err)
	return respond(out)
}

//go:wasmexport get_locked_amount
func getLockedAmount(_ *string) *string {
	return respond(newContract().GetLockedAmount())
}

//go:wasmexport get_locked_storage_amount
func getLockedStorageAmount(_ *string) *string {
	return respond(newContract().GetLockedStorageAmount())
}

//go:wasmexport get_available_amount
func getAvailableAmount(_ *string) *string {
	return respond(newContract().GetAvailableAmount())
}

func main() {}
