package contract_test

import (
	"testing"

	"community_dao/contract"
	"community_dao/sdk"

	"github.com/stretchr/testify/require"
)

const (
	ownerAccount = sdk.Address("owner.community")
	tokenAccount = sdk.Address("token.community")
	alice        = sdk.Address("alice.community")
	bob          = sdk.Address("bob.community")
	carol        = sdk.Address("carol.community")
)

// baseNanos is an arbitrary block timestamp the fixtures start at.
const baseNanos = uint64(1_600_000_000_000_000_000)

type fixture struct {
	t      *testing.T
	state  *contract.MockState
	env    *contract.MockENV
	ledger *contract.MockTokenLedger
	c      *contract.Contract
}

// newFixture builds an initialized contract with owner and token accounts in
// place and the clock at baseNanos.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		t:      t,
		state:  contract.NewMockState(),
		env:    contract.NewMockENV(),
		ledger: contract.NewMockTokenLedger(),
	}
	f.c = contract.New(f.state, f.env, f.ledger)
	f.env.SetNanos(baseNanos)
	f.env.SetCaller(ownerAccount)
	require.NoError(t, f.c.Init(contract.DaoMetadata{
		Name:    "Community",
		Purpose: "testing",
		Symbol:  "CMY",
	}, tokenAccount))
	return f
}

// as switches the caller for the next calls.
func (f *fixture) as(caller sdk.Address) *fixture {
	f.env.SetCaller(caller)
	return f
}

// at moves the clock.
func (f *fixture) at(nanos uint64) *fixture {
	f.env.SetNanos(nanos)
	return f
}

// register creates a zero-weight delegation entry the way the token contract
// would: correct caller and exact storage deposit.
func (f *fixture) register(account sdk.Address) {
	f.t.Helper()
	f.env.SetCaller(tokenAccount)
	f.env.SetDeposit(f.env.StorageByteCost().Mul64(16))
	require.NoError(f.t, f.c.RegisterDelegation(account))
	f.env.SetDeposit(contract.Balance{})
}

// transfer simulates an ft_on_transfer callback carrying the given purpose.
func (f *fixture) transfer(sender sdk.Address, amount uint64, purpose contract.TransferPurpose) error {
	f.t.Helper()
	msg, err := contract.EncodeTransferPurpose(purpose)
	require.NoError(f.t, err)
	f.env.SetCaller(tokenAccount)
	_, err = f.c.OnTokenTransfer(sender, contract.NewBalance(amount), msg)
	return err
}

// delegate registers (if needed) and books weight for the account.
func (f *fixture) delegate(account sdk.Address, amount uint64) {
	f.t.Helper()
	f.register(account)
	require.NoError(f.t, f.transfer(account, amount, contract.TransferPurpose{
		Tag:      contract.PurposeDelegate,
		Delegate: account,
	}))
}

// voteProposal creates a VoteByDelegation proposal with options a and b and
// returns its id.
func (f *fixture) voteProposal(kind contract.VoteKind, duration uint64) uint64 {
	f.t.Helper()
	f.env.SetCaller(ownerAccount)
	id, err := f.c.AddProposal(contract.ProposalInput{
		Title:       "pick one",
		Description: "a or b",
		Kind:        contract.ProposalKind{IsVote: true, VoteKind: kind},
		VoteOptions: map[string]contract.VoteOption{
			"a": {Title: "Option A"},
			"b": {Title: "Option B"},
		},
		Duration: duration,
	})
	require.NoError(f.t, err)
	return id
}

// donateProposal creates a donation-kind proposal and returns its id.
func (f *fixture) donateProposal(duration uint64) uint64 {
	f.t.Helper()
	f.env.SetCaller(ownerAccount)
	id, err := f.c.AddProposal(contract.ProposalInput{
		Title:    "fund the meetup",
		Kind:     contract.ProposalKind{},
		Duration: duration,
	})
	require.NoError(f.t, err)
	return id
}

// bounty creates a bounty from the owner with the given allotments and
// returns its id.
func (f *fixture) bounty(start uint64, duration uint64, claimer map[sdk.Address]uint64) uint64 {
	f.t.Helper()
	allotments := map[sdk.Address]contract.Balance{}
	total := uint64(0)
	for account, amount := range claimer {
		allotments[account] = contract.NewBalance(amount)
		total += amount
	}
	id := f.c.GetLastBountyId()
	require.NoError(f.t, f.transfer(ownerAccount, total, contract.TransferPurpose{
		Tag: contract.PurposeCreateBounty,
		Bounty: &contract.BountyInput{
			Description: "ship it",
			Token:       tokenAccount,
			StartTime:   start,
			Duration:    duration,
			Claimer:     allotments,
		},
	}))
	return id
}
