package contract_test

import (
	"testing"

	"community_dao/contract"
	"community_dao/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const week = uint64(7 * 24 * 3600 * 1_000_000_000)

func TestAddProposalDenseIds(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, uint64(0), f.c.GetLastProposalId())

	id0 := f.voteProposal(contract.VoteByDelegation, week)
	id1 := f.donateProposal(week)

	assert.Equal(t, uint64(0), id0)
	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), f.c.GetLastProposalId())
}

func TestAddProposalDurationFloor(t *testing.T) {
	f := newFixture(t)
	f.as(alice)

	floor := uint64(2 * 60 * 1_000_000_000)
	_, err := f.c.AddProposal(contract.ProposalInput{
		Title:    "too short",
		Kind:     contract.ProposalKind{IsVote: true, VoteKind: contract.MajorityVote},
		Duration: floor,
	})
	assert.ErrorIs(t, err, contract.ErrInvalidDuration)

	_, err = f.c.AddProposal(contract.ProposalInput{
		Title:    "just enough",
		Kind:     contract.ProposalKind{IsVote: true, VoteKind: contract.MajorityVote},
		Duration: floor + 1,
	})
	assert.NoError(t, err)
}

func TestDonateProposalDropsOptions(t *testing.T) {
	f := newFixture(t)
	f.as(alice)
	id, err := f.c.AddProposal(contract.ProposalInput{
		Title: "donation target",
		Kind:  contract.ProposalKind{},
		VoteOptions: map[string]contract.VoteOption{
			"sneaky": {Title: "should vanish"},
		},
		Duration: week,
	})
	require.NoError(t, err)

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.Empty(t, out.VoteOptions)
	assert.Equal(t, alice, out.Proposer)
}

func TestVoteByDelegationWeight(t *testing.T) {
	f := newFixture(t)
	f.delegate(alice, 300)
	f.delegate(bob, 700)
	id := f.voteProposal(contract.VoteByDelegation, week)

	f.as(alice)
	require.NoError(t, f.c.ActVote(id, "a"))
	f.as(bob)
	require.NoError(t, f.c.ActVote(id, "b"))

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.Equal(t, "300", out.OptionDelegations["a"].Dec())
	assert.Equal(t, "700", out.OptionDelegations["b"].Dec())
	assert.Equal(t, "1000", out.TotalDelegations.Dec())
	assert.Equal(t, "a", out.UserSelect.Option)
	assert.Equal(t, "300", out.UserSelect.Delegations.Dec())
}

func TestMajorityVoteFlatWeight(t *testing.T) {
	f := newFixture(t)
	f.delegate(alice, 9000)
	f.register(bob)
	id := f.voteProposal(contract.MajorityVote, week)

	f.as(alice)
	require.NoError(t, f.c.ActVote(id, "a"))
	// Zero-weight but registered accounts still count for one.
	f.as(bob)
	require.NoError(t, f.c.ActVote(id, "a"))

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.Equal(t, "2", out.OptionDelegations["a"].Dec())
	assert.Equal(t, "2", out.TotalDelegations.Dec())
}

func TestRevoteReplacesBallot(t *testing.T) {
	f := newFixture(t)
	f.delegate(alice, 400)
	id := f.voteProposal(contract.VoteByDelegation, week)

	f.as(alice)
	require.NoError(t, f.c.ActVote(id, "a"))
	require.NoError(t, f.c.ActVote(id, "b"))

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.Equal(t, "0", out.OptionDelegations["a"].Dec())
	assert.Equal(t, "400", out.OptionDelegations["b"].Dec())
	assert.Equal(t, "400", out.TotalDelegations.Dec())
	assert.Equal(t, "b", out.UserSelect.Option)
}

func TestRevoteUsesCurrentWeight(t *testing.T) {
	f := newFixture(t)
	f.delegate(alice, 400)
	id := f.voteProposal(contract.VoteByDelegation, week)

	f.as(alice)
	require.NoError(t, f.c.ActVote(id, "a"))

	// Weight changes between votes; the replacement ballot uses the new one.
	require.NoError(t, f.transfer(alice, 100, contract.TransferPurpose{
		Tag:      contract.PurposeDelegate,
		Delegate: alice,
	}))
	f.as(alice)
	require.NoError(t, f.c.ActVote(id, "a"))

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.Equal(t, "500", out.OptionDelegations["a"].Dec())
	assert.Equal(t, "500", out.TotalDelegations.Dec())
}

func TestVoteRequiresRegistration(t *testing.T) {
	f := newFixture(t)
	id := f.voteProposal(contract.VoteByDelegation, week)

	f.as(alice)
	assert.ErrorIs(t, f.c.ActVote(id, "a"), contract.ErrNoDelegation)
}

func TestVoteUnknownOption(t *testing.T) {
	f := newFixture(t)
	f.delegate(alice, 10)
	id := f.voteProposal(contract.VoteByDelegation, week)

	f.as(alice)
	assert.ErrorIs(t, f.c.ActVote(id, "z"), contract.ErrInvalidOption)
}

func TestVoteOnDonationProposal(t *testing.T) {
	f := newFixture(t)
	f.delegate(alice, 10)
	id := f.donateProposal(week)

	f.as(alice)
	assert.ErrorIs(t, f.c.ActVote(id, "a"), contract.ErrNotVotable)
}

func TestVoteAfterWindowCloses(t *testing.T) {
	f := newFixture(t)
	f.delegate(alice, 10)
	id := f.voteProposal(contract.VoteByDelegation, week)

	f.as(alice).at(baseNanos + week)
	assert.ErrorIs(t, f.c.ActVote(id, "a"), contract.ErrProposalExpired)

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.True(t, out.TotalDelegations.IsZero())
}

func TestVoteUnknownProposal(t *testing.T) {
	f := newFixture(t)
	f.delegate(alice, 10)
	f.as(alice)
	assert.ErrorIs(t, f.c.ActVote(42, "a"), contract.ErrNotFound)
}

func TestStatusDerivedFromClock(t *testing.T) {
	f := newFixture(t)
	id := f.voteProposal(contract.VoteByDelegation, week)

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.Equal(t, contract.StatusInProgress, out.Status)

	f.at(baseNanos + week)
	out, err = f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.Equal(t, contract.StatusExpired, out.Status)
}

func TestFinalizeProposalOwnerOnly(t *testing.T) {
	f := newFixture(t)
	id := f.voteProposal(contract.VoteByDelegation, week)

	f.as(alice)
	assert.ErrorIs(t, f.c.FinalizeProposal(id), contract.ErrForbidden)

	f.as(ownerAccount)
	require.NoError(t, f.c.FinalizeProposal(id))

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.Equal(t, contract.StatusExpired, out.Status)

	// Finalized proposals refuse further ballots even inside the window.
	f.delegate(alice, 10)
	f.as(alice)
	assert.ErrorIs(t, f.c.ActVote(id, "a"), contract.ErrProposalExpired)
}

func TestFinalizeProposalEmitsEvent(t *testing.T) {
	f := newFixture(t)
	id := f.voteProposal(contract.VoteByDelegation, week)

	var lines []string
	sdk.LogSink = func(s string) { lines = append(lines, s) }
	defer func() { sdk.LogSink = nil }()

	f.as(ownerAccount)
	require.NoError(t, f.c.FinalizeProposal(id))
	assert.Contains(t, lines, "finalize|0")
}

func TestProposalDonationOverwritesPerDonor(t *testing.T) {
	f := newFixture(t)
	id := f.donateProposal(week)

	require.NoError(t, f.transfer(alice, 100, contract.TransferPurpose{
		Tag: contract.PurposeProposalDonate, Proposal: id,
	}))
	require.NoError(t, f.transfer(alice, 30, contract.TransferPurpose{
		Tag: contract.PurposeProposalDonate, Proposal: id,
	}))

	// Latest transfer wins per donor while the total keeps every transfer.
	rows, err := f.c.GetProposalDonation(id, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, alice, rows[0].Account)
	assert.Equal(t, "30", rows[0].Amount.Dec())

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.Equal(t, "130", out.TotalDonations.Dec())
}

func TestProposalDonationWrongKind(t *testing.T) {
	f := newFixture(t)
	id := f.voteProposal(contract.VoteByDelegation, week)

	err := f.transfer(alice, 100, contract.TransferPurpose{
		Tag: contract.PurposeProposalDonate, Proposal: id,
	})
	assert.ErrorIs(t, err, contract.ErrWrongProposalKind)

	out, err := f.c.GetProposal(id, alice)
	require.NoError(t, err)
	assert.True(t, out.TotalDonations.IsZero())
}

func TestProposalDonationLeaderboard(t *testing.T) {
	f := newFixture(t)
	id := f.donateProposal(week)

	require.NoError(t, f.transfer(alice, 50, contract.TransferPurpose{Tag: contract.PurposeProposalDonate, Proposal: id}))
	require.NoError(t, f.transfer(bob, 200, contract.TransferPurpose{Tag: contract.PurposeProposalDonate, Proposal: id}))
	require.NoError(t, f.transfer(carol, 50, contract.TransferPurpose{Tag: contract.PurposeProposalDonate, Proposal: id}))

	rows, err := f.c.GetProposalDonation(id, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, bob, rows[0].Account)
	// Equal amounts order by account name.
	assert.Equal(t, alice, rows[1].Account)
	assert.Equal(t, carol, rows[2].Account)

	// Windowing clamps to the tail.
	rows, err = f.c.GetProposalDonation(id, 2, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, carol, rows[0].Account)

	rows, err = f.c.GetProposalDonation(id, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// A huge limit clamps to the tail instead of wrapping past it.
	rows, err = f.c.GetProposalDonation(id, 1, ^uint64(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, alice, rows[0].Account)
	assert.Equal(t, carol, rows[1].Account)
}
