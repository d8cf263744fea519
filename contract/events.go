package contract

import (
	"strconv"

	"community_dao/sdk"
)

// Terse pipe-delimited event lines. Indexers split on "|".

func emitInit(owner sdk.Address, token sdk.Address) {
	sdk.Log("init|" + owner.String() + "|" + token.String())
}

func emitDelegation(account sdk.Address, amount Balance) {
	sdk.Log("delegate|" + account.String() + "|" + amount.Dec())
}

func emitWithdraw(account sdk.Address, amount Balance) {
	sdk.Log("withdraw|" + account.String() + "|" + amount.Dec())
}

func emitDonation(account sdk.Address, amount Balance) {
	sdk.Log("donate|" + account.String() + "|" + amount.Dec())
}

func emitProposal(id uint64, proposer sdk.Address) {
	sdk.Log("proposal|" + strconv.FormatUint(id, 10) + "|" + proposer.String())
}

func emitVote(id uint64, voter sdk.Address, option string) {
	sdk.Log("vote|" + strconv.FormatUint(id, 10) + "|" + voter.String() + "|" + option)
}

func emitFinalize(id uint64) {
	sdk.Log("finalize|" + strconv.FormatUint(id, 10))
}

func emitProposalDonation(id uint64, donor sdk.Address, amount Balance) {
	sdk.Log("proposal_donate|" + strconv.FormatUint(id, 10) + "|" + donor.String() + "|" + amount.Dec())
}

func emitBounty(id uint64, total Balance) {
	sdk.Log("bounty|" + strconv.FormatUint(id, 10) + "|" + total.Dec())
}

func emitClaim(id uint64, claimer sdk.Address, amount Balance) {
	sdk.Log("claim|" + strconv.FormatUint(id, 10) + "|" + claimer.String() + "|" + amount.Dec())
}

func emitSweep(id uint64, amount Balance) {
	sdk.Log("sweep|" + strconv.FormatUint(id, 10) + "|" + amount.Dec())
}
