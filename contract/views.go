package contract

import (
	"sort"

	"community_dao/sdk"
)

// Read-only queries. Views never mutate state, so derived values like the
// proposal status are computed against the current clock on the way out.

// pageEnd bounds a from/limit window against the collection length. The add
// saturates so a huge limit means "to the end" instead of wrapping.
func pageEnd(from, limit, length uint64) uint64 {
	end := from + limit
	if end < from || end > length {
		end = length
	}
	return end
}

// ProposalBaseInformation is the stored proposal flattened into a query
// response.
type ProposalBaseInformation struct {
	Proposer          sdk.Address           `json:"proposer"`
	Title             string                `json:"title"`
	Description       string                `json:"description"`
	Kind              ProposalKind          `json:"kind"`
	Status            ProposalStatus        `json:"status"`
	VoteOptions       map[string]VoteOption `json:"vote_options"`
	OptionDelegations map[string]Balance    `json:"option_delegations"`
	TotalDelegations  Balance               `json:"total_delegations"`
	TotalDonations    Balance               `json:"total_donations"`
	SubmissionTime    uint64                `json:"submission_time"`
	Duration          uint64                `json:"duration"`
}

// ProposalOutput adds the id and the querying account's own ballot. When the
// account never voted, UserSelect carries the placeholder option "_" with
// zero weight.
type ProposalOutput struct {
	ID uint64 `json:"id"`
	ProposalBaseInformation
	UserSelect Vote `json:"user_select"`
}

// BountyBaseInformation is the stored bounty flattened into a query response.
type BountyBaseInformation struct {
	Description string      `json:"description"`
	Token       sdk.Address `json:"token"`
	Total       Balance     `json:"total"`
	Rest        Balance     `json:"rest"`
	StartTime   uint64      `json:"start_time"`
	Duration    uint64      `json:"duration"`
}

// BountyOutput adds the id and the querying account's open allotment, zero
// when the account has none left.
type BountyOutput struct {
	ID          uint64  `json:"id"`
	ClaimAmount Balance `json:"claim_amount"`
	BountyBaseInformation
}

// DonationEntry is one row of the per-proposal donor leaderboard.
type DonationEntry struct {
	Account sdk.Address `json:"account"`
	Amount  Balance     `json:"amount"`
}

func (c *Contract) proposalOutput(id uint64, p *Proposal, account sdk.Address) ProposalOutput {
	userSelect, ok := p.Votes[account]
	if !ok {
		userSelect = Vote{Option: "_"}
	}
	return ProposalOutput{
		ID: id,
		ProposalBaseInformation: ProposalBaseInformation{
			Proposer:          p.Proposer,
			Title:             p.Title,
			Description:       p.Description,
			Kind:              p.Kind,
			Status:            p.currentStatus(c.env.BlockTimestamp()),
			VoteOptions:       p.VoteOptions,
			OptionDelegations: p.OptionDelegations,
			TotalDelegations:  p.TotalDelegations,
			TotalDonations:    p.TotalDonations,
			SubmissionTime:    p.SubmissionTime,
			Duration:          p.Duration,
		},
		UserSelect: userSelect,
	}
}

// GetProposal returns one proposal with the account's ballot attached.
func (c *Contract) GetProposal(id uint64, account sdk.Address) (ProposalOutput, error) {
	p, err := c.loadProposal(id)
	if err != nil {
		return ProposalOutput{}, err
	}
	return c.proposalOutput(id, p, account), nil
}

// GetProposals pages through ids [from, from+limit), skipping nothing since
// ids are dense.
func (c *Contract) GetProposals(from uint64, limit uint64, account sdk.Address) ([]ProposalOutput, error) {
	end := pageEnd(from, limit, c.counter(proposalCountKey))
	out := []ProposalOutput{}
	for id := from; id < end; id++ {
		p, err := c.loadProposal(id)
		if err != nil {
			return nil, err
		}
		out = append(out, c.proposalOutput(id, p, account))
	}
	return out, nil
}

// GetProposalDonation lists a proposal's donors largest first, account name
// breaking ties, windowed by from/limit over the sorted order.
func (c *Contract) GetProposalDonation(id uint64, from uint64, limit uint64) ([]DonationEntry, error) {
	p, err := c.loadProposal(id)
	if err != nil {
		return nil, err
	}
	entries := make([]DonationEntry, 0, len(p.Donations))
	for account, amount := range p.Donations {
		entries = append(entries, DonationEntry{Account: account, Amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		cmp := entries[i].Amount.Cmp(entries[j].Amount)
		if cmp != 0 {
			return cmp > 0
		}
		return entries[i].Account < entries[j].Account
	})
	if from >= uint64(len(entries)) {
		return []DonationEntry{}, nil
	}
	return entries[from:pageEnd(from, limit, uint64(len(entries)))], nil
}

func (c *Contract) bountyOutput(id uint64, b *Bounty, account sdk.Address) BountyOutput {
	return BountyOutput{
		ID:          id,
		ClaimAmount: b.Claimer[account],
		BountyBaseInformation: BountyBaseInformation{
			Description: b.Description,
			Token:       b.Token,
			Total:       b.Total,
			Rest:        b.Rest,
			StartTime:   b.StartTime,
			Duration:    b.Duration,
		},
	}
}

// GetBounty returns one bounty with the account's open allotment attached.
func (c *Contract) GetBounty(id uint64, account sdk.Address) (BountyOutput, error) {
	b, err := c.loadBounty(id)
	if err != nil {
		return BountyOutput{}, err
	}
	return c.bountyOutput(id, b, account), nil
}

// GetBounties pages through ids [from, from+limit).
func (c *Contract) GetBounties(from uint64, limit uint64, account sdk.Address) ([]BountyOutput, error) {
	end := pageEnd(from, limit, c.counter(bountyCountKey))
	out := []BountyOutput{}
	for id := from; id < end; id++ {
		b, err := c.loadBounty(id)
		if err != nil {
			return nil, err
		}
		out = append(out, c.bountyOutput(id, b, account))
	}
	return out, nil
}

// GetLockedStorageAmount prices the account's current storage footprint.
func (c *Contract) GetLockedStorageAmount() Balance {
	return c.env.StorageByteCost().Mul64(c.env.StorageUsage())
}

// GetLockedAmount reports every token held in custody for users: delegations
// plus unclaimed escrows.
func (c *Contract) GetLockedAmount() Balance {
	return c.balanceAt(lockedAmountKey)
}

// GetAvailableAmount is the treasury: the account balance minus storage cost
// minus custody holdings, floored at zero.
func (c *Contract) GetAvailableAmount() Balance {
	available := c.env.AccountBalance()
	available, ok := available.Sub(c.GetLockedStorageAmount())
	if !ok {
		return Balance{}
	}
	available, ok = available.Sub(c.GetLockedAmount())
	if !ok {
		return Balance{}
	}
	return available
}

// DelegationBalanceRatio reports an account's weight next to the total so
// clients can render a share without 128-bit division.
func (c *Contract) DelegationBalanceRatio(account sdk.Address) (Balance, Balance) {
	return c.DelegationBalanceOf(account), c.DelegationTotalSupply()
}

// GetMetadata returns the organization's descriptive record.
func (c *Contract) GetMetadata() (DaoMetadata, error) {
	cfg, err := c.config()
	if err != nil {
		return DaoMetadata{}, err
	}
	return cfg.Metadata, nil
}

// GetOwner returns the owning account.
func (c *Contract) GetOwner() (sdk.Address, error) {
	cfg, err := c.config()
	if err != nil {
		return "", err
	}
	return cfg.Owner, nil
}

// Version reports the contract release.
func (c *Contract) Version() string {
	return contractVersion
}

// EncodeTransferPurpose renders the msg payload a sender attaches to
// ft_transfer_call for the given purpose.
func EncodeTransferPurpose(p TransferPurpose) (string, error) {
	return encodePurpose(p)
}
