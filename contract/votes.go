package contract

import "github.com/pkg/errors"

// ActVote casts or replaces the caller's ballot on a vote proposal. Weight is
// the caller's delegation balance at this moment for VoteByDelegation, or a
// flat 1 for MajorityVote. A re-vote removes the prior ballot first, so each
// account holds at most one ballot per proposal.
func (c *Contract) ActVote(id uint64, optionID string) error {
	if _, err := c.config(); err != nil {
		return err
	}
	voter := c.env.Predecessor()
	weight, registered := c.delegationOf(voter)
	if !registered {
		return errors.Wrapf(ErrNoDelegation, "account %s", voter)
	}
	p, err := c.loadProposal(id)
	if err != nil {
		return err
	}
	if p.expired(c.env.BlockTimestamp()) {
		return errors.Wrapf(ErrProposalExpired, "proposal %d", id)
	}
	if !p.Kind.IsVote {
		return errors.Wrapf(ErrNotVotable, "proposal %d", id)
	}
	if _, ok := p.VoteOptions[optionID]; !ok {
		return errors.Wrapf(ErrInvalidOption, "option %q", optionID)
	}
	if p.Kind.VoteKind == MajorityVote {
		weight = NewBalance(1)
	}
	p.removeVote(voter)
	p.addVote(voter, optionID, weight)
	if err := c.saveProposal(id, p); err != nil {
		return err
	}
	emitVote(id, voter, optionID)
	return nil
}
