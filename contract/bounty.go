package contract

import (
	"community_dao/sdk"

	"github.com/pkg/errors"
)

// Bounty is an escrow with pre-assigned allotments. Claimer maps each
// eligible account to what it may still take; Rest is the unclaimed pool.
type Bounty struct {
	Description string                  `json:"description"`
	Token       sdk.Address             `json:"token"`
	Total       Balance                 `json:"total"`
	Rest        Balance                 `json:"rest"`
	StartTime   uint64                  `json:"start_time"`
	Duration    uint64                  `json:"duration"`
	Claimer     map[sdk.Address]Balance `json:"claimer"`
}

// VersionedBounty mirrors VersionedProposal for schema migration.
type VersionedBounty struct {
	V1 *Bounty `json:"V1,omitempty"`
}

func (v VersionedBounty) Current() *Bounty {
	return v.V1
}

// BountyInput arrives inside a CreateBounty transfer purpose. StartTime is
// caller-provided, so a bounty may open in the future.
type BountyInput struct {
	Description string                  `json:"description"`
	Token       sdk.Address             `json:"token"`
	StartTime   uint64                  `json:"start_time"`
	Duration    uint64                  `json:"duration"`
	Claimer     map[sdk.Address]Balance `json:"claimer"`
}

func (b *Bounty) claimWindowOpen(now uint64) bool {
	return now < b.StartTime+b.Duration
}

func (c *Contract) loadBounty(id uint64) (*Bounty, error) {
	raw := c.state.Get(bountyKey(id))
	if raw == nil {
		return nil, errors.Wrapf(ErrNotFound, "bounty %d", id)
	}
	versioned, err := fromJSON[VersionedBounty](*raw)
	if err != nil {
		return nil, err
	}
	b := versioned.Current()
	if b == nil {
		return nil, errors.Wrapf(ErrCorruptRecord, "bounty %d has no known version", id)
	}
	return b, nil
}

func (c *Contract) saveBounty(id uint64, b *Bounty) error {
	raw, err := toJSON(VersionedBounty{V1: b})
	if err != nil {
		return err
	}
	c.state.Set(bountyKey(id), raw)
	return nil
}

// createBounty escrows the attached amount against the allotment table. The
// router has already checked the sender is the owner; this validates the
// economics: allotments must sum to exactly what arrived.
func (c *Contract) createBounty(input BountyInput, attached Balance) (uint64, error) {
	if input.Duration <= minProposalDuration {
		return 0, errors.Wrapf(ErrInvalidDuration, "duration %d", input.Duration)
	}
	var sum Balance
	for _, allotment := range input.Claimer {
		sum = sum.Add(allotment)
	}
	if !sum.Equal(attached) {
		return 0, errors.Wrapf(ErrAmountMismatch, "allotments %s, attached %s", sum.Dec(), attached.Dec())
	}
	claimer := input.Claimer
	if claimer == nil {
		claimer = map[sdk.Address]Balance{}
	}
	b := &Bounty{
		Description: input.Description,
		Token:       input.Token,
		Total:       attached,
		Rest:        attached,
		StartTime:   input.StartTime,
		Duration:    input.Duration,
		Claimer:     claimer,
	}
	id := c.counter(bountyCountKey)
	if err := c.saveBounty(id, b); err != nil {
		return 0, err
	}
	c.setCounter(bountyCountKey, id+1)
	c.setBalanceAt(lockedAmountKey, c.balanceAt(lockedAmountKey).Add(attached))
	emitBounty(id, attached)
	return id, nil
}

// ClaimBounty pays out the caller's allotment while the claim window is open
// and returns the claimed amount. An allotment can be taken once.
func (c *Contract) ClaimBounty(id uint64) (Balance, error) {
	if _, err := c.config(); err != nil {
		return Balance{}, err
	}
	b, err := c.loadBounty(id)
	if err != nil {
		return Balance{}, err
	}
	if !b.claimWindowOpen(c.env.BlockTimestamp()) {
		return Balance{}, errors.Wrapf(ErrBountyExpired, "bounty %d", id)
	}
	claimer := c.env.Predecessor()
	amount, ok := b.Claimer[claimer]
	if !ok {
		return Balance{}, errors.Wrapf(ErrNoAllotment, "account %s on bounty %d", claimer, id)
	}
	delete(b.Claimer, claimer)
	rest, ok := b.Rest.Sub(amount)
	if !ok {
		return Balance{}, errors.Wrapf(ErrCorruptRecord, "bounty %d rest below allotment", id)
	}
	b.Rest = rest
	if err := c.saveBounty(id, b); err != nil {
		return Balance{}, err
	}
	locked, _ := c.balanceAt(lockedAmountKey).Sub(amount)
	c.setBalanceAt(lockedAmountKey, locked)
	c.queueTransfer(claimer, amount, b.Token)
	emitClaim(id, claimer, amount)
	return amount, nil
}

// SweepBountyRest returns the unclaimed pool to the owner once the claim
// window has fully passed. Sweeping an already swept bounty transfers zero.
func (c *Contract) SweepBountyRest(id uint64) error {
	cfg, err := c.requireOwner()
	if err != nil {
		return err
	}
	b, err := c.loadBounty(id)
	if err != nil {
		return err
	}
	if c.env.BlockTimestamp() <= b.StartTime+b.Duration {
		return errors.Wrapf(ErrNotYetExpired, "bounty %d", id)
	}
	rest := b.Rest
	b.Rest = Balance{}
	if err := c.saveBounty(id, b); err != nil {
		return err
	}
	locked, _ := c.balanceAt(lockedAmountKey).Sub(rest)
	c.setBalanceAt(lockedAmountKey, locked)
	c.queueTransfer(cfg.Owner, rest, b.Token)
	emitSweep(id, rest)
	return nil
}

// GetLastBountyId reports the number of bounties created so far.
func (c *Contract) GetLastBountyId() uint64 {
	return c.counter(bountyCountKey)
}
