package contract

import (
	"community_dao/sdk"

	"github.com/pkg/errors"
)

// OnTokenTransfer is the ft_on_transfer callback: the token contract reports
// that sender moved amount into our custody, with msg carrying the purpose.
// The returned balance is the unused portion handed back to the sender; every
// purpose here consumes the full amount, so success always returns zero and
// any failure aborts the whole transfer instead.
func (c *Contract) OnTokenTransfer(sender sdk.Address, amount Balance, msg string) (Balance, error) {
	cfg, err := c.requireTokenContract()
	if err != nil {
		return Balance{}, err
	}
	purpose, err := decodePurpose(msg)
	if err != nil {
		return Balance{}, err
	}
	switch purpose.Tag {
	case PurposeOpenDonate:
		c.openDonate(sender, amount)
	case PurposeDelegate:
		if err := c.internalDelegate(purpose.Delegate, amount); err != nil {
			return Balance{}, err
		}
	case PurposeProposalDonate:
		if err := c.donateToProposal(purpose.Proposal, sender, amount); err != nil {
			return Balance{}, err
		}
	case PurposeCreateBounty:
		if sender != cfg.Owner {
			return Balance{}, errors.Wrapf(ErrForbidden, "sender %s may not create bounties", sender)
		}
		if purpose.Bounty == nil {
			return Balance{}, errors.Wrap(ErrMalformedPayload, "missing bounty body")
		}
		if _, err := c.createBounty(*purpose.Bounty, amount); err != nil {
			return Balance{}, err
		}
	default:
		return Balance{}, errors.Wrap(ErrMalformedPayload, "unhandled purpose")
	}
	return Balance{}, nil
}
