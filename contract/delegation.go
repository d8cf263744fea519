package contract

import (
	"community_dao/sdk"

	"github.com/pkg/errors"
)

// Delegation accounting. Each registered account has a "dlg:" entry holding
// its current voting weight; the "total:dlg" aggregate tracks the sum and
// "locked" tracks every token the contract holds on behalf of users.

func (c *Contract) delegationOf(account sdk.Address) (Balance, bool) {
	raw := c.state.Get(delegationKey(account))
	if raw == nil {
		return Balance{}, false
	}
	b, err := BalanceFromDec(*raw)
	if err != nil {
		return Balance{}, false
	}
	return b, true
}

func (c *Contract) setDelegation(account sdk.Address, amount Balance) {
	c.state.Set(delegationKey(account), amount.Dec())
}

// RegisterDelegation creates a zero-weight entry for the given account. Only
// the token contract may call it (the token side fronts the storage deposit),
// and the attached deposit must cover exactly one map entry. Registering an
// already registered account leaves its weight untouched.
func (c *Contract) RegisterDelegation(account sdk.Address) error {
	if _, err := c.requireTokenContract(); err != nil {
		return err
	}
	required := c.env.StorageByteCost().Mul64(registrationStorageBytes)
	if !c.env.AttachedDeposit().Equal(required) {
		return errors.Wrapf(ErrWrongAmount, "need %s, got %s", required.Dec(), c.env.AttachedDeposit().Dec())
	}
	if _, ok := c.delegationOf(account); !ok {
		c.setDelegation(account, Balance{})
	}
	return nil
}

// internalDelegate adds weight to a registered account and bumps the
// aggregates. The tokens backing the weight are already in custody when this
// runs (they arrived with the transfer that carried the purpose).
func (c *Contract) internalDelegate(account sdk.Address, amount Balance) error {
	current, ok := c.delegationOf(account)
	if !ok {
		return errors.Wrapf(ErrNoDelegation, "account %s", account)
	}
	c.setDelegation(account, current.Add(amount))
	c.setBalanceAt(totalDelegationKey, c.balanceAt(totalDelegationKey).Add(amount))
	c.setBalanceAt(lockedAmountKey, c.balanceAt(lockedAmountKey).Add(amount))
	emitDelegation(account, amount)
	return nil
}

// internalReduceDelegation lowers an account's weight and the aggregates.
func (c *Contract) internalReduceDelegation(account sdk.Address, amount Balance) error {
	current, ok := c.delegationOf(account)
	if !ok {
		return errors.Wrapf(ErrNoDelegation, "account %s", account)
	}
	next, ok := current.Sub(amount)
	if !ok {
		return errors.Wrapf(ErrInsufficientDelegation, "account %s has %s, wants %s", account, current.Dec(), amount.Dec())
	}
	c.setDelegation(account, next)

	total, _ := c.balanceAt(totalDelegationKey).Sub(amount)
	c.setBalanceAt(totalDelegationKey, total)
	locked, _ := c.balanceAt(lockedAmountKey).Sub(amount)
	c.setBalanceAt(lockedAmountKey, locked)
	return nil
}

// WithdrawDelegation releases part of the caller's delegated weight and sends
// the tokens back through the fungible-token contract.
func (c *Contract) WithdrawDelegation(amount Balance) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	caller := c.env.Predecessor()
	if err := c.internalReduceDelegation(caller, amount); err != nil {
		return err
	}
	c.queueTransfer(caller, amount, cfg.TokenAccount)
	emitWithdraw(caller, amount)
	return nil
}

// DelegationBalanceOf reports the current weight, zero for unregistered
// accounts.
func (c *Contract) DelegationBalanceOf(account sdk.Address) Balance {
	b, _ := c.delegationOf(account)
	return b
}

// DelegationTotalSupply reports the sum of all weights.
func (c *Contract) DelegationTotalSupply() Balance {
	return c.balanceAt(totalDelegationKey)
}
