package contract

import "community_dao/sdk"

// Open donations are unrestricted gifts to the treasury, tracked per donor so
// the organization can credit its supporters. Repeated donations accumulate.

func (c *Contract) openDonate(donor sdk.Address, amount Balance) {
	key := donationKey(donor)
	c.setBalanceAt(key, c.balanceAt(key).Add(amount))
	emitDonation(donor, amount)
}

// GetDonationBalance reports the lifetime open donations of one account.
func (c *Contract) GetDonationBalance(account sdk.Address) Balance {
	return c.balanceAt(donationKey(account))
}
