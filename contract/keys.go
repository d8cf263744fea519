package contract

import (
	"strconv"

	"community_dao/sdk"
)

// Storage key layout. Short prefixes keep billed storage small.
const (
	cfgKey = "cfg"

	delegationPrefix = "dlg:"
	donationPrefix   = "dnt:"
	proposalPrefix   = "prpsl:"
	bountyPrefix     = "bty:"

	proposalCountKey = "count:prpsl"
	bountyCountKey   = "count:bty"

	totalDelegationKey = "total:dlg"
	lockedAmountKey    = "locked"
)

func delegationKey(account sdk.Address) string {
	return delegationPrefix + account.String()
}

func donationKey(account sdk.Address) string {
	return donationPrefix + account.String()
}

func proposalKey(id uint64) string {
	return proposalPrefix + strconv.FormatUint(id, 10)
}

func bountyKey(id uint64) string {
	return bountyPrefix + strconv.FormatUint(id, 10)
}
