package contract

import "strconv"

// counter reads a dense uint64 counter, zero when unset.
func (c *Contract) counter(key string) uint64 {
	raw := c.state.Get(key)
	if raw == nil {
		return 0
	}
	n, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (c *Contract) setCounter(key string, n uint64) {
	c.state.Set(key, strconv.FormatUint(n, 10))
}

// balanceAt reads an aggregate Balance stored as a decimal string.
func (c *Contract) balanceAt(key string) Balance {
	raw := c.state.Get(key)
	if raw == nil {
		return Balance{}
	}
	b, err := BalanceFromDec(*raw)
	if err != nil {
		return Balance{}
	}
	return b
}

func (c *Contract) setBalanceAt(key string, b Balance) {
	c.state.Set(key, b.Dec())
}
