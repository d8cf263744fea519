package contract

import (
	"encoding/json"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Balance is an unsigned 128-bit token amount. It marshals to a decimal JSON
// string, matching how the token ledger reports amounts on the wire, and
// rejects values above 128 bits on the way in.
type Balance struct {
	v uint256.Int
}

// NewBalance wraps a uint64 amount.
// Example payload: NewBalance(100)
func NewBalance(n uint64) Balance {
	var b Balance
	b.v.SetUint64(n)
	return b
}

// BalanceFromDec parses a decimal string into a Balance.
// Example payload: BalanceFromDec("340282366920938463463374607431768211455")
func BalanceFromDec(s string) (Balance, error) {
	var b Balance
	if err := b.v.SetFromDecimal(s); err != nil {
		return Balance{}, errors.Wrapf(ErrMalformedPayload, "amount %q", s)
	}
	if b.v.BitLen() > 128 {
		return Balance{}, errors.Wrapf(ErrMalformedPayload, "amount %q exceeds 128 bits", s)
	}
	return b, nil
}

// Add returns b + o. Two 128-bit values cannot overflow the 256-bit carrier.
func (b Balance) Add(o Balance) Balance {
	var r Balance
	r.v.Add(&b.v, &o.v)
	return r
}

// Sub returns b - o and false when o exceeds b.
func (b Balance) Sub(o Balance) (Balance, bool) {
	if b.v.Lt(&o.v) {
		return Balance{}, false
	}
	var r Balance
	r.v.Sub(&b.v, &o.v)
	return r, true
}

// Mul64 scales the balance by a small factor, used for storage-cost math.
func (b Balance) Mul64(n uint64) Balance {
	var r Balance
	r.v.Mul(&b.v, uint256.NewInt(n))
	return r
}

// Cmp compares like bytes.Compare.
func (b Balance) Cmp(o Balance) int {
	return b.v.Cmp(&o.v)
}

func (b Balance) Equal(o Balance) bool {
	return b.v.Eq(&o.v)
}

func (b Balance) IsZero() bool {
	return b.v.IsZero()
}

// Dec renders the decimal string form.
func (b Balance) Dec() string {
	return b.v.Dec()
}

func (b Balance) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.v.Dec())
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Tolerate bare numbers for small amounts in hand-written payloads.
		s = string(data)
	}
	parsed, err := BalanceFromDec(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// DaoMetadata is the organization's static descriptive record. The contract
// never interprets it; UIs do.
type DaoMetadata struct {
	Name      string  `json:"name"`
	Purpose   string  `json:"purpose"`
	Thumbnail string  `json:"thumbnail"`
	Symbol    string  `json:"symbol"`
	Facebook  *string `json:"facebook,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Discord   *string `json:"discord,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}
