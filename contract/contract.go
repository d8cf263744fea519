package contract

import (
	"community_dao/sdk"

	"github.com/pkg/errors"
)

// ContractConfig is the singleton record written once at init.
type ContractConfig struct {
	Owner        sdk.Address `json:"owner"`
	TokenAccount sdk.Address `json:"token_account"`
	Metadata     DaoMetadata `json:"metadata"`
}

// Contract wires the feature set to its three ports. One instance lives for
// exactly one call; outgoing transfers are queued and flushed only after the
// call's state writes succeed, so a revert never leaves tokens in flight.
type Contract struct {
	state  State
	env    ENVInterface
	ledger TokenLedger
	outbox []TransferRequest
}

func New(state State, env ENVInterface, ledger TokenLedger) *Contract {
	return &Contract{state: state, env: env, ledger: ledger}
}

// Init writes the config record. The deploying account becomes owner and the
// given fungible-token contract becomes the only accepted transfer source.
func (c *Contract) Init(metadata DaoMetadata, tokenAccount sdk.Address) error {
	if c.state.Get(cfgKey) != nil {
		return ErrAlreadyInitialized
	}
	if !tokenAccount.IsValid() {
		return errors.Wrapf(ErrMalformedPayload, "token account %q", tokenAccount)
	}
	cfg := ContractConfig{
		Owner:        c.env.Predecessor(),
		TokenAccount: tokenAccount,
		Metadata:     metadata,
	}
	raw, err := toJSON(cfg)
	if err != nil {
		return err
	}
	c.state.Set(cfgKey, raw)
	emitInit(cfg.Owner, tokenAccount)
	return nil
}

func (c *Contract) config() (ContractConfig, error) {
	raw := c.state.Get(cfgKey)
	if raw == nil {
		return ContractConfig{}, ErrNotInitialized
	}
	return fromJSON[ContractConfig](*raw)
}

// requireOwner gates owner-only operations.
func (c *Contract) requireOwner() (ContractConfig, error) {
	cfg, err := c.config()
	if err != nil {
		return ContractConfig{}, err
	}
	if c.env.Predecessor() != cfg.Owner {
		return ContractConfig{}, errors.Wrapf(ErrForbidden, "caller %s is not owner", c.env.Predecessor())
	}
	return cfg, nil
}

// requireTokenContract gates callbacks that only the fungible-token ledger
// may invoke.
func (c *Contract) requireTokenContract() (ContractConfig, error) {
	cfg, err := c.config()
	if err != nil {
		return ContractConfig{}, err
	}
	if c.env.Predecessor() != cfg.TokenAccount {
		return ContractConfig{}, errors.Wrapf(ErrForbidden, "caller %s is not the token contract", c.env.Predecessor())
	}
	return cfg, nil
}

// queueTransfer defers a payout until the call has fully committed.
func (c *Contract) queueTransfer(receiver sdk.Address, amount Balance, token sdk.Address) {
	c.outbox = append(c.outbox, TransferRequest{
		Receiver: receiver,
		Amount:   amount,
		Token:    token,
	})
}

// FlushTransfers dispatches the queued payouts. The export layer calls this
// last, after every state mutation of the operation has been applied.
func (c *Contract) FlushTransfers() {
	for _, req := range c.outbox {
		c.ledger.Transfer(req)
	}
	c.outbox = nil
}
