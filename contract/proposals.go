package contract

import (
	"encoding/json"

	"community_dao/sdk"

	"github.com/pkg/errors"
)

// ProposalStatus is derived lazily from the clock; nothing flips it on a
// timer. Finalize lets the owner pin Expired explicitly.
type ProposalStatus string

const (
	StatusInProgress ProposalStatus = "InProgress"
	StatusExpired    ProposalStatus = "Expired"
)

// VoteKind selects how a ballot is weighted.
type VoteKind string

const (
	// VoteByDelegation weights each ballot by the voter's delegation balance
	// at the moment of voting.
	VoteByDelegation VoteKind = "VoteByDelegation"
	// MajorityVote weights every registered voter equally.
	MajorityVote VoteKind = "MajorityVote"
)

// ProposalKind is either a plain donation target or a weighted vote. On the
// wire it keeps the external tagging of the original records: the string
// "Donate", or {"Vote":{"vote_kind":...}}.
type ProposalKind struct {
	IsVote   bool
	VoteKind VoteKind
}

type voteKindBody struct {
	VoteKind VoteKind `json:"vote_kind"`
}

func (k ProposalKind) MarshalJSON() ([]byte, error) {
	if !k.IsVote {
		return json.Marshal("Donate")
	}
	return json.Marshal(map[string]voteKindBody{"Vote": {VoteKind: k.VoteKind}})
}

func (k *ProposalKind) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Donate" {
			return errors.Wrapf(ErrMalformedPayload, "proposal kind %q", tag)
		}
		*k = ProposalKind{}
		return nil
	}
	var tagged map[string]voteKindBody
	if err := json.Unmarshal(data, &tagged); err != nil {
		return errors.Wrapf(ErrMalformedPayload, "proposal kind: %v", err)
	}
	body, ok := tagged["Vote"]
	if !ok || len(tagged) != 1 {
		return errors.Wrap(ErrMalformedPayload, "proposal kind")
	}
	if body.VoteKind != VoteByDelegation && body.VoteKind != MajorityVote {
		return errors.Wrapf(ErrMalformedPayload, "vote kind %q", body.VoteKind)
	}
	*k = ProposalKind{IsVote: true, VoteKind: body.VoteKind}
	return nil
}

// VoteOption is one ballot choice of a vote proposal.
type VoteOption struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	MinVoteWeight Balance `json:"min_vote_weight"`
}

// Vote is one account's current ballot on a proposal.
type Vote struct {
	Option      string  `json:"option"`
	Delegations Balance `json:"delegations"`
}

// Proposal is the stored record. Votes holds the per-account ballots and
// OptionDelegations the per-option tallies; the two stay consistent through
// addVote/removeVote only.
type Proposal struct {
	Proposer          sdk.Address             `json:"proposer"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	Kind              ProposalKind            `json:"kind"`
	Status            ProposalStatus          `json:"status"`
	VoteOptions       map[string]VoteOption   `json:"vote_options"`
	Votes             map[sdk.Address]Vote    `json:"votes"`
	OptionDelegations map[string]Balance      `json:"option_delegations"`
	TotalDelegations  Balance                 `json:"total_delegations"`
	Donations         map[sdk.Address]Balance `json:"donations"`
	TotalDonations    Balance                 `json:"total_donations"`
	SubmissionTime    uint64                  `json:"submission_time"`
	Duration          uint64                  `json:"duration"`
}

// VersionedProposal tags the stored form so a later schema can migrate old
// records in Current.
type VersionedProposal struct {
	V1 *Proposal `json:"V1,omitempty"`
}

func (v VersionedProposal) Current() *Proposal {
	return v.V1
}

// ProposalInput is the creation payload.
type ProposalInput struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Kind        ProposalKind          `json:"kind"`
	VoteOptions map[string]VoteOption `json:"vote_options"`
	Duration    uint64                `json:"duration"`
}

// expired reports whether the voting window has closed at the given time.
func (p *Proposal) expired(now uint64) bool {
	return p.Status == StatusExpired || now >= p.SubmissionTime+p.Duration
}

// currentStatus derives the visible status without mutating the record.
func (p *Proposal) currentStatus(now uint64) ProposalStatus {
	if p.expired(now) {
		return StatusExpired
	}
	return StatusInProgress
}

// addVote books a ballot into both tallies.
func (p *Proposal) addVote(voter sdk.Address, option string, weight Balance) {
	p.Votes[voter] = Vote{Option: option, Delegations: weight}
	p.OptionDelegations[option] = p.OptionDelegations[option].Add(weight)
	p.TotalDelegations = p.TotalDelegations.Add(weight)
}

// removeVote unbooks the voter's prior ballot if any.
func (p *Proposal) removeVote(voter sdk.Address) {
	prior, ok := p.Votes[voter]
	if !ok {
		return
	}
	tally, _ := p.OptionDelegations[prior.Option].Sub(prior.Delegations)
	p.OptionDelegations[prior.Option] = tally
	total, _ := p.TotalDelegations.Sub(prior.Delegations)
	p.TotalDelegations = total
	delete(p.Votes, voter)
}

func (c *Contract) loadProposal(id uint64) (*Proposal, error) {
	raw := c.state.Get(proposalKey(id))
	if raw == nil {
		return nil, errors.Wrapf(ErrNotFound, "proposal %d", id)
	}
	versioned, err := fromJSON[VersionedProposal](*raw)
	if err != nil {
		return nil, err
	}
	p := versioned.Current()
	if p == nil {
		return nil, errors.Wrapf(ErrCorruptRecord, "proposal %d has no known version", id)
	}
	return p, nil
}

func (c *Contract) saveProposal(id uint64, p *Proposal) error {
	raw, err := toJSON(VersionedProposal{V1: p})
	if err != nil {
		return err
	}
	c.state.Set(proposalKey(id), raw)
	return nil
}

// AddProposal creates a proposal from the caller and returns its dense id.
// Donation proposals carry no options; the options of a vote proposal are
// taken as given, keyed by their option id.
func (c *Contract) AddProposal(input ProposalInput) (uint64, error) {
	if _, err := c.config(); err != nil {
		return 0, err
	}
	if input.Duration <= minProposalDuration {
		return 0, errors.Wrapf(ErrInvalidDuration, "duration %d", input.Duration)
	}
	options := input.VoteOptions
	if !input.Kind.IsVote {
		options = map[string]VoteOption{}
	}
	if options == nil {
		options = map[string]VoteOption{}
	}
	p := &Proposal{
		Proposer:          c.env.Predecessor(),
		Title:             input.Title,
		Description:       input.Description,
		Kind:              input.Kind,
		Status:            StatusInProgress,
		VoteOptions:       options,
		Votes:             map[sdk.Address]Vote{},
		OptionDelegations: map[string]Balance{},
		Donations:         map[sdk.Address]Balance{},
		SubmissionTime:    c.env.BlockTimestamp(),
		Duration:          input.Duration,
	}
	id := c.counter(proposalCountKey)
	if err := c.saveProposal(id, p); err != nil {
		return 0, err
	}
	c.setCounter(proposalCountKey, id+1)
	emitProposal(id, p.Proposer)
	return id, nil
}

// donateToProposal books an earmarked donation. A donor's stake on one
// proposal is their latest transfer, not a running sum; the proposal total
// still grows by every transfer.
func (c *Contract) donateToProposal(id uint64, donor sdk.Address, amount Balance) error {
	p, err := c.loadProposal(id)
	if err != nil {
		return err
	}
	if p.Kind.IsVote {
		return errors.Wrapf(ErrWrongProposalKind, "proposal %d", id)
	}
	p.Donations[donor] = amount
	p.TotalDonations = p.TotalDonations.Add(amount)
	if err := c.saveProposal(id, p); err != nil {
		return err
	}
	emitProposalDonation(id, donor, amount)
	return nil
}

// FinalizeProposal pins a proposal to Expired. Owner-only housekeeping; the
// derived status already reports Expired once the window passes.
func (c *Contract) FinalizeProposal(id uint64) error {
	if _, err := c.requireOwner(); err != nil {
		return err
	}
	p, err := c.loadProposal(id)
	if err != nil {
		return err
	}
	p.Status = StatusExpired
	if err := c.saveProposal(id, p); err != nil {
		return err
	}
	emitFinalize(id)
	return nil
}

// GetLastProposalId reports the next id to be assigned, which equals the
// number of proposals created so far.
func (c *Contract) GetLastProposalId() uint64 {
	return c.counter(proposalCountKey)
}
