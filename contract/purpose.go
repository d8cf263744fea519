package contract

import (
	"encoding/json"

	"community_dao/sdk"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/pkg/errors"
)

// PurposeTag discriminates the transfer-purpose union.
type PurposeTag uint8

const (
	PurposeOpenDonate PurposeTag = iota
	PurposeDelegate
	PurposeProposalDonate
	PurposeCreateBounty
)

// TransferPurpose is the instruction attached to an incoming token transfer.
// On the wire it is externally tagged: the bare string "OpenDonate", or a
// single-key object like {"Delegate":"alice.community"},
// {"ProposalDonate":7}, {"CreateBounty":{...}}. Decoding runs on every
// ft_on_transfer call, so it uses the streaming lexer instead of reflection.
type TransferPurpose struct {
	Tag      PurposeTag
	Delegate sdk.Address
	Proposal uint64
	Bounty   *BountyInput
}

// transferNote is the outer msg payload carried by ft_transfer_call.
type transferNote struct {
	Purpose    TransferPurpose
	hasPurpose bool
}

func (n *TransferPurpose) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Null()
		in.AddError(errors.New("purpose is null"))
		return
	}
	if !in.IsDelim('{') {
		// Unit variant arrives as a bare string.
		tag := in.String()
		if tag != "OpenDonate" {
			in.AddError(errors.Errorf("unknown purpose %q", tag))
			return
		}
		n.Tag = PurposeOpenDonate
		return
	}
	in.Delim('{')
	if in.IsDelim('}') {
		in.Delim('}')
		in.AddError(errors.New("empty purpose object"))
		return
	}
	key := in.UnsafeFieldName(false)
	in.WantColon()
	switch key {
	case "Delegate":
		n.Tag = PurposeDelegate
		n.Delegate = sdk.Address(in.String())
		if !n.Delegate.IsValid() {
			in.AddError(errors.Errorf("invalid delegate account %q", n.Delegate))
		}
	case "ProposalDonate":
		n.Tag = PurposeProposalDonate
		n.Proposal = in.Uint64()
	case "CreateBounty":
		n.Tag = PurposeCreateBounty
		// The bounty body nests maps of balances; hand it to the reflective
		// decoder rather than unrolling it here.
		raw := in.Raw()
		if in.Error() != nil {
			return
		}
		var body BountyInput
		if err := json.Unmarshal(raw, &body); err != nil {
			in.AddError(err)
			return
		}
		n.Bounty = &body
	default:
		in.AddError(errors.Errorf("unknown purpose %q", key))
		in.SkipRecursive()
	}
	in.WantComma()
	in.Delim('}')
}

func (n TransferPurpose) MarshalTinyJSON(out *jwriter.Writer) {
	switch n.Tag {
	case PurposeOpenDonate:
		out.String("OpenDonate")
	case PurposeDelegate:
		out.RawString(`{"Delegate":`)
		out.String(n.Delegate.String())
		out.RawByte('}')
	case PurposeProposalDonate:
		out.RawString(`{"ProposalDonate":`)
		out.Uint64(n.Proposal)
		out.RawByte('}')
	case PurposeCreateBounty:
		out.RawString(`{"CreateBounty":`)
		out.Raw(json.Marshal(n.Bounty))
		out.RawByte('}')
	}
}

func (n *transferNote) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Null()
		in.AddError(errors.New("note is null"))
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "purpose":
			n.Purpose.UnmarshalTinyJSON(in)
			n.hasPurpose = true
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (n transferNote) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"purpose":`)
	n.Purpose.MarshalTinyJSON(out)
	out.RawByte('}')
}

// decodePurpose parses the msg string of a transfer callback.
func decodePurpose(msg string) (TransferPurpose, error) {
	var note transferNote
	if err := tinyjson.Unmarshal([]byte(msg), &note); err != nil {
		return TransferPurpose{}, errors.Wrapf(ErrMalformedPayload, "%v", err)
	}
	if !note.hasPurpose {
		return TransferPurpose{}, errors.Wrap(ErrMalformedPayload, "missing purpose")
	}
	return note.Purpose, nil
}

// encodePurpose renders the msg string a sender would attach. Exported via
// the views so clients and tests build payloads the same way.
func encodePurpose(p TransferPurpose) (string, error) {
	data, err := tinyjson.Marshal(transferNote{Purpose: p})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
