package starnotary

/*
This holds the messages used to communicate with the service over the network.
*/

import (
    bc "starnotary/blockchain"

    "go.dedis.ch/onet/v3/network"
)

// Register all messages so the network knows how to handle them.
func init() {
    network.RegisterMessages(
        HeightRequest{}, HeightReply{},
        BlocksRequest{}, BlocksReply{},
        BlockByHashRequest{}, BlockByHeightRequest{},
    )
    network.RegisterMessages(
        StarsRequest{}, StarsReply{},
        ChallengeRequest{}, ChallengeReply{},
        StarSubmission{},
    )
    network.RegisterMessages(
        ValidateRequest{}, ValidateReply{},
        StatusRequest{}, StatusReply{},
        DriftRequest{}, DriftReply{},
    )
}

// HeightRequest asks for the current chain height.
type HeightRequest struct {
}

// HeightReply returns the height of the latest block.
type HeightReply struct {
    Height int
}

// BlocksRequest asks for the full chain.
type BlocksRequest struct {
}

// BlocksReply returns a snapshot of the full ordered chain.
type BlocksReply struct {
    Blocks []*bc.Block
}

type BlockByHashRequest struct {
    Hash bc.BlockID
}

type BlockByHeightRequest struct {
    Height int
}

// StarsRequest asks for every star registered by a wallet address.
type StarsRequest struct {
    Address string
}

type StarsReply struct {
    Stars []*bc.BlockData
}

// ChallengeRequest asks for a fresh challenge message to sign.
type ChallengeRequest struct {
    Address string
}

type ChallengeReply struct {
    Message string
}

// StarSubmission carries the full registration handshake: the signed
// challenge message plus the star to register.
type StarSubmission struct {
    Address string
    Message string
    Signature string
    Star *bc.Star
}

// ValidateRequest asks the service to audit its own chain.
type ValidateRequest struct {
}

// ValidateReply lists every inconsistency found, in block order. An
// empty list means the chain is consistent.
type ValidateReply struct {
    Valid bool
    Problems []string
}

// StatusRequest asks for service counters.
type StatusRequest struct {
}

// StatusReply returns how many submissions this service processed and
// the current chain height.
type StatusReply struct {
    Submissions int
    Height int
}

// DriftRequest asks the server to compare its clock against NTP, to
// help debug expired challenges.
type DriftRequest struct {
}

type DriftReply struct {
    // Local is the server wall clock, Unix seconds.
    Local int64
    // Remote is the NTP time, Unix seconds.
    Remote int64
}
