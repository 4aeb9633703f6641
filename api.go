package starnotary

/*
The api.go defines the methods that can be called from the outside. Most
of the methods will take a roster so that the service knows which nodes
it should work with.

This part of the service runs on the client or the app.
*/

import (
    bc "starnotary/blockchain"

    "go.dedis.ch/cothority/v3"
    "go.dedis.ch/onet/v3"
    "go.dedis.ch/onet/v3/log"
)

// ServiceName is used for registration on the onet.
const ServiceName = "StarNotaryService"

// Client is a structure to communicate with the star notary service
type Client struct {
    *onet.Client
}

// NewClient instantiates a new starnotary.Client
func NewClient() *Client {
    return &Client{Client: onet.NewClient(cothority.Suite, ServiceName)}
}

// GetHeight returns the height of the latest block of the chain.
func (c *Client) GetHeight(r *onet.Roster) (int, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &HeightReply{}
    err := c.SendProtobuf(dst, &HeightRequest{}, reply)
    if err != nil {
        return -1, err
    }
    return reply.Height, nil
}

// GetAllBlocks returns a snapshot of the full ordered chain.
func (c *Client) GetAllBlocks(r *onet.Roster) ([]*bc.Block, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &BlocksReply{}
    err := c.SendProtobuf(dst, &BlocksRequest{}, reply)
    if err != nil {
        return nil, err
    }
    return reply.Blocks, nil
}

// GetBlockByHash returns the block with the given hash.
func (c *Client) GetBlockByHash(r *onet.Roster, hash bc.BlockID) (*bc.Block, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &bc.Block{}
    err := c.SendProtobuf(dst, &BlockByHashRequest{hash}, reply)
    if err != nil {
        return nil, err
    }
    return reply, nil
}

// GetBlockByHeight returns the block at the given height.
func (c *Client) GetBlockByHeight(r *onet.Roster, height int) (*bc.Block, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &bc.Block{}
    err := c.SendProtobuf(dst, &BlockByHeightRequest{height}, reply)
    if err != nil {
        return nil, err
    }
    return reply, nil
}

// GetStarsByWallet returns every star registered by a wallet address.
func (c *Client) GetStarsByWallet(r *onet.Roster, address string) ([]*bc.BlockData, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &StarsReply{}
    err := c.SendProtobuf(dst, &StarsRequest{address}, reply)
    if err != nil {
        return nil, err
    }
    return reply.Stars, nil
}

// RequestChallenge asks the service for the challenge message the wallet
// behind address must sign before submitting a star.
func (c *Client) RequestChallenge(r *onet.Roster, address string) (string, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &ChallengeReply{}
    err := c.SendProtobuf(dst, &ChallengeRequest{address}, reply)
    if err != nil {
        return "", err
    }
    return reply.Message, nil
}

// SubmitStar submits a signed challenge with a star and returns the
// appended block.
func (c *Client) SubmitStar(r *onet.Roster, sub *StarSubmission) (*bc.Block, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &bc.Block{}
    err := c.SendProtobuf(dst, sub, reply)
    if err != nil {
        return nil, err
    }
    return reply, nil
}

// ValidateChain asks the service to audit its own chain.
func (c *Client) ValidateChain(r *onet.Roster) (*ValidateReply, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &ValidateReply{}
    err := c.SendProtobuf(dst, &ValidateRequest{}, reply)
    if err != nil {
        return nil, err
    }
    return reply, nil
}

// Status returns the submission counter and height of the service.
func (c *Client) Status(r *onet.Roster) (*StatusReply, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &StatusReply{}
    err := c.SendProtobuf(dst, &StatusRequest{}, reply)
    if err != nil {
        return nil, err
    }
    return reply, nil
}

// ClockDrift returns the server clock next to NTP time.
func (c *Client) ClockDrift(r *onet.Roster) (*DriftReply, error) {
    dst := r.RandomServerIdentity()
    log.Lvl4("Sending message to", dst)
    reply := &DriftReply{}
    err := c.SendProtobuf(dst, &DriftRequest{}, reply)
    if err != nil {
        return nil, err
    }
    return reply, nil
}
