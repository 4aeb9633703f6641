package service

import (
    "errors"
    "sync"

    "starnotary"
    bc "starnotary/blockchain"
    "starnotary/utils"

    "go.dedis.ch/onet/v3"
    "go.dedis.ch/onet/v3/log"
    "go.dedis.ch/onet/v3/network"
    "golang.org/x/xerrors"
)

var serviceID onet.ServiceID

func init() {
    var err error
    serviceID, err = onet.RegisterNewService(starnotary.ServiceName, newService)
    log.ErrFatal(err)
    network.RegisterMessage(&storage{})
}

// Service hosts one star notary chain. The chain guards itself with its
// own lock; the service only adds the client-facing handlers and the
// submission counter.
type Service struct {
    // We need to embed the ServiceProcessor, so that incoming messages
    // are correctly handled.
    *onet.ServiceProcessor

    chain *bc.Chain

    storage *storage
}

var storageID = []byte("main")

// storage is used to save our data.
type storage struct {
    Submissions int
    sync.Mutex
}

// GetHeight returns the height of the latest block.
func (s *Service) GetHeight(req *starnotary.HeightRequest) (*starnotary.HeightReply, error) {
    return &starnotary.HeightReply{Height: s.chain.Height()}, nil
}

// GetAllBlocks returns a snapshot of the full chain.
func (s *Service) GetAllBlocks(req *starnotary.BlocksRequest) (*starnotary.BlocksReply, error) {
    return &starnotary.BlocksReply{Blocks: s.chain.Blocks()}, nil
}

// GetBlockByHash looks a block up by its hash.
func (s *Service) GetBlockByHash(req *starnotary.BlockByHashRequest) (*bc.Block, error) {
    block := s.chain.GetBlockByHash(req.Hash)
    if block == nil {
        return nil, xerrors.New("No such block")
    }
    return block, nil
}

// GetBlockByHeight looks a block up by its height.
func (s *Service) GetBlockByHeight(req *starnotary.BlockByHeightRequest) (*bc.Block, error) {
    block := s.chain.GetBlockByHeight(req.Height)
    if block == nil {
        return nil, xerrors.New("No such block")
    }
    return block, nil
}

// GetStarsByWallet returns every star registered by the given wallet.
func (s *Service) GetStarsByWallet(req *starnotary.StarsRequest) (*starnotary.StarsReply, error) {
    stars, err := s.chain.GetStarsByWallet(req.Address)
    if err != nil {
        return nil, err
    }
    return &starnotary.StarsReply{Stars: stars}, nil
}

// RequestChallenge issues the message the wallet must sign.
func (s *Service) RequestChallenge(req *starnotary.ChallengeRequest) (*starnotary.ChallengeReply, error) {
    message := s.chain.RequestChallenge(req.Address)
    log.Lvl3("Issued challenge:", message)
    return &starnotary.ChallengeReply{Message: message}, nil
}

// SubmitStar runs the registration handshake and returns the appended
// block. Every submission, accepted or not, bumps the counter.
func (s *Service) SubmitStar(req *starnotary.StarSubmission) (*bc.Block, error) {
    s.storage.Lock()
    s.storage.Submissions++
    s.storage.Unlock()
    s.save()
    block, err := s.chain.SubmitStar(req.Address, req.Message, req.Signature, req.Star)
    if err != nil {
        log.Lvl2("Star submission refused:", err)
        return nil, err
    }
    log.Lvlf2("Registered star for %s at height %d", req.Address, block.Height)
    return block, nil
}

// ValidateChain audits the chain and reports every inconsistency.
func (s *Service) ValidateChain(req *starnotary.ValidateRequest) (*starnotary.ValidateReply, error) {
    err := s.chain.ValidateChain()
    if err == nil {
        return &starnotary.ValidateReply{Valid: true}, nil
    }
    var verr *bc.ValidationError
    if !errors.As(err, &verr) {
        return nil, err
    }
    return &starnotary.ValidateReply{Valid: false, Problems: verr.Problems}, nil
}

// Status returns the submission counter next to the chain height.
func (s *Service) Status(req *starnotary.StatusRequest) (*starnotary.StatusReply, error) {
    s.storage.Lock()
    defer s.storage.Unlock()
    return &starnotary.StatusReply{
        Submissions: s.storage.Submissions,
        Height: s.chain.Height(),
    }, nil
}

// ClockDrift reports the server clock next to NTP time. The challenge
// window depends on the server wall clock, so a skewed server shows up
// here before it shows up as rejected submissions.
func (s *Service) ClockDrift(req *starnotary.DriftRequest) (*starnotary.DriftReply, error) {
    remote, err := getRemoteTime()
    if err != nil {
        return nil, err
    }
    return &starnotary.DriftReply{
        Local: localTime().Unix(),
        Remote: remote.Unix(),
    }, nil
}

// saves all data.
func (s *Service) save() {
    s.storage.Lock()
    defer s.storage.Unlock()
    err := s.Save(storageID, s.storage)
    if err != nil {
        log.Error("Couldn't save data:", err)
    }
}

// Tries to load the configuration and updates the data in the service
// if it finds a valid config-file.
func (s *Service) tryLoad() error {
    s.storage = &storage{}
    msg, err := s.Load(storageID)
    if err != nil {
        return err
    }
    if msg != nil {
        var ok bool
        s.storage, ok = msg.(*storage)
        if !ok {
            return errors.New("Data of wrong type")
        }
    }
    return nil
}

// newService receives the context that holds information about the node it's
// running on. Saving and loading can be done using the context. The data will
// be stored in memory for tests and simulations, and on disk for real deployments.
func newService(c *onet.Context) (onet.Service, error) {
    chain, err := bc.New(utils.SchnorrVerifier{})
    if err != nil {
        log.Error(err)
        return nil, err
    }
    s := &Service{
        ServiceProcessor: onet.NewServiceProcessor(c),
        chain: chain,
    }
    if err := s.RegisterHandlers(
        s.GetHeight, s.GetAllBlocks,
        s.GetBlockByHash, s.GetBlockByHeight,
        s.GetStarsByWallet,
    ); err != nil {
        return nil, errors.New("Couldn't register handlers")
    }
    if err := s.RegisterHandlers(
        s.RequestChallenge, s.SubmitStar,
        s.ValidateChain, s.Status, s.ClockDrift,
    ); err != nil {
        return nil, errors.New("Couldn't register handlers")
    }
    if err := s.tryLoad(); err != nil {
        log.Error(err)
        return nil, err
    }
    return s, nil
}
