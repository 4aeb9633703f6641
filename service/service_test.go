package service

import (
    "testing"

    "starnotary"
    bc "starnotary/blockchain"
    "starnotary/utils"

    "github.com/stretchr/testify/require"
    "go.dedis.ch/cothority/v3"
    "go.dedis.ch/kyber/v3"
    "go.dedis.ch/kyber/v3/util/encoding"
    "go.dedis.ch/kyber/v3/util/key"
    "go.dedis.ch/onet/v3"
    "go.dedis.ch/onet/v3/log"
)

var tSuite = cothority.Suite

var blockchainStar = bc.Star{
    RA: "16h 29m 24s",
    Dec: "-26d 25m 55s",
    Story: "Antares, brightest star in Scorpius",
}

func TestMain(m *testing.M) {
    log.MainTest(m)
}

func newTestWallet(t *testing.T) (kyber.Scalar, string) {
    kp := key.NewKeyPair(tSuite)
    address, err := encoding.PointToStringHex(tSuite, kp.Public)
    require.NoError(t, err)
    return kp.Private, address
}

func TestClient_FreshChain(t *testing.T) {
    local := onet.NewTCPTest(tSuite)
    _, roster, _ := local.GenTree(1, true)
    defer local.CloseAll()

    client := starnotary.NewClient()
    height, err := client.GetHeight(roster)
    require.NoError(t, err)
    require.Equal(t, 0, height)

    blocks, err := client.GetAllBlocks(roster)
    require.NoError(t, err)
    require.Len(t, blocks, 1)
    require.Empty(t, blocks[0].PrevBlock)

    data, err := blocks[0].DecodePayload()
    require.NoError(t, err)
    require.Equal(t, "First block in the chain - Genesis block", data.Note)

    resp, err := client.ValidateChain(roster)
    require.NoError(t, err)
    require.True(t, resp.Valid)
    require.Empty(t, resp.Problems)
}

func TestClient_RegisterStar(t *testing.T) {
    local := onet.NewTCPTest(tSuite)
    _, roster, _ := local.GenTree(1, true)
    defer local.CloseAll()

    client := starnotary.NewClient()
    private, address := newTestWallet(t)

    message, err := client.RequestChallenge(roster, address)
    require.NoError(t, err)
    require.Contains(t, message, address+":")
    require.Contains(t, message, ":starRegistry")

    signature, err := utils.SignChallenge(private, message)
    require.NoError(t, err)

    block, err := client.SubmitStar(roster, &starnotary.StarSubmission{
        Address: address,
        Message: message,
        Signature: signature,
        Star: &blockchainStar,
    })
    require.NoError(t, err)
    require.EqualValues(t, 1, block.Height)

    data, err := block.DecodePayload()
    require.NoError(t, err)
    require.Equal(t, address, data.Owner)
    require.Equal(t, blockchainStar.Story, data.Star.Story)

    stars, err := client.GetStarsByWallet(roster, address)
    require.NoError(t, err)
    require.Len(t, stars, 1)

    byHeight, err := client.GetBlockByHeight(roster, 1)
    require.NoError(t, err)
    require.Equal(t, block.Hash.String(), byHeight.Hash.String())

    byHash, err := client.GetBlockByHash(roster, block.Hash)
    require.NoError(t, err)
    require.EqualValues(t, 1, byHash.Height)

    status, err := client.Status(roster)
    require.NoError(t, err)
    require.Equal(t, 1, status.Submissions)
    require.Equal(t, 1, status.Height)
}

func TestClient_RejectedSubmission(t *testing.T) {
    local := onet.NewTCPTest(tSuite)
    _, roster, _ := local.GenTree(1, true)
    defer local.CloseAll()

    client := starnotary.NewClient()
    _, address := newTestWallet(t)

    message, err := client.RequestChallenge(roster, address)
    require.NoError(t, err)

    // A signature by a different wallet must be refused without growing
    // the chain.
    otherPrivate, _ := newTestWallet(t)
    signature, err := utils.SignChallenge(otherPrivate, message)
    require.NoError(t, err)

    _, err = client.SubmitStar(roster, &starnotary.StarSubmission{
        Address: address,
        Message: message,
        Signature: signature,
        Star: &blockchainStar,
    })
    require.Error(t, err)

    height, err := client.GetHeight(roster)
    require.NoError(t, err)
    require.Equal(t, 0, height)

    // The rejected submission still counts.
    status, err := client.Status(roster)
    require.NoError(t, err)
    require.Equal(t, 1, status.Submissions)
}

func TestClient_LookupAbsent(t *testing.T) {
    local := onet.NewTCPTest(tSuite)
    _, roster, _ := local.GenTree(1, true)
    defer local.CloseAll()

    client := starnotary.NewClient()
    _, err := client.GetBlockByHeight(roster, 99)
    require.Error(t, err)
}
