package blockchain

import (
    "encoding/hex"

    "go.dedis.ch/onet/v3/network"
    "go.dedis.ch/protobuf"
    "golang.org/x/xerrors"
)

const HashSize = 32

// BlockID represents the Hash of the Block
type BlockID []byte

func (id BlockID) String() string {
    return hex.EncodeToString(id)
}

// Star holds the celestial coordinates and story a wallet owner attaches
// to a registration.
type Star struct {
    RA string
    Dec string
    Story string
}

// BlockData is the structured form of a block body. The genesis block
// carries only Note; every registered star carries Owner and Star.
type BlockData struct {
    Note string
    Owner string
    Star *Star `protobuf:"opt"`
}

// EncodeBlockData serializes data into the byte form stored in a block body.
func EncodeBlockData(data *BlockData) ([]byte, error) {
    buf, err := protobuf.Encode(data)
    if err != nil {
        return nil, xerrors.Errorf("encoding block data: %v", err)
    }
    return buf, nil
}

// DecodeBlockData is the inverse of EncodeBlockData.
func DecodeBlockData(buf []byte) (*BlockData, error) {
    data := &BlockData{}
    if err := protobuf.Decode(buf, data); err != nil {
        return nil, xerrors.Errorf("decoding block data (%v): %w", err, ErrBadPayload)
    }
    return data, nil
}

func init() {
    network.RegisterMessage(&Block{})
}
