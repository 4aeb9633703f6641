package blockchain

import (
    "bytes"
    "crypto/sha256"
    "encoding/binary"
    "encoding/hex"
    "fmt"
    "strings"
    "time"

    "golang.org/x/xerrors"
)

// Block is one record of the star notary ledger. Height, Timestamp,
// PrevBlock and Hash are assigned by the chain at append time and are
// immutable afterwards.
type Block struct {
    // Position of the block in the chain. Height = 0 -> genesis block.
    Height uint64
    // Time the block was appended, in Unix seconds.
    Timestamp uint64
    // Hash of the previous block in the chain, empty for the genesis block.
    PrevBlock BlockID
    // Body is the encoded payload carried by the block.
    Body []byte
    Hash BlockID
}

// NewBlock returns a block carrying body. The linkage fields stay zero
// until the chain appends it.
func NewBlock(body []byte) *Block {
    return &Block{
        Body: body,
    }
}

// CalculateHash hashes every field of the block except the stored hash
// itself, so a stored hash can always be checked by recomputation.
func (b *Block) CalculateHash() (BlockID, error) {
    var err error
    hash := sha256.New()
    for _, val := range []uint64{b.Height, b.Timestamp} {
        err = binary.Write(hash, binary.LittleEndian, val)
        if err != nil {
            return nil, xerrors.Errorf("error writing to hash: %v", err)
        }
    }
    hash.Write(b.PrevBlock)
    hash.Write(b.Body)
    buf := hash.Sum(nil)
    return buf, nil
}

// Validate recomputes the block hash and reports whether it matches the
// stored one. Any mutation after append makes this return false.
func (b *Block) Validate() bool {
    hash, err := b.CalculateHash()
    if err != nil {
        return false
    }
    return bytes.Equal(hash, b.Hash)
}

// DecodePayload deserializes the block body back to its structured form.
func (b *Block) DecodePayload() (*BlockData, error) {
    return DecodeBlockData(b.Body)
}

// Copy makes a deep copy of the Block
func (b *Block) Copy() *Block {
    if b == nil {
        return nil
    }
    prevBlock := make(BlockID, len(b.PrevBlock))
    copy(prevBlock, b.PrevBlock)
    body := make([]byte, len(b.Body))
    copy(body, b.Body)
    hash := make(BlockID, len(b.Hash))
    copy(hash, b.Hash)
    return &Block{
        Height:	b.Height,
        Timestamp:	b.Timestamp,
        PrevBlock:	prevBlock,
        Body:	body,
        Hash:	hash,
    }
}

func (b *Block) String() string {
    var builder strings.Builder
    builder.WriteString(fmt.Sprintf("Block %d", b.Height))
    builder.WriteString(fmt.Sprintf("\n\tTimestamp: %s", time.Unix(int64(b.Timestamp), 0).Format("2006-01-02 15:04:05")))
    builder.WriteString(fmt.Sprintf("\n\tPrevBlock: %s", hex.EncodeToString(b.PrevBlock)))
    builder.WriteString(fmt.Sprintf("\n\tBody: %s", hex.EncodeToString(b.Body)))
    builder.WriteString(fmt.Sprintf("\n\tHash: %s", hex.EncodeToString(b.Hash)))
    return builder.String()
}
