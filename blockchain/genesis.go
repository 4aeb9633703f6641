package blockchain

// GenesisNote is the fixed payload marker of the first block in the chain.
const GenesisNote = "First block in the chain - Genesis block"

// NewGenesisBlock builds the unlinked genesis block. The chain assigns
// height, timestamp and hash when it appends it, like any other block.
func NewGenesisBlock() (*Block, error) {
    body, err := EncodeBlockData(&BlockData{
        Note: GenesisNote,
    })
    if err != nil {
        return nil, err
    }
    return NewBlock(body), nil
}
