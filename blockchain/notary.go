package blockchain

import (
    "fmt"
    "strconv"
    "strings"

    "golang.org/x/xerrors"
)

const (
    // ChallengeTag closes every challenge message issued by the notary.
    ChallengeTag = "starRegistry"
    // ChallengeWindowSeconds is how long a challenge stays signable.
    ChallengeWindowSeconds = 300
)

// Verifier checks that signature was produced over message by the wallet
// behind address. The chain treats it as an opaque capability; any error
// counts as a failed check.
type Verifier interface {
    Verify(message, address, signature string) error
}

// RequestChallenge issues the message a wallet must sign to prove
// possession of address before registering a star.
func (c *Chain) RequestChallenge(address string) string {
    return fmt.Sprintf("%s:%d:%s", address, c.now().Unix(), ChallengeTag)
}

// SubmitStar runs the registration handshake: the challenge timestamp
// must be inside the signing window and the signature must verify, in
// that order, each step final. Only full success appends a block.
func (c *Chain) SubmitStar(address, message, signature string, star *Star) (*Block, error) {
    issued, err := challengeTimestamp(message)
    if err != nil {
        return nil, err
    }
    elapsed := c.now().Unix() - issued
    if elapsed >= ChallengeWindowSeconds {
        return nil, xerrors.Errorf("%ds elapsed since challenge: %w", elapsed, ErrChallengeExpired)
    }
    if err := c.verifier.Verify(message, address, signature); err != nil {
        return nil, xerrors.Errorf("verification failed (%v): %w", err, ErrInvalidSignature)
    }
    body, err := EncodeBlockData(&BlockData{
        Owner: address,
        Star: star,
    })
    if err != nil {
        return nil, err
    }
    return c.AppendBlock(NewBlock(body))
}

// challengeTimestamp parses the issue time out of a challenge message of
// the form "<address>:<timestamp>:starRegistry".
func challengeTimestamp(message string) (int64, error) {
    fields := strings.Split(message, ":")
    if len(fields) < 2 {
        return 0, xerrors.Errorf("%q: %w", message, ErrMalformedChallenge)
    }
    issued, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
        return 0, xerrors.Errorf("%q: %w", message, ErrMalformedChallenge)
    }
    return issued, nil
}
