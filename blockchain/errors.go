package blockchain

import (
    "fmt"
    "strings"

    "golang.org/x/xerrors"
)

var (
    // ErrChallengeExpired is returned when a star submission arrives
    // after the signing window has elapsed.
    ErrChallengeExpired = xerrors.New("challenge window expired")
    // ErrInvalidSignature is returned when the signature check fails or
    // errors for any reason.
    ErrInvalidSignature = xerrors.New("invalid signature")
    // ErrMalformedChallenge is returned when no timestamp can be parsed
    // out of a submitted challenge message.
    ErrMalformedChallenge = xerrors.New("malformed challenge message")
    // ErrBadPayload is returned when a stored block body cannot be
    // decoded back to structured data.
    ErrBadPayload = xerrors.New("malformed block payload")
)

// ValidationError reports every inconsistency found by a chain walk, in
// block order, never just the first one.
type ValidationError struct {
    Problems []string
}

func (e *ValidationError) Error() string {
    return fmt.Sprintf("chain validation failed: %s", strings.Join(e.Problems, "; "))
}

// ChainCorruptedError is returned when the pre-append validation of the
// existing chain finds inconsistencies and the new block is refused.
type ChainCorruptedError struct {
    Problems []string
}

func (e *ChainCorruptedError) Error() string {
    return fmt.Sprintf("chain corrupted, block refused: %s", strings.Join(e.Problems, "; "))
}
