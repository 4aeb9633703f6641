package utils

import (
    "encoding/hex"

    "go.dedis.ch/kyber/v3"
    "go.dedis.ch/kyber/v3/sign/schnorr"
    "go.dedis.ch/kyber/v3/suites"
    "go.dedis.ch/kyber/v3/util/encoding"
    "golang.org/x/xerrors"
)

// A wallet address is the hex encoding of an Ed25519 public point.

// ParseWalletAddress converts a wallet address back to the public point
// it encodes.
func ParseWalletAddress(address string) (kyber.Point, error) {
    suite, err := suites.Find("Ed25519")
    if err != nil {
        return nil, xerrors.Errorf("kyber suite: %v", err)
    }
    point, err := encoding.StringHexToPoint(suite, address)
    if err != nil {
        return nil, xerrors.Errorf("parsing public key error: %v", err)
    }
    return point, nil
}

// SchnorrVerifier checks challenge signatures with the Schnorr scheme
// over Ed25519. It satisfies blockchain.Verifier.
type SchnorrVerifier struct{}

// Verify returns nil only if signature is a valid hex-encoded Schnorr
// signature over message for the wallet behind address.
func (SchnorrVerifier) Verify(message, address, signature string) error {
    suite, err := suites.Find("Ed25519")
    if err != nil {
        return xerrors.Errorf("kyber suite: %v", err)
    }
    point, err := ParseWalletAddress(address)
    if err != nil {
        return err
    }
    sig, err := hex.DecodeString(signature)
    if err != nil {
        return xerrors.Errorf("decoding signature: %v", err)
    }
    if err := schnorr.Verify(suite, point, []byte(message), sig); err != nil {
        return xerrors.Errorf("schnorr verify: %v", err)
    }
    return nil
}

// SignChallenge signs a challenge message with a wallet private key and
// returns the hex signature the notary expects.
func SignChallenge(private kyber.Scalar, message string) (string, error) {
    suite, err := suites.Find("Ed25519")
    if err != nil {
        return "", xerrors.Errorf("kyber suite: %v", err)
    }
    sig, err := schnorr.Sign(suite, private, []byte(message))
    if err != nil {
        return "", xerrors.Errorf("schnorr sign: %v", err)
    }
    return hex.EncodeToString(sig), nil
}
