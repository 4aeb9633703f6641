package utils

import (
    "testing"

    "go.dedis.ch/kyber/v3/suites"
    "go.dedis.ch/kyber/v3/util/encoding"
    "go.dedis.ch/kyber/v3/util/key"
)

func newTestWallet(t *testing.T) (private string, address string) {
    t.Helper()
    suite, err := suites.Find("Ed25519")
    if err != nil {
        t.Fatalf("kyber suite: %v", err)
    }
    kp := key.NewKeyPair(suite)
    address, err = encoding.PointToStringHex(suite, kp.Public)
    if err != nil {
        t.Fatalf("encoding public key: %v", err)
    }
    private, err = encoding.ScalarToStringHex(suite, kp.Private)
    if err != nil {
        t.Fatalf("encoding private key: %v", err)
    }
    return private, address
}

func TestSignAndVerify(t *testing.T) {
    suite, err := suites.Find("Ed25519")
    if err != nil {
        t.Fatalf("kyber suite: %v", err)
    }
    privateHex, address := newTestWallet(t)
    private, err := encoding.StringHexToScalar(suite, privateHex)
    if err != nil {
        t.Fatalf("parsing private key: %v", err)
    }

    message := address + ":1597680000:starRegistry"
    signature, err := SignChallenge(private, message)
    if err != nil {
        t.Fatalf("sign: %v", err)
    }

    verifier := SchnorrVerifier{}
    if err := verifier.Verify(message, address, signature); err != nil {
        t.Errorf("valid signature must verify: %v", err)
    }
    if err := verifier.Verify(message+"x", address, signature); err == nil {
        t.Errorf("signature over a different message must not verify")
    }

    _, otherAddress := newTestWallet(t)
    if err := verifier.Verify(message, otherAddress, signature); err == nil {
        t.Errorf("signature must not verify for another wallet")
    }
}

func TestVerifyMalformedInput(t *testing.T) {
    _, address := newTestWallet(t)
    verifier := SchnorrVerifier{}
    if err := verifier.Verify("msg", "not-hex!", "00"); err == nil {
        t.Errorf("malformed address must fail verification")
    }
    if err := verifier.Verify("msg", address, "not-hex!"); err == nil {
        t.Errorf("malformed signature must fail verification")
    }
    if err := verifier.Verify("msg", address, "0000"); err == nil {
        t.Errorf("truncated signature must fail verification")
    }
}

func TestParseWalletAddress(t *testing.T) {
    _, address := newTestWallet(t)
    if _, err := ParseWalletAddress(address); err != nil {
        t.Errorf("well-formed address must parse: %v", err)
    }
    if _, err := ParseWalletAddress("zz"); err == nil {
        t.Errorf("non-hex address must not parse")
    }
}
