package main

import (
    "os"

    "starnotary/utils"

    "github.com/BurntSushi/toml"
    "go.dedis.ch/cothority/v3"
    "go.dedis.ch/kyber/v3/util/encoding"
    "go.dedis.ch/kyber/v3/util/key"
    "go.dedis.ch/onet/v3/log"
    "golang.org/x/xerrors"
    "gopkg.in/urfave/cli.v1"
)

// wallet is the TOML file holding the key pair a star owner signs
// challenges with. The address is the hex form of the public point.
type wallet struct {
    Private string
    Address string
}

func loadWallet(path string) (*wallet, error) {
    w := &wallet{}
    if _, err := toml.DecodeFile(path, w); err != nil {
        return nil, xerrors.Errorf("reading wallet file %s: %v", path, err)
    }
    if w.Private == "" || w.Address == "" {
        return nil, xerrors.Errorf("wallet file %s is incomplete", path)
    }
    return w, nil
}

func (w *wallet) save(path string) error {
    f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
    if err != nil {
        return xerrors.Errorf("creating wallet file %s: %v", path, err)
    }
    defer f.Close()
    if err := toml.NewEncoder(f).Encode(w); err != nil {
        return xerrors.Errorf("writing wallet file %s: %v", path, err)
    }
    return nil
}

func (w *wallet) sign(message string) (string, error) {
    private, err := encoding.StringHexToScalar(cothority.Suite, w.Private)
    if err != nil {
        return "", xerrors.Errorf("parsing private key: %v", err)
    }
    return utils.SignChallenge(private, message)
}

// Create a new key pair and store it in the wallet file.
func newWallet(c *cli.Context) error {
    path := c.GlobalString("wallet")
    if _, err := os.Stat(path); err == nil {
        return xerrors.Errorf("wallet file %s already exists", path)
    }
    kp := key.NewKeyPair(cothority.Suite)
    private, err := encoding.ScalarToStringHex(cothority.Suite, kp.Private)
    if err != nil {
        return xerrors.Errorf("encoding private key: %v", err)
    }
    address, err := encoding.PointToStringHex(cothority.Suite, kp.Public)
    if err != nil {
        return xerrors.Errorf("encoding public key: %v", err)
    }
    w := &wallet{Private: private, Address: address}
    if err := w.save(path); err != nil {
        return err
    }
    log.Info("New wallet address:", address)
    return nil
}

// Show the wallet address.
func showWallet(c *cli.Context) error {
    w, err := loadWallet(c.GlobalString("wallet"))
    if err != nil {
        return err
    }
    log.Info("Wallet address:", w.Address)
    return nil
}

// Sign a challenge message with the wallet key.
func signWithWallet(c *cli.Context) error {
    if c.NArg() < 1 {
        return xerrors.New("please give the challenge message as argument")
    }
    w, err := loadWallet(c.GlobalString("wallet"))
    if err != nil {
        return err
    }
    signature, err := w.sign(c.Args().First())
    if err != nil {
        return err
    }
    log.Info("Signature:", signature)
    return nil
}
