package main

import (
    "encoding/hex"
    "errors"
    "os"
    "path"
    "strings"

    starnotary "starnotary"
    bc "starnotary/blockchain"

    "go.dedis.ch/onet/v3/app"
    "go.dedis.ch/onet/v3/cfgpath"
    "go.dedis.ch/onet/v3/log"
    "golang.org/x/xerrors"
    "gopkg.in/urfave/cli.v1"
)

const (
    // DefaultName is the name of the binary we produce and is used to create a directory
    // folder with this name
    DefaultName = "starnotary"
)

func main() {
    cliApp := cli.NewApp()
    cliApp.Name = "starnotary"
    cliApp.Usage = "Register star ownership on a notary chain."
    cliApp.Version = "0.1"
    cliApp.Commands = cmds
    cliApp.Flags = []cli.Flag{
        cli.IntFlag{
            Name: "debug, d",
            Value: 0,
            Usage: "debug-level: 1 for terse, 5 for maximal,",
        },
        cli.StringFlag{
            Name: "config, c",
            Value: path.Join(cfgpath.GetConfigPath(DefaultName), app.DefaultGroupFile),
            Usage: "Configuration file of the server",
        },
        cli.StringFlag{
            Name: "wallet, w",
            Value: path.Join(cfgpath.GetConfigPath(DefaultName), "wallet.toml"),
            Usage: "Wallet file holding the signing key",
        },
    }
    cliApp.Before = func(c *cli.Context) error {
        log.SetDebugVisible(c.Int("debug"))
        return nil
    }
    log.ErrFatal(cliApp.Run(os.Args))
}

func parseConfig(c *cli.Context) *app.Group {
    config := c.GlobalString("config")
    if _, err := os.Stat(config); os.IsNotExist(err) {
        log.Fatalf("[-] Configuration file does not exist. %s", config)
    }
    f, err := os.Open(config)
    log.ErrFatal(err, "Couldn't open group definition file")
    group, err := app.ReadGroupDescToml(f)
    log.ErrFatal(err, "Error while reading group definition file", err)
    if len(group.Roster.List) == 0 {
        log.ErrFatalf(err, "Empty entity or invalid group definition in: %s", config)
    }
    return group
}

// Show the chain height.
func cmdHeight(c *cli.Context) error {
    group := parseConfig(c)
    client := starnotary.NewClient()
    height, err := client.GetHeight(group.Roster)
    if err != nil {
        return errors.New("Error: " + err.Error())
    }
    log.Info("Chain height:", height)
    return nil
}

func getIDPointer(s string) (*bc.BlockID, error) {
    if strings.HasPrefix(strings.ToLower(s), "0x") {
        s = s[2:]
    }
    if s == "" {
        return nil, nil
    }
    bHash, err := hex.DecodeString(s)
    if err != nil {
        return nil, xerrors.Errorf("couldn't decode %s: %+v", s, err)
    }
    blockID := bc.BlockID(bHash)
    return &blockID, nil
}

// Show one block given by height or hash, or the whole chain.
func showBlock(c *cli.Context) error {
    blockID, err := getIDPointer(c.String("hash"))
    if err != nil {
        return xerrors.Errorf("couldn't get hash: %+v", err)
    }
    blockHeight := c.Int("height")
    if blockHeight >= 0 && blockID != nil {
        return xerrors.New("--height or --hash don't same time")
    }

    group := parseConfig(c)
    client := starnotary.NewClient()

    if blockID == nil && blockHeight < 0 {
        blocks, err := client.GetAllBlocks(group.Roster)
        if err != nil {
            return xerrors.Errorf("couldn't get blocks: %+v", err)
        }
        for _, block := range blocks {
            log.Infof("%s", block.String())
        }
        return nil
    }

    var resp *bc.Block
    var resperr error
    if blockID != nil {
        resp, resperr = client.GetBlockByHash(group.Roster, *blockID)
    } else {
        resp, resperr = client.GetBlockByHeight(group.Roster, blockHeight)
    }
    if resperr != nil {
        return xerrors.Errorf("couldn't get block: %+v", resperr.Error())
    }
    log.Infof("%s", resp.String())
    return nil
}

// Show every star registered by a wallet address.
func showStars(c *cli.Context) error {
    if c.NArg() < 1 {
        return xerrors.New("please give the wallet address as argument")
    }
    address := c.Args().First()
    group := parseConfig(c)
    client := starnotary.NewClient()
    stars, err := client.GetStarsByWallet(group.Roster, address)
    if err != nil {
        return errors.New("Error: " + err.Error())
    }
    if len(stars) == 0 {
        log.Info("No stars registered for", address)
        return nil
    }
    for _, data := range stars {
        log.Infof("\tOwner: %s\n\tRA: %s\n\tDec: %s\n\tStory: %s",
            data.Owner, data.Star.RA, data.Star.Dec, data.Star.Story)
    }
    return nil
}

// Ask the service for a challenge message to sign.
func cmdChallenge(c *cli.Context) error {
    if c.NArg() < 1 {
        return xerrors.New("please give the wallet address as argument")
    }
    address := c.Args().First()
    group := parseConfig(c)
    client := starnotary.NewClient()
    message, err := client.RequestChallenge(group.Roster, address)
    if err != nil {
        return errors.New("Error: " + err.Error())
    }
    log.Info("Challenge:", message)
    return nil
}

func starFromFlags(c *cli.Context) *bc.Star {
    return &bc.Star{
        RA: c.String("ra"),
        Dec: c.String("dec"),
        Story: c.String("story"),
    }
}

// Submit an already-signed challenge with a star.
func submitStar(c *cli.Context) error {
    address := c.String("address")
    message := c.String("message")
    signature := c.String("signature")
    if address == "" || message == "" || signature == "" {
        return xerrors.New("please give --address, --message and --signature")
    }
    group := parseConfig(c)
    client := starnotary.NewClient()
    block, err := client.SubmitStar(group.Roster, &starnotary.StarSubmission{
        Address: address,
        Message: message,
        Signature: signature,
        Star: starFromFlags(c),
    })
    if err != nil {
        return errors.New("Error: " + err.Error())
    }
    log.Infof("Star registered.\n%s", block.String())
    return nil
}

// Run the whole handshake with the local wallet: request a challenge,
// sign it, submit the star.
func registerStar(c *cli.Context) error {
    wallet, err := loadWallet(c.GlobalString("wallet"))
    if err != nil {
        return xerrors.Errorf("couldn't load wallet: %+v", err)
    }
    group := parseConfig(c)
    client := starnotary.NewClient()
    message, err := client.RequestChallenge(group.Roster, wallet.Address)
    if err != nil {
        return errors.New("Error: " + err.Error())
    }
    signature, err := wallet.sign(message)
    if err != nil {
        return xerrors.Errorf("couldn't sign challenge: %+v", err)
    }
    block, err := client.SubmitStar(group.Roster, &starnotary.StarSubmission{
        Address: wallet.Address,
        Message: message,
        Signature: signature,
        Star: starFromFlags(c),
    })
    if err != nil {
        return errors.New("Error: " + err.Error())
    }
    log.Infof("Star registered.\n%s", block.String())
    return nil
}

// Audit the chain of the service.
func validateChain(c *cli.Context) error {
    group := parseConfig(c)
    client := starnotary.NewClient()
    resp, err := client.ValidateChain(group.Roster)
    if err != nil {
        return errors.New("Error: " + err.Error())
    }
    if resp.Valid {
        log.Info("Chain is consistent")
        return nil
    }
    log.Warn("Chain is corrupted:")
    for _, problem := range resp.Problems {
        log.Warn("\t", problem)
    }
    return nil
}

// Show the service counters.
func cmdStatus(c *cli.Context) error {
    group := parseConfig(c)
    client := starnotary.NewClient()
    resp, err := client.Status(group.Roster)
    if err != nil {
        return errors.New("Error: " + err.Error())
    }
    log.Infof("Submissions: %d - Height: %d", resp.Submissions, resp.Height)
    return nil
}

// Show the drift between the server clock and NTP.
func cmdDrift(c *cli.Context) error {
    group := parseConfig(c)
    client := starnotary.NewClient()
    resp, err := client.ClockDrift(group.Roster)
    if err != nil {
        return errors.New("Error: " + err.Error())
    }
    log.Infof("Server: %d - NTP: %d - Drift: %ds", resp.Local, resp.Remote, resp.Local-resp.Remote)
    return nil
}
