package main

import (
    "fmt"

    "gopkg.in/urfave/cli.v1"
)

var starFlags = []cli.Flag{
    cli.StringFlag{
        Name: "ra",
        Usage: "right ascension of the star",
    },
    cli.StringFlag{
        Name: "dec",
        Usage: "declination of the star",
    },
    cli.StringFlag{
        Name: "story",
        Usage: "story attached to the star",
    },
}

var cmds = cli.Commands{
    {
        Name:	"wallet",
        Usage:	"Manage the local signing wallet.",
        Aliases:	[]string{"w"},
        ArgsUsage: "[new|show|sign] [<arg>...]",
        Description: fmt.Sprint(`
            starnotary wallet new
            starnotary wallet show
            starnotary wallet sign MESSAGE
        `),
        Subcommands: cli.Commands{
            {
                Name: "new",
                Usage:  "Create a new wallet key pair",
                Action: newWallet,
            },
            {
                Name: "show",
                Usage:  "Show the wallet address",
                Action: showWallet,
            },
            {
                Name: "sign",
                Usage:  "Sign a challenge message with the wallet key",
                ArgsUsage: "MESSAGE",
                Action: signWithWallet,
            },
        },
    },
    {
        Name:	"height",
        Usage:	"Show the chain height.",
        Action: cmdHeight,
    },
    {
        Name:	"block",
        Usage:	"Get the whole chain or a block given by a height or hash id",
        Aliases:	[]string{"b"},
        Action: showBlock,
        Flags: []cli.Flag{
            cli.IntFlag{
                Name: "height",
                Value: -1,
                Usage: "give this block height",
            },
            cli.StringFlag{
                Name: "hash",
                Usage: "give block hash id to show",
            },
        },
    },
    {
        Name:	"stars",
        Usage:	"List the stars registered by a wallet address.",
        Aliases:	[]string{"s"},
        ArgsUsage:	"ADDRESS",
        Action: showStars,
    },
    {
        Name:	"challenge",
        Usage:	"Request a challenge message for a wallet address.",
        ArgsUsage:	"ADDRESS",
        Action: cmdChallenge,
    },
    {
        Name:	"submit",
        Usage:	"Submit a signed challenge with a star.",
        Action: submitStar,
        Flags: append([]cli.Flag{
            cli.StringFlag{
                Name: "address",
                Usage: "wallet address that signed the challenge",
            },
            cli.StringFlag{
                Name: "message",
                Usage: "challenge message as issued",
            },
            cli.StringFlag{
                Name: "signature",
                Usage: "hex signature over the challenge message",
            },
        }, starFlags...),
    },
    {
        Name:	"register",
        Usage:	"Request, sign and submit in one go with the local wallet.",
        Aliases:	[]string{"r"},
        Action: registerStar,
        Flags: starFlags,
    },
    {
        Name:	"validate",
        Usage:	"Audit the chain of the service.",
        Action: validateChain,
    },
    {
        Name:	"status",
        Usage:	"Show the service counters.",
        Action: cmdStatus,
    },
    {
        Name:	"drift",
        Usage:	"Compare the server clock against NTP.",
        Action: cmdDrift,
    },
}
