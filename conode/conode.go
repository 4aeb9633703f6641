package main

import (
    "os"
    "path"

    // Imported for its side effect: registering the star notary service.
    _ "starnotary/service"

    "go.dedis.ch/cothority/v3"
    "go.dedis.ch/onet/v3/app"
    "go.dedis.ch/onet/v3/cfgpath"
    "go.dedis.ch/onet/v3/log"
    "gopkg.in/urfave/cli.v1"
)

const (
    // DefaultName is the name of the binary we produce and is used to create a directory
    // folder with this name
    DefaultName = "starnotary-conode"
)

func main() {
    cliApp := cli.NewApp()
    cliApp.Name = DefaultName
    cliApp.Usage = "Run a star notary conode."
    cliApp.Version = "0.1"
    cliApp.Commands = []cli.Command{
        {
            Name:	"setup",
            Usage:	"Set up a new conode configuration.",
            Aliases:	 []string{"s"},
            Action: func(c *cli.Context) error {
                app.InteractiveConfig(cothority.Suite, DefaultName)
                return nil
            },
        },
        {
            Name:	"server",
            Usage:	"Run the conode with an existing configuration.",
            Action:	runServer,
        },
    }
    cliApp.Flags = []cli.Flag{
        cli.IntFlag{
            Name: "debug, d",
            Value: 0,
            Usage: "debug-level: 1 for terse, 5 for maximal,",
        },
        cli.StringFlag{
            Name: "config, c",
            Value: path.Join(cfgpath.GetConfigPath(DefaultName), app.DefaultServerConfig),
            Usage: "Configuration file of the server",
        },
    }
    cliApp.Before = func(c *cli.Context) error {
        log.SetDebugVisible(c.Int("debug"))
        return nil
    }
    log.ErrFatal(cliApp.Run(os.Args))
}

func runServer(c *cli.Context) error {
    config := c.GlobalString("config")
    app.RunServer(config)
    return nil
}
