package main

import (
    "log"

    "github.com/spf13/cobra"

    fabriccli "github.com/amirimatin/go-fabric/pkg/cli"
)

func main() {
    if err := newRoot().Execute(); err != nil {
        log.Fatal(err)
    }
}

func newRoot() *cobra.Command {
    root := &cobra.Command{
        Use:           "fabricctl",
        Short:         "go-fabric gateway contract CLI",
        SilenceUsage:  true,
        SilenceErrors: true,
    }
    // entities, decode, validate, template and check, plus --config
    fabriccli.AddAll(root)
    return root
}
