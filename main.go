package main

import (
	"fmt"
	"os"

	exportcmd "mrahman/fcr-gen/cmd/export"
	"mrahman/fcr-gen/cmd/fcr"
	"mrahman/fcr-gen/cmd/po"
	"mrahman/fcr-gen/cmd/root"
	"mrahman/fcr-gen/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(fcr.Cmd)
	root.Cmd.AddCommand(po.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
