package main

import "github.com/3MFConsortium/gladius-sub002/cmd/gladius-slice/cmd"

func main() {
	cmd.Execute()
}
