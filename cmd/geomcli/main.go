package main

import "github.com/ArgishtiAyvazyan/geometry/cmd/geomcli/cmd"

func main() {
	cmd.Execute()
}
