package main

import "github.com/djcheckup/djcheckup-cli/cmd"

// execCmd is swappable for testing.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
