package main

import "github.com/mmuldo/tintmatch/cmd"

func main() {
	cmd.Execute()
}
