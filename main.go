package main

import "github.com/jsphweid/noteflow/cmd"

func main() {
	cmd.Execute()
}
