package main

import "github.com/sharedstate/blackboard/cmd"

func main() {
	cmd.Execute()
}
