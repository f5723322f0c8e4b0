package main

import "github.com/danisworo/workdesk/cmd"

func main() {
	cmd.Execute()
}
