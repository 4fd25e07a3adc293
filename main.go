package main

import "server-props/cmd"

func main() {
	cmd.Execute()
}
