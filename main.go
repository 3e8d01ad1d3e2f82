package main

import "checkconnect/cmd"

func main() {
	cmd.Execute()
}
