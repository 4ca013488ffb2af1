package main

import "shelp/cmd"

func main() {
	cmd.Execute()
}
