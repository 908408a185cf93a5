package main

import "fabric-index/cmd"

func main() {
	cmd.Execute()
}
