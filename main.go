package main

import "inventory-control/cmd"

func main() {
	cmd.Execute()
}
