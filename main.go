package main

import "simscsi/cmd/simscsi"

func main() {
	simscsi.Execute()
}
