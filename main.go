package main

import "github.com/Acon1tum/hris-test-sub000/cmd"

func main() {
	cmd.Execute()
}
