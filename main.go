package main

import "github.com/santhosh9133/sterline-hr/cmd"

func main() {
	cmd.Execute()
}
