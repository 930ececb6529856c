package main

import "github.com/cmmoran/restresult/cmd"

func main() {
	cmd.Execute()
}
