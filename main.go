package main

import (
	"github.com/letterdesk/letterdesk/cmd"
)

func main() {
	cmd.Execute()
}
