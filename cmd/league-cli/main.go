package main

import (
	"dynasty-backend/cmd/league-cli/cmd"
)

func main() {
	cmd.Execute()
}
