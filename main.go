package main

import "github.com/theirongolddev/taxlens/cmd"

func main() {
	cmd.Execute()
}
