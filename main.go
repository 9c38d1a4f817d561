package main

import "github.com/KaramelBytes/dataprof-cli/cmd"

func main() {
	cmd.Execute()
}
