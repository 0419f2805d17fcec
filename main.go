package main

import "github.com/veiligwerk/toolbox-tracker/cmd"

func main() {
	cmd.Execute()
}
