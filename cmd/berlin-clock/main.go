// Command berlin-clock prints a time of day as a Berlin clock face.
package main

import "github.com/oshokin/berlin-clock/cmd/berlin-clock/cmd"

func main() {
	cmd.Execute()
}
