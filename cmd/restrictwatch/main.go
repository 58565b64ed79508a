// restrictwatch — driver distraction restriction demo.
// Watches the platform restriction state and shows which app functions
// are suppressed while distraction optimization is required.
package main

import "github.com/driveaware/restrictwatch/internal/cli"

func main() {
	cli.Execute()
}
