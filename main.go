// Public domain.

package main

import "github.com/soniakeys/hirsmoon/internal/hmprog"

func main() {
	hmprog.Main()
}
