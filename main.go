/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/greed/cmd"

func main() {
	cmd.Execute()
}
