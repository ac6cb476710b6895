package main

import "github.com/zenith-sms/zenith/cmd"

func main() {
	cmd.Execute()
}
