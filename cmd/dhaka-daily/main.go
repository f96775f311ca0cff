// Command dhaka-daily posts the daily Bengali, Hijri and prayer time digest
// for Dhaka to a Telegram chat. See `dhaka-daily --help`.
package main

import "github.com/pfrederiksen/dhaka-daily/internal/cli"

func main() {
	cli.Execute()
}
