//go:build tinygo

package main

import (
	"vgahid/app"
	"vgahid/hal"
)

func main() {
	app.Run(hal.New())
}
