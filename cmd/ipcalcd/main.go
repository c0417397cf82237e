package main

import "github.com/dotquad/ipcalc-service/internal/app"

func main() {
	app.Run()
}
