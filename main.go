package main

import (
	"spaloading/server"
)

func main() {
	server.Serve()
}
