// main.go
package main

import "realty-backend/cmd"

func main() {
	cmd.Execute()
}
