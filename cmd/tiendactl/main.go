package main

import "github.com/jhoicas/tienda-api/cmd/tiendactl/cmd"

func main() {
	cmd.Execute()
}
