package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maxhully/tartv/icongen"
)

func main() {
	f, err := os.Create("icongen_out.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := icongen.RenderPNG(f, 512); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Created icongen_out.png")
}
