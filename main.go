package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"autumnscene/game"
	"autumnscene/scene"
)

func main() {
	config, err := game.ParseArgs("autumn", os.Args[1:], scene.VariantValley, true)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Println(scene.Controls(config.Variant))

	if err := game.Run(config); err != nil {
		log.Fatal(err)
	}
}
