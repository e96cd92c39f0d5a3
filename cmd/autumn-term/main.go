package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"autumnscene/game"
	"autumnscene/scene"
	"autumnscene/term"
)

func main() {
	config, err := game.ParseArgs("autumn-term", os.Args[1:], scene.VariantValley, true)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sc := config.SceneConfig()
	var s *scene.Scene
	if config.Seed != 0 {
		s = scene.New(sc, rand.New(rand.NewSource(config.Seed)))
	} else {
		s = scene.NewSeeded(sc)
	}

	fmt.Println(scene.Controls(config.Variant))

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	run(screen, s)
	screen.Fini()
}

func run(screen tcell.Screen, s *scene.Scene) {
	renderer := term.NewRenderer(screen)
	input := term.NewTranslator()

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 TPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			s.HandleEvents(input.Translate(ev))

		case <-ticker.C:
			s.HandleEvents(input.Expire())
			s.Tick()
			if s.Quit {
				return
			}
			renderer.Render(s)
		}
	}
}
