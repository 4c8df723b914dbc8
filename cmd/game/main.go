package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kmazurek/fleetmind/internal/game"
)

func main() {
	var seed int64
	flag.Int64Var(&seed, "seed", 42, "match seed")
	flag.Parse()

	ebiten.SetWindowTitle("Fleetmind")
	v := game.NewViewer(seed)
	w, h := v.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
