package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lazharichir/jordeck/config"
	"github.com/lazharichir/jordeck/dealer"
)

func main() {
	opts, err := config.Load(os.Args[1:])
	if err != nil {
		if config.IsHelp(err) {
			fmt.Println(err)
			return
		}
		log.Fatalf("Invalid options: %v", err)
	}

	shoe, err := dealer.NewDealer(opts, os.Stdout).Run()
	if err != nil {
		log.Fatalf("Shuffle failed: %v", err)
	}
	log.Printf("Deck %s: %d cards left, %d discarded", shoe.ID, shoe.Len(), len(shoe.Discards()))
}
