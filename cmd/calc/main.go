package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"coursework/calc"
)

func main() {
	verbose := flag.Bool("v", false, "Log the underlying error to stderr")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("calc: ")

	w := bufio.NewWriter(os.Stdout)
	err := calc.Run(os.Stdin, w)
	if err != nil {
		if *verbose {
			log.Printf("%v", err)
		}
		fmt.Fprintln(w, calc.Message(err))
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("writing output: %v", err)
	}
}
