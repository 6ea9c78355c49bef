package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"luma/repl"
)

func main() {
	verbose := flag.Bool("verbose", false, "log evaluation failures")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	fmt.Println("Welcome to the Luma value REPL.")
	fmt.Println("Literals, name = literal, literal :: Kind, type literal. quit to leave.")

	repl.Start(os.Stdin, os.Stdout, repl.NewLogger(level))
}
