package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

var cfg = DefaultConfig()

func init() {
	flag.StringVar(&cfg.ExpectedPath, "expected", "", "expected observation fixture (.json, .wav, .mp3)")
	flag.StringVar(&cfg.ActualPath, "actual", "", "recorded observation fixture (.json, .wav, .mp3)")
	flag.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "absolute tolerance, 0 compares exactly")
	flag.BoolVar(&cfg.AllMismatches, "all", cfg.AllMismatches, "report every mismatch instead of the first")
}

func main() {
	flag.Parse()
	if cfg.ExpectedPath == "" || cfg.ActualPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s matches %s\n", cfg.ActualPath, cfg.ExpectedPath)
}
