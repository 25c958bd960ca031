package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/eyepatchSamurAI/VirtualMachine16Bit/emulator"
)

func main() {
	var configPath string
	var steps int
	var single bool
	var verbose bool

	flag.StringVar(&configPath, "c", "", "machine configuration (.toml)")
	flag.IntVar(&steps, "n", 0, "step limit, 0 for unlimited")
	flag.BoolVar(&single, "s", false, "single-step mode; enter advances, q quits")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected a single image file", os.Args[0])
	}

	config := emulator.DefaultConfig()
	if len(configPath) != 0 {
		inf, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("%v: %v", configPath, err)
		}
		config, err = emulator.LoadConfig(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", configPath, err)
		}
	}
	config.Verbose = config.Verbose || verbose

	emu := emulator.NewEmulator(config)

	image := flag.Arg(0)
	inf, err := os.Open(image)
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}
	n, err := emu.LoadImage(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}
	if config.Verbose {
		log.Printf("vm16: loaded %d bytes from %v", n, image)
	}

	if !single {
		ran, err := emu.Run(steps)
		if err != nil {
			log.Printf("vm16: halted after %d steps: %v", ran, err)
		}
		fmt.Print(emu.Cpu.String())
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		err = emu.StepTrace(os.Stdout)
		if err != nil {
			log.Printf("vm16: %v", err)
			return
		}
		if !scanner.Scan() || scanner.Text() == "q" {
			return
		}
	}
}
