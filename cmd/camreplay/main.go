// Command camreplay replays a recorded input trace through the camera controller.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/mgnsk/viewcam/internal/config"
	"github.com/mgnsk/viewcam/internal/trace"
)

func main() {
	configPath := flag.String("config", "", "settings YAML file")
	dump := flag.Bool("dump", false, "dump every command")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config settings.yaml] [-dump] trace.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, flag.Arg(0), *dump); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, tracePath string, dump bool) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	f, err := os.Open(tracePath)
	if err != nil {
		return err
	}
	defer f.Close()

	t, err := trace.Load(f)
	if err != nil {
		return err
	}

	logger := log.Default()
	steps, err := trace.Replay(t, settings, logger)
	if err != nil {
		return err
	}

	for _, step := range steps {
		cam := step.Camera
		logger.Printf("frame %d %v %v: position %v forward %v fov %.2f scale %.3f",
			step.Index, step.Mode, step.Command.Type,
			cam.Translation, cam.Forward(), cam.Projection.FOV, cam.Projection.Scale,
		)
		if dump {
			spew.Dump(step.Command)
		}
	}

	return nil
}
