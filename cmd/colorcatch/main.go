package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayusman/colorcatch/internal/app"
	"github.com/ayusman/colorcatch/internal/audio"
	"github.com/ayusman/colorcatch/internal/config"
	"github.com/ayusman/colorcatch/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	cameraID := flag.Int("camera", -1, "camera device index (overrides config)")
	withTray := flag.Bool("tray", false, "show the system tray menu")
	withSound := flag.Bool("sound", false, "play sound effects")
	flag.Parse()

	fmt.Println("Color Catcher - catch the falling shapes with a colored object")

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		settings = loaded
	}

	// Flags only switch features on; the config file can too.
	if *cameraID >= 0 {
		settings.CameraID = *cameraID
	}
	settings.Tray = settings.Tray || *withTray
	settings.Sound = settings.Sound || *withSound

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := app.New(app.Config{Settings: settings})

	if settings.Sound {
		sp := audio.NewSpeaker()
		if err := sp.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			game.SetPlayer(sp)
		}
	}

	if settings.Tray {
		t := tray.New(tray.DefaultBuffer)
		t.Start()
		defer t.Stop()
		game.SetController(t)
	}

	printInstructions(settings)

	if err := game.Run(ctx); err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}

func printInstructions(settings *config.Config) {
	log.Println("Instructions:")
	log.Printf("1. Hold a %s object in front of the camera", settings.Presets[0].Name)
	log.Println("2. Adjust until it shows up in the Detection View")
	log.Println("3. Press SPACE to start, then move the object to begin")
	log.Println("4. Catch the falling shapes, each miss costs a life")
	log.Println("Controls: SPACE start, C change color, R restart, Q quit")
}
