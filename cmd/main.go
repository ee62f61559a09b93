package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/kjkrol/gokev/pkg/display"
	"github.com/kjkrol/gokev/pkg/event"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.TimeOnly,
		}),
	))

	conf := display.Config{
		PositionX: 0,
		PositionY: 0,
		Width:     800,
		Height:    600,
		Title:     "gokev events",
	}

	d, err := display.Open(conf)
	if err != nil {
		slog.Error("open display", "err", err)
		os.Exit(1)
	}
	defer d.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = display.RegisterEvents(echoEvents, display.Options{User: cancel})
	if err != nil {
		slog.Error("register handler", "err", err)
		os.Exit(1)
	}
	defer display.UnregisterEvents(echoEvents, cancel)

	if err := d.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("event loop", "err", err)
		os.Exit(1)
	}
	fmt.Println("Program closed")
}

func echoEvents(typ event.Type, a, b int, user any) bool {
	cancel := user.(context.CancelFunc)
	switch typ {
	case event.MouseMoveType:
		slog.Debug("mouse moved", "x", a, "y", b)
	case event.MouseButtonType:
		slog.Info("mouse button", "button", a, "pressed", b == event.Pressed)
	case event.MouseWheelType:
		if a == event.WheelUp {
			slog.Info("wheel up")
		} else {
			slog.Info("wheel down")
		}
	case event.KeyStateType:
		slog.Info("key", "sym", a, "pressed", b == event.Pressed)
		if a == event.KeyEscape && b == event.Pressed {
			cancel()
		}
	case event.KeyRawType:
		slog.Debug("raw key", "sym", a, "pressed", b == event.Pressed)
	case event.KeyCharType:
		slog.Info("char typed", "char", string(rune(a)))
	case event.WindowClosedType:
		slog.Info("window closed")
	}
	return true
}
