// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// is31fl3741 scrolls text on an IS31FL3741 LED matrix.
//
// With -emulate, no hardware is needed: the chip is emulated in memory and
// its LEDs are previewed in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/ledmatrix/is31fl3741"
	"github.com/GermanBionicSystems/ledmatrix/is31fl3741/is31fl3741test"
	"github.com/GermanBionicSystems/ledmatrix/screen2d"
	"github.com/GermanBionicSystems/ledmatrix/webpreview"
)

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus to use")
	addr := flag.Uint("addr", uint(is31fl3741.DefaultAddr), "I²C address of the chip")
	boardName := flag.String("board", "qt", "board: qt, evb, breakout or glasses")
	maxTransfer := flag.Int("max-transfer", 0, "largest I²C write in bytes, 0 for unlimited")
	emulate := flag.Bool("emulate", false, "emulate the chip and preview in the terminal")
	text := flag.String("text", "Hello from periph!", "text to scroll")
	current := flag.Uint("current", 0x40, "global current, 0-255")
	fps := flag.Int("fps", 20, "frames per second")
	rotation := flag.Uint("rotation", 0, "rotation in steps of 90°, 0-3")
	duration := flag.Duration("duration", 0, "stop after this long, 0 to run until interrupted")
	httpAddr := flag.String("http", "", "serve a live preview on this address, e.g. localhost:8010")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if *current > 255 || *rotation > 3 || *fps <= 0 {
		return errors.New("-current, -rotation or -fps out of range")
	}
	board, err := is31fl3741.BoardByName(*boardName)
	if err != nil {
		return err
	}

	var bus i2c.Bus
	var chip *is31fl3741test.Chip
	if *emulate {
		chip = &is31fl3741test.Chip{Addr: uint16(*addr), MaxTransfer: *maxTransfer}
		bus = chip
	} else {
		if _, err := host.Init(); err != nil {
			return err
		}
		b, err := i2creg.Open(*busName)
		if err != nil {
			return err
		}
		defer b.Close()
		bus = b
	}

	dev, err := is31fl3741.NewI2C(bus, &is31fl3741.Opts{Addr: uint16(*addr), MaxTransfer: *maxTransfer})
	if err != nil {
		return err
	}
	log.Printf("device=%s board=%s", dev, board)
	if err := dev.SetAllLEDScaling(0xFF); err != nil {
		return err
	}
	if err := dev.SetGlobalCurrent(byte(*current)); err != nil {
		return err
	}
	if err := dev.Enable(true); err != nil {
		return err
	}

	out := newOutput(is31fl3741.NewBuffered(dev), board, is31fl3741.Rotation(*rotation))
	if chip != nil {
		out.pwm = chip.PWM
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			log.Printf("stdout is not a terminal, preview disabled")
		} else {
			s := board.Layout.Size()
			if out.preview, err = screen2d.New(&screen2d.Opts{X: s.X, Y: s.Y}); err != nil {
				return err
			}
		}
	}
	if *httpAddr != "" {
		out.web = webpreview.New(&webpreview.Options{Size: board.Layout.Size(), MinInterval: 50 * time.Millisecond})
	}
	r := newRenderer(*text, out.canvasSize())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}
	frames := make(chan frame)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(frames)
		return r.run(ctx, time.Second / time.Duration(*fps), frames)
	})
	if out.web != nil {
		srv := &http.Server{Addr: *httpAddr, Handler: out.web}
		eg.Go(func() error {
			log.Printf("preview at http://%s/", *httpAddr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			return srv.Close()
		})
	}
	eg.Go(func() error {
		for f := range frames {
			if err := out.show(f); err != nil {
				return err
			}
		}
		return nil
	})
	err = eg.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err2 := out.halt(); err == nil {
		err = err2
	}
	return err
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "is31fl3741: %s.\n", err)
		os.Exit(1)
	}
}
