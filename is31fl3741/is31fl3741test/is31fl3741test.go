// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package is31fl3741test implements an in-memory IS31FL3741 that can be used
// as an i2c.Bus to test drivers or to run programs without hardware.
package is31fl3741test

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	numPages   = 5
	pageSize   = 256
	numLEDs    = 351
	firstLEDs  = 180
	funcPage   = 4
	unlockKey  = 0xC5
	resetKey   = 0xAE
	regIntMask = 0xF0
	regIntStat = 0xF1
	regID      = 0xFC
	regCommand = 0xFD
	regLock    = 0xFE
	regReset   = 0x3F
)

// ErrNACK is returned by a Chip for writes the real chip would not
// acknowledge, and when a fault is injected.
var ErrNACK = errors.New("is31fl3741test: NACK")

// Chip emulates the register file of an IS31FL3741.
//
// The zero value answers at address 0x30. Chip is safe for concurrent use.
type Chip struct {
	sync.Mutex
	// Addr is the address the chip answers to; 0 means 0x30.
	Addr uint16
	// ID overrides the identity register, which is Addr*2 when 0.
	ID byte
	// MaxTransfer rejects writes longer than this many bytes when non-zero.
	MaxTransfer int
	// FailAfter makes every transaction past this count fail when non-zero.
	FailAfter int

	// Stats.
	Transactions int
	BytesWritten int
	PageSelects  int
	Writes       [][]byte

	pages    [numPages][pageSize]byte
	page     byte
	unlocked bool
	intMask  byte
	speed    physic.Frequency
}

func (c *Chip) String() string {
	return "is31fl3741test"
}

func (c *Chip) addr() uint16 {
	if c.Addr == 0 {
		return 0x30
	}
	return c.Addr
}

// SetSpeed implements i2c.Bus.
func (c *Chip) SetSpeed(f physic.Frequency) error {
	c.Lock()
	defer c.Unlock()
	c.speed = f
	return nil
}

// Speed returns the last speed set.
func (c *Chip) Speed() physic.Frequency {
	c.Lock()
	defer c.Unlock()
	return c.speed
}

// Tx implements i2c.Bus.
func (c *Chip) Tx(addr uint16, w, r []byte) error {
	c.Lock()
	defer c.Unlock()
	if addr != c.addr() {
		return fmt.Errorf("%w: no device at %#x", ErrNACK, addr)
	}
	if c.FailAfter > 0 && c.Transactions >= c.FailAfter {
		return fmt.Errorf("%w: injected fault", ErrNACK)
	}
	if c.MaxTransfer > 0 && len(w) > c.MaxTransfer {
		return fmt.Errorf("%w: write of %d bytes exceeds %d", ErrNACK, len(w), c.MaxTransfer)
	}
	if len(w) == 0 {
		return fmt.Errorf("%w: missing register address", ErrNACK)
	}
	c.Transactions++
	c.BytesWritten += len(w)
	if len(w) > 1 {
		c.Writes = append(c.Writes, append([]byte(nil), w...))
		if err := c.write(w[0], w[1:]); err != nil {
			return err
		}
	}
	for i := range r {
		r[i] = c.read(w[0] + byte(i))
	}
	return nil
}

func (c *Chip) write(reg byte, data []byte) error {
	switch reg {
	case regLock:
		c.unlocked = data[0] == unlockKey
		return nil
	case regCommand:
		if !c.unlocked {
			return fmt.Errorf("%w: command register is locked", ErrNACK)
		}
		if data[0] >= numPages {
			return fmt.Errorf("%w: page %d", ErrNACK, data[0])
		}
		c.unlocked = false
		c.page = data[0]
		c.PageSelects++
		return nil
	case regIntMask:
		c.intMask = data[0]
		return nil
	case regID, regIntStat:
		return fmt.Errorf("%w: register %#x is read only", ErrNACK, reg)
	}
	if c.page == funcPage {
		if reg == regReset {
			if data[0] == resetKey {
				c.reset()
			}
			return nil
		}
		c.pages[funcPage][reg] = data[0]
		return nil
	}
	limit := firstLEDs
	if c.page&1 == 1 {
		limit = numLEDs - firstLEDs
	}
	if int(reg)+len(data) > limit {
		return fmt.Errorf("%w: write to %d registers from %#x overflows page %d", ErrNACK, len(data), reg, c.page)
	}
	copy(c.pages[c.page][reg:], data)
	return nil
}

func (c *Chip) read(reg byte) byte {
	switch reg {
	case regID:
		if c.ID != 0 {
			return c.ID
		}
		return byte(c.addr() * 2)
	case regIntMask:
		return c.intMask
	case regIntStat:
		return 0
	case regCommand:
		return c.page
	}
	return c.pages[c.page][reg]
}

func (c *Chip) reset() {
	for p := 0; p < numPages; p++ {
		c.pages[p] = [pageSize]byte{}
	}
	c.intMask = 0
}

// Page returns the selected page.
func (c *Chip) Page() byte {
	c.Lock()
	defer c.Unlock()
	return c.page
}

// PWM returns the duty cycle register of an LED.
func (c *Chip) PWM(led int) byte {
	return c.led(0, led)
}

// Scaling returns the scaling register of an LED.
func (c *Chip) Scaling(led int) byte {
	return c.led(2, led)
}

// Function returns a register of the function page.
func (c *Chip) Function(reg byte) byte {
	c.Lock()
	defer c.Unlock()
	return c.pages[funcPage][reg]
}

// Enabled reports whether software shutdown is disabled.
func (c *Chip) Enabled() bool {
	return c.Function(0)&1 == 1
}

func (c *Chip) led(base byte, led int) byte {
	c.Lock()
	defer c.Unlock()
	if led < firstLEDs {
		return c.pages[base][led]
	}
	return c.pages[base+1][led-firstLEDs]
}

// ResetStats clears the transaction statistics.
func (c *Chip) ResetStats() {
	c.Lock()
	defer c.Unlock()
	c.Transactions = 0
	c.BytesWritten = 0
	c.PageSelects = 0
	c.Writes = nil
}

var _ i2c.Bus = &Chip{}
