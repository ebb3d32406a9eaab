// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3741

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DefaultAddr is the I²C address with the ADDR pin tied to GND.
const DefaultAddr uint16 = 0x30

// NumLEDs is the number of independently addressable LED channels.
const NumLEDs = 351

const (
	// Registers outside of the pages.
	_INT_MASK      byte = 0xF0
	_INT_STATUS    byte = 0xF1
	_ID            byte = 0xFC
	_COMMAND       byte = 0xFD
	_COMMAND_LOCK  byte = 0xFE
	_COMMAND_UNLCK byte = 0xC5

	// Function registers, page 4.
	_FUNC_CONFIG   byte = 0x00
	_FUNC_GCURRENT byte = 0x01
	_FUNC_RESET    byte = 0x3F
	_RESET_KEY     byte = 0xAE

	_CONFIG_SSD byte = 0x01

	_PAGE_FUNCTION byte = 4

	// firstPageLEDs is the number of LEDs held by page 0 (PWM) and page 2
	// (scaling). The rest live in page 1 and page 3.
	firstPageLEDs = 180

	// fillChunk is the largest write issued by Fill and SetAllLEDScaling,
	// register offset included. It fits the smallest common I²C buffer, so it
	// is only lowered by Opts.MaxTransfer.
	fillChunk = 32
)

// Region selects which pair of LED pages an access targets.
type Region byte

const (
	// PWM is the per-LED duty cycle, pages 0 and 1.
	PWM Region = 0
	// Scaling is the per-LED current scaling, pages 2 and 3.
	Scaling Region = 2
)

func (r Region) String() string {
	if r == Scaling {
		return "Scaling"
	}
	return "PWM"
}

var (
	// ErrInvalidLED is returned for an LED index outside [0, NumLEDs).
	ErrInvalidLED = errors.New("is31fl3741: invalid LED index")
	// ErrInvalidPage is returned when selecting a page above 4.
	ErrInvalidPage = errors.New("is31fl3741: invalid page")
	// ErrIdentity is returned when the ID register doesn't match the address.
	ErrIdentity = errors.New("is31fl3741: unexpected ID register value")
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr:        DefaultAddr,
	MaxTransfer: 0,
}

// Opts defines the options for the device.
type Opts struct {
	// Addr is the 7 bits I²C address of the chip.
	Addr uint16
	// MaxTransfer is the largest number of bytes, register address included,
	// the host can send in a single I²C write. 0 means unlimited, which is the
	// case of the Linux i2c-dev driver. Buffered.Show splits its writes
	// accordingly.
	MaxTransfer int
}

// Dev is a handle to an IS31FL3741 LED matrix controller.
//
// Dev is not safe for concurrent use. It caches the selected page.
type Dev struct {
	d           *i2c.Dev
	maxTransfer int
	// page is the last selected page, -1 when unknown.
	page int
}

// NewI2C returns a Dev object that communicates over I²C to an IS31FL3741.
//
// It verifies the chip identity then performs a software reset, so every
// register is at its power-on value and the chip is in software shutdown.
// Call Enable(true) to light the LEDs.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	if opts.MaxTransfer < 0 || (opts.MaxTransfer > 0 && opts.MaxTransfer < 2) {
		return nil, fmt.Errorf("is31fl3741: invalid MaxTransfer %d", opts.MaxTransfer)
	}
	// Maximum clock speed is 1MHz but the Adafruit boards are rated for
	// 400kHz. Not all buses support changing the speed.
	_ = b.SetSpeed(400 * physic.KiloHertz)

	d := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, maxTransfer: opts.MaxTransfer, page: -1}
	id, err := d.readRegister(_ID)
	if err != nil {
		return nil, err
	}
	if uint16(id) != addr*2 {
		return nil, fmt.Errorf("%w: got %#x, expected %#x", ErrIdentity, id, addr*2)
	}
	if err := d.Reset(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("IS31FL3741{%s}", d.d)
}

// MaxTransfer returns the largest single write the host supports, 0 meaning
// unlimited.
func (d *Dev) MaxTransfer() int {
	return d.maxTransfer
}

// Halt implements conn.Resource.
//
// It puts the chip in software shutdown. Register content is retained.
func (d *Dev) Halt() error {
	return d.Enable(false)
}

// Reset performs a software reset, restoring every register to its power-on
// value.
func (d *Dev) Reset() error {
	if err := d.selectPage(_PAGE_FUNCTION); err != nil {
		return err
	}
	return d.writeRegister(_FUNC_RESET, _RESET_KEY)
}

// Enable clears or sets the software shutdown bit of the configuration
// register. The other bits are left untouched.
func (d *Dev) Enable(en bool) error {
	if err := d.selectPage(_PAGE_FUNCTION); err != nil {
		return err
	}
	v, err := d.readRegister(_FUNC_CONFIG)
	if err != nil {
		return err
	}
	if en {
		v |= _CONFIG_SSD
	} else {
		v &^= _CONFIG_SSD
	}
	return d.writeRegister(_FUNC_CONFIG, v)
}

// Unlock allows the next write to the command register.
//
// The lock re-engages by itself after every page change, selectPage calls
// this as needed.
func (d *Dev) Unlock() error {
	return d.writeRegister(_COMMAND_LOCK, _COMMAND_UNLCK)
}

// SetGlobalCurrent sets the global current control, from 0 (off) to 255
// (brightest).
func (d *Dev) SetGlobalCurrent(current byte) error {
	if err := d.selectPage(_PAGE_FUNCTION); err != nil {
		return err
	}
	return d.writeRegister(_FUNC_GCURRENT, current)
}

// GlobalCurrent returns the global current control.
func (d *Dev) GlobalCurrent() (byte, error) {
	if err := d.selectPage(_PAGE_FUNCTION); err != nil {
		return 0, err
	}
	return d.readRegister(_FUNC_GCURRENT)
}

// SetInterruptMask writes the interrupt mask register. It is reachable from
// any page.
func (d *Dev) SetInterruptMask(mask byte) error {
	return d.writeRegister(_INT_MASK, mask)
}

// InterruptStatus reads the interrupt status register.
func (d *Dev) InterruptStatus() (byte, error) {
	return d.readRegister(_INT_STATUS)
}

// SetLEDPWM sets the duty cycle of a single LED. It does not handle rotation,
// coordinates nor color order, see Matrix for that.
func (d *Dev) SetLEDPWM(led int, pwm byte) error {
	return d.setLEDValue(PWM, led, pwm)
}

// LEDPWM reads back the duty cycle of a single LED.
func (d *Dev) LEDPWM(led int) (byte, error) {
	page, reg, err := ledRegister(PWM, led)
	if err != nil {
		return 0, err
	}
	if err := d.selectPage(page); err != nil {
		return 0, err
	}
	return d.readRegister(reg)
}

// SetLEDScaling sets the current scaling of a single LED.
func (d *Dev) SetLEDScaling(led int, scale byte) error {
	return d.setLEDValue(Scaling, led, scale)
}

// SetAllLEDScaling sets the current scaling of every LED.
func (d *Dev) SetAllLEDScaling(scale byte) error {
	return d.fillTwoPages(Scaling, scale)
}

// Fill sets the duty cycle of every LED. Fill(0) clears the display.
func (d *Dev) Fill(pwm byte) error {
	return d.fillTwoPages(PWM, pwm)
}

// ledRegister returns the page and register holding an LED of a region.
func ledRegister(r Region, led int) (byte, byte, error) {
	switch {
	case led < 0 || led >= NumLEDs:
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidLED, led)
	case led < firstPageLEDs:
		return byte(r), byte(led), nil
	default:
		return byte(r) + 1, byte(led - firstPageLEDs), nil
	}
}

func (d *Dev) setLEDValue(r Region, led int, v byte) error {
	page, reg, err := ledRegister(r, led)
	if err != nil {
		return err
	}
	if err := d.selectPage(page); err != nil {
		return err
	}
	return d.writeRegister(reg, v)
}

// fillTwoPages writes v to all the LEDs of a region, 180 registers in the
// first page then 171 in the second.
func (d *Dev) fillTwoPages(r Region, v byte) error {
	var buf [fillChunk]byte
	for i := range buf {
		buf[i] = v
	}
	chunk := fillChunk
	if d.maxTransfer > 0 && d.maxTransfer < chunk {
		chunk = d.maxTransfer
	}
	pages := [2]struct {
		page byte
		n    int
	}{
		{byte(r), firstPageLEDs},
		{byte(r) + 1, NumLEDs - firstPageLEDs},
	}
	for _, p := range pages {
		if err := d.selectPage(p.page); err != nil {
			return err
		}
		for reg := 0; reg < p.n; reg += chunk - 1 {
			n := min(chunk-1, p.n-reg)
			buf[0] = byte(reg)
			if err := d.tx(buf[:n+1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// selectPage switches the register bank used by subsequent accesses. The
// write is skipped when page is already selected.
func (d *Dev) selectPage(page byte) error {
	if page > _PAGE_FUNCTION {
		return fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	if d.page == int(page) {
		return nil
	}
	if err := d.Unlock(); err != nil {
		d.page = -1
		return err
	}
	if err := d.writeRegister(_COMMAND, page); err != nil {
		d.page = -1
		return err
	}
	d.page = int(page)
	return nil
}

func (d *Dev) readRegister(reg byte) (byte, error) {
	var r [1]byte
	if err := d.d.Tx([]byte{reg}, r[:]); err != nil {
		return 0, wrap(err)
	}
	return r[0], nil
}

func (d *Dev) writeRegister(reg, v byte) error {
	return d.tx([]byte{reg, v})
}

// tx sends w as is; w[0] is the first register written.
func (d *Dev) tx(w []byte) error {
	return wrap(d.d.Tx(w, nil))
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("is31fl3741: %w", err)
}

var _ conn.Resource = &Dev{}
var _ PWMWriter = &Dev{}
