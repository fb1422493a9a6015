// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ht16k33 controls a Holtek HT16K33 LED controller driving a
// 4-cell 14-segment alphanumeric display, such as the Adafruit 0.54"
// alphanumeric backpack, over I2C.
//
// The driver covers the display side of the chip: oscillator and display
// power, brightness, blink rate, and rendering characters into the chip's
// display RAM. Each cell takes a 16 bit segment bitmask, written low byte
// first; the character set covers digits, percent, space and the letters
// A-Z in both cases. The keyscan and interrupt features of the chip are
// not covered.
//
// Implements conn.Resource and display.TextDisplay (one row of four
// cells).
//
// # Datasheet
//
// https://www.holtek.com/webapi/116711/HT16K33Av102.pdf
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/devices/v3/ht16k33"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//		dev, err := ht16k33.Open("", ht16k33.DefaultAddress)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		if err := dev.Display(true); err != nil {
//			log.Fatal(err)
//		}
//		if err := dev.WriteAt(0, "3.14"); err != nil {
//			log.Fatal(err)
//		}
//	}
package ht16k33
