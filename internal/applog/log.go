/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package applog is a thin helper over "github.com/op/go-logging" so every
// package in this module gets its logger with one call instead of repeating
// backend/formatter setup. There is no UCI protocol log here - this core has
// no outer protocol surface - but the standard and test loggers, and a
// magic-search logger for the discovery loop of §4.5, follow the same shape.
package applog

import (
	"log"
	"os"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anvilchess/movecore/internal/config"
)

// Printer formats numbers in log messages with locale-aware grouping.
var Printer = message.NewPrinter(language.English)

var (
	standardLog *logging.Logger
	testLog     *logging.Logger
	magicLog    *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("movecore")
	testLog = logging.MustGetLogger("test")
	magicLog = logging.MustGetLogger("magic")
}

// GetLog returns the standard logger, preconfigured with an os.Stdout
// backend at config.LogLevel.
func GetLog() *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetTestLog returns the logger used by this module's test suites,
// preconfigured at config.TestLogLevel.
func GetTestLog() *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(leveled)
	return testLog
}

// GetMagicLog returns the logger used by the magic-number search and the
// magicgen command (§4.5), always at INFO so progress is visible without
// enabling debug output module-wide.
func GetMagicLog() *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.INFO, "")
	magicLog.SetBackend(leveled)
	return magicLog
}
