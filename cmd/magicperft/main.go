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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/magicperft/internal/attacks"
	"github.com/frankkopp/magicperft/internal/config"
	"github.com/frankkopp/magicperft/internal/perft"
)

var out = message.NewPrinter(language.German)

const version = "1.0.0"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", "", "FEN of the position to run perft from\ndefaults to the standard starting position")
	depth := flag.Int("perft", 0, "runs perft to the given depth from -fen (or the start position)\ndepths 1..N are all printed in turn")
	parallel := flag.Bool("parallel", false, "fans perft's root moves out across goroutines instead of running single-threaded")
	cpuProfile := flag.Bool("profile", false, "writes a CPU profile (cpu.pprof) for the duration of the run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	attacks.MustInit()

	startFen := *fen
	if startFen == "" {
		startFen = config.Settings.Perft.StartFen
	}
	maxDepth := *depth
	if maxDepth <= 0 {
		maxDepth = config.Settings.Perft.DefaultDepth
	}

	for d := 1; d <= maxDepth; d++ {
		if *parallel {
			nodes, err := perft.ParallelPerft(startFen, d)
			if err != nil {
				fmt.Fprintln(os.Stderr, "perft:", err)
				os.Exit(1)
			}
			out.Printf("Depth %d: %d nodes\n", d, nodes)
			continue
		}
		if _, err := perft.Run(startFen, d); err != nil {
			fmt.Fprintln(os.Stderr, "perft:", err)
			os.Exit(1)
		}
	}
}

func printVersionInfo() {
	out.Printf("magicperft %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
