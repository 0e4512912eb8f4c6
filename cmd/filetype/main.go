// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command filetype identifies the format of files, URLs or stdin, and
// can walk a directory tree reporting on every file it finds.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cosnicolaou/filetype"
	"github.com/cosnicolaou/filetype/facade"
	"github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"
	"golang.org/x/crypto/ssh/terminal"
)

var (
	mpegOffsetTolerance uint
	sampleSize          uint
	jsonOutput          bool
	probeXZMember       bool
)

func main() {
	root := &cobra.Command{
		Use:   "filetype",
		Short: "identify the concrete format of a byte sequence",
	}

	detectCmd := &cobra.Command{
		Use:   "detect [file|url ...]",
		Short: "detect the format of files, URLs, or stdin (no args)",
		RunE:  runDetect,
	}
	detectCmd.Flags().UintVar(&mpegOffsetTolerance, "mpeg-offset-tolerance", 0,
		"bytes of leading garbage the MPEG audio frame scan tolerates")
	detectCmd.Flags().UintVar(&sampleSize, "sample-size", 4100,
		"prefix length buffered for detection on streaming sources")
	detectCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit one JSON object per input")

	scanCmd := &cobra.Command{
		Use:   "scan [dir ...]",
		Short: "walk directory trees, reporting the detected format of every file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScan,
	}
	scanCmd.Flags().UintVar(&mpegOffsetTolerance, "mpeg-offset-tolerance", 0,
		"bytes of leading garbage the MPEG audio frame scan tolerates")
	scanCmd.Flags().BoolVar(&probeXZMember, "probe-xz-member", false,
		"for files detected as xz, also report the first member's uncompressed size")

	root.AddCommand(detectCmd, scanCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newParser() *filetype.Parser {
	return filetype.NewParser(
		filetype.MPEGOffsetTolerance(mpegOffsetTolerance),
		filetype.SampleSize(sampleSize),
	)
}

type report struct {
	Name string `json:"name"`
	Ext  string `json:"ext,omitempty"`
	MIME string `json:"mime,omitempty"`
	Err  string `json:"error,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	p := newParser()

	if len(args) == 0 {
		src := facade.Stdin()
		s, err := p.DetectStream(ctx, src.Reader)
		if err != nil {
			return printReport(resultFor("stdin", filetype.Unknown, false, err))
		}
		res := s.Result()
		return printReport(resultFor("stdin", res, res != filetype.Unknown, nil))
	}

	for _, name := range args {
		src, err := facade.Open(ctx, name)
		if err != nil {
			if perr := printReport(report{Name: name, Err: err.Error()}); perr != nil {
				return perr
			}
			continue
		}
		res, ok, derr := p.Detect(ctx, src.Tokenizer(ctx))
		src.Close(ctx)
		if perr := printReport(resultFor(name, res, ok, derr)); perr != nil {
			return perr
		}
	}
	return nil
}

func resultFor(name string, res filetype.Result, ok bool, err error) report {
	if err != nil {
		return report{Name: name, Err: err.Error()}
	}
	if !ok {
		return report{Name: name}
	}
	return report{Name: name, Ext: res.Ext, MIME: res.MIME}
}

func printReport(r report) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(r)
	}
	if r.Err != "" {
		fmt.Printf("%s: error: %s\n", r.Name, r.Err)
		return nil
	}
	if r.Ext == "" {
		fmt.Printf("%s: unknown\n", r.Name)
		return nil
	}
	fmt.Printf("%s: %s (%s)\n", r.Name, r.Ext, r.MIME)
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	p := newParser()

	var paths []string
	var total int64
	for _, root := range args {
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.Mode().IsRegular() {
				paths = append(paths, path)
				total += info.Size()
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	isTTY := terminal.IsTerminal(int(os.Stdout.Fd()))
	barWr := io.Writer(os.Stdout)
	if !isTTY {
		barWr = os.Stderr
	}
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetBytes64(total),
		progressbar.OptionSetWriter(barWr),
		progressbar.OptionSetPredictTime(true))
	bar.RenderBlank()

	var mu sync.Mutex
	for _, path := range paths {
		src, err := facade.Open(ctx, path)
		if err != nil {
			mu.Lock()
			printReport(report{Name: path, Err: err.Error()})
			mu.Unlock()
			continue
		}
		res, ok, derr := p.Detect(ctx, src.Tokenizer(ctx))
		if derr == nil && ok && res.Ext == "xz" && probeXZMember {
			reportXZMember(ctx, path)
		}
		mu.Lock()
		printReport(resultFor(path, res, ok, derr))
		mu.Unlock()
		info, statErr := os.Stat(path)
		if statErr == nil {
			bar.Add64(info.Size())
		}
		src.Close(ctx)
	}
	fmt.Fprintln(barWr)
	return nil
}

// reportXZMember reports the uncompressed size of the first xz member in
// path, a convenience for --probe-xz-member; it never influences the
// detected result, only verbose scan output.
func reportXZMember(ctx context.Context, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	zr, err := xz.ReaderConfig{SingleStream: true}.NewReader(f)
	if err != nil {
		return
	}
	n, _ := io.Copy(io.Discard, zr)
	fmt.Printf("%s: xz member uncompressed size %d bytes\n", path, n)
}
