// Command dump exports a fetched window as gzip- or zstd-compressed
// JSON, for archival or transport. The stored .wsp file's format is untouched;
// this only affects the shape of the exported copy.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	whisper "github.com/jdaigle/whisper"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type dumpPoint struct {
	Timestamp uint64  `json:"timestamp"`
	Value     float64 `json:"value"`
}

func main() {
	from := flag.Uint64("from", 0, "start of the window, unix seconds")
	out := flag.String("out", "", "output file; defaults to <path>.json.gz, or <path>.json.zst with -zstd")
	useZstd := flag.Bool("zstd", false, "use zstd instead of gzip")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dump -from <unix-seconds> [-out <file>] [-zstd] <path>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	result, err := whisper.Fetch(path, *from, nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch failed: %s\n", err)
		os.Exit(1)
	}
	if result == nil {
		fmt.Fprintln(os.Stderr, "no data in the requested window")
		return
	}

	points := make([]dumpPoint, len(result.Values))
	for i, p := range result.Values {
		points[i] = dumpPoint{Timestamp: p.Timestamp, Value: p.Value}
	}

	body, err := json.Marshal(points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal failed: %s\n", err)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		if *useZstd {
			outPath = path + ".json.zst"
		} else {
			outPath = path + ".json.gz"
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %s\n", outPath, err)
		os.Exit(1)
	}
	defer f.Close()

	if *useZstd {
		w, err := zstd.NewWriter(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "zstd writer failed: %s\n", err)
			os.Exit(1)
		}
		defer w.Close()
		if _, err := w.Write(body); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %s\n", err)
			os.Exit(1)
		}
		return
	}

	w := gzip.NewWriter(f)
	defer w.Close()
	if _, err := w.Write(body); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %s\n", err)
		os.Exit(1)
	}
}
