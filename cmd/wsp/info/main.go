// Command info prints a Whisper file's decoded header.
package main

import (
	"flag"
	"fmt"
	"os"

	whisper "github.com/jdaigle/whisper"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: info <path>")
		os.Exit(1)
	}

	header, err := whisper.Info(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %s\n", flag.Arg(0), err)
		os.Exit(1)
	}

	fmt.Printf("aggregationMethod: %s\n", header.AggregationMethod)
	fmt.Printf("maxRetention:      %d\n", header.MaxRetention)
	fmt.Printf("xFilesFactor:      %g\n", header.XFilesFactor)
	fmt.Printf("archives:          %d\n", len(header.Archives))
	for i, a := range header.Archives {
		fmt.Printf("  archive %d: offset=%d secondsPerPoint=%d points=%d retention=%ds\n",
			i, a.Offset, a.SecondsPerPoint, a.Points, a.Retention())
	}
}
