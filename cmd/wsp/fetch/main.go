// Command fetch reads a time window out of a Whisper file and prints
// its occupied points, one per line.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	whisper "github.com/jdaigle/whisper"
)

func main() {
	from := flag.String("from", "", `start of the window, unix seconds or "2006-01-02 15:04:05"`)
	until := flag.String("until", "", `end of the window, defaults to now`)
	flag.Parse()

	if flag.NArg() != 1 || *from == "" {
		fmt.Fprintln(os.Stderr, "usage: fetch -from <time> [-until <time>] <path>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	fromTime, err := parseTime(*from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -from: %s\n", err)
		os.Exit(1)
	}

	var untilPtr *uint64
	if *until != "" {
		untilTime, err := parseTime(*until)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -until: %s\n", err)
			os.Exit(1)
		}
		untilPtr = &untilTime
	}

	result, err := whisper.Fetch(flag.Arg(0), fromTime, untilPtr, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch failed: %s\n", err)
		os.Exit(1)
	}
	if result == nil {
		fmt.Println("no data: requested window is outside the file's retention")
		return
	}

	fmt.Printf("# from=%d until=%d step=%d\n", result.TimeInfo.From, result.TimeInfo.Until, result.TimeInfo.Step)
	for _, p := range result.Values {
		fmt.Printf("%d: %v\n", p.Timestamp, p.Value)
	}
}

func parseTime(s string) (uint64, error) {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		return 0, err
	}
	return uint64(t.Unix()), nil
}
