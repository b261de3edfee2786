// Command update writes one or more points into a Whisper file.
// Points are given as "timestamp:value" pairs.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	whisper "github.com/jdaigle/whisper"
)

func main() {
	delimiter := flag.String("d", ",", "delimiter between points")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, `usage: update <path> "timestamp:value[,timestamp:value...]"`)
		os.Exit(1)
	}

	path := flag.Arg(0)
	points, err := parsePoints(flag.Arg(1), *delimiter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse points: %s\n", err)
		os.Exit(1)
	}

	if len(points) == 1 {
		p := points[0]
		if err := whisper.Update(path, p.Value, &p.Timestamp, nil); err != nil {
			fmt.Fprintf(os.Stderr, "update failed: %s\n", err)
			os.Exit(1)
		}
		return
	}

	if err := whisper.UpdateMany(path, points, nil); err != nil {
		fmt.Fprintf(os.Stderr, "update failed: %s\n", err)
		os.Exit(1)
	}
}

func parsePoints(s, delimiter string) ([]whisper.TimeSeriesPoint, error) {
	var points []whisper.TimeSeriesPoint
	for _, part := range strings.Split(s, delimiter) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, ":", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid point %q: expected timestamp:value", part)
		}
		ts, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp in %q: %w", part, err)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value in %q: %w", part, err)
		}
		points = append(points, whisper.TimeSeriesPoint{Timestamp: ts, Value: v})
	}
	return points, nil
}
