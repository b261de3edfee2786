// Command create lays out a new Whisper file from a retention schema,
// either spelled out on the command line or looked up by name in a
// TOML schema config file.
package main

import (
	"flag"
	"fmt"
	"os"

	whisper "github.com/jdaigle/whisper"
	"github.com/jdaigle/whisper/internal/config"
)

func main() {
	retentions := flag.String("retentions", "", "retention schema, e.g. \"1s:1d,1m:30d,1h:5y\"")
	aggregation := flag.String("aggregation", "average", "aggregation method: average, sum, last, max, min")
	xFilesFactor := flag.Float64("xfiles-factor", 0.5, "minimum known fraction required to propagate a point")
	sparse := flag.Bool("sparse", false, "create the data region as a sparse hole instead of writing zeros")
	checksum := flag.Bool("checksum", false, "write an xxhash64 checksum sidecar next to the file")
	schemaFile := flag.String("schema-config", "", "path to a TOML schema config file")
	schemaName := flag.String("schema", "", "schema name to look up in -schema-config")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: create [flags] <path>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	if *schemaFile != "" {
		if *schemaName == "" {
			fmt.Fprintln(os.Stderr, "-schema is required when -schema-config is set")
			os.Exit(1)
		}
		cfg, err := config.Load(*schemaFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		schema, err := cfg.Lookup(*schemaName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		*retentions = schema.Retentions
		*aggregation = schema.Aggregation
		if schema.XFilesFactor != 0 {
			*xFilesFactor = schema.XFilesFactor
		}
	}

	if *retentions == "" {
		fmt.Fprintln(os.Stderr, "-retentions or -schema-config/-schema is required")
		os.Exit(1)
	}

	specs, err := whisper.ParseArchiveSpecs(*retentions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse retentions: %s\n", err)
		os.Exit(1)
	}

	method, ok := whisper.ParseAggregationMethod(*aggregation)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown aggregation method: %s\n", *aggregation)
		os.Exit(1)
	}

	err = whisper.Create(path, specs, &whisper.CreateOptions{
		XFilesFactor:      *xFilesFactor,
		AggregationMethod: method,
		Sparse:            *sparse,
		Checksum:          *checksum,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %s\n", path, err)
		os.Exit(1)
	}
}
