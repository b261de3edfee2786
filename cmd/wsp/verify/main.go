// Command verify checks a Whisper file's archives against the
// xxhash64 checksum sidecar written by "create -checksum".
package main

import (
	"flag"
	"log"
	"os"

	whisper "github.com/jdaigle/whisper"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: verify <path>")
	}
	path := flag.Arg(0)

	mismatched, err := whisper.VerifyChecksum(path)
	if err != nil {
		log.Fatalf("verify failed: %s", err)
	}

	if len(mismatched) == 0 {
		log.Printf("%s: all archives match their checksum", path)
		return
	}

	log.Printf("%s: %d archive(s) failed checksum verification: %v", path, len(mismatched), mismatched)
	os.Exit(1)
}
