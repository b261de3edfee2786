// Command watch monitors a directory of Whisper files and logs every
// change event (create, write, remove, rename, chmod), the ops-tooling equivalent of watching a
// Carbon cache's storage directory for files an external collector is
// actively writing to.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

func main() {
	ext := flag.String("ext", ".wsp", "only log events for files with this extension")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: watch <directory>")
	}
	dir := flag.Arg(0)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("failed to create watcher: %s", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		log.Fatalf("failed to watch %s: %s", dir, err)
	}

	log.Printf("watching %s for %s changes", dir, *ext)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if *ext != "" && filepath.Ext(event.Name) != *ext {
				continue
			}
			log.Printf("%s: %s", event.Op, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %s", err)
		}
	}
}
