// Command tvgdump decodes a .tvg file and writes its boundary-encoded
// MessagePack document to stdout, or a human-readable JSON rendering with
// -json.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tvgkit/tvg/tvg"
)

func main() {
	var (
		jsonOut  = flag.Bool("json", false, "write a JSON debug rendering instead of MessagePack")
		maxAlloc = flag.Int64("max-alloc", 0, "resource ceiling in bytes for wire-declared repeat counts (0 = unbounded)")
	)
	flag.Parse()

	data, err := readInput(flag.Arg(0))
	if err != nil {
		fatal("tvgdump: %v", err)
	}

	doc, err := tvg.Decode(data, tvg.Options{MaxAllocation: *maxAlloc})
	if err != nil {
		fatal("tvgdump: decode: %v", err)
	}
	for _, w := range doc.Warnings {
		fmt.Fprintf(os.Stderr, "tvgdump: warning: %s\n", w.String())
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc.ToNode()); err != nil {
			fatal("tvgdump: json encode: %v", err)
		}
		return
	}

	out, err := tvg.Emit(doc)
	if err != nil {
		fatal("tvgdump: emit: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fatal("tvgdump: write: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
