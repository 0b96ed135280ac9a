// Command builder extracts verb definitions from a wiktionary XML export
// and writes them as a line-pair text file plus a JSON object.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oriolrp/verbdefs/internal/definitions"
	"github.com/oriolrp/verbdefs/internal/dump"
	"github.com/oriolrp/verbdefs/internal/infinitives"
)

func main() {
	var (
		dumpPath = flag.String("dump", "", "wiktionary XML export (.xml or .xml.bz2)")
		infPath  = flag.String("infinitives", "data/infinitives.txt", "target infinitive list, one per line")
		outDir   = flag.String("out", "data", "output directory for definitions.txt and definitions.json")
		workers  = flag.Int("workers", 4, "concurrent page extractions")
	)
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if *dumpPath == "" {
		log.Error("missing required -dump flag")
		os.Exit(1)
	}

	ordered, set, err := infinitives.Load(*infPath)
	if err != nil {
		log.Error("load infinitives", "error", err)
		os.Exit(1)
	}
	log.Info("loaded infinitives", "count", len(ordered))

	src, closer, err := dump.Open(*dumpPath)
	if err != nil {
		log.Error("open dump", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	builder := definitions.NewBuilder(log, *workers)
	mapping, report, err := builder.Build(src, ordered, set)
	if err != nil {
		log.Error("build definitions", "error", err)
		os.Exit(1)
	}

	textPath := filepath.Join(*outDir, "definitions.txt")
	if err := definitions.WriteText(textPath, mapping, ordered); err != nil {
		log.Error("write definitions text", "error", err)
		os.Exit(1)
	}

	jsonPath := filepath.Join(*outDir, "definitions.json")
	if err := definitions.WriteJSON(jsonPath, mapping); err != nil {
		log.Error("write definitions json", "error", err)
		os.Exit(1)
	}

	log.Info("definitions written",
		"defined", len(report.Defined),
		"undefined", len(report.Undefined),
		"text", textPath,
		"json", jsonPath,
	)
}
