package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"

	"github.com/huffpuff/huffpuff"
)

const progName = "puff"

var log = logging.MustGetLogger(progName)

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} | %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

func main() {
	os.Exit(run())
}

func run() int {
	startLogging()

	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input-file> <output-file>\n", progName)
		return 1
	}

	in, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err)
		return 1
	}
	defer in.Close()

	out, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err)
		return 1
	}

	obs := &huffpuff.Observer{
		AfterCount: func(ft *huffpuff.FrequencyTable) {
			log.Infof("header declares %d original bytes", ft.Total())
		},
		AfterBuild: func(t *huffpuff.Tree) {
			log.Infof("code tree rebuilt: %d leaves, %d internal nodes", t.NumLeaves(), t.NumInternal())
		},
		Progress: func(n int64) {
			log.Debugf("decoded %d bytes", n)
		},
	}

	res, err := huffpuff.Decompress(in, out, obs)
	if err != nil {
		log.Errorf("decompression failed: %s", err)
		out.Close()
		return 1
	}
	if err := out.Close(); err != nil {
		log.Errorf("closing %s: %s", os.Args[2], err)
		return 1
	}

	_, _ = res.Stats.Dump(os.Stderr)
	log.Infof("%d bytes of output", res.OriginalBytes)
	return 0
}
