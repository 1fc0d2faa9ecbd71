package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yangl1996/slotted-backoff/sweep"
)

var windowSizes = flag.String("w", "8,16,32", "comma-separated list of backoff window sizes")
var minNodes = flag.Int("nmin", 1, "smallest number of contending nodes")
var maxNodes = flag.Int("nmax", 32, "largest number of contending nodes")
var numSlots = flag.Int("slots", 100000, "number of slots per simulation")
var numTrials = flag.Int("trials", 1, "number of simulations per window size and node count")
var seed = flag.Int64("seed", 0, "seed to use for the RNG, 0 to seed with time")
var numWorkers = flag.Int("j", 0, "number of simulations to run in parallel, 0 to use all CPUs")
var readConfig = flag.String("c", "", "read config from `file`; the config will be overwritten by parameters passed through command line")
var outputPrefix = flag.String("out", "", "output data path prefix, no output files if empty")

func parseWindows(s string) ([]int, error) {
	var res []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		w, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		res = append(res, w)
	}
	return res, nil
}

func updateConfig(cfg *sweep.Config, f *flag.Flag) error {
	var err error
	switch f.Name {
	case "w":
		cfg.WindowSizes, err = parseWindows(*windowSizes)
	case "nmin":
		cfg.MinNodes = *minNodes
	case "nmax":
		cfg.MaxNodes = *maxNodes
	case "slots":
		cfg.Slots = *numSlots
	case "trials":
		cfg.Trials = *numTrials
	case "seed":
		cfg.Seed = *seed
	case "j":
		cfg.Workers = *numWorkers
	}
	return err
}

func getConfig() (sweep.Config, error) {
	var err error
	var cfg sweep.Config
	// first see if we need to read from config file
	if *readConfig != "" {
		cfg, err = readConfigFile(*readConfig)
		if err != nil {
			return cfg, err
		}
		flag.Visit(func(f *flag.Flag) {
			if e := updateConfig(&cfg, f); e != nil && err == nil {
				err = e
			}
		})
	} else {
		cfg = sweep.Config{
			MinNodes: *minNodes,
			MaxNodes: *maxNodes,
			Slots:    *numSlots,
			Trials:   *numTrials,
			Seed:     *seed,
			Workers:  *numWorkers,
		}
		cfg.WindowSizes, err = parseWindows(*windowSizes)
	}
	return cfg, err
}

// readConfigFile fills the fields missing from the file with their defaults.
func readConfigFile(path string) (sweep.Config, error) {
	cf := sweep.DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cf, err
	}
	defer f.Close()
	fc, err := io.ReadAll(f)
	if err != nil {
		return cf, err
	}
	err = json.Unmarshal(fc, &cf)
	return cf, err
}

func writeConfigFile(path string, cf *sweep.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := json.MarshalIndent(cf, "", " ")
	if err != nil {
		return err
	}
	_, err = f.Write(b)
	return err
}
