package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/yangl1996/slotted-backoff/sweep"
)

var L = log.New(os.Stderr, "", 0)

func main() {
	flag.Parse()

	cfg, err := getConfig()
	if err != nil {
		L.Fatalln("error reading config:", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		L.Fatalln(err)
	}
	digest, err := configDigest(&cfg)
	if err != nil {
		L.Fatalln(err)
	}
	L.Printf("# seed %d, %d window sizes, %d to %d nodes, %d slots, %d trials\n", cfg.Seed, len(cfg.WindowSizes), cfg.MinNodes, cfg.MaxNodes, cfg.Slots, cfg.Trials)

	start := time.Now()
	series, err := sweep.Run(cfg, func(p sweep.Point) {
		L.Printf("W = %2d N = %2d: %.6f\n", p.Window, p.Nodes, p.Efficiency)
	})
	if err != nil {
		L.Fatalln(err)
	}
	L.Printf("# done in %.2fs\n", time.Since(start).Seconds())

	if err := writeTable(os.Stdout, digest, series); err != nil {
		L.Fatalln(err)
	}
	if *outputPrefix != "" {
		if err := writeOutputs(*outputPrefix, &cfg, digest, series); err != nil {
			L.Fatalln(err)
		}
	}
}

func writeOutputs(prefix string, cfg *sweep.Config, digest string, series []sweep.Series) error {
	if err := writeConfigFile(prefix+".json", cfg); err != nil {
		return err
	}
	dataPath := prefix + ".dat"
	df, err := os.Create(dataPath)
	if err != nil {
		return err
	}
	defer df.Close()
	if err := writeTable(df, digest, series); err != nil {
		return err
	}
	pf, err := os.Create(prefix + ".gp")
	if err != nil {
		return err
	}
	defer pf.Close()
	return writePlotScript(pf, dataPath, cfg)
}
