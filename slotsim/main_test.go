package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yangl1996/slotted-backoff/sweep"
)

func TestParseWindows(t *testing.T) {
	ws, err := parseWindows(" 8, 16,32,")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{8, 16, 32}, ws); diff != "" {
		t.Errorf("unexpected window sizes (-want +got):\n%s", diff)
	}
	if _, err := parseWindows("8,x"); err == nil {
		t.Error("accepted a non-integer window size")
	}
}

func TestReadConfigFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"WindowSizes": [4], "Slots": 500}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := readConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := sweep.DefaultConfig()
	expected.WindowSizes = []int{4}
	expected.Slots = 500
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := sweep.Config{
		WindowSizes: []int{2, 64},
		MinNodes:    3,
		MaxNodes:    9,
		Slots:       1000,
		Trials:      5,
		Seed:        99,
		Workers:     2,
	}
	if err := writeConfigFile(path, &cfg); err != nil {
		t.Fatal(err)
	}
	read, err := readConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, read); diff != "" {
		t.Errorf("config changed through the file (-want +got):\n%s", diff)
	}
}

func TestUpdateConfig(t *testing.T) {
	defer flag.Set("nmax", "32")
	defer flag.Set("w", "8,16,32")
	if err := flag.Set("nmax", "5"); err != nil {
		t.Fatal(err)
	}
	if err := flag.Set("w", "2,3"); err != nil {
		t.Fatal(err)
	}
	cfg := sweep.DefaultConfig()
	for _, name := range []string{"nmax", "w"} {
		if err := updateConfig(&cfg, flag.Lookup(name)); err != nil {
			t.Fatal(err)
		}
	}
	if cfg.MaxNodes != 5 {
		t.Errorf("max nodes %d, expected 5", cfg.MaxNodes)
	}
	if diff := cmp.Diff([]int{2, 3}, cfg.WindowSizes); diff != "" {
		t.Errorf("unexpected window sizes (-want +got):\n%s", diff)
	}
	if cfg.Slots != sweep.DefaultConfig().Slots {
		t.Error("flag not passed on the command line changed the config")
	}
}

func TestConfigDigest(t *testing.T) {
	cfg := sweep.DefaultConfig()
	a, err := configDigest(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := configDigest(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a != b || len(a) != 16 {
		t.Errorf("unstable or malformed digest %q, %q", a, b)
	}
	cfg.Seed = 1
	c, err := configDigest(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("digest does not depend on the seed")
	}
}

func TestWriteTable(t *testing.T) {
	cfg := sweep.Config{
		WindowSizes: []int{4, 8},
		MinNodes:    1,
		MaxNodes:    3,
		Slots:       1000,
		Trials:      1,
		Seed:        5,
		Workers:     2,
	}
	series, err := sweep.Run(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := writeTable(buf, "abcd", series); err != nil {
		t.Fatal(err)
	}
	blocks := strings.Split(buf.String(), "\n\n\n")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 data blocks, got %d:\n%s", len(blocks), buf.String())
	}
	if !strings.HasPrefix(blocks[0], "# config abcd\n") {
		t.Error("missing config digest header")
	}
	for i, b := range blocks {
		lines := strings.Split(strings.TrimSpace(b), "\n")
		var data []string
		for _, l := range lines {
			if !strings.HasPrefix(l, "#") {
				data = append(data, l)
			}
		}
		if len(data) != 4 {
			t.Errorf("block %d has %d lines, expected a title and 3 points", i, len(data))
			continue
		}
		if want := []string{`"W = 4"`, `"W = 8"`}[i]; data[0] != want {
			t.Errorf("block %d titled %s, expected %s", i, data[0], want)
		}
		if fields := strings.Fields(data[1]); len(fields) != 9 || fields[0] != "1" {
			t.Errorf("malformed data line %q", data[1])
		}
	}
}

func TestWritePlotScript(t *testing.T) {
	cfg := sweep.DefaultConfig()
	buf := &bytes.Buffer{}
	if err := writePlotScript(buf, "out.dat", &cfg); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	for _, want := range []string{"set xrange [0:32]", "set yrange [0:1]", `plot for [i=0:2] "out.dat"`, "set key top right"} {
		if !strings.Contains(s, want) {
			t.Errorf("plot script missing %q:\n%s", want, s)
		}
	}
}
