// Package config loads builder_config.yaml and overlays command-line
// flags on top of it. Flags only override file values when explicitly
// provided.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the fully resolved run configuration.
type Config struct {
	CharactersCSV string
	ItemsCSV      string
	OutputDir     string
	RosterName    string

	ExportSetup bool
	ExportXLSX  bool

	// Import targeting: which match/team/slot team- and
	// character-level interchange documents land on. Match 0 means
	// "append a new match" for match-level documents.
	Match int
	Team  int
	Slot  int

	ImportFiles []string
}

// FileConfig mirrors builder_config.yaml. Unknown keys are rejected.
type FileConfig struct {
	CharactersCSV string `yaml:"charactersCsv"`
	CapsulesCSV   string `yaml:"capsulesCsv"`
	OutputDir     string `yaml:"outputDir"`
	RosterName    string `yaml:"rosterName"`
	ExportSetup   *bool  `yaml:"exportSetup"`
	ExportXLSX    *bool  `yaml:"exportXlsx"`
}

type stringOpt struct {
	v   string
	set bool
}

func (o *stringOpt) String() string { return o.v }
func (o *stringOpt) Set(v string) error {
	o.v = v
	o.set = true
	return nil
}

type boolOpt struct {
	v   bool
	set bool
}

func (o *boolOpt) String() string {
	if o.v {
		return "true"
	}
	return "false"
}
func (o *boolOpt) Set(v string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	o.v = b
	o.set = true
	return nil
}
func (o *boolOpt) IsBoolFlag() bool { return true }

// Load resolves the configuration from builder_config.yaml under
// appRoot plus the given command-line arguments. Positional arguments
// are the import files, processed later in the order given.
func Load(appRoot string, args []string) (Config, error) {
	fs := flag.NewFlagSet("matchbuilder", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // suppress default usage noise; return errors instead

	var configPath stringOpt
	var useExamples bool

	var charactersOpt stringOpt
	var capsulesOpt stringOpt
	var outDirOpt stringOpt
	var rosterNameOpt stringOpt
	var exportOpt boolOpt
	exportOpt.v = true
	var xlsxOpt boolOpt

	matchTarget := fs.Int("match", 0, "target match id for team/character imports (0 appends a new match)")
	teamTarget := fs.Int("team", 1, "target team (1 or 2) for team/character imports")
	slotTarget := fs.Int("slot", 0, "target slot index for character imports")

	fs.Var(&configPath, "config", "path to builder_config.yaml (default: builder_config.yaml at the app root)")
	fs.BoolVar(&useExamples, "useExamples", false, "use example inputs from input/examples/")
	fs.Var(&charactersOpt, "characters", "path to the character table csv")
	fs.Var(&capsulesOpt, "capsules", "path to the item table csv")
	fs.Var(&outDirOpt, "out-dir", "output directory (default: output)")
	fs.Var(&rosterNameOpt, "roster-name", "label used in xlsx output file names")
	fs.Var(&exportOpt, "export", "write MatchSetup.json and ItemSetup.json after imports")
	fs.Var(&xlsxOpt, "xlsx", "also write the roster overview xlsx")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		CharactersCSV: filepath.Join("data", "characters.csv"),
		ItemsCSV:      filepath.Join("data", "capsules.csv"),
		OutputDir:     "output",
		RosterName:    "roster",
		ExportSetup:   true,
	}
	path := strings.TrimSpace(configPath.v)
	if path == "" {
		path = "builder_config.yaml"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(appRoot, path)
	}
	fc, err := loadFileConfig(path)
	if err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(fc.CharactersCSV) != "" {
		cfg.CharactersCSV = strings.TrimSpace(fc.CharactersCSV)
	}
	if strings.TrimSpace(fc.CapsulesCSV) != "" {
		cfg.ItemsCSV = strings.TrimSpace(fc.CapsulesCSV)
	}
	if strings.TrimSpace(fc.OutputDir) != "" {
		cfg.OutputDir = strings.TrimSpace(fc.OutputDir)
	}
	if strings.TrimSpace(fc.RosterName) != "" {
		cfg.RosterName = strings.TrimSpace(fc.RosterName)
	}
	if fc.ExportSetup != nil {
		cfg.ExportSetup = *fc.ExportSetup
	}
	if fc.ExportXLSX != nil {
		cfg.ExportXLSX = *fc.ExportXLSX
	}

	// Flags beat the file, and -useExamples is a flag: it overrides
	// whatever table paths the file configured.
	if useExamples {
		cfg.CharactersCSV = filepath.Join("input", "examples", "characters.example.csv")
		cfg.ItemsCSV = filepath.Join("input", "examples", "capsules.example.csv")
	}
	if charactersOpt.set {
		cfg.CharactersCSV = strings.TrimSpace(charactersOpt.v)
	}
	if capsulesOpt.set {
		cfg.ItemsCSV = strings.TrimSpace(capsulesOpt.v)
	}
	if outDirOpt.set {
		cfg.OutputDir = strings.TrimSpace(outDirOpt.v)
	}
	if rosterNameOpt.set {
		cfg.RosterName = strings.TrimSpace(rosterNameOpt.v)
	}
	if exportOpt.set {
		cfg.ExportSetup = exportOpt.v
	}
	if xlsxOpt.set {
		cfg.ExportXLSX = xlsxOpt.v
	}

	cfg.Match = *matchTarget
	cfg.Team = *teamTarget
	cfg.Slot = *slotTarget
	if cfg.Team != 1 && cfg.Team != 2 {
		return Config{}, fmt.Errorf("invalid -team %d (expected 1 or 2)", cfg.Team)
	}

	for _, p := range []*string{&cfg.CharactersCSV, &cfg.ItemsCSV, &cfg.OutputDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(appRoot, *p)
		}
	}

	cfg.ImportFiles = fs.Args()
	return cfg, nil
}

func loadFileConfig(path string) (FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("read config yaml %s: %w", path, err)
	}

	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return FileConfig{}, fmt.Errorf("parse config yaml %s: %w", path, err)
	}
	return fc, nil
}
