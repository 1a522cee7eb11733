// Command gematria precomputes gematria values for Sefaria Tanakh JSON
// exports, writing one JSON record per chapter for use by the browsing
// application.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/TanakhGematria/core/gematria"
	"github.com/FocuswithJustin/TanakhGematria/core/hebrew"
	"github.com/FocuswithJustin/TanakhGematria/core/sqlite"
	"github.com/FocuswithJustin/TanakhGematria/internal/archive"
	"github.com/FocuswithJustin/TanakhGematria/internal/dataset"
)

const version = "0.1.0"

// CLI defines the command-line interface for gematria.
var CLI struct {
	Build   BuildCmd   `cmd:"" help:"Precompute the per-chapter dataset from Sefaria book JSON files"`
	Word    WordCmd    `cmd:"" help:"Compute all method values for ad-hoc words"`
	Methods MethodsCmd `cmd:"" help:"List the fixed method catalog"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// BuildCmd precomputes the dataset for one file or a directory of files.
type BuildCmd struct {
	InputFile string `help:"Path to a single Sefaria book JSON file" type:"existingfile" xor:"input" required:""`
	InputDir  string `help:"Directory containing one or more Sefaria book JSON files" type:"existingdir" xor:"input" required:""`
	Out       string `required:"" help:"Output root directory (per-book subdirectories)" type:"path"`
	SQLite    string `name:"sqlite" help:"Also mirror records into a SQLite database at this path" type:"path"`
	Archive   bool   `help:"Pack each book's output directory into <title>.tar.xz"`
}

func (c *BuildCmd) Run() error {
	var files []string
	if c.InputFile != "" {
		files = []string{c.InputFile}
	} else {
		entries, err := os.ReadDir(c.InputDir)
		if err != nil {
			return fmt.Errorf("failed to read input directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
				continue
			}
			files = append(files, filepath.Join(c.InputDir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files found")
	}

	var sink *dataset.SQLiteSink
	if c.SQLite != "" {
		var err error
		sink, err = dataset.OpenSQLiteSink(c.SQLite)
		if err != nil {
			return err
		}
		defer sink.Close()
	}

	fmt.Printf("Gematria dataset build\n")
	fmt.Printf("  Output: %s\n", c.Out)
	fmt.Println()

	failed := 0
	for _, path := range files {
		manifest, err := c.processFile(path, sink)
		if err != nil {
			fmt.Printf("  [FAIL] %s: %v\n", filepath.Base(path), err)
			failed++
			continue
		}
		fmt.Printf("  [PASS] %s (%d chapters)\n", manifest.Title, manifest.Chapters)
	}

	fmt.Println()
	fmt.Printf("Results: %d processed, %d failed\n", len(files)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

func (c *BuildCmd) processFile(path string, sink *dataset.SQLiteSink) (*dataset.Manifest, error) {
	src, err := dataset.ReadSource(path)
	if err != nil {
		return nil, err
	}

	book := dataset.Build(src, nil)
	manifest, err := dataset.WriteBook(book, c.Out)
	if err != nil {
		return nil, err
	}

	if sink != nil {
		if err := sink.WriteBook(book); err != nil {
			return nil, err
		}
	}

	if c.Archive {
		bookDir := filepath.Join(c.Out, book.Title)
		archivePath := filepath.Join(c.Out, book.Title+".tar.xz")
		if err := archive.CreateBookTarXz(bookDir, archivePath); err != nil {
			return nil, err
		}
	}

	return manifest, nil
}

// WordCmd computes all method values for words given on the command line.
type WordCmd struct {
	Words []string `arg:"" help:"Hebrew words (pointing and cantillation are stripped)"`
	JSON  bool     `help:"Output as JSON"`
}

func (c *WordCmd) Run() error {
	type wordValues struct {
		Word   string         `json:"word"`
		Values map[string]int `json:"values"`
	}

	var results []wordValues
	for _, word := range c.Words {
		letters := hebrew.LettersOnly(hebrew.StripMarks(word))
		values := make(map[string]int, len(gematria.Methods()))
		for _, method := range gematria.Methods() {
			v, _ := gematria.Value(method, letters, nil)
			values[method] = v
		}
		results = append(results, wordValues{Word: letters, Values: values})
	}

	if c.JSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, result := range results {
		fmt.Printf("%s\n", result.Word)
		for _, method := range gematria.Methods() {
			fmt.Printf("  %-14s %d\n", method, result.Values[method])
		}
		fmt.Println()
	}
	return nil
}

// MethodsCmd lists the fixed method catalog.
type MethodsCmd struct{}

func (c *MethodsCmd) Run() error {
	for _, method := range gematria.Methods() {
		fmt.Println(method)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("gematria %s\n", version)
	fmt.Printf("  sqlite driver: %s (%s)\n", sqlite.DriverName(), sqlite.DriverType())
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("gematria"),
		kong.Description("Tanakh Gematria - per-chapter gematria dataset generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
