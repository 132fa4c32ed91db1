package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/delaneyj/pushparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityKey  = "count"
	outDirKey = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the fixed-arity constructors of the flow package",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest arity to generate for ComputedN and CombineN",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outDirKey,
				Usage: "Directory of the flow package",
				Value: "flow",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for flow started")
	defer func() {
		log.Printf("Codegen for flow finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityKey))
	if count < 2 {
		return fmt.Errorf("--%s must be at least 2, got %d", arityKey, count)
	}
	outDir := cmd.String(outDirKey)
	log.Printf("Arity: %d, output: %s", count, outDir)

	files := map[string]string{
		"computed_gen.go": templates.ComputedGen(count),
		"combine_gen.go":  templates.CombineGen(count),
	}
	for name, contents := range files {
		if err := writeSource(filepath.Join(outDir, name), contents); err != nil {
			return err
		}
	}
	return nil
}

func writeSource(path, contents string) error {
	src, err := format.Source([]byte(contents))
	if err != nil {
		return fmt.Errorf("formatting %s: %w", path, err)
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
