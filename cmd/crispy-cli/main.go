// Command crispy-cli renders a form for an OpenAPI operation using one of
// the bundled template packs. Missing choices (operation, pack) are prompted
// for interactively.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"

	crispy "github.com/goliatone/go-crispy"
	"github.com/goliatone/go-crispy/pkg/helper"
	"github.com/goliatone/go-crispy/pkg/packs"
	"github.com/goliatone/go-crispy/pkg/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "crispy-cli: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		schemaPath  = flag.String("schema", "", "path to an OpenAPI document (JSON or YAML)")
		operationID = flag.String("operation", "", "operation id to render (prompted when omitted)")
		packName    = flag.String("pack", "", "template pack to use (prompted when omitted)")
		helpersDir  = flag.String("helpers", "", "directory holding helper definition files")
		helperName  = flag.String("helper", "", "helper definition to apply from the helpers directory")
		outputPath  = flag.String("out", "", "output file (stdout when omitted)")
		reload      = flag.Bool("reload", false, "reload templates on every render")
	)
	flag.Parse()

	if *schemaPath == "" {
		return fmt.Errorf("the -schema flag is required")
	}

	ctx := context.Background()

	document, err := os.ReadFile(*schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if *operationID == "" {
		ids, err := crispy.OpenAPIOperationIDs(ctx, document)
		if err != nil {
			return err
		}
		prompt := &survey.Select{Message: "Operation:", Options: ids}
		if err := survey.AskOne(prompt, operationID); err != nil {
			return fmt.Errorf("select operation: %w", err)
		}
	}

	registry := packs.New()
	if *packName == "" {
		prompt := &survey.Select{Message: "Template pack:", Options: registry.List(), Default: packs.DefaultPack}
		if err := survey.AskOne(prompt, packName); err != nil {
			return fmt.Errorf("select pack: %w", err)
		}
	}

	form, err := crispy.FormFromOpenAPI(ctx, document, *operationID)
	if err != nil {
		return err
	}

	var h *helper.Helper
	if *helpersDir != "" && *helperName != "" {
		store, err := helper.LoadFS(os.DirFS(*helpersDir))
		if err != nil {
			return err
		}
		loaded, ok := store.Get(*helperName)
		if !ok {
			return fmt.Errorf("helper %q not found in %s", *helperName, *helpersDir)
		}
		h = loaded
	}

	node, err := render.NewNode(
		render.WithPackRegistry(registry),
		render.WithPack(*packName),
		render.WithReload(*reload),
	)
	if err != nil {
		return err
	}

	markup, err := node.Render(ctx, form, h, nil)
	if err != nil {
		return err
	}

	if *outputPath == "" {
		fmt.Println(markup)
		return nil
	}
	if err := os.WriteFile(*outputPath, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("✓ Rendered %s with the %s pack (%d bytes) → %s\n", *operationID, *packName, len(markup), *outputPath)
	return nil
}
