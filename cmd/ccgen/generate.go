package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/config"
	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/credentials"
	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/generator"
	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/globalconfig"
	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/tui"
)

var loadSettings = globalconfig.Load

var newDeriver = func(script string) (credentials.Deriver, error) {
	return credentials.NewScriptDeriver(script)
}

// runGenerate reads the template, asks the operator for values, and writes
// the generated document next to the template.
func runGenerate(cmd *cobra.Command, inputPath string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	level, err := settings.Level()
	if err != nil {
		log.Warn().Err(err).Msg("falling back to default log level")
	}
	zerolog.SetGlobalLevel(level)

	template, err := generator.ReadTemplate(inputPath)
	if err != nil {
		return err
	}
	log.Debug().Str("path", inputPath).Int("bytes", len(template)).Msg("read template")

	deriver, err := newDeriver(settings.HashScript)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	prompter := tui.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

	answers, err := config.Collect(ctx, prompter, deriver)
	if err != nil {
		return fmt.Errorf("failed to collect configuration: %w", err)
	}

	document := generator.Transform(template, answers.Features, answers.Replacements())
	if err := generator.Lint(document); err != nil {
		log.Warn().Err(err).Msg("generated document may be rejected by cloud-init")
	}

	outputPath := generator.OutputPath(inputPath)
	if err := generator.WriteOutput(outputPath, document); err != nil {
		return err
	}

	return generator.Echo(cmd.OutOrStdout(), document, outputPath)
}
