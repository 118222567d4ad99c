package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerconnect/internal/analyzer"
	"github.com/spigell/careerconnect/internal/logger"
	"github.com/spigell/careerconnect/internal/report"
	"github.com/spigell/careerconnect/internal/resume"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Print the skills detected in a resume without searching for jobs",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}

		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}

		vocabulary, err := newVocabulary(config)
		if err != nil {
			logger.Fatal("preparing vocabulary", zap.Error(err))
		}

		if cmd.Flag("list").Value.String() == "true" {
			fmt.Println(strings.Join(vocabulary.Terms(), "\n"))
			return
		}

		path, _ := cmd.Flags().GetString("resume")
		if strings.TrimSpace(path) == "" {
			logger.Fatal("reading resume", zap.Error(errNoResume))
		}

		text, err := resume.ExtractFile(path)
		if err != nil {
			logger.Fatal("reading resume", zap.String("path", path), zap.Error(err))
		}

		// No fetcher: providers are never queried here.
		analysis := analyzer.New(vocabulary, nil, logger).AnalyzeText(cmd.Context(), text)
		if err := report.Build(analysis, nil, config.Display.Limit).WriteSkills(os.Stdout); err != nil {
			logger.Fatal("writing skills", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)

	skillsCmd.Flags().StringP("resume", "r", "", "path to the resume in PDF format")
	skillsCmd.Flags().BoolP("list", "l", false, "print the configured skill vocabulary and exit")
}
