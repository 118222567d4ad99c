package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerconnect/internal/logger"
	"github.com/spigell/careerconnect/internal/report"
	"github.com/spigell/careerconnect/internal/resume"
)

const (
	PromptShowAll        = "Show all jobs"
	PromptShowByProvider = "Show jobs by provider"
	PromptJobsToFile     = "Dump jobs to file"
	PromptExit           = "Exit"
	PromptBack           = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowAll, PromptShowByProvider, PromptJobsToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze a resume and search matching jobs",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("resume", "r", "", "path to the resume in PDF format")
	runCmd.Flags().BoolP("auto-approve", "y", false, "print all jobs and exit without asking")

	viper.BindPFlag("resume", runCmd.Flags().Lookup("resume"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the careerconnect", zap.String("version", version))

	path := strings.TrimSpace(viper.GetString("resume"))
	if path == "" {
		logger.Fatal("reading resume", zap.Error(errNoResume))
	}

	analyzer, aggregator, err := newAnalyzer(config, logger)
	if err != nil {
		logger.Fatal("preparing analyzer", zap.Error(err))
	}

	text, err := resume.ExtractFile(path)
	if err != nil {
		logger.Fatal("reading resume", zap.String("path", path), zap.Error(err))
	}

	analysis := analyzer.AnalyzeText(ctx, text)
	rep := report.Build(analysis, aggregator.Names(), config.Display.Limit)

	out := os.Stdout
	if err := rep.WriteSkills(out); err != nil {
		logger.Fatal("writing skills", zap.Error(err))
	}

	if rep.Notice != "" {
		if rep.Notice != report.NoticeNoSkills {
			fmt.Fprintln(out, rep.Notice)
		}
		logger.Info("exiting", zap.String("reason", rep.Notice))
		return
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		if err := handleAction(PromptShowAll, rep, logger, out); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		logger.Info("current list of jobs", zap.Int("count", len(rep.Cards())))

		if err := handleAction(action, rep, logger, out); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, rep *report.Report, logger *zap.Logger, out io.Writer) error {
	switch action {
	case PromptShowAll:
		for _, section := range rep.Providers {
			if err := section.WriteText(out); err != nil {
				return err
			}
		}
		return nil
	case PromptShowByProvider:
		return showByProvider(rep, out)
	case PromptJobsToFile:
		filename, err := rep.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showByProvider(rep *report.Report, out io.Writer) error {
	items := make([]string, 0, len(rep.Providers)+1)
	for _, section := range rep.Providers {
		items = append(items, section.Provider)
	}

	providerPrompt := promptui.Select{
		Label: "Choose a provider and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := providerPrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	section := rep.Section(selected)
	if section == nil {
		return fmt.Errorf("there is no such provider %s", selected)
	}

	return section.WriteText(out)
}
