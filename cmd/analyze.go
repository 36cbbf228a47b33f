package cmd

import (
	"context"
	"encoding/json"
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

	"github.com/sukenderreddy/resume-word-suggestor/internal/document"
	"github.com/sukenderreddy/resume-word-suggestor/internal/logger"
	"github.com/sukenderreddy/resume-word-suggestor/internal/match"
)

const (
	PromptReport   = "Print report"
	PromptMatched  = "Print matched keywords"
	PromptMissing  = "Print missing keywords"
	PromptDumpFile = "Dump result to file"
	PromptExit     = "Exit"

	outputText = "text"
	outputJSON = "json"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReport, PromptMatched, PromptMissing, PromptDumpFile, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "resume file (pdf, docx, html or text)")
	analyzeCmd.Flags().String("job", "", "job description file (pdf, docx, html or text)")
	analyzeCmd.Flags().String("job-text", "", "job description text")
	analyzeCmd.Flags().StringP("output", "o", outputText, "output format: text or json")
	analyzeCmd.Flags().BoolP("yes", "y", false, "print the report and exit without asking")

	analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagsOneRequired("job", "job-text")
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig(viper.GetViper())
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the analysis", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	output := strings.ToLower(cmd.Flag("output").Value.String())
	if output != outputText && output != outputJSON {
		logger.Fatal("unsupported output format", zap.String("output", output))
	}

	resumeText, err := document.Load(document.Source{
		Name: "resume",
		File: cmd.Flag("resume").Value.String(),
	})
	if err != nil {
		logger.Fatal("loading resume", zap.Error(err))
	}

	// a blank job description is valid and scores 0
	jobText, err := document.Load(document.Source{
		Name:       "job description",
		Text:       cmd.Flag("job-text").Value.String(),
		File:       cmd.Flag("job").Value.String(),
		AllowEmpty: true,
	})
	if err != nil {
		logger.Fatal("loading job description", zap.Error(err),
			zap.String("hint", "pass --job <file> or --job-text <text>"),
		)
	}

	ctx = match.WithSource(ctx, cmd.Flag("resume").Value.String())

	assessment, err := newMatcher(config, logger).Evaluate(ctx, resumeText, jobText)
	if err != nil {
		logger.Fatal("analyzing resume", zap.Error(err))
	}

	out := cmd.OutOrStdout()

	if output == outputJSON {
		if err := writeJSON(out, assessment.Result); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		return
	}

	action := PromptReport
	for {
		var err error
		if cmd.Flag("yes").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		if err := handleAction(out, action, logger, assessment); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if cmd.Flag("yes").Value.String() == "true" {
			return
		}
	}
}

func handleAction(out io.Writer, action string, logger *zap.Logger, assessment *match.Assessment) error {
	switch action {
	case PromptReport:
		return writeReport(out, assessment)
	case PromptMatched:
		return writeList(out, "Matched keywords", assessment.Result.Matched)
	case PromptMissing:
		return writeList(out, "Missing keywords", assessment.Result.Missing)
	case PromptDumpFile:
		filename, err := dumpToTmpFile(assessment)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func writeReport(out io.Writer, a *match.Assessment) error {
	fit := "yes"
	if !a.Fit {
		fit = "no"
	}

	_, err := fmt.Fprintf(out,
		"ATS score: %.2f%%\nFit: %s\nMatched: %d of %d job keywords\n\n",
		a.Result.Score, fit, len(a.Result.Matched), len(a.JobKeywords),
	)
	if err != nil {
		return err
	}

	if err := writeList(out, "Matched keywords", a.Result.Matched); err != nil {
		return err
	}
	return writeList(out, "Missing keywords", a.Result.Missing)
}

func writeList(out io.Writer, title string, words []string) error {
	body := "(none)"
	if len(words) > 0 {
		body = strings.Join(words, ", ")
	}
	_, err := fmt.Fprintf(out, "%s (%d):\n  %s\n", title, len(words), body)
	return err
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dumpToTmpFile(a *match.Assessment) (string, error) {
	file, err := os.CreateTemp("", "ats_analysis_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := writeJSON(file, a); err != nil {
		return "", err
	}
	return file.Name(), nil
}
