package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillpath/internal/config"
	"github.com/jonathan/skillpath/internal/extract"
	"github.com/jonathan/skillpath/internal/links"
	"github.com/jonathan/skillpath/internal/llm"
	"github.com/jonathan/skillpath/internal/normalize"
	"github.com/jonathan/skillpath/internal/observability"
	"github.com/jonathan/skillpath/internal/pipeline"
	"github.com/jonathan/skillpath/internal/render"
	"github.com/jonathan/skillpath/internal/roadmap"
	"github.com/jonathan/skillpath/internal/suggest"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full skill gap analysis end-to-end",
	Long: `Orchestrates the entire analysis: skill normalization -> role scoring -> gap ranking -> roadmap synthesis.

Skills come from a JSON file (--skills) or are extracted from a resume PDF (--resume, requires an API key). Role suggestions come from a JSON file (--suggestions) or are requested from the model collaborator.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeResume      string
	analyzeSkills      string
	analyzeSuggestions string
	analyzeAliasTable  string
	analyzeEffortTable string
	analyzePrereqTable string
	analyzeMaxSteps    int
	analyzeRoleCount   int
	analyzeOut         string
	analyzePDFOut      string
	analyzeAPIKey      string
	analyzeDatabaseURL string
	analyzeVerbose     bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume PDF (mutually exclusive with --skills)")
	analyzeCmd.Flags().StringVarP(&analyzeSkills, "skills", "s", "", "Path to JSON array of raw skill strings (mutually exclusive with --resume)")
	analyzeCmd.Flags().StringVar(&analyzeSuggestions, "suggestions", "", "Path to role suggestions JSON (optional, requested from the model if omitted)")
	analyzeCmd.Flags().StringVar(&analyzeAliasTable, "alias-table", "", "Path to skill alias table JSON")
	analyzeCmd.Flags().StringVar(&analyzeEffortTable, "effort-table", "", "Path to skill effort tier table JSON")
	analyzeCmd.Flags().StringVar(&analyzePrereqTable, "prereq-table", "", "Path to skill prerequisite table JSON")
	analyzeCmd.Flags().IntVar(&analyzeMaxSteps, "max-steps", 0, "Maximum roadmap steps (0 uses the default)")
	analyzeCmd.Flags().IntVar(&analyzeRoleCount, "role-count", 0, "Role suggestions to request from the model")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to write the result JSON (optional, defaults to stdout summary only)")
	analyzeCmd.Flags().StringVar(&analyzePDFOut, "roadmap-pdf", "", "Path to write a roadmap PDF (optional)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed stage output")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("alias-table") {
		cfg.AliasTable = analyzeAliasTable
	}
	if cmd.Flags().Changed("effort-table") {
		cfg.EffortTable = analyzeEffortTable
	}
	if cmd.Flags().Changed("prereq-table") {
		cfg.PrereqTable = analyzePrereqTable
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = analyzeMaxSteps
	}
	if cmd.Flags().Changed("role-count") {
		cfg.RoleCount = analyzeRoleCount
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		MaxSteps:  config.DefaultMaxSteps,
		RoleCount: config.DefaultRoleCount,
	})

	// Step 4: Validate input sources
	if analyzeResume == "" && analyzeSkills == "" {
		return fmt.Errorf("either --resume or --skills must be provided")
	}
	if analyzeResume != "" && analyzeSkills != "" {
		return fmt.Errorf("--resume and --skills are mutually exclusive; provide only one")
	}

	// Step 5: API key handling (only needed when the model collaborator is used)
	needsModel := analyzeResume != "" || analyzeSuggestions == ""
	if needsModel {
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required when using --resume or requesting role suggestions")
		}
	}

	// Step 6: Load operator tables and build the orchestrator
	aliases, err := config.LoadAliasTable(cfg.AliasTable)
	if err != nil {
		return err
	}
	efforts, err := config.LoadEffortTable(cfg.EffortTable)
	if err != nil {
		return err
	}
	prereqs, err := config.LoadPrerequisiteTable(cfg.PrereqTable)
	if err != nil {
		return err
	}

	orch, err := pipeline.New(aliases, roadmap.Options{
		MaxSteps: cfg.MaxSteps,
		Efforts:  efforts,
		Prereqs:  prereqs,
	})
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	var client llm.Client
	if needsModel {
		gemini, err := llm.NewGeminiClient(ctx, cfg.APIKey, llm.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer func() { _ = gemini.Close() }()
		client = gemini
	}

	// Step 7: Gather raw skills
	var rawSkills []string
	source := analyzeSkills
	if analyzeResume != "" {
		source = analyzeResume
		text, err := extract.TextFromPDF(analyzeResume)
		if err != nil {
			return fmt.Errorf("failed to extract resume text: %w", err)
		}
		rawSkills, err = suggest.ParseResumeSkills(ctx, client, text)
		if err != nil {
			return fmt.Errorf("failed to parse resume skills: %w", err)
		}
	} else {
		data, err := os.ReadFile(analyzeSkills)
		if err != nil {
			return fmt.Errorf("failed to read skills file: %w", err)
		}
		if err := json.Unmarshal(data, &rawSkills); err != nil {
			return fmt.Errorf("failed to parse skills JSON: %w", err)
		}
	}

	// Step 8: Gather role suggestions
	var suggestions json.RawMessage
	if analyzeSuggestions != "" {
		data, err := os.ReadFile(analyzeSuggestions)
		if err != nil {
			return fmt.Errorf("failed to read suggestions file: %w", err)
		}
		suggestions = data
	} else {
		skillSet := normalize.NewNormalizer(aliases).Normalize(rawSkills)
		suggestions, err = suggest.SuggestRoles(ctx, client, skillSet, cfg.RoleCount)
		if err != nil {
			return fmt.Errorf("failed to request role suggestions: %w", err)
		}
	}

	// Step 9: Run the pipeline
	result, err := orch.Run(ctx, pipeline.Input{
		RawSkills:       rawSkills,
		RoleSuggestions: suggestions,
	})
	if err != nil {
		return err
	}

	// Attach job search links to each viable role
	for i := range result.Roles {
		result.Roles[i].SearchLinks = links.BuildSearchLinks(result.Roles[i].Title)
	}

	// Step 10: Report
	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSkillSet(&result.Skills)
		printer.PrintScoredRoles(result.Roles)
		printer.PrintGapEntries(result.Gaps)
		printer.PrintRoadmap(result.Roadmap, result.Report.DroppedGaps)
		printer.PrintReport(result.Report)
	}

	if analyzeOut != "" {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := os.WriteFile(analyzeOut, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write result file: %w", err)
		}
	}

	if analyzePDFOut != "" {
		targetRole := ""
		if len(result.Roles) > 0 {
			targetRole = result.Roles[0].Title
		}
		if err := render.RoadmapPDF(result, targetRole, analyzePDFOut); err != nil {
			return fmt.Errorf("failed to render roadmap PDF: %w", err)
		}
	}

	// Step 11: Optional persistence. A missing database never fails the run.
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL != "" {
		if err := persistResult(ctx, cfg.DatabaseURL, source, rawSkills, suggestions, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist run: %v\n", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Analysis complete: run %s, %d viable roles, %d gaps, %d roadmap steps\n",
		result.RunID, len(result.Roles), len(result.Gaps), len(result.Roadmap))

	return nil
}
