package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	mem "pet-shelter-adoption/internal/adapters/storage/memory"
	"pet-shelter-adoption/internal/domain/animals"
	"pet-shelter-adoption/internal/domain/matching"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type matchOptions struct {
	answersPath string
	catalogPath string
	limit       int
	explain     bool
	asJSON      bool
}

func matchCmd() *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank the catalog against a questionnaire answers file",
		Long: `Reads questionnaire answers (YAML or JSON, same keys as POST /matches)
and prints the ranked candidates. Without --catalog the embedded catalog is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.answersPath, "answers", "a", "", "Answers file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "Catalog JSON file (default: embedded)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Max results (0 = all)")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Show per-dimension contributions")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print JSON instead of a table")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func runMatch(w io.Writer, opts matchOptions) error {
	if opts.limit < 0 {
		return errors.New("--limit must be >= 0")
	}

	answers, err := readAnswers(opts.answersPath)
	if err != nil {
		return err
	}

	var catalog []animals.Animal
	if opts.catalogPath != "" {
		catalog, err = mem.LoadCatalogFile(opts.catalogPath)
	} else {
		catalog, err = mem.SeedCatalog()
	}
	if err != nil {
		return err
	}

	matches := matching.ComputeMatches(answers, catalog)
	total := len(matches)
	if opts.limit > 0 && len(matches) > opts.limit {
		matches = matches[:opts.limit]
	}

	if opts.asJSON {
		return writeJSON(w, answers, matches, total, opts.explain)
	}
	return writeTable(w, answers, matches, total, opts.explain)
}

// readAnswers acepta YAML o JSON (JSON es YAML válido).
func readAnswers(path string) (matching.AnswerSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return matching.AnswerSet{}, fmt.Errorf("read answers: %w", err)
	}

	var in matching.AnswerInput
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return matching.AnswerSet{}, fmt.Errorf("decode answers: %w", err)
	}
	return in.AnswerSet()
}

type jsonFactor struct {
	Dimension matching.Dimension `json:"dimension"`
	Score     float64            `json:"score"`
	Weight    int                `json:"weight"`
}

type jsonMatch struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	AnimalType      animals.Type `json:"animal_type"`
	Size            animals.Size `json:"size"`
	MatchPercentage int          `json:"match_percentage"`
	Factors         []jsonFactor `json:"factors,omitempty"`
}

type jsonRun struct {
	Answered       int         `json:"answered"`
	TotalQuestions int         `json:"total_questions"`
	Count          int         `json:"count"`
	Matches        []jsonMatch `json:"matches"`
}

func writeJSON(w io.Writer, answers matching.AnswerSet, matches []matching.ScoredMatch, total int, explain bool) error {
	out := jsonRun{
		Answered:       answers.AnsweredCount(),
		TotalQuestions: answers.TotalQuestions(),
		Count:          total,
		Matches:        make([]jsonMatch, 0, len(matches)),
	}
	for _, m := range matches {
		jm := jsonMatch{
			ID:              m.Animal.ID,
			Name:            m.Animal.Name,
			AnimalType:      m.Animal.Type,
			Size:            m.Animal.Size,
			MatchPercentage: m.MatchPercentage,
		}
		if explain {
			for _, c := range matching.Explain(answers, m.Animal).Components {
				jm.Factors = append(jm.Factors, jsonFactor{Dimension: c.Dimension, Score: c.Score, Weight: c.Weight})
			}
		}
		out.Matches = append(out.Matches, jm)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, answers matching.AnswerSet, matches []matching.ScoredMatch, total int, explain bool) error {
	fmt.Fprintf(w, "answered %d/%d, %d candidates\n\n", answers.AnsweredCount(), answers.TotalQuestions(), total)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tNAME\tTYPE\tSIZE\tMATCH")
	for i, m := range matches {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d%%\n",
			i+1, m.Animal.ID, m.Animal.Name, m.Animal.Type, m.Animal.Size, m.MatchPercentage)
		if explain {
			for _, c := range matching.Explain(answers, m.Animal).Components {
				fmt.Fprintf(tw, "\t  %s\t%.2f\tw=%d\t\t\n", c.Dimension, c.Score, c.Weight)
			}
		}
	}
	return tw.Flush()
}
