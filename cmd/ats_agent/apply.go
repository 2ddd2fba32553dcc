package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ats/internal/ats"
	"github.com/jonathan/job-ats/internal/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply or dismiss analysis suggestions on a CV",
	Long: "Apply suggestions by id to a copy of the CV, in the order given, then dismiss suggestions " +
		"and optionally undo the last steps. Writes the updated CV and, with --analysis-out, the updated analysis.",
	RunE: runApply,
}

var (
	applyCVFile       string
	applyAnalysisFile string
	applyIDs          []string
	applyDismissIDs   []string
	applyUndo         int
	applyOutFile      string
	applyAnalysisOut  string
)

func init() {
	applyCmd.Flags().StringVar(&applyCVFile, "cv", "", "Path to CV JSON (required)")
	applyCmd.Flags().StringVar(&applyAnalysisFile, "analysis", "", "Path to analysis JSON (required)")
	applyCmd.Flags().StringArrayVar(&applyIDs, "id", nil, "Suggestion id to apply (repeatable)")
	applyCmd.Flags().StringArrayVar(&applyDismissIDs, "dismiss", nil, "Suggestion id to dismiss (repeatable)")
	applyCmd.Flags().IntVar(&applyUndo, "undo", 0, "Undo this many of the steps above")
	applyCmd.Flags().StringVarP(&applyOutFile, "out", "o", "", "Path to output CV JSON (default stdout)")
	applyCmd.Flags().StringVar(&applyAnalysisOut, "analysis-out", "", "Path to write the updated analysis JSON")
	_ = applyCmd.MarkFlagRequired("cv")
	_ = applyCmd.MarkFlagRequired("analysis")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, _ []string) error {
	if len(applyIDs) == 0 && len(applyDismissIDs) == 0 {
		return fmt.Errorf("nothing to do: pass --id or --dismiss")
	}

	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	cv, err := loadCV(applyCVFile)
	if err != nil {
		return err
	}
	result, err := loadAnalysis(applyAnalysisFile)
	if err != nil {
		return err
	}

	session := newEditSession(cv, result.Suggestions)
	for _, id := range applyIDs {
		if !session.apply(id) {
			rt.logger.Warn("suggestion not applied", zap.String("id", id))
		}
	}
	for _, id := range applyDismissIDs {
		session.dismiss(id)
	}
	undone := session.undo(applyUndo)

	result.Suggestions = session.history.Current()
	rt.logger.Info("updated CV",
		zap.Int("steps", len(session.cvs)-1),
		zap.Int("undone", undone),
	)

	if applyAnalysisOut != "" {
		if err := rt.writeJSON(applyAnalysisOut, result); err != nil {
			return err
		}
	}
	return rt.writeJSON(applyOutFile, session.cv())
}

// editSession pairs the suggestion history with the CV state after each step
type editSession struct {
	history *ats.History
	cvs     []*types.CVData
}

func newEditSession(cv *types.CVData, suggestions []types.ATSSuggestion) *editSession {
	return &editSession{
		history: ats.NewHistory(suggestions, ats.DefaultHistoryLimit),
		cvs:     []*types.CVData{cv},
	}
}

func (s *editSession) cv() *types.CVData {
	return s.cvs[len(s.cvs)-1]
}

func (s *editSession) push(cv *types.CVData, suggestions []types.ATSSuggestion) {
	s.history.Push(suggestions)
	s.cvs = append(s.cvs, cv)
	// History drops its oldest snapshot past the limit; keep the CV stack aligned
	if len(s.cvs) > ats.DefaultHistoryLimit+1 {
		s.cvs = s.cvs[len(s.cvs)-ats.DefaultHistoryLimit-1:]
	}
}

func (s *editSession) apply(id string) bool {
	updated, suggestions, ok := ats.ApplySuggestion(s.cv(), s.history.Current(), id)
	if !ok {
		return false
	}
	s.push(updated, suggestions)
	return true
}

func (s *editSession) dismiss(id string) {
	s.push(s.cv(), ats.DismissSuggestion(s.history.Current(), id))
}

// undo reverts up to n steps and reports how many were reverted
func (s *editSession) undo(n int) int {
	done := 0
	for ; done < n; done++ {
		if _, ok := s.history.Undo(); !ok {
			break
		}
		s.cvs = s.cvs[:len(s.cvs)-1]
	}
	return done
}
