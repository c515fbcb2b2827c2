package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexthire/next-hire/internal/scoring"
)

var artifactsDir string

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "Inspect scoring model artifacts",
}

var artifactsVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Load the artifact bundle and check its dimensions",
	Long:  `Load the regressor and both vectorizers from the artifacts directory and verify that their dimensions agree. Exits non-zero on any mismatch.`,
	RunE:  runArtifactsVerify,
}

func init() {
	artifactsVerifyCmd.Flags().StringVar(&artifactsDir, "dir", "ml_model/artifacts", "Artifacts directory")
	artifactsCmd.AddCommand(artifactsVerifyCmd)
	rootCmd.AddCommand(artifactsCmd)
}

func runArtifactsVerify(cmd *cobra.Command, _ []string) error {
	a, err := scoring.LoadArtifacts(artifactsDir)
	if err != nil {
		return err
	}

	cmd.Printf("regressor: %d trees, %d features, base score %.2f\n",
		len(a.Regressor.Trees), a.Regressor.NumFeatures, a.Regressor.BaseScore)
	cmd.Printf("resume vectorizer: %d terms\n", a.ResumeVectorizer.Dim())
	cmd.Printf("job-description vectorizer: %d terms\n", a.JDVectorizer.Dim())
	fmt.Fprintln(cmd.OutOrStdout(), "artifact bundle OK")
	return nil
}
