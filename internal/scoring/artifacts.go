package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact filenames produced by the offline training pipeline.
const (
	RegressorFile        = "ats_model.json"
	ResumeVectorizerFile = "tfidf_resume.json"
	JDVectorizerFile     = "tfidf_jd.json"
)

// Artifacts is the process-wide bundle of trained model state: the regressor
// and the two frozen vectorizers. It is loaded once at startup, treated as
// read-only for the process lifetime, and therefore safe for unlimited
// concurrent readers.
type Artifacts struct {
	Regressor        *Regressor
	ResumeVectorizer *Vectorizer
	JDVectorizer     *Vectorizer
}

// LoadArtifacts reads the three artifact files from dir and verifies that
// their dimensions agree. Missing files surface as errors the caller should
// log as a startup warning, not a crash: requests needing the bundle fail at
// call time instead.
func LoadArtifacts(dir string) (*Artifacts, error) {
	var reg Regressor
	if err := readJSON(filepath.Join(dir, RegressorFile), &reg); err != nil {
		return nil, err
	}

	var resumeVec, jdVec Vectorizer
	if err := readJSON(filepath.Join(dir, ResumeVectorizerFile), &resumeVec); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, JDVectorizerFile), &jdVec); err != nil {
		return nil, err
	}

	a := &Artifacts{
		Regressor:        &reg,
		ResumeVectorizer: &resumeVec,
		JDVectorizer:     &jdVec,
	}
	if err := a.Verify(); err != nil {
		return nil, err
	}
	return a, nil
}

// Verify checks that the combined vectorizer output matches the regressor's
// expected input dimension exactly. A mismatch means the artifacts come from
// different training runs and is a fatal configuration error.
func (a *Artifacts) Verify() error {
	if a.Regressor == nil || a.ResumeVectorizer == nil || a.JDVectorizer == nil {
		return fmt.Errorf("artifact bundle is incomplete")
	}
	if err := a.Regressor.Validate(); err != nil {
		return fmt.Errorf("invalid regressor: %w", err)
	}
	if err := a.ResumeVectorizer.Validate(); err != nil {
		return fmt.Errorf("invalid resume vectorizer: %w", err)
	}
	if err := a.JDVectorizer.Validate(); err != nil {
		return fmt.Errorf("invalid job-description vectorizer: %w", err)
	}

	want := a.Regressor.NumFeatures
	got := a.ResumeVectorizer.Dim() + a.JDVectorizer.Dim() + NumEngineeredFeatures
	if got != want {
		return fmt.Errorf("artifact dimension mismatch: vectorizers produce %d features, regressor expects %d", got, want)
	}
	return nil
}

// Release drops the loaded model state. Called once at process shutdown.
func (a *Artifacts) Release() {
	a.Regressor = nil
	a.ResumeVectorizer = nil
	a.JDVectorizer = nil
}

func readJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	return nil
}
