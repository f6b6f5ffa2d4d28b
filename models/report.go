package models

type Stage string

const (
	StageFileExists Stage = "file_exists"
	StageStructure  Stage = "structure"
	StageContent    Stage = "content"
	StageCommits    Stage = "commits"
)

type StageResult struct {
	Stage   Stage
	Passed  bool
	Skipped bool
	// Missing lists every absent required structure for the structure stage.
	Missing []string
	// Detail carries the failure reason for the other stages.
	Detail string
}

// Report is the outcome of one verification run. Stages holds results in
// pipeline order up to and including the first failing stage.
type Report struct {
	Stages []StageResult
	Passed bool
}

func (r *Report) Add(result StageResult) {
	r.Stages = append(r.Stages, result)
}
