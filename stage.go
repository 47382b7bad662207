package mirrordoc

import (
	"errors"
	"fmt"
)

// Stage names a step of the extraction pipeline.
type Stage string

// Pipeline stages in execution order.
const (
	StageLoad     Stage = "load"
	StageParse    Stage = "parse"
	StageMetadata Stage = "metadata"
	StageSanitize Stage = "sanitize"
	StageAssemble Stage = "assemble"
	StageWrite    Stage = "write"
	StageRecord   Stage = "record"
)

// StageError records which pipeline stage produced an error.
// ErrorCode and ErrorMessage see through it to the underlying error.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// WrapStage attaches stage to err unless err already carries a stage.
func WrapStage(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}

// ErrorStage returns the stage attached to err, or "" if there is none.
func ErrorStage(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
