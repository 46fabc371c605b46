package assets

import (
	"errors"
	"fmt"
)

// LoadStage names the pipeline stage a load failed in.
type LoadStage int

const (
	// StageStorage covers fetching raw bytes from a store.
	StageStorage LoadStage = iota
	// StageFormat covers parsing bytes into intermediate data.
	StageFormat
	// StageAsset covers converting intermediate data into the final asset.
	StageAsset
)

func (s LoadStage) String() string {
	switch s {
	case StageStorage:
		return "storage"
	case StageFormat:
		return "format"
	case StageAsset:
		return "asset"
	}
	return "unknown"
}

// ErrWorkerDied resolves a future whose pool worker panicked before
// delivering a result. It is deliberately not an *AssetError: the pipeline
// never produced an outcome, the worker died.
var ErrWorkerDied = errors.New("asset worker died before delivering a result")

// LoadError tags an underlying store, format or context error with the
// stage that produced it.
type LoadError struct {
	Stage LoadStage
	Err   error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Stage, e.Err)
}

func (e LoadError) Unwrap() error {
	return e.Err
}

// AssetError pairs a failed load with the spec that was being loaded,
// whichever stage failed.
type AssetError struct {
	Spec  AssetSpec
	Cause LoadError
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("failed to load asset '%s': %v", e.Spec, e.Cause)
}

func (e *AssetError) Unwrap() error {
	return e.Cause
}

func newAssetError(spec AssetSpec, stage LoadStage, err error) *AssetError {
	return &AssetError{
		Spec:  spec,
		Cause: LoadError{Stage: stage, Err: err},
	}
}
