package collector

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"CommodityPulse/internal/model"
)

// FileSource reads the source document from a local path.
type FileSource struct {
	Path string
	log  *zap.Logger
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string, log *zap.Logger) *FileSource {
	return &FileSource{Path: path, log: log}
}

func (f *FileSource) Name() string { return "file" }

func (f *FileSource) Fetch(ctx context.Context) ([]model.RawObservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()
	observations, err := decodeDocument(file, f.log)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return observations, nil
}
