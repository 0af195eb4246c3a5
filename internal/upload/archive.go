package upload

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"
)

// ObjectName is the remote path of a run transcript: yyyy/mm/dd/<run id>.log
func ObjectName(runID string, at time.Time) string {
	return path.Join(at.Format("2006/01/02"), runID+".log")
}

// Archive uploads one run transcript and returns its remote path.
func Archive(ctx context.Context, provider Provider, runID string, at time.Time, transcript []byte) (string, error) {
	remotePath := ObjectName(runID, at)
	if err := provider.Upload(ctx, bytes.NewReader(transcript), remotePath); err != nil {
		return "", fmt.Errorf("failed to archive run %s: %w", runID, err)
	}
	return remotePath, nil
}
