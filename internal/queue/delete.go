package queue

import (
	"context"
	"encoding/json"

	"github.com/nodhq/nod/backend/internal/storage"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/store"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// ProcessDeleteMessage cleans up external resources of a deleted
// article. The database row is already gone when this runs.
func ProcessDeleteMessage(
	ctx context.Context,
	s3Client *awss3.Client,
	msg string,
) error {
	data := new(DeleteJobMsg)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}

	if data.Source != store.SourcePDF {
		return nil
	}

	key := storage.SourceKey(data.ArticleID)
	if err := storage.DeleteSource(ctx, s3Client, key); err != nil {
		return err
	}

	logger.Info("[Queue] Deleted article source file", "article_id", data.ArticleID, "key", key)
	return nil
}
