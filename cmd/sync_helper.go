package cmd

import (
	"context"
	"fmt"

	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/nakachan-ing/mdtodo/internal/util"
)

// SyncWithS3 - S3 との同期処理
func SyncWithS3(ctx context.Context, config model.Config, direction util.SyncAction, force bool) error {
	s3Client, err := util.NewS3Client(ctx, config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}
	return syncTodoFile(ctx, s3Client, config, direction, force)
}

func syncTodoFile(ctx context.Context, client util.S3API, config model.Config, direction util.SyncAction, force bool) error {
	local, err := util.LocalMeta(config.TodoFile)
	if err != nil {
		return err
	}
	remote, err := util.RemoteMeta(ctx, client, config.Sync.Bucket, config.Sync.Key)
	if err != nil {
		return err
	}

	// 新しい方を正とする。--force のときは向きだけ見る
	change := util.DetectChange(local, remote)
	if !force && change != direction {
		if change == util.SyncNone {
			fmt.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			fmt.Printf("⚠️ The other side is newer, run `mdtodo sync %s` (or --force)\n", change)
		}
		return nil
	}

	switch direction {
	case util.SyncPush:
		if !local.Exists {
			return fmt.Errorf("❌ Nothing to push: %s does not exist", config.TodoFile)
		}
		logger.Info("🔄 Uploading todo file to S3...", "bucket", config.Sync.Bucket, "key", config.Sync.Key)
		return util.UploadToS3(ctx, client, config.Sync.Bucket, config.TodoFile, config.Sync.Key)
	case util.SyncPull:
		if !remote.Exists {
			return fmt.Errorf("❌ Nothing to pull: s3://%s/%s does not exist", config.Sync.Bucket, config.Sync.Key)
		}
		logger.Info("🔄 Downloading todo file from S3...", "bucket", config.Sync.Bucket, "key", config.Sync.Key)
		return util.DownloadFromS3(ctx, client, config.Sync.Bucket, config.Sync.Key, config.TodoFile)
	}
	return fmt.Errorf("❌ Unknown sync direction: %s", direction)
}

// ShowSyncStatus - S3 との同期状態を表示
func ShowSyncStatus(ctx context.Context, config model.Config) error {
	s3Client, err := util.NewS3Client(ctx, config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	local, err := util.LocalMeta(config.TodoFile)
	if err != nil {
		return err
	}
	remote, err := util.RemoteMeta(ctx, s3Client, config.Sync.Bucket, config.Sync.Key)
	if err != nil {
		return err
	}

	fmt.Printf("📄 Local: %s\n", describeMeta(local))
	fmt.Printf("☁️  S3:    %s\n", describeMeta(remote))
	fmt.Printf("📌 Next step: %s\n", util.DetectChange(local, remote))
	return nil
}

func describeMeta(meta util.FileMeta) string {
	if !meta.Exists {
		return "missing"
	}
	return fmt.Sprintf("%s (%d bytes)", meta.ModTime.Local().Format("2006-01-02 15:04:05"), meta.Size)
}
