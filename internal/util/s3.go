package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/charmbracelet/log"
	"github.com/nakachan-ing/mdtodo/internal/model"
)

// S3API is the part of *s3.Client the sync commands use.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// UploadToS3 - ローカルの TODO ファイルを S3 にアップロード
func UploadToS3(ctx context.Context, client S3API, bucket, filePath, s3Key string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("❌ Failed to open file %s: %w", filePath, err)
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(s3Key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/markdown; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("❌ Failed to upload %s to S3: %w", s3Key, err)
	}

	log.Info("✅ Uploaded to S3", "key", s3Key)
	return nil
}

// DownloadFromS3 - S3 から TODO ファイルを取得してローカルを置き換える
func DownloadFromS3(ctx context.Context, client S3API, bucket, s3Key, localPath string) error {
	resp, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(s3Key),
	})
	if err != nil {
		return fmt.Errorf("❌ Failed to download %s from S3: %w", s3Key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("❌ Failed to read %s from S3: %w", s3Key, err)
	}

	// 保存先ディレクトリが存在しない場合は作成
	localDir := filepath.Dir(localPath)
	if err := os.MkdirAll(localDir, os.ModePerm); err != nil {
		return fmt.Errorf("❌ Failed to create directory %s: %w", localDir, err)
	}

	tmp := localPath + ".download"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("❌ Failed to write file %s: %w", localPath, err)
	}
	if err := os.Rename(tmp, localPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("❌ Failed to replace file %s: %w", localPath, err)
	}

	log.Info("✅ Downloaded from S3", "key", s3Key)
	return nil
}

func isNotFoundErr(err error) bool {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	return errors.As(err, &noSuchKey) || errors.As(err, &notFound)
}

func NewS3Client(ctx context.Context, cfg model.Config) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Sync.AWSProfile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Sync.AWSProfile))
	}
	if cfg.Sync.AWSRegion != "" {
		opts = append(opts, config.WithRegion(cfg.Sync.AWSRegion))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("❌ Unable to load SDK config: %w", err)
	}

	return s3.NewFromConfig(awsCfg), nil
}
