package util

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// FileMeta is what sync compares on each side.
type FileMeta struct {
	Exists  bool
	ModTime time.Time
	Size    int64
}

type SyncAction int

const (
	SyncNone SyncAction = iota
	SyncPush
	SyncPull
)

func (a SyncAction) String() string {
	switch a {
	case SyncPush:
		return "push"
	case SyncPull:
		return "pull"
	default:
		return "up to date"
	}
}

// clockSkew absorbs the second-level precision of S3 timestamps.
const clockSkew = time.Second

func LocalMeta(path string) (FileMeta, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return FileMeta{}, nil
	}
	if err != nil {
		return FileMeta{}, fmt.Errorf("❌ Failed to stat %s: %w", path, err)
	}
	return FileMeta{Exists: true, ModTime: info.ModTime(), Size: info.Size()}, nil
}

func RemoteMeta(ctx context.Context, client S3API, bucket, s3Key string) (FileMeta, error) {
	out, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(s3Key),
	})
	if err != nil {
		if isNotFoundErr(err) {
			return FileMeta{}, nil
		}
		return FileMeta{}, fmt.Errorf("❌ Failed to stat %s on S3: %w", s3Key, err)
	}
	meta := FileMeta{Exists: true, Size: aws.ToInt64(out.ContentLength)}
	if out.LastModified != nil {
		meta.ModTime = *out.LastModified
	}
	return meta, nil
}

// DetectChange decides which way the todo file should travel: the newer
// side wins, a side that is missing always receives the file.
func DetectChange(local, remote FileMeta) SyncAction {
	switch {
	case !local.Exists && !remote.Exists:
		return SyncNone
	case !remote.Exists:
		return SyncPush
	case !local.Exists:
		return SyncPull
	case local.ModTime.After(remote.ModTime.Add(clockSkew)):
		return SyncPush
	case remote.ModTime.After(local.ModTime.Add(clockSkew)):
		return SyncPull
	}
	return SyncNone
}
