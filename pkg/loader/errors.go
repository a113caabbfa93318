package loader

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/i18next/pkg/i18next"
)

// Sentinel errors for loader operations. Missing and malformed sources wrap
// i18next.ErrSourceNotFound and i18next.ErrInvalidSource.
var (
	ErrInvalidPattern = errors.New("loader: invalid source pattern")
	ErrInvalidConfig  = errors.New("loader: invalid configuration")
	ErrAccessDenied   = errors.New("loader: access denied")
	ErrReadFailed     = errors.New("loader: read failed")
)

// wrapS3Error maps S3 errors to loader sentinels.
// Uses %v for the original error so callers match on sentinels only.
func wrapS3Error(err error, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %v", i18next.ErrSourceNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return fmt.Errorf("%w: %v", i18next.ErrSourceNotFound, err)
	}
	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return fmt.Errorf("%w: %v", i18next.ErrSourceNotFound, err)
	}

	return fmt.Errorf("%w: %v", fallback, err)
}
