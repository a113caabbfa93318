package loader_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next/pkg/i18next"
	"github.com/dmitrymomot/i18next/pkg/loader"
)

// fakeS3 serves objects from memory, two keys per listing page.
type fakeS3 struct {
	objects map[string]string
	keys    []string
	listErr error
	getErr  error

	mu       sync.Mutex
	prefixes []string
	fetched  []string
}

func newFakeS3(objects map[string]string, keys ...string) *fakeS3 {
	return &fakeS3{objects: objects, keys: keys}
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	f.mu.Lock()
	f.prefixes = append(f.prefixes, aws.ToString(in.Prefix))
	f.mu.Unlock()

	var matching []string
	for _, k := range f.keys {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			matching = append(matching, k)
		}
	}

	start := 0
	if in.ContinuationToken != nil {
		for i, k := range matching {
			if k == *in.ContinuationToken {
				start = i
			}
		}
	}
	end := min(start+2, len(matching))

	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(end < len(matching))}
	for _, k := range matching[start:end] {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	if end < len(matching) {
		out.NextContinuationToken = aws.String(matching[end])
	}
	return out, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	key := aws.ToString(in.Key)
	f.mu.Lock()
	f.fetched = append(f.fetched, key)
	f.mu.Unlock()

	body, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestNewS3(t *testing.T) {
	t.Parallel()

	_, err := loader.NewS3(nil, "bucket", "__lng__.json")
	require.ErrorIs(t, err, loader.ErrInvalidConfig)

	_, err = loader.NewS3(newFakeS3(nil), "", "__lng__.json")
	require.ErrorIs(t, err, loader.ErrInvalidConfig)

	_, err = loader.NewS3(newFakeS3(nil), "bucket", "")
	require.ErrorIs(t, err, loader.ErrInvalidPattern)
}

func TestS3Load(t *testing.T) {
	t.Parallel()

	t.Run("lists pages and fetches matching keys", func(t *testing.T) {
		t.Parallel()
		client := newFakeS3(map[string]string{
			"locales/de/common.json": `{"hello": "Hallo"}`,
			"locales/en/common.json": `{"hello": "Hello"}`,
			"locales/en/errors.json": `{"oops": "Oops"}`,
		},
			"locales/README.md",
			"locales/de/common.json",
			"locales/en/common.json",
			"locales/en/errors.json",
			"locales/en/nested/deep.json",
		)

		src, err := loader.NewS3(client, "bucket", "locales/__lng__/__ns__.json", loader.WithConcurrency(2))
		require.NoError(t, err)

		bundles, err := src.Load(context.Background(), "en")
		require.NoError(t, err)
		require.Len(t, bundles, 3)
		require.Equal(t, "de", bundles[0].Language)
		require.Equal(t, "common", bundles[0].Namespace)
		require.Equal(t, "errors", bundles[2].Namespace)
		require.Equal(t, i18next.Tree{"oops": "Oops"}, bundles[2].Tree)

		require.Contains(t, client.prefixes, "locales/")
		require.ElementsMatch(t, []string{
			"locales/de/common.json",
			"locales/en/common.json",
			"locales/en/errors.json",
		}, client.fetched)

		inst, err := i18next.Init(context.Background(), "de", src)
		require.NoError(t, err)
		require.Equal(t, "Hallo", inst.T("common.hello"))
		require.Equal(t, "Oops", inst.T("errors.oops", i18next.M{"lng": "en"}))
	})

	t.Run("no matching objects", func(t *testing.T) {
		t.Parallel()
		src, err := loader.NewS3(newFakeS3(nil, "other/file.txt"), "bucket", "locales/__lng__.json")
		require.NoError(t, err)

		_, err = src.Load(context.Background(), "en")
		require.ErrorIs(t, err, i18next.ErrSourceNotFound)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		client := newFakeS3(nil)
		client.listErr = &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "gone"}

		src, err := loader.NewS3(client, "bucket", "__lng__.json")
		require.NoError(t, err)

		_, err = src.Load(context.Background(), "en")
		require.ErrorIs(t, err, i18next.ErrSourceNotFound)
	})

	t.Run("access denied", func(t *testing.T) {
		t.Parallel()
		client := newFakeS3(map[string]string{"en.json": `{}`}, "en.json")
		client.getErr = &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"}

		src, err := loader.NewS3(client, "bucket", "__lng__.json")
		require.NoError(t, err)

		_, err = src.Load(context.Background(), "en")
		require.ErrorIs(t, err, loader.ErrAccessDenied)
	})

	t.Run("unknown failure", func(t *testing.T) {
		t.Parallel()
		client := newFakeS3(nil)
		client.listErr = errors.New("connection reset")

		src, err := loader.NewS3(client, "bucket", "__lng__.json")
		require.NoError(t, err)

		_, err = src.Load(context.Background(), "en")
		require.ErrorIs(t, err, loader.ErrReadFailed)
	})

	t.Run("malformed object", func(t *testing.T) {
		t.Parallel()
		client := newFakeS3(map[string]string{"en.yaml": "a: [unclosed"}, "en.yaml")

		src, err := loader.NewS3(client, "bucket", "__lng__.yaml")
		require.NoError(t, err)

		_, err = src.Load(context.Background(), "en")
		require.ErrorIs(t, err, i18next.ErrInvalidSource)
	})
}

func TestNewS3Client(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     loader.S3Config
		wantErr bool
	}{
		{"static credentials", loader.S3Config{Bucket: "b", AccessKey: "k", SecretKey: "s"}, false},
		{"anonymous", loader.S3Config{Bucket: "b"}, false},
		{"custom endpoint", loader.S3Config{Bucket: "b", Endpoint: "http://localhost:9000", PathStyle: true}, false},
		{"missing bucket", loader.S3Config{AccessKey: "k", SecretKey: "s"}, true},
		{"half credentials", loader.S3Config{Bucket: "b", AccessKey: "k"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := loader.NewS3Client(tt.cfg)
			if tt.wantErr {
				require.ErrorIs(t, err, loader.ErrInvalidConfig)
				require.Nil(t, client)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
		})
	}
}
