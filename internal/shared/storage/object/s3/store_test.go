package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"resume-tailor/internal/shared/storage/object"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/previews/s/1.pdf", want: "user/previews/s/1.pdf"},
		{name: "simple prefix", prefix: "root", key: "user/1.pdf", want: "root/user/1.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "user/1.pdf", want: "root/user/1.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/user/1.pdf", want: "root/user/1.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "user/1.pdf", want: "root/sub/user/1.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeAPI struct {
	objects map[string][]byte
	put     *s3.PutObjectInput
}

func (f *fakeAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.put = in
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeAPI) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeAPI) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestStoreRoundTripWithPrefixAndKMS(t *testing.T) {
	api := &fakeAPI{objects: map[string][]byte{}}
	store := NewWithClient(api, "bucket", "/exports/", "kms-key")
	ctx := context.Background()

	n, err := store.Put(ctx, "u/previews/s/1.pdf", "application/pdf", bytes.NewReader([]byte("pdf")))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 bytes, got %d", n)
	}
	if _, ok := api.objects["exports/u/previews/s/1.pdf"]; !ok {
		t.Fatalf("expected prefixed key, got %v", api.objects)
	}
	if api.put.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || aws.ToString(api.put.SSEKMSKeyId) != "kms-key" {
		t.Fatalf("expected kms encryption settings")
	}

	if err := store.Delete(ctx, "u/previews/s/1.pdf"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Open(ctx, "u/previews/s/1.pdf"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
