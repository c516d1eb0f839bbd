package upload

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func TestPNG(t *testing.T) {
	assert := assert.New(t)

	fake := &fakeS3{}
	u := NewWithClient(fake, Config{Bucket: "frames", Prefix: "renders/misty-prism"}, log.New(io.Discard))

	key, err := u.PNG(context.Background(), "frame.png", []byte("\x89PNG"))
	require.NoError(t, err)
	assert.Equal("renders/misty-prism/frame.png", key)

	require.Len(t, fake.inputs, 1)
	in := fake.inputs[0]
	assert.Equal("frames", aws.StringValue(in.Bucket))
	assert.Equal(key, aws.StringValue(in.Key))
	assert.Equal("image/png", aws.StringValue(in.ContentType))
	assert.Equal(int64(4), aws.Int64Value(in.ContentLength))
	assert.Equal([]byte("\x89PNG"), fake.bodies[0])
}

func TestPNGError(t *testing.T) {
	fake := &fakeS3{err: errors.New("denied")}
	u := NewWithClient(fake, Config{Bucket: "frames"}, log.New(io.Discard))

	_, err := u.PNG(context.Background(), "frame.png", nil)
	assert.ErrorContains(t, err, "failed to upload frame.png")
}

func TestConfigFromEnv(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("S3_BUCKET=from-file\nS3_PREFIX=shots\n"), 0644))

	t.Setenv("S3_BUCKET", "")
	t.Setenv("S3_PREFIX", "")
	t.Setenv("S3_REGION", "")
	// godotenv does not override variables that are already set, so clear
	// them for the duration of the test
	require.NoError(t, os.Unsetenv("S3_BUCKET"))
	require.NoError(t, os.Unsetenv("S3_PREFIX"))
	require.NoError(t, os.Unsetenv("S3_REGION"))

	cfg, err := ConfigFromEnv(env)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Bucket)
	assert.Equal(t, "shots", cfg.Prefix)
	assert.Equal(t, "us-east-1", cfg.Region)
}

func TestConfigFromEnvMissingBucket(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	_, err := ConfigFromEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "S3_BUCKET")
}
