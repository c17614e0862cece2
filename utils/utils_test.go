package utils

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AQID", DataURI("image/png", []byte{1, 2, 3}))
	assert.Equal(t, "data:text/plain; charset=utf-8;base64,aGk=", DataURI("", []byte("hi")))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer  abc "))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken("abc"))
	assert.Equal(t, "", BearerToken(""))
}

func TestAtoiDefault(t *testing.T) {
	assert.Equal(t, 5, AtoiDefault("5", 10))
	assert.Equal(t, 10, AtoiDefault("", 10))
	assert.Equal(t, 10, AtoiDefault("ten", 10))
}

func uploadedFile(t *testing.T, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="photo"; filename="me.png"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["photo"][0]
}

func TestReadUploadedFile(t *testing.T) {
	ct, data, err := ReadUploadedFile(uploadedFile(t, "image/jpeg", []byte{0xff, 0xd8, 0xff}))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)

	ct, _, err = ReadUploadedFile(uploadedFile(t, "application/octet-stream", []byte("plain words")))
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", ct)
}

func TestSendGridMailer_Welcome(t *testing.T) {
	done := make(chan error, 1)
	var sent *mail.SGMailV3
	m := &SendGridMailer{
		send: func(msg *mail.SGMailV3) (int, string, error) {
			sent = msg
			return 202, "", nil
		},
		from:   mail.NewEmail("Educare", "noreply@educare.test"),
		log:    zap.NewNop(),
		onDone: func(err error) { done <- err },
	}

	m.Welcome(context.Background(), "a@x.com", "Ana")

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("welcome email was not sent")
	}
	require.NotNil(t, sent)
	assert.Equal(t, "Welcome to Educare", sent.Subject)
	assert.Equal(t, "a@x.com", sent.Personalizations[0].To[0].Address)
}

func TestSendGridMailer_Send_Failure(t *testing.T) {
	m := &SendGridMailer{
		send: func(*mail.SGMailV3) (int, string, error) { return 401, "bad key", nil },
		from: mail.NewEmail("Educare", "noreply@educare.test"),
		log:  zap.NewNop(),
	}
	err := m.Send("a@x.com", "Ana", "hi", "<p>hi</p>")
	assert.ErrorContains(t, err, "401")

	m.send = func(*mail.SGMailV3) (int, string, error) { return 0, "", errors.New("dial tcp") }
	assert.ErrorContains(t, m.Send("a@x.com", "Ana", "hi", "<p>hi</p>"), "dial tcp")
}

func TestNewMailer_NoKey(t *testing.T) {
	assert.IsType(t, NoopMailer{}, NewMailer("", "x@y.z", zap.NewNop()))
	assert.IsType(t, &SendGridMailer{}, NewMailer("SG.key", "x@y.z", zap.NewNop()))
}

type countingSeeder struct{ calls atomic.Int32 }

func (s *countingSeeder) Seed(context.Context) (int, error) {
	s.calls.Add(1)
	return 42, nil
}

func TestStartQuizSeedScheduler(t *testing.T) {
	log := zap.NewNop()
	seeder := &countingSeeder{}

	c, err := StartQuizSeedScheduler("", seeder, log)
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = StartQuizSeedScheduler("not a schedule", seeder, log)
	assert.Error(t, err)

	c, err = StartQuizSeedScheduler("@every 1s", seeder, log)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Stop()

	assert.Eventually(t, func() bool { return seeder.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}
