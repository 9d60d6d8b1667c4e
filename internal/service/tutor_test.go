package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ReshadVerse/english-bot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTutorService_Respond(t *testing.T) {
	ctx := context.Background()

	gen := new(testutil.MockGenerator)
	svc := NewTutorService(gen, new(testutil.MockSynthesizer), testutil.NewTestLogger())

	gen.On("GenerateText", ctx, "ubiquitous").Return("*ubiquitous* — повсеместный", nil)

	reply, err := svc.Respond(ctx, 123, "ubiquitous")

	assert.NoError(t, err)
	assert.Equal(t, "*ubiquitous* — повсеместный", reply)

	ex, ok := svc.LastExchange(123)
	assert.True(t, ok)
	assert.Equal(t, "ubiquitous", ex.Input)
	assert.Equal(t, reply, ex.Reply)
}

func TestTutorService_Respond_OverwritesPreviousExchange(t *testing.T) {
	ctx := context.Background()

	gen := new(testutil.MockGenerator)
	svc := NewTutorService(gen, new(testutil.MockSynthesizer), testutil.NewTestLogger())

	gen.On("GenerateText", ctx, "first").Return("reply one", nil)
	gen.On("GenerateText", ctx, "second").Return("reply two", nil)

	_, err := svc.Respond(ctx, 123, "first")
	assert.NoError(t, err)
	_, err = svc.Respond(ctx, 123, "second")
	assert.NoError(t, err)

	ex, ok := svc.LastExchange(123)
	assert.True(t, ok)
	assert.Equal(t, "second", ex.Input)
	assert.Equal(t, "reply two", ex.Reply)
}

func TestTutorService_Respond_GenerationFailureKeepsSession(t *testing.T) {
	ctx := context.Background()

	gen := new(testutil.MockGenerator)
	svc := NewTutorService(gen, new(testutil.MockSynthesizer), testutil.NewTestLogger())

	gen.On("GenerateText", ctx, "ok").Return("fine", nil).Once()
	gen.On("GenerateText", ctx, "boom").Return("", fmt.Errorf("model down")).Once()

	_, err := svc.Respond(ctx, 123, "ok")
	assert.NoError(t, err)

	_, err = svc.Respond(ctx, 123, "boom")
	assert.Error(t, err)

	// the failed generation must not clobber the last good exchange
	ex, ok := svc.LastExchange(123)
	assert.True(t, ok)
	assert.Equal(t, "ok", ex.Input)
}

func TestTutorService_RespondVoice(t *testing.T) {
	ctx := context.Background()

	gen := new(testutil.MockGenerator)
	svc := NewTutorService(gen, new(testutil.MockSynthesizer), testutil.NewTestLogger())

	audio := []byte{0x4f, 0x67, 0x67}
	gen.On("GenerateFromVoice", ctx, mock.Anything, audio, "audio/ogg").Return("spoken reply", nil)

	reply, err := svc.RespondVoice(ctx, 123, audio, "audio/ogg")

	assert.NoError(t, err)
	assert.Equal(t, "spoken reply", reply)

	// voice exchanges carry no word to save
	ex, ok := svc.LastExchange(123)
	assert.True(t, ok)
	assert.Empty(t, ex.Input)
	assert.Equal(t, "spoken reply", ex.Reply)
}

func TestTutorService_Pronounce(t *testing.T) {
	ctx := context.Background()

	t.Run("strips markdown before synthesis", func(t *testing.T) {
		gen := new(testutil.MockGenerator)
		synth := new(testutil.MockSynthesizer)
		svc := NewTutorService(gen, synth, testutil.NewTestLogger())

		gen.On("GenerateText", ctx, "hi").Return("*bold* and _italic_", nil)
		synth.On("Synthesize", ctx, "bold and italic").Return([]byte{1, 2, 3}, nil)

		_, err := svc.Respond(ctx, 123, "hi")
		assert.NoError(t, err)

		audio, err := svc.Pronounce(ctx, 123)

		assert.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, audio)
		synth.AssertExpectations(t)
	})

	t.Run("long replies are cut after markdown removal", func(t *testing.T) {
		gen := new(testutil.MockGenerator)
		synth := new(testutil.MockSynthesizer)
		svc := NewTutorService(gen, synth, testutil.NewTestLogger())

		long := strings.Repeat("*", 500) + strings.Repeat("a", 1500)
		gen.On("GenerateText", ctx, "hi").Return(long, nil)
		synth.On("Synthesize", ctx, strings.Repeat("a", 1000)).Return([]byte{1}, nil)

		_, err := svc.Respond(ctx, 123, "hi")
		assert.NoError(t, err)

		_, err = svc.Pronounce(ctx, 123)

		assert.NoError(t, err)
		synth.AssertExpectations(t)
	})

	t.Run("empty cache is an error", func(t *testing.T) {
		svc := NewTutorService(new(testutil.MockGenerator), new(testutil.MockSynthesizer), testutil.NewTestLogger())

		audio, err := svc.Pronounce(ctx, 999)

		assert.Error(t, err)
		assert.Nil(t, audio)
	})
}
