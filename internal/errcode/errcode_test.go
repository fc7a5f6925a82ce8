package errcode

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodeIs(t *testing.T) {
	cause := errors.New("operation not permitted")
	err := NewError(CodeSocketCreate, "ソケットの作成に失敗しました", pkgerrors.Wrap(cause, "unix.Socket"))

	assert.True(t, errors.Is(err, ErrSocketCreate))
	assert.False(t, errors.Is(err, ErrSend))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "ソケットの作成に失敗しました: unix.Socket: operation not permitted", err.Error())

	wrapped := fmt.Errorf("probe 1: %w", err)
	assert.True(t, errors.Is(wrapped, ErrSocketCreate))
	assert.Equal(t, CodeSocketCreate, CodeOf(wrapped))
}

func TestCodeOf(t *testing.T) {
	testCases := []struct {
		err  error
		code Code
		exit int
	}{
		{err: nil, code: CodeSuccess, exit: 0},
		{err: New(CodeUsage, "使用法: %s <ホスト名> <回数>", "xping"), code: CodeUsage, exit: 1},
		{err: NewMessage(CodeReceiveTimeout, "要求がタイムアウトしました。"), code: CodeReceiveTimeout, exit: 1},
		{err: errors.New("unknown flag: --foo"), code: CodeUnknown, exit: 1},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.code, CodeOf(tc.err))
		assert.Equal(t, tc.exit, CodeOf(tc.err).ExitCode())
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "send error", ErrSend.Error())
	assert.Equal(t, "使用法: xping <ホスト名> <回数>", New(CodeUsage, "使用法: %s <ホスト名> <回数>", "xping").Error())
	assert.Equal(t, "unknwon code: 42", Code(42).String())
}
