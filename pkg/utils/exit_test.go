package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestCheckErrorAndExit(t *testing.T) {
	var code = -1
	exit := osExit
	osExit = func(c int) { code = c }
	defer func() { osExit = exit }()

	CheckErrorAndExit(nil, "unused")
	assert.Equal(t, -1, code)

	CheckErrorAndExit(errors.New("送信に失敗しました"), "")
	assert.Equal(t, 1, code)
}

func TestPrintError(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	PrintError(&buf, errors.New("要求がタイムアウトしました。"))
	assert.Equal(t, "要求がタイムアウトしました。\n", buf.String())
}
