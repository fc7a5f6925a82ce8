package main

import (
	"strconv"

	"github.com/zxhio/xping/internal/errcode"
)

func usageError(name string) error {
	return errcode.New(errcode.CodeUsage, "使用法: %s <ホスト名> <回数>", name)
}

// parseCount accepts decimal digits only and a value of at least 1.
func parseCount(s string) (int, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errcode.NewMessage(errcode.CodeArgumentFormat, "エラー: 整数以外の文字を含めないでください。")
		}
	}

	count, err := strconv.Atoi(s)
	if err != nil && s != "" {
		return 0, errcode.NewError(errcode.CodeArgumentFormat, "エラー: 回数が大きすぎます", err)
	}
	if count <= 0 {
		return 0, errcode.NewMessage(errcode.CodeArgumentFormat, "エラー: 1以上の数字を入力してください。")
	}
	return count, nil
}
