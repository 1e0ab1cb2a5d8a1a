package util

import (
	"io"
	"log"
	"math/rand"
)

// RandName 生成长度在 [0, maxLen-1) 之间的小写字母串
func RandName(r *rand.Rand, maxLen int) string {
	if maxLen <= 1 {
		return ""
	}
	b := make([]byte, r.Intn(maxLen-1))
	for i := range b {
		b[i] = byte('a' + r.Intn(26))
	}
	return string(b)
}

func Close(closer io.Closer) {
	err := closer.Close()
	if err != nil {
		log.Printf("close faild with error: %v\n", err)
	}
}
