package input

import (
	"bufio"
	"bytes"
)

func sniffBytes(b []byte) Compression {
	return Sniff(bufio.NewReader(bytes.NewReader(b)))
}
