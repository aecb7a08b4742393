package fsutils

import (
	"io"
	"os"
)

// ReadFileData reads up to max bytes from the file.
// max == 0 reads the whole file, max > 0 reads the first max bytes,
// max < 0 reads the last |max| bytes.
func ReadFileData(filePath string, max int) (data []byte, err error) {
	if max == 0 {
		return os.ReadFile(filePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	if max > 0 {
		data = make([]byte, max)
		n, err := io.ReadFull(file, data)
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			err = nil
		}
		return data[:n], err
	}
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	absMax := int64(-max)
	offset := info.Size() - absMax
	if offset < 0 {
		offset = 0
	}
	if _, err = file.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(file)
}
