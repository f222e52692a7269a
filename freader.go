package main

import (
	"os"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
)

// fileReader reads a word list file and logs how much of it has been read.
type fileReader struct {
	fileName string

	filePtr *os.File
	Size    bytesize.ByteSize

	bytesRead   int64
	lastPercent int
}

func ReadFromFile(fileName string) (*fileReader, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open word list")
	}
	fi, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, "stat word list")
	}
	return &fileReader{
		fileName: fileName,
		filePtr:  file,
		Size:     bytesize.New(float64(fi.Size())),
	}, nil
}

// Read satisfies io.Reader
// Progress is logged at debug level every time another 10% of the file
// has been consumed.
func (reader *fileReader) Read(buffer []byte) (read int, err error) {
	read, err = reader.filePtr.Read(buffer)
	if read != 0 && reader.Size > 0 {
		reader.bytesRead += int64(read)
		percent := int(float64(reader.bytesRead*100) / float64(reader.Size))
		if percent/10 > reader.lastPercent/10 {
			reader.lastPercent = percent
			loaderLog.Debugf("%d%% complete: Read %s of %s", percent, bytesize.New(float64(reader.bytesRead)), reader.Size)
		}
	}
	return
}

func (reader *fileReader) Close() error {
	return reader.filePtr.Close()
}
