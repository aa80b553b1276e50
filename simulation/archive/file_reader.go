package archive

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/rzaliznyak-math/random/utils/bigendian"
)

func NewFileReader(filename string) (FileReader, error) {
	stat, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("could not stat file: %s, does it exist? %w", filename, err)
	}
	if stat.IsDir() {
		return nil, errors.New("given path to sample archive is a directory")
	}
	if stat.Size() == 0 {
		return nil, errors.New("given sample archive is empty")
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open sample archive: %s, %w", filename, err)
	}
	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("could not create gzip reader for sample archive: %s, %w", filename, err)
	}
	return &fileReader{
		reader: bufio.NewReader(gzipReader),
		gzip:   gzipReader,
		file:   file,
	}, nil
}

//go:generate mockgen -source file_reader.go -destination file_reader_mock.go -package archive

type FileReader interface {
	// ReadData reads a byte slice of given size from the file.
	ReadData(size int) ([]byte, error)
	// ReadUint64 reads a big-endian encoded uint64 value from the file.
	ReadUint64() (uint64, error)
	// ReadUint16 reads a big-endian encoded uint16 value from the file.
	ReadUint16() (uint16, error)
	// ReadUint8 reads a single byte (uint8) from the file.
	ReadUint8() (uint8, error)
	Close() error
}

// ReadBuffer is a wrapper around necessary interfaces for reading data to a file for mocking purposes.
type ReadBuffer interface {
	io.Reader
	io.ByteReader
}

type fileReader struct {
	reader ReadBuffer
	gzip   io.Closer
	file   io.Closer
}

func (f *fileReader) ReadData(size int) ([]byte, error) {
	var (
		err  error
		data = make([]byte, size)
	)
	if _, err = io.ReadFull(f.reader, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (f *fileReader) ReadUint64() (uint64, error) {
	data, err := f.ReadData(8)
	if err != nil {
		return 0, err
	}
	return bigendian.BytesToUint64(data), nil
}

func (f *fileReader) ReadUint16() (uint16, error) {
	data, err := f.ReadData(2)
	if err != nil {
		return 0, err
	}
	return bigendian.BytesToUint16(data), nil
}

func (f *fileReader) ReadUint8() (uint8, error) {
	return f.reader.ReadByte()
}

func (f *fileReader) Close() error {
	return errors.Join(f.gzip.Close(), f.file.Close())
}
