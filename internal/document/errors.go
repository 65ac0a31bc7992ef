package document

import "errors"

// Failure taxonomy for loading and showing a document. All of them are
// reported to the user and none of them stop the reader.
var (
	ErrUnconfigured   = errors.New("no file path configured")
	ErrPathNotFound   = errors.New("path not found")
	ErrNotAFile       = errors.New("not a single text file")
	ErrWrongFileType  = errors.New("file is not a .txt file")
	ErrReadFailed     = errors.New("read failed")
	ErrOutOfRangePage = errors.New("page number out of range")
)
