package domain

import "errors"

var (
	ErrInvalidFile        = errors.New("only PDF files are allowed")
	ErrFileTooLarge       = errors.New("file exceeds maximum upload size")
	ErrInvalidFileID      = errors.New("invalid file id")
	ErrFileNotFound       = errors.New("file not found")
	ErrStorageUnavailable = errors.New("failed to upload file to storage")
	ErrPersistenceFailure = errors.New("failed to save file metadata")
)
