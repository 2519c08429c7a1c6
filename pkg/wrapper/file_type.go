package wrapper

import "strings"

// FileType is the media kind of a file message.
type FileType string

const (
	FileTypeAudio    FileType = "audio"
	FileTypeDocument FileType = "document"
	FileTypeImage    FileType = "image"
	FileTypeSticker  FileType = "sticker"
	FileTypeVideo    FileType = "video"
)

// FileTypes lists the accepted file types in their canonical order.
func FileTypes() []FileType {
	return []FileType{
		FileTypeAudio,
		FileTypeDocument,
		FileTypeImage,
		FileTypeSticker,
		FileTypeVideo,
	}
}

// Valid reports whether t is one of FileTypes. Matching is exact.
func (t FileType) Valid() bool {
	for _, candidate := range FileTypes() {
		if t == candidate {
			return true
		}
	}
	return false
}

// ValidateFileType returns a *ValidationError when t is not supported.
func ValidateFileType(t FileType) error {
	if t.Valid() {
		return nil
	}
	allowed := make([]string, 0, len(FileTypes()))
	for _, candidate := range FileTypes() {
		allowed = append(allowed, string(candidate))
	}
	return &ValidationError{
		Field:   "file_type",
		Value:   string(t),
		Allowed: allowed,
		err:     ErrInvalidFileType,
	}
}

func joinAllowed(allowed []string) string {
	return strings.Join(allowed, ", ")
}
