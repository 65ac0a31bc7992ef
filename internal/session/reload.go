package session

import (
	"errors"
	"fmt"

	"github.com/dgallion1/txtread/internal/document"
	"github.com/dgallion1/txtread/internal/paginate"
)

// Loader reads the document at path. Errors wrap a document.Err* value.
// A nil document with a nil error is reported as a read failure.
type Loader func(path string) (*document.Document, error)

// Level is the severity a notice is shown with.
type Level string

const (
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one user-facing report of a failed reload.
type Notice struct {
	Level   Level  `json:"level"`
	Err     error  `json:"-"`
	Message string `json:"text"`
}

// Result is the outcome of one Reload.
type Result struct {
	State     State
	Payload   *document.Payload
	Notice    *Notice
	ResetPage bool // the stored page number must be set back to 1
}

// Reload loads the configured document and selects the page st points
// at. It never returns both a payload and a notice.
func Reload(st State, load Loader) Result {
	res := Result{State: st}

	if !st.Configured() {
		res.Notice = &Notice{
			Level:   LevelWarning,
			Err:     document.ErrUnconfigured,
			Message: "Please configure filePath first",
		}
		return res
	}
	if st.PageSize <= 0 {
		st.PageSize = DefaultPageSize
		res.State = st
	}

	doc, err := load(st.FilePath)
	if err == nil && doc == nil {
		err = fmt.Errorf("%w: loader returned no document", document.ErrReadFailed)
	}
	if err != nil {
		res.Notice = classify(st.FilePath, err)
		return res
	}

	pages := paginate.Paginate(doc.Text, st.PageSize)
	index := st.PageIndex()
	if index >= len(pages) {
		res.ResetPage = true
		return res
	}

	res.Payload = &document.Payload{
		Title:      doc.Name,
		Text:       pages[index],
		Total:      len(pages),
		PageNumber: index + 1,
	}
	return res
}

func classify(path string, err error) *Notice {
	switch {
	case errors.Is(err, document.ErrPathNotFound):
		return &Notice{Level: LevelError, Err: err, Message: "Path does not exist: " + path}
	case errors.Is(err, document.ErrNotAFile):
		return &Notice{Level: LevelError, Err: err, Message: "Not the path of a single .txt file: " + path}
	case errors.Is(err, document.ErrWrongFileType):
		return &Notice{Level: LevelWarning, Err: err, Message: "File type is not 'TXT': " + path}
	default:
		if !errors.Is(err, document.ErrReadFailed) {
			err = fmt.Errorf("%w: %w", document.ErrReadFailed, err)
		}
		return &Notice{Level: LevelError, Err: err, Message: fmt.Sprintf("Could not read %s: %v", path, err)}
	}
}
