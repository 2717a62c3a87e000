package transcript

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedBlock         = errors.New("malformed caption block")
	ErrUnexpectedSpeakerCount = errors.New("unexpected speaker count")
	ErrBadInterviewerName     = errors.New("bad interviewer name")
)

// ErrorKind identifies which stage of formatting rejected a transcript.
type ErrorKind int

const (
	KindMalformedBlock ErrorKind = iota + 1
	KindUnexpectedSpeakerCount
	KindBadInterviewerName
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedBlock:
		return "MalformedBlock"
	case KindUnexpectedSpeakerCount:
		return "UnexpectedSpeakerCount"
	case KindBadInterviewerName:
		return "BadInterviewerName"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error describes why a transcript could not be formatted. It matches the
// package sentinels with errors.Is.
type Error struct {
	Kind        ErrorKind
	Block       int // 1-based caption block position, MalformedBlock only
	Reason      string
	Interviewer string
	Speakers    []string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMalformedBlock:
		return fmt.Sprintf("%v: block %d: %s", ErrMalformedBlock, e.Block, e.Reason)
	case KindUnexpectedSpeakerCount:
		return fmt.Sprintf("%v: found %d speaker(s) %s, want 2",
			ErrUnexpectedSpeakerCount, len(e.Speakers), quoteAll(e.Speakers))
	case KindBadInterviewerName:
		return fmt.Sprintf("%v: interviewer %q is not present in this transcript (speakers: %s)",
			ErrBadInterviewerName, e.Interviewer, quoteAll(e.Speakers))
	default:
		return e.Kind.String()
	}
}

func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindMalformedBlock:
		return target == ErrMalformedBlock
	case KindUnexpectedSpeakerCount:
		return target == ErrUnexpectedSpeakerCount
	case KindBadInterviewerName:
		return target == ErrBadInterviewerName
	}
	return false
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
