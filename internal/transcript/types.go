package transcript

// Role labels written in place of raw speaker names.
const (
	RoleInterviewer = "Interviewer"
	RoleStudent     = "Student"
)

// Event is a single caption reduced to its start time, speaker and text.
type Event struct {
	Timestamp string // mm:ss of the caption start
	Speaker   string
	Speech    string
}

// Block is a run of consecutive events from the same speaker.
type Block struct {
	Timestamp string // timestamp of the first event in the run
	Speaker   string
	Speech    string
}

// Roles maps the two raw speaker labels of a transcript to role labels.
type Roles map[string]string
