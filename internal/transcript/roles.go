package transcript

// speakers lists the distinct speaker labels in order of first appearance.
func speakers(blocks []Block) []string {
	seen := make(map[string]bool)
	var names []string
	for _, b := range blocks {
		if !seen[b.Speaker] {
			seen[b.Speaker] = true
			names = append(names, b.Speaker)
		}
	}
	return names
}

// AssignRoles maps a two-party speaker set onto Interviewer and Student.
// The interviewer must match one of the labels exactly.
func AssignRoles(names []string, interviewer string) (Roles, error) {
	if len(names) != 2 {
		return nil, &Error{Kind: KindUnexpectedSpeakerCount, Speakers: names}
	}

	roles := make(Roles, 2)
	for _, name := range names {
		if name == interviewer {
			roles[name] = RoleInterviewer
		} else {
			roles[name] = RoleStudent
		}
	}
	if _, ok := roles[interviewer]; !ok {
		return nil, &Error{Kind: KindBadInterviewerName, Interviewer: interviewer, Speakers: names}
	}
	return roles, nil
}

// Apply returns a copy of blocks with every speaker replaced by its role.
func (r Roles) Apply(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		b.Speaker = r[b.Speaker]
		out[i] = b
	}
	return out
}
