package transcript

import "strings"

// mergeEvents folds runs of consecutive same-speaker events into blocks.
func mergeEvents(events []Event) []Block {
	var blocks []Block
	var speech []string

	flush := func() {
		if len(speech) > 0 {
			blocks[len(blocks)-1].Speech = strings.Join(speech, " ")
			speech = speech[:0]
		}
	}

	for i, e := range events {
		if i == 0 || e.Speaker != events[i-1].Speaker {
			flush()
			blocks = append(blocks, Block{Timestamp: e.Timestamp, Speaker: e.Speaker})
		}
		speech = append(speech, e.Speech)
	}
	flush()

	return blocks
}
