package summary

import pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"

const systemPrompt = "You are an expert meeting assistant. Analyze meeting transcripts and extract structured information in JSON format."

const extractionPrompt = `
Please analyze the following meeting transcript and provide a structured summary in JSON format. Extract:

1. highlights: Key points, achievements, metrics, or important information discussed (3-5 items)
2. actionItems: Tasks that need to be completed, with assignee if mentioned and priority level
3. decisions: Important decisions or agreements made during the meeting
4. speakers: List of people who spoke (extract names from the transcript)
5. topics: Main topics or themes discussed

Each action item is an object with "task", optional "assignee" and "priority".
For action items, determine priority as:
- high: urgent tasks, deadlines mentioned, critical issues
- medium: important but not urgent tasks
- low: general tasks, nice-to-have items

Return only valid JSON without any markdown formatting or explanations.

Meeting transcript:
`

// BuildMessages composes the chat messages for one transcript. The
// transcript is appended verbatim.
func BuildMessages(transcript string) []pkgai.Message {
	return []pkgai.Message{
		{Role: pkgai.RoleSystem, Content: systemPrompt},
		{Role: pkgai.RoleUser, Content: extractionPrompt + transcript},
	}
}
